// Package ui holds the in-memory view surface the dashboard renders into.
// A Page is a set of named regions; each region carries its own opacity, content and, at most, one chart.
package ui

import (
	"sort"
	"sync"
)

const (
	OpacityNormal = 1.0
	OpacityDimmed = 0.5
)

// RegionState is a read-only copy of a region.
type RegionState struct {
	ID      string      `json:"id"`
	Opacity float64     `json:"opacity"`
	HTML    string      `json:"html,omitempty"`
	Text    string      `json:"text,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Chart   *Chart      `json:"chart,omitempty"`
}

type region struct {
	opacity float64
	html    string
	text    string
	data    interface{}
	chart   *Chart
}

// Page is safe for concurrent use.
type Page struct {
	mu      sync.RWMutex
	regions map[string]*region
	nextID  uint64
	live    int
}

func NewPage() *Page {
	return &Page{regions: make(map[string]*region)}
}

// Mount creates the given regions. Already mounted regions are kept as they are.
func (p *Page) Mount(ids ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range ids {
		if _, ok := p.regions[id]; !ok {
			p.regions[id] = &region{opacity: OpacityNormal}
		}
	}
}

// Unmount tears the given regions down, destroying their charts.
func (p *Page) Unmount(ids ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range ids {
		if r, ok := p.regions[id]; ok {
			p.destroy(r)
			delete(p.regions, id)
		}
	}
}

func (p *Page) Has(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.regions[id]
	return ok
}

// SetOpacity reports false when the region is not mounted.
func (p *Page) SetOpacity(id string, opacity float64) bool {
	return p.update(id, func(r *region) { r.opacity = opacity })
}

func (p *Page) SetHTML(id, html string) bool {
	return p.update(id, func(r *region) { r.html = html })
}

func (p *Page) SetText(id, text string) bool {
	return p.update(id, func(r *region) { r.text = text })
}

func (p *Page) SetData(id string, data interface{}) bool {
	return p.update(id, func(r *region) { r.data = data })
}

// AttachChart destroys the chart already attached to the region, if any, then attaches a new one.
// It returns nil when the region is not mounted.
func (p *Page) AttachChart(id string, cfg ChartConfig) *Chart {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, ok := p.regions[id]
	if !ok {
		return nil
	}
	p.destroy(r)

	p.nextID++
	r.chart = &Chart{ID: p.nextID, Target: id, Config: cfg}
	p.live++
	return r.chart
}

// DestroyCharts releases every chart instance of the page. Regions stay mounted.
func (p *Page) DestroyCharts() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, r := range p.regions {
		p.destroy(r)
	}
}

// LiveCharts returns the number of chart instances not destroyed yet.
func (p *Page) LiveCharts() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.live
}

func (p *Page) Region(id string) (RegionState, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	r, ok := p.regions[id]
	if !ok {
		return RegionState{}, false
	}
	return r.state(id), true
}

// Snapshot returns the state of the given mounted regions, or of all of them when no id is given.
func (p *Page) Snapshot(ids ...string) map[string]RegionState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(ids) == 0 {
		ids = make([]string, 0, len(p.regions))
		for id := range p.regions {
			ids = append(ids, id)
		}
		sort.Strings(ids)
	}
	snap := make(map[string]RegionState, len(ids))
	for _, id := range ids {
		if r, ok := p.regions[id]; ok {
			snap[id] = r.state(id)
		}
	}
	return snap
}

func (p *Page) update(id string, fn func(r *region)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, ok := p.regions[id]
	if !ok {
		return false
	}
	fn(r)
	return true
}

// destroy must be called with the lock held.
func (p *Page) destroy(r *region) {
	if r.chart != nil && !r.chart.destroyed {
		r.chart.destroyed = true
		p.live--
	}
	r.chart = nil
}

func (r *region) state(id string) RegionState {
	st := RegionState{
		ID:      id,
		Opacity: r.opacity,
		HTML:    r.html,
		Text:    r.text,
		Data:    r.data,
	}
	if r.chart != nil {
		c := *r.chart
		st.Chart = &c
	}
	return st
}
