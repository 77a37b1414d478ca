package report

import (
	"sync"

	"github.com/academia/dashboard/core/ui"
)

// Report page regions
const (
	RegionEnrollment  = "chart-enrollment"
	RegionOutcomes    = "chart-outcomes"
	RegionAverages    = "chart-averages"
	RegionTopStudents = "top-students"
)

// DisplayRegions are dimmed while a report load is in progress.
func DisplayRegions() []string {
	return []string{RegionEnrollment, RegionOutcomes, RegionAverages, RegionTopStudents}
}

// Surface is where reports are rendered. Writes to a region that is not mounted are no-ops.
type Surface interface {
	SetOpacity(id string, opacity float64) bool
	SetHTML(id, html string) bool
	SetText(id, text string) bool
	AttachChart(id string, cfg ui.ChartConfig) *ui.Chart
}

type Renderer struct {
	surface Surface

	mu      sync.Mutex
	loading int // loads in flight
}

func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

// RenderBundle draws the three charts and the ranking table.
func (r *Renderer) RenderBundle(b Bundle) {
	r.surface.AttachChart(RegionEnrollment, BuildEnrollmentChart(head(b.Enrollment, EnrollmentLimit)))
	r.surface.AttachChart(RegionOutcomes, BuildOutcomesChart(b.Outcomes))
	r.surface.AttachChart(RegionAverages, BuildAveragesChart(head(b.CourseStats, AveragesLimit)))
	r.surface.SetHTML(RegionTopStudents, BuildRanking(b.TopStudents))
}

// RenderError replaces the ranking with the error placard. Charts are left as they are.
func (r *Renderer) RenderError() {
	r.surface.SetHTML(RegionTopStudents, ErrorPlacard())
}

// SetLoading dims the display regions when a load starts, and restores them once the last load in flight ends.
func (r *Renderer) SetLoading(loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if loading {
		r.loading++
	} else if r.loading > 0 {
		r.loading--
	}
	opacity := ui.OpacityNormal
	if r.loading > 0 {
		opacity = ui.OpacityDimmed
	}
	for _, id := range DisplayRegions() {
		r.surface.SetOpacity(id, opacity)
	}
}
