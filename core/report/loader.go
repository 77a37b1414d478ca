package report

import (
	"context"

	"github.com/academia/dashboard/core"
)

// Activation tells a loader whether its page is still the active one.
type Activation interface {
	Context() context.Context
	Current() bool
}

// Loader runs the reports page: cache or fetch, then render when still current.
type Loader struct {
	agg      *Aggregator
	renderer *Renderer
	summary  *SummaryRefresher
	log      core.Logger
}

func NewLoader(agg *Aggregator, renderer *Renderer, summary *SummaryRefresher, log core.Logger) *Loader {
	return &Loader{agg: agg, renderer: renderer, summary: summary, log: log}
}

// Load dims the display regions for its duration. They are restored once no other load is in flight.
// On failure the cache is untouched, the ranking shows the error placard and the charts keep their previous state.
// A stale activation renders nothing; a bundle it fetched is still cached.
func (l *Loader) Load(act Activation) error {
	ctx := act.Context()

	l.renderer.SetLoading(true)
	defer l.renderer.SetLoading(false)

	b, _, err := l.agg.Bundle(ctx)
	if err != nil {
		l.log.Error("loading reports", err)
		if act.Current() {
			l.renderer.RenderError()
		}
		return err
	}
	if !act.Current() {
		return nil
	}

	l.renderer.RenderBundle(b)
	if _, err := l.summary.Refresh(ctx, ReportSlots()); err != nil {
		l.log.Error("refreshing report summary", err)
	}
	return nil
}
