package report

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const bundleKey = "bundle"

// Metrics records cache and fetch statistics. See services/metrics.
type Metrics interface {
	CacheLookup(hit bool)
	ObserveFetch(d time.Duration, err error)
}

type noopMetrics struct{}

func (noopMetrics) CacheLookup(bool)                   {}
func (noopMetrics) ObserveFetch(time.Duration, error) {}

// Aggregator fetches the four report slices as one Bundle.
// Loads issued while a fetch is in flight share that fetch.
type Aggregator struct {
	gw      Gateway
	cache   *Cache
	metrics Metrics
	group   singleflight.Group
}

func NewAggregator(gw Gateway, cache *Cache, metrics Metrics) *Aggregator {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Aggregator{gw: gw, cache: cache, metrics: metrics}
}

// Bundle returns the cached bundle when it is fresh, otherwise it fetches a new one.
// The second return value reports whether the bundle came from the cache.
func (a *Aggregator) Bundle(ctx context.Context) (Bundle, bool, error) {
	if b, ok := a.cache.Get(); ok {
		a.metrics.CacheLookup(true)
		return b, true, nil
	}
	a.metrics.CacheLookup(false)

	b, err := a.Fetch(ctx)
	return b, false, err
}

// Fetch bypasses the cache. On success the new bundle replaces the cached one; on failure the cache is left untouched.
// The shared fetch outlives a cancelled caller: its result is still cached.
func (a *Aggregator) Fetch(ctx context.Context) (Bundle, error) {
	ch := a.group.DoChan(bundleKey, func() (interface{}, error) {
		return a.fetch(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return Bundle{}, res.Err
		}
		return res.Val.(Bundle), nil
	case <-ctx.Done():
		return Bundle{}, ctx.Err()
	}
}

func (a *Aggregator) fetch(ctx context.Context) (b Bundle, err error) {
	start := time.Now()
	defer func() { a.metrics.ObserveFetch(time.Since(start), err) }()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		b.Enrollment, err = a.gw.Enrollment(gctx)
		return errors.Wrap(err, ActionEnrollment)
	})
	g.Go(func() (err error) {
		b.Outcomes, err = a.gw.Outcomes(gctx)
		return errors.Wrap(err, ActionOutcomes)
	})
	g.Go(func() (err error) {
		b.CourseStats, err = a.gw.CourseStats(gctx)
		return errors.Wrap(err, ActionCourseStats)
	})
	g.Go(func() (err error) {
		b.TopStudents, err = a.gw.TopStudents(gctx)
		return errors.Wrap(err, ActionTopStudents)
	})
	if err = g.Wait(); err != nil {
		return Bundle{}, errors.Wrap(err, "fetching reports")
	}

	b.FetchedAt = a.cache.Now()
	a.cache.Put(b)
	return b, nil
}

// PendingActivities is not part of the bundle and is never cached.
func (a *Aggregator) PendingActivities(ctx context.Context) ([]PendingActivities, error) {
	data, err := a.gw.PendingActivities(ctx)
	return data, errors.Wrap(err, ActionPendingActivities)
}

// MonthlyAverages is not part of the bundle and is never cached.
func (a *Aggregator) MonthlyAverages(ctx context.Context) ([]MonthlyAverage, error) {
	data, err := a.gw.MonthlyAverages(ctx)
	return data, errors.Wrap(err, ActionMonthlyAverages)
}
