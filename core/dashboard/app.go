// Package dashboard wires the view surface, the router, the CRUD managers and the reports loader
// into one application state.
package dashboard

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/academia/dashboard/core"
	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/nav"
	"github.com/academia/dashboard/core/report"
	"github.com/academia/dashboard/core/ui"
)

// List regions
const (
	RegionCourseTable   = "course-table"
	RegionCourseCards   = "course-cards"
	RegionStudentTable  = "student-table"
	RegionActivityTable = "activity-table"
)

type (
	Deps struct {
		Academic academic.Gateway
		Reports  report.Gateway
		Exporter report.Exporter
		Validate *validator.Validate
		Log      core.Logger
		Metrics  report.Metrics
		CacheTTL time.Duration
		Now      func() time.Time // optional
	}

	App struct {
		Page       *ui.Page
		Router     *nav.Router
		Courses    *academic.CourseManager
		Students   *academic.StudentManager
		Activities *academic.ActivityManager
		Aggregator *report.Aggregator
		Summary    *report.SummaryRefresher
		Reports    *report.Loader
		Exporter   report.Exporter
		Cache      *report.Cache

		log core.Logger
	}
)

func New(d Deps) *App {
	page := ui.NewPage()
	cache := report.NewCache(d.CacheTTL, d.Now)
	agg := report.NewAggregator(d.Reports, cache, d.Metrics)
	summary := report.NewSummaryRefresher(d.Reports, page)

	app := &App{
		Page:       page,
		Router:     nav.NewRouter(),
		Courses:    academic.NewCourseManager(d.Academic, d.Validate),
		Students:   academic.NewStudentManager(d.Academic, d.Academic, d.Validate),
		Activities: academic.NewActivityManager(d.Academic, d.Academic, d.Validate),
		Aggregator: agg,
		Summary:    summary,
		Reports:    report.NewLoader(agg, report.NewRenderer(page), summary, d.Log),
		Exporter:   d.Exporter,
		Cache:      cache,
		log:        d.Log,
	}
	app.registerPages()

	// list refresh + summary refresh after every successful mutation
	app.Courses.OnChange(func(ctx context.Context) {
		app.refreshCourses(ctx)
		app.refreshSummary(ctx)
	})
	app.Students.OnChange(func(ctx context.Context) {
		app.refreshStudents(ctx)
		app.refreshSummary(ctx)
	})
	app.Activities.OnChange(func(ctx context.Context) {
		app.refreshActivities(ctx, academic.ActivityFilter{})
		app.refreshSummary(ctx)
	})
	return app
}

// Regions returns the regions shown by `page`.
func Regions(page string) []string {
	switch page {
	case nav.PageDashboard:
		return append(report.HomeSlots().IDs(), RegionCourseTable)
	case nav.PageCourses:
		return []string{RegionCourseCards, RegionCourseTable}
	case nav.PageStudents:
		return []string{RegionStudentTable}
	case nav.PageActivities:
		return []string{RegionActivityTable}
	case nav.PageReports:
		return append(report.DisplayRegions(), report.ReportSlots().IDs()...)
	}
	return nil
}

func (app *App) registerPages() {
	app.Router.Register(nav.PageDashboard, nav.Page{OnEnter: app.enter(nav.PageDashboard, func(ctx context.Context) error {
		if _, err := app.Summary.Refresh(ctx, report.HomeSlots()); err != nil {
			return err
		}
		return app.refreshCourses(ctx)
	})})
	app.Router.Register(nav.PageCourses, nav.Page{OnEnter: app.enter(nav.PageCourses, app.refreshCourses)})
	app.Router.Register(nav.PageStudents, nav.Page{OnEnter: app.enter(nav.PageStudents, app.refreshStudents)})
	app.Router.Register(nav.PageActivities, nav.Page{OnEnter: app.enter(nav.PageActivities, func(ctx context.Context) error {
		return app.refreshActivities(ctx, academic.ActivityFilter{})
	})})
	app.Router.Register(nav.PageReports, nav.Page{
		OnEnter: func(act *nav.Activation) error {
			app.Page.Mount(Regions(nav.PageReports)...)
			return app.Reports.Load(act)
		},
		OnLeave: func() {
			app.Page.DestroyCharts()
			app.Page.Unmount(Regions(nav.PageReports)...)
		},
	})
}

// enter mounts the page regions and runs `load` unless the activation is already stale.
func (app *App) enter(page string, load func(ctx context.Context) error) nav.EnterFunc {
	return func(act *nav.Activation) error {
		app.Page.Mount(Regions(page)...)
		if !act.Current() {
			return nil
		}
		return load(act.Context())
	}
}

// Open activates `page` and returns its regions. When the page hook fails the regions are still returned,
// along with the error, so callers can show what was rendered (e.g. the reports error placard).
func (app *App) Open(ctx context.Context, page string) (map[string]ui.RegionState, error) {
	act, err := app.Router.Activate(ctx, page)
	regions := Regions(page)
	if act == nil || len(regions) == 0 {
		return map[string]ui.RegionState{}, err
	}
	return app.Page.Snapshot(regions...), err
}

func (app *App) refreshSummary(ctx context.Context) {
	slots := report.HomeSlots()
	if page, _ := app.Router.Current(); page == nav.PageReports {
		slots = report.ReportSlots()
	}
	if _, err := app.Summary.Refresh(ctx, slots); err != nil {
		app.log.Error("refreshing summary", err)
	}
}

func (app *App) refreshCourses(ctx context.Context) error {
	rows, err := app.Courses.List(ctx, "")
	if err != nil {
		app.log.Error("refreshing courses", err)
		return err
	}
	app.Page.SetData(RegionCourseTable, rows)

	if app.Page.Has(RegionCourseCards) {
		cards, err := app.Courses.Cards(ctx)
		if err != nil {
			app.log.Error("refreshing course cards", err)
			return err
		}
		app.Page.SetData(RegionCourseCards, cards)
	}
	return nil
}

func (app *App) refreshStudents(ctx context.Context) error {
	rows, err := app.Students.List(ctx, "")
	if err != nil {
		app.log.Error("refreshing students", err)
		return err
	}
	app.Page.SetData(RegionStudentTable, rows)
	return nil
}

func (app *App) refreshActivities(ctx context.Context, filter academic.ActivityFilter) error {
	rows, err := app.Activities.List(ctx, filter, "")
	if err != nil {
		app.log.Error("refreshing activities", err)
		return err
	}
	app.Page.SetData(RegionActivityTable, rows)
	return nil
}
