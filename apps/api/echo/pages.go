package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/dashboard"
	"github.com/academia/dashboard/core/nav"
	"github.com/academia/dashboard/core/report"
	"github.com/academia/dashboard/core/ui"
)

type (
	pagesApi struct {
		app     *dashboard.App
		appName string
	}

	pageResponse struct {
		Page    string                    `json:"page"`
		Regions map[string]ui.RegionState `json:"regions"`
		Error   string                    `json:"error,omitempty"`
	}

	homeView struct {
		AppName string
		Summary report.SummaryView
		Courses []academic.CourseRow
	}
)

func registerPagesAPI(e *echo.Echo, app *dashboard.App, appName string) {
	api := pagesApi{app: app, appName: appName}

	e.GET("/", api.home)
	e.GET("/pages/:page", api.open)

	rg := e.Group("/reports")
	rg.GET("", api.reports)
	rg.GET("/pending", api.pending)
	rg.GET("/monthly", api.monthly)
}

// Handlers

func (api *pagesApi) home(ctx echo.Context) error {
	regions, err := api.app.Open(ctx.Request().Context(), nav.PageDashboard)
	if err != nil {
		return errors.Wrap(err, "opening dashboard")
	}

	slots := report.HomeSlots()
	view := homeView{
		AppName: api.appName,
		Summary: report.SummaryView{
			ActiveCourses:   regions[slots.Courses].Text,
			TotalStudents:   regions[slots.Students].Text,
			TotalActivities: regions[slots.Activities].Text,
			OverallAverage:  regions[slots.Average].Text,
		},
	}
	view.Courses, _ = regions[dashboard.RegionCourseTable].Data.([]academic.CourseRow)

	return ctx.Render(http.StatusOK, "home.gohtml", view)
}

func (api *pagesApi) open(ctx echo.Context) error {
	return api.activate(ctx, ctx.Param("page"))
}

func (api *pagesApi) reports(ctx echo.Context) error {
	return api.activate(ctx, nav.PageReports)
}

// activate opens a page. A failed reports load still answers 200: its regions hold the error placard.
func (api *pagesApi) activate(ctx echo.Context, page string) error {
	regions, err := api.app.Open(ctx.Request().Context(), page)
	res := pageResponse{Page: page, Regions: regions}
	if err != nil {
		if page != nav.PageReports || errors.Is(err, nav.ErrSuperseded) {
			return errors.Wrapf(err, "opening %s", page)
		}
		res.Error = report.LoadFailure
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *pagesApi) pending(ctx echo.Context) error {
	data, err := api.app.Aggregator.PendingActivities(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying pending activities")
	}
	return ctx.JSON(http.StatusOK, data)
}

func (api *pagesApi) monthly(ctx echo.Context) error {
	data, err := api.app.Aggregator.MonthlyAverages(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying monthly averages")
	}
	return ctx.JSON(http.StatusOK, data)
}
