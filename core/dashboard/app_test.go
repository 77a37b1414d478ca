package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core"
	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/nav"
	"github.com/academia/dashboard/core/report"
	inmemdb "github.com/academia/dashboard/storage/inmem"
	testutil "github.com/academia/dashboard/tests"
)

var ctx = context.Background()

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T) (*App, testutil.Dataset) {
	now := func() time.Time { return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC) }
	db := inmemdb.Open(now)
	d := testutil.Seed(t, db)

	validate, translator := core.NewValidator()
	academic.InitValidators(validate, translator)

	app := New(Deps{
		Academic: db,
		Reports:  db,
		Exporter: db,
		Validate: validate,
		Log:      nopLogger{},
		Now:      now,
	})
	return app, d
}

func TestApp_OpenDashboard(t *testing.T) {
	app, _ := setup(t)

	regions, err := app.Open(ctx, nav.PageDashboard)
	require.NoError(t, err)

	slots := report.HomeSlots()
	assert.Equal(t, "2", regions[slots.Courses].Text)
	assert.Equal(t, "4", regions[slots.Students].Text)
	assert.Equal(t, "3", regions[slots.Activities].Text)
	assert.Equal(t, "3.33", regions[slots.Average].Text)

	rows, ok := regions[RegionCourseTable].Data.([]academic.CourseRow)
	require.True(t, ok)
	assert.Len(t, rows, 3)
}

func TestApp_OpenReports(t *testing.T) {
	app, _ := setup(t)

	regions, err := app.Open(ctx, nav.PageReports)
	require.NoError(t, err)

	assert.Equal(t, 3, app.Page.LiveCharts())
	assert.Contains(t, regions[report.RegionTopStudents].HTML, "Ana")
	assert.Equal(t, "2", regions[report.ReportSlots().Courses].Text)
	for _, id := range report.DisplayRegions() {
		assert.Equal(t, 1.0, regions[id].Opacity, id)
	}
	_, cached := app.Cache.Get()
	assert.True(t, cached)

	// leaving the reports page releases its charts
	regions, err = app.Open(ctx, nav.PageCourses)
	require.NoError(t, err)
	assert.Equal(t, 0, app.Page.LiveCharts())
	assert.False(t, app.Page.Has(report.RegionEnrollment))
	assert.NotNil(t, regions[RegionCourseCards].Data)
}

func TestApp_ReopenReports(t *testing.T) {
	app, _ := setup(t)

	for i := 0; i < 3; i++ {
		_, err := app.Open(ctx, nav.PageReports)
		require.NoError(t, err)
		_, err = app.Open(ctx, nav.PageDashboard)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, app.Page.LiveCharts())
}

func TestApp_MutationRefreshesViews(t *testing.T) {
	app, d := setup(t)

	_, err := app.Open(ctx, nav.PageDashboard)
	require.NoError(t, err)
	_, err = app.Open(ctx, nav.PageStudents)
	require.NoError(t, err)

	_, created, err := app.Students.Save(ctx, academic.StudentInput{
		Name:       "Eva",
		CourseID:   null.IntFrom(d.Physics.ID),
		FinalScore: academic.NewScore(4),
	})
	require.NoError(t, err)
	assert.True(t, created)

	st, ok := app.Page.Region(RegionStudentTable)
	require.True(t, ok)
	assert.Len(t, st.Data, 5)

	total, ok := app.Page.Region(report.HomeSlots().Students)
	require.True(t, ok)
	assert.Equal(t, "5", total.Text)
}

func TestApp_OpenUnknownAndLogout(t *testing.T) {
	app, _ := setup(t)

	_, err := app.Open(ctx, "settings")
	assert.True(t, errors.Is(err, nav.ErrUnknownPage))

	regions, err := app.Open(ctx, nav.PageLogout)
	require.NoError(t, err)
	assert.Empty(t, regions)
}
