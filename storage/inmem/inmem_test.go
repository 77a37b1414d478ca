package inmemdb

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/report"
	"github.com/academia/dashboard/tests"
)

var ctx = context.Background()

func setup(t *testing.T) (*DB, testutil.Dataset) {
	db := Open(func() time.Time { return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC) })
	return db, testutil.Seed(t, db)
}

func TestDB_Courses(t *testing.T) {
	db, data := setup(t)

	courses, err := db.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 3)

	physics := courses[0]
	assert.Equal(t, data.Physics.ID, physics.ID)
	assert.Equal(t, 2, physics.Students)
	assert.Equal(t, 2, physics.Activities)
	assert.Equal(t, null.Float64From(3.5), physics.Average)
	assert.Equal(t, null.StringFrom(defaultTeacher), physics.TeacherName)
	assert.False(t, courses[1].Average.Valid, "no graded students")

	updated, err := db.UpdateCourse(ctx, physics.ID, academic.CourseInput{Name: "Física I", Code: "FIS101", Status: academic.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, "Física I", updated.Name)
	assert.False(t, updated.TeacherID.Valid)

	_, err = db.UpdateCourse(ctx, 99, academic.CourseInput{})
	assert.ErrorIs(t, err, academic.ErrNotFound)

	require.NoError(t, db.DeleteCourse(ctx, physics.ID))
	assert.ErrorIs(t, db.DeleteCourse(ctx, physics.ID), academic.ErrNotFound)

	ana, err := db.GetStudent(ctx, data.Ana.ID)
	require.NoError(t, err)
	assert.True(t, ana.CourseID.Valid, "students keep their dangling course id")
	assert.False(t, ana.CourseName.Valid)
}

func TestDB_Students(t *testing.T) {
	db, data := setup(t)

	assert.Equal(t, academic.OutcomeApproved, data.Ana.Outcome)
	assert.Equal(t, academic.OutcomeFailed, data.Luis.Outcome)
	assert.Equal(t, academic.OutcomeUngraded, data.Marta.Outcome)
	assert.Equal(t, academic.OutcomeApproved, data.Pedro.Outcome, "3.0 passes")
	assert.Equal(t, null.StringFrom("FIS101"), data.Ana.CourseCode)

	s, err := db.UpdateStudent(ctx, data.Marta.ID, academic.StudentInput{Name: "Marta", FinalScore: academic.NewScore(3.96)})
	require.NoError(t, err)
	f, ok := s.FinalScore.Float()
	require.True(t, ok)
	assert.Equal(t, 4.0, f, "scores keep one decimal")
	assert.False(t, s.CourseID.Valid)

	require.NoError(t, db.DeleteStudent(ctx, data.Luis.ID))
	_, err = db.GetStudent(ctx, data.Luis.ID)
	assert.ErrorIs(t, err, academic.ErrNotFound)

	students, err := db.ListStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 3)
}

func TestDB_Activities(t *testing.T) {
	db, data := setup(t)

	all, err := db.ListActivities(ctx, academic.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{data.Exam.ID, data.Lab.ID, data.Essay.ID}, []int{all[0].ID, all[1].ID, all[2].ID}, "latest due date first")

	physics, err := db.ListActivities(ctx, academic.ActivityFilter{CourseID: null.IntFrom(data.Physics.ID)})
	require.NoError(t, err)
	assert.Len(t, physics, 2)

	a, err := db.UpdateActivity(ctx, data.Essay.ID, academic.ActivityInput{Name: "Ensayo final", Type: "Trabajo", CourseID: null.IntFrom(data.Calculus.ID), Weight: 40, Status: academic.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, null.IntFrom(40), a.Weight)
	assert.Equal(t, null.StringFrom("Cálculo"), a.CourseName)

	require.NoError(t, db.DeleteActivity(ctx, data.Lab.ID))
	_, err = db.GetActivity(ctx, data.Lab.ID)
	assert.ErrorIs(t, err, academic.ErrNotFound)
}

func TestDB_Reports(t *testing.T) {
	db, data := setup(t)

	summary, err := db.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, report.SummaryView{
		ActiveCourses:   "2",
		TotalStudents:   "4",
		TotalActivities: "3",
		OverallAverage:  "3.33",
	}, report.NewSummaryView(summary))

	stats, err := db.CourseStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2, "active courses only")
	assert.Equal(t, data.Physics.ID, stats[0].ID)
	assert.Equal(t, data.Calculus.ID, stats[1].ID)
	assert.False(t, stats[1].Average.Valid)

	enrollment, err := db.Enrollment(ctx)
	require.NoError(t, err)
	assert.Equal(t, []report.EnrollmentCount{{Course: "Física", Count: 2}, {Course: "Cálculo", Count: 1}}, enrollment)

	outcomes, err := db.Outcomes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []report.OutcomeCount{
		{Outcome: report.OutcomesApproved, Count: 2},
		{Outcome: report.OutcomesFailed, Count: 1},
		{Outcome: report.OutcomesUngraded, Count: 1},
	}, outcomes)

	top, err := db.TopStudents(ctx)
	require.NoError(t, err)
	require.Len(t, top, 3, "ungraded students are not ranked")
	assert.Equal(t, "Ana", top[0].Student)
	assert.Equal(t, "Pedro", top[1].Student)
	assert.Equal(t, "Historia", top[1].Course)

	pending, err := db.PendingActivities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []report.PendingActivities{{Course: "Física", Pending: 1}}, pending)

	monthly, err := db.MonthlyAverages(ctx)
	require.NoError(t, err)
	require.Len(t, monthly, 2)
	assert.Equal(t, "2024-03", monthly[0].Month)
	assert.Equal(t, "2024-04", monthly[1].Month)
}

func TestDB_TopStudentsLimit(t *testing.T) {
	db := Open(nil)
	c := testutil.CreateCourse(t, db, "Física", "FIS101", academic.StatusActive)
	for i := 0; i < 15; i++ {
		testutil.CreateStudent(t, db, "E", c.ID, float64(i)/3)
	}

	top, err := db.TopStudents(ctx)
	require.NoError(t, err)
	require.Len(t, top, 10)
	first, _ := top[0].Average.Float()
	last, _ := top[9].Average.Float()
	assert.Greater(t, first, last)
}

func TestDB_Export(t *testing.T) {
	db, data := setup(t)

	tests := []struct {
		name     string
		req      report.ExportRequest
		wantRows int
	}{
		{name: "students", req: report.ExportRequest{Kind: report.ExportStudents}, wantRows: 4},
		{name: "students of a course", req: report.ExportRequest{Kind: report.ExportStudents, CourseID: null.IntFrom(data.Physics.ID)}, wantRows: 2},
		{name: "courses", req: report.ExportRequest{Kind: report.ExportCourses}, wantRows: 3},
		{name: "activities", req: report.ExportRequest{Kind: report.ExportActivities}, wantRows: 3},
		{name: "full report", req: report.ExportRequest{Kind: report.ExportFull}, wantRows: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, err := db.Export(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, "reporte_"+tt.req.Kind+"_20240315_093000.csv", exp.Filename)
			assert.Equal(t, csvContentType, exp.ContentType)

			r := csv.NewReader(bytes.NewReader(exp.Body))
			r.FieldsPerRecord = -1
			records, err := r.ReadAll()
			require.NoError(t, err)
			// header + rows + footer (the blank line is skipped by the reader)
			require.Len(t, records, 1+tt.wantRows+2)
			assert.Equal(t, []string{"Total de registros:", strconv.Itoa(tt.wantRows)}, records[len(records)-1])
		})
	}

	_, err := db.Export(ctx, report.ExportRequest{Kind: "notas"})
	assert.Error(t, err)
}
