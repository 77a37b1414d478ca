package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/ui"
)

func TestNewSummaryView(t *testing.T) {
	tests := []struct {
		name string
		in   Summary
		want SummaryView
	}{
		{
			name: "missing values",
			in:   Summary{},
			want: SummaryView{ActiveCourses: "0", TotalStudents: "0", TotalActivities: "0", OverallAverage: "0.0"},
		},
		{
			name: "zero average",
			in:   Summary{ActiveCourses: null.IntFrom(2), OverallAverage: academic.NewScore(0)},
			want: SummaryView{ActiveCourses: "2", TotalStudents: "0", TotalActivities: "0", OverallAverage: "0.0"},
		},
		{
			name: "values",
			in: Summary{
				ActiveCourses:   null.IntFrom(4),
				TotalStudents:   null.IntFrom(120),
				TotalActivities: null.IntFrom(33),
				OverallAverage:  academic.NewScore(3.47),
			},
			want: SummaryView{ActiveCourses: "4", TotalStudents: "120", TotalActivities: "33", OverallAverage: "3.47"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSummaryView(tt.in))
		})
	}
}

func TestSummaryRefresher_Refresh(t *testing.T) {
	gw := newFakeGateway()
	gw.general = Summary{ActiveCourses: null.IntFrom(3), TotalStudents: null.IntFrom(40)}

	page := ui.NewPage()
	slots := HomeSlots()
	page.Mount(slots.IDs()...)
	r := NewSummaryRefresher(gw, page)

	for i := 0; i < 2; i++ {
		_, err := r.Refresh(context.Background(), slots)
		require.NoError(t, err)
	}
	assert.EqualValues(t, 2, gw.summary.Load(), "the summary is never cached")

	snap := page.Snapshot()
	assert.Equal(t, "3", snap[slots.Courses].Text)
	assert.Equal(t, "40", snap[slots.Students].Text)
	assert.Equal(t, "0", snap[slots.Activities].Text)
	assert.Equal(t, "0.0", snap[slots.Average].Text)

	gw.setFailOn(ActionGeneral)
	_, err := r.Refresh(context.Background(), slots)
	require.Error(t, err)
	assert.Equal(t, "3", page.Snapshot()[slots.Courses].Text)
}
