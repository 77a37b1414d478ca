package report

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
)

const noAverage = "0.0"

// SummarySlots names the four regions a summary is written to.
type SummarySlots struct {
	Courses    string
	Students   string
	Activities string
	Average    string
}

func (s SummarySlots) IDs() []string {
	return []string{s.Courses, s.Students, s.Activities, s.Average}
}

// ReportSlots are the summary counters of the reports page.
func ReportSlots() SummarySlots {
	return SummarySlots{
		Courses:    "resumen-cursos",
		Students:   "resumen-estudiantes",
		Activities: "resumen-actividades",
		Average:    "resumen-promedio",
	}
}

// HomeSlots are the summary counters of the dashboard home page.
func HomeSlots() SummarySlots {
	return SummarySlots{
		Courses:    "total-cursos",
		Students:   "total-estudiantes",
		Activities: "total-actividades",
		Average:    "promedio-general",
	}
}

// SummaryView is a Summary formatted for display: missing counters are "0", a missing average is "0.0".
type SummaryView struct {
	ActiveCourses   string `json:"cursos_activos"`
	TotalStudents   string `json:"total_estudiantes"`
	TotalActivities string `json:"total_actividades"`
	OverallAverage  string `json:"promedio_general"`
}

func NewSummaryView(s Summary) SummaryView {
	v := SummaryView{
		ActiveCourses:   strconv.Itoa(s.ActiveCourses.Int),
		TotalStudents:   strconv.Itoa(s.TotalStudents.Int),
		TotalActivities: strconv.Itoa(s.TotalActivities.Int),
		OverallAverage:  noAverage,
	}
	if !s.ActiveCourses.Valid {
		v.ActiveCourses = "0"
	}
	if !s.TotalStudents.Valid {
		v.TotalStudents = "0"
	}
	if !s.TotalActivities.Valid {
		v.TotalActivities = "0"
	}
	if avg, ok := s.OverallAverage.Float(); ok && avg != 0 {
		v.OverallAverage = strconv.FormatFloat(avg, 'f', -1, 64)
	}
	return v
}

// SummaryRefresher writes the `general` report into a set of slots. It never caches.
type SummaryRefresher struct {
	gw      Gateway
	surface Surface
}

func NewSummaryRefresher(gw Gateway, surface Surface) *SummaryRefresher {
	return &SummaryRefresher{gw: gw, surface: surface}
}

// Fetch returns the formatted summary without rendering it.
func (r *SummaryRefresher) Fetch(ctx context.Context) (SummaryView, error) {
	s, err := r.gw.Summary(ctx)
	if err != nil {
		return SummaryView{}, errors.Wrap(err, ActionGeneral)
	}
	return NewSummaryView(s), nil
}

// Refresh fetches the summary and writes it into `slots`. Slots left unwritten on failure keep their value.
func (r *SummaryRefresher) Refresh(ctx context.Context, slots SummarySlots) (SummaryView, error) {
	v, err := r.Fetch(ctx)
	if err != nil {
		return SummaryView{}, err
	}
	r.surface.SetText(slots.Courses, v.ActiveCourses)
	r.surface.SetText(slots.Students, v.TotalStudents)
	r.surface.SetText(slots.Activities, v.TotalActivities)
	r.surface.SetText(slots.Average, v.OverallAverage)
	return v, nil
}
