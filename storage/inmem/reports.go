package inmemdb

import (
	"context"
	"sort"

	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core"
	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/report"
)

const (
	topLimit        = 10
	enrollmentLimit = 10
	noCourse        = "Sin curso"
)

var _ report.Gateway = (*DB)(nil)

// must be called with the lock held
func (db *DB) activeCourses() []*course {
	var active []*course
	for _, id := range db.courses.ids() {
		if c := db.courses.rows[id]; c.status == academic.StatusActive {
			active = append(active, c)
		}
	}
	return active
}

// must be called with the lock held
func (db *DB) gradedAverage() (float64, bool) {
	var sum float64
	var n int
	for _, s := range db.students.rows {
		if s.finalScore.Valid {
			sum += s.finalScore.Float64
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return round(sum/float64(n), 2), true
}

func (db *DB) Summary(context.Context) (report.Summary, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	avg, _ := db.gradedAverage()
	return report.Summary{
		ActiveCourses:   null.IntFrom(len(db.activeCourses())),
		TotalStudents:   null.IntFrom(len(db.students.rows)),
		TotalActivities: null.IntFrom(len(db.activities.rows)),
		OverallAverage:  academic.NewScore(avg),
	}, nil
}

// CourseStats covers active courses only, best average first; courses without grades count as 0.
func (db *DB) CourseStats(context.Context) ([]report.CourseStats, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	stats := make([]report.CourseStats, 0)
	for _, c := range db.activeCourses() {
		students, activities, avg := db.courseStats(c.id)
		stats = append(stats, report.CourseStats{
			ID:         c.id,
			Name:       c.name,
			Code:       c.code,
			Students:   students,
			Activities: activities,
			Average:    academic.Score{Float64: avg},
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		ai, _ := stats[i].Average.Float()
		aj, _ := stats[j].Average.Float()
		return ai > aj
	})
	return stats, nil
}

// Enrollment returns the 10 active courses with the most students.
func (db *DB) Enrollment(context.Context) ([]report.EnrollmentCount, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	counts := make([]report.EnrollmentCount, 0)
	for _, c := range db.activeCourses() {
		students, _, _ := db.courseStats(c.id)
		counts = append(counts, report.EnrollmentCount{Course: c.name, Count: students})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if len(counts) > enrollmentLimit {
		counts = counts[:enrollmentLimit]
	}
	return counts, nil
}

func (db *DB) Outcomes(context.Context) ([]report.OutcomeCount, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var approved, failed, ungraded int
	for _, s := range db.students.rows {
		switch academic.Outcome(academic.Score{Float64: s.finalScore}) {
		case academic.OutcomeApproved:
			approved++
		case academic.OutcomeFailed:
			failed++
		default:
			ungraded++
		}
	}
	return []report.OutcomeCount{
		{Outcome: report.OutcomesApproved, Count: approved},
		{Outcome: report.OutcomesFailed, Count: failed},
		{Outcome: report.OutcomesUngraded, Count: ungraded},
	}, nil
}

// TopStudents returns the 10 best graded students.
func (db *DB) TopStudents(context.Context) ([]report.TopStudent, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var graded []*student
	for _, id := range db.students.ids() {
		if s := db.students.rows[id]; s.finalScore.Valid {
			graded = append(graded, s)
		}
	}
	sort.SliceStable(graded, func(i, j int) bool { return graded[i].finalScore.Float64 > graded[j].finalScore.Float64 })
	if len(graded) > topLimit {
		graded = graded[:topLimit]
	}

	top := make([]report.TopStudent, 0, len(graded))
	for _, s := range graded {
		name, _ := db.courseRef(s.courseID)
		top = append(top, report.TopStudent{
			Student: s.name,
			Course:  orNoCourse(name),
			Average: academic.NewScore(s.finalScore.Float64),
		})
	}
	return top, nil
}

// PendingActivities counts, per course, the activities still pending or due in the future.
func (db *DB) PendingActivities(context.Context) ([]report.PendingActivities, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	today := db.now().Format(core.DateLayout)
	counts := make(map[string]int)
	var order []string
	for _, id := range db.activities.ids() {
		a := db.activities.rows[id]
		if a.status != academic.StatusPending && !(a.dueDate.Valid && a.dueDate.String > today) {
			continue
		}
		name, _ := db.courseRef(a.courseID)
		course := orNoCourse(name)
		if _, ok := counts[course]; !ok {
			order = append(order, course)
		}
		counts[course]++
	}

	pending := make([]report.PendingActivities, 0, len(order))
	for _, course := range order {
		pending = append(pending, report.PendingActivities{Course: course, Pending: counts[course]})
	}
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].Pending > pending[j].Pending })
	return pending, nil
}

// MonthlyAverages lists every month holding a due date, each with the overall graded average.
func (db *DB) MonthlyAverages(context.Context) ([]report.MonthlyAverage, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	months := make(map[string]bool)
	for _, a := range db.activities.rows {
		if a.dueDate.Valid && len(a.dueDate.String) >= len("2006-01") {
			months[a.dueDate.String[:len("2006-01")]] = true
		}
	}
	avg, _ := db.gradedAverage()

	monthly := make([]report.MonthlyAverage, 0, len(months))
	for m := range months {
		monthly = append(monthly, report.MonthlyAverage{Month: m, Average: academic.NewScore(avg)})
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })
	return monthly, nil
}

func orNoCourse(name null.String) string {
	if name.Valid && name.String != "" {
		return name.String
	}
	return noCourse
}
