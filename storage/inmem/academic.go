package inmemdb

import (
	"context"
	"sort"

	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core/academic"
)

var _ academic.Gateway = (*DB)(nil)

// must be called with the lock held
func (db *DB) courseRecord(c *course) academic.Course {
	students, activities, avg := db.courseStats(c.id)
	rec := academic.Course{
		ID:          c.id,
		Name:        c.name,
		Code:        c.code,
		Description: c.description,
		Status:      c.status,
		TeacherID:   c.teacherID,
		Students:    students,
		Activities:  activities,
		Average:     avg,
	}
	if c.teacherID.Valid {
		if name, ok := db.teachers[c.teacherID.Int]; ok {
			rec.TeacherName = null.StringFrom(name)
		}
	}
	return rec
}

// must be called with the lock held
func (db *DB) studentRecord(s *student) academic.Student {
	name, code := db.courseRef(s.courseID)
	score := academic.Score{Float64: s.finalScore}
	return academic.Student{
		ID:         s.id,
		Name:       s.name,
		CourseID:   s.courseID,
		CourseName: name,
		CourseCode: code,
		FinalScore: score,
		Outcome:    academic.Outcome(score),
	}
}

// must be called with the lock held
func (db *DB) activityRecord(a *activity) academic.Activity {
	name, code := db.courseRef(a.courseID)
	return academic.Activity{
		ID:         a.id,
		Name:       a.name,
		Type:       a.kind,
		CourseID:   a.courseID,
		CourseName: name,
		CourseCode: code,
		DueDate:    a.dueDate,
		Weight:     a.weight,
		Status:     a.status,
	}
}

func (db *DB) ListCourses(context.Context) ([]academic.Course, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	courses := make([]academic.Course, 0, len(db.courses.rows))
	for _, id := range db.courses.ids() {
		courses = append(courses, db.courseRecord(db.courses.rows[id]))
	}
	return courses, nil
}

func (db *DB) CreateCourse(_ context.Context, in academic.CourseInput) (academic.Course, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	c := &course{}
	setCourse(c, in)
	c.id = db.courses.insert(c)
	return db.courseRecord(c), nil
}

func (db *DB) UpdateCourse(_ context.Context, id int, in academic.CourseInput) (academic.Course, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, ok := db.courses.rows[id]
	if !ok {
		return academic.Course{}, academic.ErrNotFound
	}
	setCourse(c, in)
	return db.courseRecord(c), nil
}

// DeleteCourse leaves the students and activities of the course in place, pointing at nothing.
func (db *DB) DeleteCourse(_ context.Context, id int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.courses.rows[id]; !ok {
		return academic.ErrNotFound
	}
	delete(db.courses.rows, id)
	return nil
}

func setCourse(c *course, in academic.CourseInput) {
	c.name = in.Name
	c.code = in.Code
	c.description = null.NewString(in.Description, in.Description != "")
	c.status = in.Status
	c.teacherID = null.NewInt(in.TeacherID, in.TeacherID > 0)
}

func (db *DB) ListStudents(context.Context) ([]academic.Student, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	students := make([]academic.Student, 0, len(db.students.rows))
	for _, id := range db.students.ids() {
		students = append(students, db.studentRecord(db.students.rows[id]))
	}
	return students, nil
}

func (db *DB) GetStudent(_ context.Context, id int) (academic.Student, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	s, ok := db.students.rows[id]
	if !ok {
		return academic.Student{}, academic.ErrNotFound
	}
	return db.studentRecord(s), nil
}

func (db *DB) CreateStudent(_ context.Context, in academic.StudentInput) (academic.Student, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s := &student{}
	setStudent(s, in)
	s.id = db.students.insert(s)
	return db.studentRecord(s), nil
}

func (db *DB) UpdateStudent(_ context.Context, id int, in academic.StudentInput) (academic.Student, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, ok := db.students.rows[id]
	if !ok {
		return academic.Student{}, academic.ErrNotFound
	}
	setStudent(s, in)
	return db.studentRecord(s), nil
}

func (db *DB) DeleteStudent(_ context.Context, id int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.students.rows[id]; !ok {
		return academic.ErrNotFound
	}
	delete(db.students.rows, id)
	return nil
}

// setStudent stores the final score with one decimal.
func setStudent(s *student, in academic.StudentInput) {
	s.name = in.Name
	s.courseID = in.CourseID
	s.finalScore = null.Float64{}
	if f, ok := in.FinalScore.Float(); ok {
		s.finalScore = null.Float64From(round(f, 1))
	}
}

// ListActivities returns the latest due dates first; activities without a due date come last.
func (db *DB) ListActivities(_ context.Context, filter academic.ActivityFilter) ([]academic.Activity, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	activities := make([]academic.Activity, 0, len(db.activities.rows))
	for _, id := range db.activities.ids() {
		a := db.activities.rows[id]
		if filter.CourseID.Valid && (!a.courseID.Valid || a.courseID.Int != filter.CourseID.Int) {
			continue
		}
		activities = append(activities, db.activityRecord(a))
	}
	sort.SliceStable(activities, func(i, j int) bool {
		di, dj := activities[i].DueDate, activities[j].DueDate
		if di.Valid != dj.Valid {
			return di.Valid
		}
		return di.String > dj.String
	})
	return activities, nil
}

func (db *DB) GetActivity(_ context.Context, id int) (academic.Activity, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	a, ok := db.activities.rows[id]
	if !ok {
		return academic.Activity{}, academic.ErrNotFound
	}
	return db.activityRecord(a), nil
}

func (db *DB) CreateActivity(_ context.Context, in academic.ActivityInput) (academic.Activity, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	a := &activity{}
	setActivity(a, in)
	a.id = db.activities.insert(a)
	return db.activityRecord(a), nil
}

func (db *DB) UpdateActivity(_ context.Context, id int, in academic.ActivityInput) (academic.Activity, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	a, ok := db.activities.rows[id]
	if !ok {
		return academic.Activity{}, academic.ErrNotFound
	}
	setActivity(a, in)
	return db.activityRecord(a), nil
}

func (db *DB) DeleteActivity(_ context.Context, id int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.activities.rows[id]; !ok {
		return academic.ErrNotFound
	}
	delete(db.activities.rows, id)
	return nil
}

func setActivity(a *activity, in academic.ActivityInput) {
	a.name = in.Name
	a.kind = in.Type
	a.courseID = in.CourseID
	a.dueDate = in.DueDate
	a.weight = null.IntFrom(in.Weight)
	a.status = in.Status
}
