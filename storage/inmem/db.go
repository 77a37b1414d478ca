// Package inmemdb is an in-memory academic backend. It answers the same queries as the REST backend
// and is used for the demo mode and in tests.
package inmemdb

import (
	"math"
	"sync"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core/academic"
)

const defaultTeacher = "Docente"

type (
	DB struct {
		mu  sync.RWMutex
		now func() time.Time

		teachers   map[int]string
		courses    *table[course]
		students   *table[student]
		activities *table[activity]
	}

	table[T any] struct {
		pk   int
		rows map[int]*T
	}

	course struct {
		id          int
		name        string
		code        string
		description null.String
		status      string
		teacherID   null.Int
	}

	student struct {
		id         int
		name       string
		courseID   null.Int
		finalScore null.Float64
	}

	activity struct {
		id       int
		name     string
		kind     string
		courseID null.Int
		dueDate  null.String
		weight   null.Int
		status   string
	}
)

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int]*T)}
}

func (t *table[T]) insert(row *T) int {
	t.pk++
	t.rows[t.pk] = row
	return t.pk
}

// ids returns the primary keys in insertion order.
func (t *table[T]) ids() []int {
	ids := make([]int, 0, len(t.rows))
	for id := 1; id <= t.pk; id++ {
		if _, ok := t.rows[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Open returns an empty backend with the default teacher. A nil `now` uses time.Now.
func Open(now func() time.Time) *DB {
	if now == nil {
		now = time.Now
	}
	return &DB{
		now:        now,
		teachers:   map[int]string{academic.DefaultTeacherID: defaultTeacher},
		courses:    newTable[course](),
		students:   newTable[student](),
		activities: newTable[activity](),
	}
}

// courseRef returns the name and code of course `id`, null when it does not exist.
// Must be called with the lock held.
func (db *DB) courseRef(id null.Int) (null.String, null.String) {
	if !id.Valid {
		return null.String{}, null.String{}
	}
	c, ok := db.courses.rows[id.Int]
	if !ok {
		return null.String{}, null.String{}
	}
	return null.StringFrom(c.name), null.StringFrom(c.code)
}

// courseStats must be called with the lock held.
func (db *DB) courseStats(courseID int) (students, activities int, avg null.Float64) {
	var sum float64
	var graded int
	for _, s := range db.students.rows {
		if !s.courseID.Valid || s.courseID.Int != courseID {
			continue
		}
		students++
		if s.finalScore.Valid {
			sum += s.finalScore.Float64
			graded++
		}
	}
	for _, a := range db.activities.rows {
		if a.courseID.Valid && a.courseID.Int == courseID {
			activities++
		}
	}
	if graded > 0 {
		avg = null.Float64From(round(sum/float64(graded), 2))
	}
	return students, activities, avg
}

func round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}
