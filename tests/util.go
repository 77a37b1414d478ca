package testutil

import (
	"context"
	"testing"

	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core/academic"
)

func CreateCourse(t *testing.T, gw academic.CourseGateway, name, code, status string) academic.Course {
	t.Helper()
	c, err := gw.CreateCourse(context.Background(), academic.CourseInput{
		Name:      name,
		Code:      code,
		Status:    status,
		TeacherID: academic.DefaultTeacherID,
	})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return c
}

// CreateStudent enrolls a student in `courseID` (0 = no course). A negative score leaves the student ungraded.
func CreateStudent(t *testing.T, gw academic.StudentGateway, name string, courseID int, score float64) academic.Student {
	t.Helper()
	in := academic.StudentInput{Name: name, CourseID: null.NewInt(courseID, courseID > 0)}
	if score >= 0 {
		in.FinalScore = academic.NewScore(score)
	}
	s, err := gw.CreateStudent(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}

// CreateActivity adds an activity to `courseID`. An empty dueDate leaves it unset.
func CreateActivity(t *testing.T, gw academic.ActivityGateway, name string, courseID int, dueDate, status string) academic.Activity {
	t.Helper()
	a, err := gw.CreateActivity(context.Background(), academic.ActivityInput{
		Name:     name,
		Type:     academic.ActivityTypes[0],
		CourseID: null.IntFrom(courseID),
		DueDate:  null.NewString(dueDate, dueDate != ""),
		Weight:   20,
		Status:   status,
	})
	if err != nil {
		t.Fatalf("CreateActivity() failed: %v", err)
	}
	return a
}

// Dataset is the standard set of records created by Seed.
type Dataset struct {
	Physics, Calculus, Archived academic.Course
	Ana, Luis, Marta, Pedro     academic.Student
	Lab, Exam, Essay            academic.Activity
}

// Seed creates two active courses and one pending course, four students and three activities.
//
//	Física (FIS101, Activo): Ana 4.5, Luis 2.5; Lab 2024-03-10 (Activo), Exam 2024-04-20 (Pendiente)
//	Cálculo (MAT201, Activo): Marta ungraded; Essay without due date (Activo)
//	Historia (HIS100, Pendiente): Pedro 3.0
func Seed(t *testing.T, gw academic.Gateway) Dataset {
	t.Helper()
	var d Dataset
	d.Physics = CreateCourse(t, gw, "Física", "FIS101", academic.StatusActive)
	d.Calculus = CreateCourse(t, gw, "Cálculo", "MAT201", academic.StatusActive)
	d.Archived = CreateCourse(t, gw, "Historia", "HIS100", academic.StatusPending)

	d.Ana = CreateStudent(t, gw, "Ana", d.Physics.ID, 4.5)
	d.Luis = CreateStudent(t, gw, "Luis", d.Physics.ID, 2.5)
	d.Marta = CreateStudent(t, gw, "Marta", d.Calculus.ID, -1)
	d.Pedro = CreateStudent(t, gw, "Pedro", d.Archived.ID, 3)

	d.Lab = CreateActivity(t, gw, "Laboratorio", d.Physics.ID, "2024-03-10", academic.StatusActive)
	d.Exam = CreateActivity(t, gw, "Parcial", d.Physics.ID, "2024-04-20", academic.StatusPending)
	d.Essay = CreateActivity(t, gw, "Ensayo", d.Calculus.ID, "", academic.StatusActive)
	return d
}
