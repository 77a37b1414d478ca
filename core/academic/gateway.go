package academic

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("record not found")

type (
	CourseGateway interface {
		ListCourses(ctx context.Context) ([]Course, error)
		CreateCourse(ctx context.Context, in CourseInput) (Course, error)
		UpdateCourse(ctx context.Context, id int, in CourseInput) (Course, error)
		DeleteCourse(ctx context.Context, id int) error
	}

	StudentGateway interface {
		ListStudents(ctx context.Context) ([]Student, error)
		GetStudent(ctx context.Context, id int) (Student, error)
		CreateStudent(ctx context.Context, in StudentInput) (Student, error)
		UpdateStudent(ctx context.Context, id int, in StudentInput) (Student, error)
		DeleteStudent(ctx context.Context, id int) error
	}

	ActivityGateway interface {
		ListActivities(ctx context.Context, filter ActivityFilter) ([]Activity, error)
		GetActivity(ctx context.Context, id int) (Activity, error)
		CreateActivity(ctx context.Context, in ActivityInput) (Activity, error)
		UpdateActivity(ctx context.Context, id int, in ActivityInput) (Activity, error)
		DeleteActivity(ctx context.Context, id int) error
	}

	// Gateway is the academic backend as seen by the managers.
	Gateway interface {
		CourseGateway
		StudentGateway
		ActivityGateway
	}
)
