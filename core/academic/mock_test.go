package academic

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockGateway struct {
	mock.Mock
}

var _ Gateway = (*mockGateway)(nil)

func (m *mockGateway) ListCourses(ctx context.Context) ([]Course, error) {
	args := m.Called(ctx)
	courses, _ := args.Get(0).([]Course)
	return courses, args.Error(1)
}

func (m *mockGateway) CreateCourse(ctx context.Context, in CourseInput) (Course, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(Course), args.Error(1)
}

func (m *mockGateway) UpdateCourse(ctx context.Context, id int, in CourseInput) (Course, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(Course), args.Error(1)
}

func (m *mockGateway) DeleteCourse(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockGateway) ListStudents(ctx context.Context) ([]Student, error) {
	args := m.Called(ctx)
	students, _ := args.Get(0).([]Student)
	return students, args.Error(1)
}

func (m *mockGateway) GetStudent(ctx context.Context, id int) (Student, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Student), args.Error(1)
}

func (m *mockGateway) CreateStudent(ctx context.Context, in StudentInput) (Student, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(Student), args.Error(1)
}

func (m *mockGateway) UpdateStudent(ctx context.Context, id int, in StudentInput) (Student, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(Student), args.Error(1)
}

func (m *mockGateway) DeleteStudent(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockGateway) ListActivities(ctx context.Context, filter ActivityFilter) ([]Activity, error) {
	args := m.Called(ctx, filter)
	activities, _ := args.Get(0).([]Activity)
	return activities, args.Error(1)
}

func (m *mockGateway) GetActivity(ctx context.Context, id int) (Activity, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Activity), args.Error(1)
}

func (m *mockGateway) CreateActivity(ctx context.Context, in ActivityInput) (Activity, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(Activity), args.Error(1)
}

func (m *mockGateway) UpdateActivity(ctx context.Context, id int, in ActivityInput) (Activity, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(Activity), args.Error(1)
}

func (m *mockGateway) DeleteActivity(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
