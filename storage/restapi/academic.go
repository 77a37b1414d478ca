package restapi

import (
	"context"
	"strconv"

	"github.com/sendgrid/rest"

	"github.com/academia/dashboard/core/academic"
)

var _ academic.Gateway = (*Client)(nil)

func itoa(i int) string { return strconv.Itoa(i) }

func (c *Client) ListCourses(ctx context.Context) ([]academic.Course, error) {
	var courses []academic.Course
	err := c.do(ctx, ResourceCourses, rest.Get, resourcePath(ResourceCourses), nil, nil, &courses)
	return courses, err
}

func (c *Client) CreateCourse(ctx context.Context, in academic.CourseInput) (academic.Course, error) {
	var course academic.Course
	err := c.do(ctx, ResourceCourses, rest.Post, resourcePath(ResourceCourses), nil, in, &course)
	return course, err
}

func (c *Client) UpdateCourse(ctx context.Context, id int, in academic.CourseInput) (academic.Course, error) {
	var course academic.Course
	err := c.do(ctx, ResourceCourses, rest.Put, resourcePath(ResourceCourses, id), nil, in, &course)
	return course, err
}

func (c *Client) DeleteCourse(ctx context.Context, id int) error {
	return c.do(ctx, ResourceCourses, rest.Delete, resourcePath(ResourceCourses, id), nil, nil, nil)
}

func (c *Client) ListStudents(ctx context.Context) ([]academic.Student, error) {
	var students []academic.Student
	err := c.do(ctx, ResourceStudents, rest.Get, resourcePath(ResourceStudents), nil, nil, &students)
	return students, err
}

func (c *Client) GetStudent(ctx context.Context, id int) (academic.Student, error) {
	var s academic.Student
	err := c.do(ctx, ResourceStudents, rest.Get, resourcePath(ResourceStudents, id), nil, nil, &s)
	return s, err
}

func (c *Client) CreateStudent(ctx context.Context, in academic.StudentInput) (academic.Student, error) {
	var s academic.Student
	err := c.do(ctx, ResourceStudents, rest.Post, resourcePath(ResourceStudents), nil, in, &s)
	return s, err
}

func (c *Client) UpdateStudent(ctx context.Context, id int, in academic.StudentInput) (academic.Student, error) {
	var s academic.Student
	err := c.do(ctx, ResourceStudents, rest.Put, resourcePath(ResourceStudents, id), nil, in, &s)
	return s, err
}

func (c *Client) DeleteStudent(ctx context.Context, id int) error {
	return c.do(ctx, ResourceStudents, rest.Delete, resourcePath(ResourceStudents, id), nil, nil, nil)
}

func (c *Client) ListActivities(ctx context.Context, filter academic.ActivityFilter) ([]academic.Activity, error) {
	var query map[string]string
	if filter.CourseID.Valid {
		query = map[string]string{"id_curso": itoa(filter.CourseID.Int)}
	}
	var activities []academic.Activity
	err := c.do(ctx, ResourceActivities, rest.Get, resourcePath(ResourceActivities), query, nil, &activities)
	return activities, err
}

func (c *Client) GetActivity(ctx context.Context, id int) (academic.Activity, error) {
	var a academic.Activity
	err := c.do(ctx, ResourceActivities, rest.Get, resourcePath(ResourceActivities, id), nil, nil, &a)
	return a, err
}

func (c *Client) CreateActivity(ctx context.Context, in academic.ActivityInput) (academic.Activity, error) {
	var a academic.Activity
	err := c.do(ctx, ResourceActivities, rest.Post, resourcePath(ResourceActivities), nil, in, &a)
	return a, err
}

func (c *Client) UpdateActivity(ctx context.Context, id int, in academic.ActivityInput) (academic.Activity, error) {
	var a academic.Activity
	err := c.do(ctx, ResourceActivities, rest.Put, resourcePath(ResourceActivities, id), nil, in, &a)
	return a, err
}

func (c *Client) DeleteActivity(ctx context.Context, id int) error {
	return c.do(ctx, ResourceActivities, rest.Delete, resourcePath(ResourceActivities, id), nil, nil, nil)
}
