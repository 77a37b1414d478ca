package academic

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type CourseManager struct {
	listeners
	gw       CourseGateway
	validate *validator.Validate
}

func NewCourseManager(gw CourseGateway, validate *validator.Validate) *CourseManager {
	return &CourseManager{gw: gw, validate: validate}
}

// List returns the course table rows matching search (every row when search is empty).
func (m *CourseManager) List(ctx context.Context, search string) ([]CourseRow, error) {
	courses, err := m.gw.ListCourses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing courses")
	}
	rows := make([]CourseRow, 0, len(courses))
	for _, c := range courses {
		if row := NewCourseRow(c); row.matches(search) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (m *CourseManager) Cards(ctx context.Context) ([]CourseCard, error) {
	courses, err := m.gw.ListCourses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing courses")
	}
	cards := make([]CourseCard, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, NewCourseCard(c))
	}
	return cards, nil
}

// Options returns the shared course list used by the student and activity forms.
func (m *CourseManager) Options(ctx context.Context) ([]CourseOption, error) {
	return courseOptions(ctx, m.gw)
}

// Save creates a course, or updates course `id` when id > 0.
func (m *CourseManager) Save(ctx context.Context, id int, in CourseInput) (Course, error) {
	in.Clean()
	if err := m.validate.Struct(in); err != nil {
		return Course{}, err
	}

	var (
		course Course
		err    error
	)
	if id > 0 {
		course, err = m.gw.UpdateCourse(ctx, id, in)
	} else {
		course, err = m.gw.CreateCourse(ctx, in)
	}
	if err != nil {
		return Course{}, errors.Wrap(err, "saving course")
	}

	m.notify(ctx)
	return course, nil
}

// Delete removes course `id` once the user confirmed; no request is made otherwise.
func (m *CourseManager) Delete(ctx context.Context, id int, c Confirmer) error {
	if !confirmed(c, promptDeleteCourse) {
		return ErrNotConfirmed
	}
	if err := m.gw.DeleteCourse(ctx, id); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	m.notify(ctx)
	return nil
}
