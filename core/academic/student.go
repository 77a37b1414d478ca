package academic

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	titleNewStudent  = "Nuevo Estudiante"
	titleEditStudent = "Editar Estudiante"
)

type StudentManager struct {
	listeners
	gw       StudentGateway
	courses  CourseGateway
	validate *validator.Validate
	editing  editing
}

func NewStudentManager(gw StudentGateway, courses CourseGateway, validate *validator.Validate) *StudentManager {
	return &StudentManager{gw: gw, courses: courses, validate: validate}
}

func (m *StudentManager) List(ctx context.Context, search string) ([]StudentRow, error) {
	students, err := m.gw.ListStudents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing students")
	}
	rows := make([]StudentRow, 0, len(students))
	for _, s := range students {
		if row := NewStudentRow(s); row.matches(search) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// New resets the form for a new student.
func (m *StudentManager) New(ctx context.Context) (StudentForm, error) {
	m.editing.clear()
	opts, err := courseOptions(ctx, m.courses)
	if err != nil {
		return StudentForm{}, err
	}
	return StudentForm{Title: titleNewStudent, Courses: opts}, nil
}

// Edit loads student `id` into the form; the next Save updates it.
func (m *StudentManager) Edit(ctx context.Context, id int) (StudentForm, error) {
	s, err := m.gw.GetStudent(ctx, id)
	if err != nil {
		return StudentForm{}, errors.Wrap(err, "getting student")
	}
	m.editing.set(id)

	opts, err := courseOptions(ctx, m.courses)
	if err != nil {
		return StudentForm{}, err
	}
	form := StudentForm{Title: titleEditStudent, ID: s.ID, Name: s.Name, Courses: opts}
	if s.CourseID.Valid {
		form.CourseID = strconv.Itoa(s.CourseID.Int)
	}
	if f, ok := s.FinalScore.Float(); ok {
		form.FinalScore = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return form, nil
}

func (m *StudentManager) Cancel() { m.editing.clear() }

// Editing returns the id of the student loaded in the form, if any.
func (m *StudentManager) Editing() (int, bool) { return m.editing.get() }

// Save creates a student, or updates the one being edited. It reports whether a new student was created.
// The form stays in edit mode when saving fails.
func (m *StudentManager) Save(ctx context.Context, in StudentInput) (Student, bool, error) {
	in.Clean()
	if err := m.validate.Struct(in); err != nil {
		return Student{}, false, err
	}

	var (
		s   Student
		err error
	)
	id, isEdit := m.editing.get()
	if isEdit {
		s, err = m.gw.UpdateStudent(ctx, id, in)
	} else {
		s, err = m.gw.CreateStudent(ctx, in)
	}
	if err != nil {
		return Student{}, false, errors.Wrap(err, "saving student")
	}

	m.editing.clear()
	m.notify(ctx)
	return s, !isEdit, nil
}

// Delete removes student `id` once the user confirmed; no request is made otherwise.
func (m *StudentManager) Delete(ctx context.Context, id int, c Confirmer) error {
	if !confirmed(c, promptDeleteStudent) {
		return ErrNotConfirmed
	}
	if err := m.gw.DeleteStudent(ctx, id); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	m.notify(ctx)
	return nil
}
