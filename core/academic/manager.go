package academic

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var ErrNotConfirmed = errors.New("deletion not confirmed")

// User facing messages
const (
	MsgCourseCreated   = "Curso agregado correctamente"
	MsgCourseUpdated   = "Curso actualizado"
	MsgCourseDeleted   = "Curso eliminado correctamente"
	MsgStudentCreated  = "Estudiante agregado"
	MsgStudentUpdated  = "Actualizado"
	MsgStudentDeleted  = "Estudiante eliminado"
	MsgActivityCreated = "Actividad agregada"
	MsgActivityUpdated = "Actualizada"
	MsgActivityDeleted = "Actividad eliminada"

	promptDeleteCourse   = "¿Seguro que deseas eliminar este curso?"
	promptDeleteStudent  = "¿Eliminar este estudiante?"
	promptDeleteActivity = "¿Eliminar esta actividad?"
)

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

func confirmed(c Confirmer, prompt string) bool {
	return c != nil && c.Confirm(prompt)
}

// ChangeListener is called after every successful create, update or delete.
type ChangeListener func(ctx context.Context)

type listeners struct {
	mu  sync.RWMutex
	fns []ChangeListener
}

// OnChange registers fn to be called after each successful mutation.
func (l *listeners) OnChange(fn ChangeListener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fns = append(l.fns, fn)
}

func (l *listeners) notify(ctx context.Context) {
	l.mu.RLock()
	fns := make([]ChangeListener, len(l.fns))
	copy(fns, l.fns)
	l.mu.RUnlock()

	for _, fn := range fns {
		fn(ctx)
	}
}

// editing holds the id of the record currently loaded in a form; 0 means "new record".
type editing struct {
	mu sync.Mutex
	id int
}

func (e *editing) set(id int) {
	e.mu.Lock()
	e.id = id
	e.mu.Unlock()
}

func (e *editing) get() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id, e.id != 0
}

func (e *editing) clear() { e.set(0) }

func courseOptions(ctx context.Context, gw CourseGateway) ([]CourseOption, error) {
	courses, err := gw.ListCourses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing courses")
	}
	opts := make([]CourseOption, 0, len(courses))
	for _, c := range courses {
		opts = append(opts, CourseOption{ID: c.ID, Name: c.Name, Code: c.Code})
	}
	return opts, nil
}

// matches does a case-insensitive substring search of term in any of the fields.
func matches(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
