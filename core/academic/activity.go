package academic

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	titleNewActivity  = "Nueva Actividad"
	titleEditActivity = "Editar Actividad"
)

type ActivityManager struct {
	listeners
	gw       ActivityGateway
	courses  CourseGateway
	validate *validator.Validate
	editing  editing
}

func NewActivityManager(gw ActivityGateway, courses CourseGateway, validate *validator.Validate) *ActivityManager {
	return &ActivityManager{gw: gw, courses: courses, validate: validate}
}

func (m *ActivityManager) List(ctx context.Context, filter ActivityFilter, search string) ([]ActivityRow, error) {
	activities, err := m.gw.ListActivities(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "listing activities")
	}
	rows := make([]ActivityRow, 0, len(activities))
	for _, a := range activities {
		if row := NewActivityRow(a); row.matches(search) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// New resets the form for a new activity.
func (m *ActivityManager) New(ctx context.Context) (ActivityForm, error) {
	m.editing.clear()
	opts, err := courseOptions(ctx, m.courses)
	if err != nil {
		return ActivityForm{}, err
	}
	return ActivityForm{Title: titleNewActivity, Type: ActivityTypes[0], Status: StatusActive, Courses: opts}, nil
}

// Edit loads activity `id` into the form; the next Save updates it.
func (m *ActivityManager) Edit(ctx context.Context, id int) (ActivityForm, error) {
	a, err := m.gw.GetActivity(ctx, id)
	if err != nil {
		return ActivityForm{}, errors.Wrap(err, "getting activity")
	}
	m.editing.set(id)

	opts, err := courseOptions(ctx, m.courses)
	if err != nil {
		return ActivityForm{}, err
	}
	form := ActivityForm{
		Title:   titleEditActivity,
		ID:      a.ID,
		Name:    a.Name,
		Type:    a.Type,
		DueDate: a.DueDate.String,
		Weight:  a.Weight.Int,
		Status:  a.Status,
		Courses: opts,
	}
	if form.Type == "" {
		form.Type = ActivityTypes[0]
	}
	if form.Status == "" {
		form.Status = StatusActive
	}
	if a.CourseID.Valid {
		form.CourseID = strconv.Itoa(a.CourseID.Int)
	}
	return form, nil
}

func (m *ActivityManager) Cancel() { m.editing.clear() }

// Editing returns the id of the activity loaded in the form, if any.
func (m *ActivityManager) Editing() (int, bool) { return m.editing.get() }

// Save creates an activity, or updates the one being edited. It reports whether a new activity was created.
// The form stays in edit mode when saving fails.
func (m *ActivityManager) Save(ctx context.Context, in ActivityInput) (Activity, bool, error) {
	in.Clean()
	if err := m.validate.Struct(in); err != nil {
		return Activity{}, false, err
	}

	var (
		a   Activity
		err error
	)
	id, isEdit := m.editing.get()
	if isEdit {
		a, err = m.gw.UpdateActivity(ctx, id, in)
	} else {
		a, err = m.gw.CreateActivity(ctx, in)
	}
	if err != nil {
		return Activity{}, false, errors.Wrap(err, "saving activity")
	}

	m.editing.clear()
	m.notify(ctx)
	return a, !isEdit, nil
}

// Delete removes activity `id` once the user confirmed; no request is made otherwise.
func (m *ActivityManager) Delete(ctx context.Context, id int, c Confirmer) error {
	if !confirmed(c, promptDeleteActivity) {
		return ErrNotConfirmed
	}
	if err := m.gw.DeleteActivity(ctx, id); err != nil {
		return errors.Wrap(err, "deleting activity")
	}
	m.notify(ctx)
	return nil
}
