package academic

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core"
)

// Statuses
const (
	StatusActive  = "Activo"
	StatusPending = "Pendiente"
)

// Student outcomes
const (
	OutcomeApproved = "Aprobado"
	OutcomeFailed   = "Reprobado"
	OutcomeUngraded = "Sin Calificar"

	PassingScore = 3.0
)

// DefaultTeacherID is assigned to courses created from the dashboard.
const DefaultTeacherID = 1

var ActivityTypes = []string{"Tarea", "Taller", "Examen", "Trabajo", "Quiz"}

// Score is a nullable grade on the 0.0 - 5.0 scale.
// The backend serializes decimals as JSON strings ("4.5"), so both strings and numbers are accepted.
type Score struct {
	null.Float64
}

func NewScore(f float64) Score { return Score{null.Float64From(f)} }

func (s *Score) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' {
		raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
		if raw == "" {
			s.Float64 = null.Float64{}
			return nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		s.Float64 = null.Float64From(f)
		return nil
	}
	return s.Float64.UnmarshalJSON(data)
}

// Float returns the score and whether it is set.
func (s Score) Float() (float64, bool) {
	return s.Float64.Float64, s.Valid
}

type Course struct {
	ID          int          `json:"id_curso"`
	Name        string       `json:"nombre"`
	Code        string       `json:"codigo"`
	Description null.String  `json:"descripcion"`
	Status      string       `json:"estado"`
	TeacherID   null.Int     `json:"id_docente"`
	TeacherName null.String  `json:"docente_nombre"`
	Students    int          `json:"num_estudiantes"`
	Activities  int          `json:"num_actividades"`
	Average     null.Float64 `json:"promedio"`
}

func (c Course) IsActive() bool { return c.Status == StatusActive }

type Student struct {
	ID         int         `json:"id_estudiante"`
	Name       string      `json:"nombre"`
	CourseID   null.Int    `json:"id_curso"`
	CourseName null.String `json:"curso_nombre"`
	CourseCode null.String `json:"curso_codigo"`
	FinalScore Score       `json:"nota_final"`
	Outcome    string      `json:"estado"`
}

// Outcome derives the student's outcome from the final score.
func Outcome(score Score) string {
	f, ok := score.Float()
	switch {
	case !ok:
		return OutcomeUngraded
	case f >= PassingScore:
		return OutcomeApproved
	default:
		return OutcomeFailed
	}
}

type Activity struct {
	ID         int         `json:"id_actividad"`
	Name       string      `json:"nombre"`
	Type       string      `json:"tipo"`
	CourseID   null.Int    `json:"id_curso"`
	CourseName null.String `json:"curso_nombre"`
	CourseCode null.String `json:"curso_codigo"`
	DueDate    null.String `json:"fecha_entrega"`
	Weight     null.Int    `json:"porcentaje"`
	Status     string      `json:"estado"`
}

// CourseOption is the shared course reference used to fill selection inputs.
type CourseOption struct {
	ID   int    `json:"id_curso"`
	Name string `json:"nombre"`
	Code string `json:"codigo"`
}

func (o CourseOption) Label() string { return o.Name + " (" + o.Code + ")" }

// CourseInput contains the information needed to create or update a Course.
type CourseInput struct {
	Name        string `json:"nombre" validate:"required"`
	Code        string `json:"codigo" validate:"required"`
	Description string `json:"descripcion"`
	Status      string `json:"estado" validate:"oneof=Activo Pendiente"`
	TeacherID   int    `json:"id_docente" validate:"min=1"`
}

func (in *CourseInput) Clean() {
	in.Name = core.CleanString(in.Name)
	in.Code = core.CleanString(in.Code)
	in.Description = core.CleanString(in.Description)
	if in.Status == "" {
		in.Status = StatusActive
	}
	if in.TeacherID == 0 {
		in.TeacherID = DefaultTeacherID
	}
}

// StudentInput contains the information needed to create or update a Student.
type StudentInput struct {
	Name       string   `json:"nombre" validate:"required"`
	CourseID   null.Int `json:"id_curso"`
	FinalScore Score    `json:"nota_final" validate:"omitempty,score"`
}

func (in *StudentInput) Clean() {
	in.Name = core.CleanString(in.Name)
}

// ActivityInput contains the information needed to create or update an Activity.
type ActivityInput struct {
	Name     string      `json:"nombre" validate:"required"`
	Type     string      `json:"tipo" validate:"oneof=Tarea Taller Examen Trabajo Quiz"`
	CourseID null.Int    `json:"id_curso" validate:"required"`
	DueDate  null.String `json:"fecha_entrega" validate:"omitempty,isodate"`
	Weight   int         `json:"porcentaje" validate:"min=0,max=100"`
	Status   string      `json:"estado" validate:"oneof=Activo Pendiente"`
}

func (in *ActivityInput) Clean() {
	in.Name = core.CleanString(in.Name)
	if in.Type == "" {
		in.Type = ActivityTypes[0]
	}
	if in.Status == "" {
		in.Status = StatusActive
	}
	if in.DueDate.Valid && core.CleanString(in.DueDate.String) == "" {
		in.DueDate = null.String{}
	}
}

// ActivityFilter narrows the activities listing. An invalid CourseID lists everything.
type ActivityFilter struct {
	CourseID null.Int
}
