package report

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core/academic"
)

// Report actions understood by the backend
const (
	ActionGeneral           = "general"
	ActionEnrollment        = "estudiantes_por_curso"
	ActionOutcomes          = "rendimiento"
	ActionCourseStats       = "cursos_estadisticas"
	ActionTopStudents       = "top_estudiantes"
	ActionPendingActivities = "actividades_pendientes"
	ActionMonthlyAverages   = "promedios_mensuales"
)

// Outcome labels of the performance slice
const (
	OutcomesApproved = "Aprobados"
	OutcomesFailed   = "Reprobados"
	OutcomesUngraded = "Sin Calificar"
)

type (
	EnrollmentCount struct {
		Course string `json:"curso"`
		Count  int    `json:"cantidad"`
	}

	OutcomeCount struct {
		Outcome string `json:"estado"`
		Count   int    `json:"cantidad"`
	}

	CourseStats struct {
		ID         int            `json:"id_curso"`
		Name       string         `json:"nombre"`
		Code       string         `json:"codigo"`
		Students   int            `json:"num_estudiantes"`
		Activities int            `json:"num_actividades"`
		Average    academic.Score `json:"promedio"`
	}

	TopStudent struct {
		Student string         `json:"estudiante"`
		Course  string         `json:"curso"`
		Average academic.Score `json:"promedio"`
	}

	// Summary is the `general` report. Every field may be missing.
	Summary struct {
		ActiveCourses   null.Int       `json:"cursos_activos"`
		TotalStudents   null.Int       `json:"total_estudiantes"`
		TotalActivities null.Int       `json:"total_actividades"`
		OverallAverage  academic.Score `json:"promedio_general"`
	}

	PendingActivities struct {
		Course  string `json:"curso"`
		Pending int    `json:"pendientes"`
	}

	MonthlyAverage struct {
		Month   string         `json:"mes"`
		Average academic.Score `json:"promedio"`
	}

	// Bundle is the result of one aggregated fetch: the four report slices and when they were fetched.
	Bundle struct {
		Enrollment  []EnrollmentCount `json:"estudiantes_por_curso"`
		Outcomes    []OutcomeCount    `json:"rendimiento"`
		CourseStats []CourseStats     `json:"cursos_estadisticas"`
		TopStudents []TopStudent      `json:"top_estudiantes"`
		FetchedAt   time.Time         `json:"fetched_at"`
	}
)
