package report

import (
	"context"

	"github.com/volatiletech/null/v8"
)

// Export kinds
const (
	ExportStudents   = "estudiantes"
	ExportCourses    = "cursos"
	ExportActivities = "actividades"
	ExportFull       = "reporte_completo"
)

type (
	// Gateway issues the `/api/reportes/` queries, one method per action.
	Gateway interface {
		Enrollment(ctx context.Context) ([]EnrollmentCount, error)
		Outcomes(ctx context.Context) ([]OutcomeCount, error)
		CourseStats(ctx context.Context) ([]CourseStats, error)
		TopStudents(ctx context.Context) ([]TopStudent, error)
		Summary(ctx context.Context) (Summary, error)
		PendingActivities(ctx context.Context) ([]PendingActivities, error)
		MonthlyAverages(ctx context.Context) ([]MonthlyAverage, error)
	}

	Exporter interface {
		Export(ctx context.Context, req ExportRequest) (Export, error)
	}

	ExportRequest struct {
		Kind     string   `json:"tipo" validate:"oneof=estudiantes cursos actividades reporte_completo"`
		CourseID null.Int `json:"id_curso"`
	}

	// Export is a downloadable spreadsheet.
	Export struct {
		Filename    string
		ContentType string
		Body        []byte
	}
)

func (r *ExportRequest) Clean() {
	if r.Kind == "" {
		r.Kind = ExportStudents
	}
}
