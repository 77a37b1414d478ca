package inmemdb

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/academia/dashboard/core"
	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/report"
)

const (
	csvContentType = "text/csv; charset=utf-8"
	noTeacher      = "Sin docente"
	placeholder    = "-"
)

var _ report.Exporter = (*DB)(nil)

// Export writes the requested sheet as CSV, followed by a short footer.
func (db *DB) Export(_ context.Context, req report.ExportRequest) (report.Export, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var rows [][]string
	switch req.Kind {
	case report.ExportStudents:
		rows = db.exportStudents(req.CourseID)
	case report.ExportCourses:
		rows = db.exportCourses()
	case report.ExportActivities:
		rows = db.exportActivities(req.CourseID)
	case report.ExportFull:
		rows = db.exportFull()
	default:
		return report.Export{}, errors.Errorf("unknown export kind %q", req.Kind)
	}

	now := db.now()
	records := len(rows) - 1
	rows = append(rows,
		[]string{},
		[]string{"Reporte generado:", now.Format(core.DisplayDateLayout + " 15:04:05")},
		[]string{"Total de registros:", strconv.Itoa(records)},
	)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return report.Export{}, errors.Wrap(err, "writing export")
	}
	return report.Export{
		Filename:    fmt.Sprintf("reporte_%s_%s.csv", req.Kind, now.Format("20060102_150405")),
		ContentType: csvContentType,
		Body:        buf.Bytes(),
	}, nil
}

func inCourse(id, filter null.Int) bool {
	return !filter.Valid || (id.Valid && id.Int == filter.Int)
}

func scoreCell(f null.Float64) string {
	if !f.Valid || f.Float64 == 0 {
		return placeholder
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}

func orPlaceholder(s null.String) string {
	if s.Valid {
		return s.String
	}
	return placeholder
}

// must be called with the lock held
func (db *DB) exportStudents(courseID null.Int) [][]string {
	rows := [][]string{{"ID", "Nombre Completo", "Curso", "Código Curso", "Nota Final", "Estado"}}
	for _, id := range db.students.ids() {
		s := db.students.rows[id]
		if !inCourse(s.courseID, courseID) {
			continue
		}
		name, code := db.courseRef(s.courseID)
		rows = append(rows, []string{
			strconv.Itoa(s.id),
			s.name,
			orNoCourse(name),
			orPlaceholder(code),
			scoreCell(s.finalScore),
			academic.Outcome(academic.Score{Float64: s.finalScore}),
		})
	}
	return rows
}

// must be called with the lock held
func (db *DB) exportCourses() [][]string {
	rows := [][]string{{"ID", "Nombre", "Código", "Descripción", "Estado", "Docente", "Total Estudiantes", "Total Actividades", "Promedio"}}
	for _, id := range db.courses.ids() {
		c := db.courses.rows[id]
		students, activities, avg := db.courseStats(c.id)
		teacher := noTeacher
		if c.teacherID.Valid {
			if name, ok := db.teachers[c.teacherID.Int]; ok {
				teacher = name
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(c.id),
			c.name,
			c.code,
			c.description.String,
			c.status,
			teacher,
			strconv.Itoa(students),
			strconv.Itoa(activities),
			scoreCell(avg),
		})
	}
	return rows
}

// must be called with the lock held
func (db *DB) exportActivities(courseID null.Int) [][]string {
	rows := [][]string{{"ID", "Nombre", "Tipo", "Curso", "Código Curso", "Fecha Entrega", "Porcentaje (%)", "Estado"}}
	for _, id := range db.activities.ids() {
		a := db.activities.rows[id]
		if !inCourse(a.courseID, courseID) {
			continue
		}
		name, code := db.courseRef(a.courseID)
		rows = append(rows, []string{
			strconv.Itoa(a.id),
			a.name,
			a.kind,
			orNoCourse(name),
			orPlaceholder(code),
			core.FormatDate(a.dueDate.String),
			strconv.Itoa(a.weight.Int),
			a.status,
		})
	}
	return rows
}

// exportFull lists the students of active courses.
// must be called with the lock held
func (db *DB) exportFull() [][]string {
	rows := [][]string{{"Curso", "Código", "Estudiante", "Nota Final", "Estado", "Actividades del Curso"}}
	for _, id := range db.students.ids() {
		s := db.students.rows[id]
		if !s.courseID.Valid {
			continue
		}
		c, ok := db.courses.rows[s.courseID.Int]
		if !ok || c.status != academic.StatusActive {
			continue
		}
		_, activities, _ := db.courseStats(c.id)
		rows = append(rows, []string{
			c.name,
			c.code,
			s.name,
			scoreCell(s.finalScore),
			academic.Outcome(academic.Score{Float64: s.finalScore}),
			strconv.Itoa(activities),
		})
	}
	return rows
}
