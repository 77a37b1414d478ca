package academic

import (
	"fmt"
	"strconv"

	"github.com/academia/dashboard/core"
)

const (
	placeholder = "-"
	noCourse    = "Sin curso"
	noDesc      = "Sin descripción"

	classActive  = "active"
	classPending = "pending"
)

type (
	CourseRow struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Code        string `json:"code"`
		Students    int    `json:"students"`
		Activities  int    `json:"activities"`
		Average     string `json:"average"`
		Status      string `json:"status"`
		StatusClass string `json:"status_class"`
	}

	CourseCard struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Code        string `json:"code"`
		Description string `json:"description"`
		Students    int    `json:"students"`
		Activities  int    `json:"activities"`
		Average     string `json:"average"`
	}

	StudentRow struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Course       string `json:"course"`
		Score        string `json:"score"`
		Outcome      string `json:"outcome"`
		OutcomeClass string `json:"outcome_class"`
	}

	ActivityRow struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Type        string `json:"type"`
		Course      string `json:"course"`
		DueDate     string `json:"due_date"`
		Weight      string `json:"weight"`
		Status      string `json:"status"`
		StatusClass string `json:"status_class"`
	}

	StudentForm struct {
		Title      string         `json:"title"`
		ID         int            `json:"id,omitempty"`
		Name       string         `json:"nombre"`
		CourseID   string         `json:"id_curso"`
		FinalScore string         `json:"nota_final"`
		Courses    []CourseOption `json:"courses"`
	}

	ActivityForm struct {
		Title    string         `json:"title"`
		ID       int            `json:"id,omitempty"`
		Name     string         `json:"nombre"`
		Type     string         `json:"tipo"`
		CourseID string         `json:"id_curso"`
		DueDate  string         `json:"fecha_entrega"`
		Weight   int            `json:"porcentaje"`
		Status   string         `json:"estado"`
		Courses  []CourseOption `json:"courses"`
	}
)

func statusClass(status string) string {
	if status == StatusActive {
		return classActive
	}
	return classPending
}

func formatAverage(avg float64, valid bool, prec int) string {
	if !valid || avg == 0 {
		return placeholder
	}
	return strconv.FormatFloat(avg, 'f', prec, 64)
}

func NewCourseRow(c Course) CourseRow {
	return CourseRow{
		ID:          c.ID,
		Name:        c.Name,
		Code:        c.Code,
		Students:    c.Students,
		Activities:  c.Activities,
		Average:     formatAverage(c.Average.Float64, c.Average.Valid, 2),
		Status:      c.Status,
		StatusClass: statusClass(c.Status),
	}
}

func NewCourseCard(c Course) CourseCard {
	desc := c.Description.String
	if desc == "" {
		desc = noDesc
	}
	return CourseCard{
		ID:          c.ID,
		Name:        c.Name,
		Code:        c.Code,
		Description: desc,
		Students:    c.Students,
		Activities:  c.Activities,
		Average:     formatAverage(c.Average.Float64, c.Average.Valid, 1),
	}
}

func NewStudentRow(s Student) StudentRow {
	row := StudentRow{
		ID:      s.ID,
		Name:    s.Name,
		Course:  s.CourseName.String,
		Score:   placeholder,
		Outcome: Outcome(s.FinalScore),
	}
	if row.Course == "" {
		row.Course = noCourse
	}
	if f, ok := s.FinalScore.Float(); ok {
		row.Score = strconv.FormatFloat(f, 'f', 1, 64)
		if row.Outcome == OutcomeApproved {
			row.OutcomeClass = classActive
		} else {
			row.OutcomeClass = classPending
		}
	}
	return row
}

func NewActivityRow(a Activity) ActivityRow {
	row := ActivityRow{
		ID:          a.ID,
		Name:        a.Name,
		Type:        a.Type,
		Course:      a.CourseName.String,
		DueDate:     core.FormatDate(a.DueDate.String),
		Weight:      fmt.Sprintf("%d%%", a.Weight.Int),
		Status:      a.Status,
		StatusClass: statusClass(a.Status),
	}
	if row.Course == "" {
		row.Course = noCourse
	}
	return row
}

func (r CourseRow) matches(term string) bool {
	return matches(term, r.Name, r.Code, strconv.Itoa(r.Students), strconv.Itoa(r.Activities), r.Average, r.Status)
}

func (r StudentRow) matches(term string) bool {
	return matches(term, strconv.Itoa(r.ID), r.Name, r.Course, r.Score, r.Outcome)
}

func (r ActivityRow) matches(term string) bool {
	return matches(term, r.Name, r.Type, r.Course, r.DueDate, r.Weight, r.Status)
}
