package report

import (
	"net/mail"
	"strconv"
	"time"

	"github.com/academia/dashboard/core"
)

const digestTemplate = "digest"

// Digest is the periodic report e-mail.
type Digest struct {
	GeneratedAt string
	Summary     SummaryView
	Enrollment  []EnrollmentCount
	Outcomes    []OutcomeCount
	Courses     []DigestCourse
	Ranking     []RankingRow
}

type DigestCourse struct {
	Name     string
	Code     string
	Students int
	Average  string
}

func NewDigest(b Bundle, s SummaryView, now time.Time) Digest {
	d := Digest{
		GeneratedAt: now.Format(core.DisplayDateLayout + " 15:04"),
		Summary:     s,
		Enrollment:  head(b.Enrollment, EnrollmentLimit),
		Outcomes:    b.Outcomes,
		Ranking:     RankRows(b.TopStudents),
	}
	for _, c := range head(b.CourseStats, AveragesLimit) {
		avg := "-"
		if f, ok := c.Average.Float(); ok {
			avg = strconv.FormatFloat(f, 'f', 2, 64)
		}
		d.Courses = append(d.Courses, DigestCourse{Name: c.Name, Code: c.Code, Students: c.Students, Average: avg})
	}
	return d
}

// Message builds the digest e-mail for the given recipients.
func (d Digest) Message(to ...mail.Address) *core.EmailMessage {
	return &core.EmailMessage{
		To:           to,
		Subject:      "Resumen académico " + d.GeneratedAt,
		TemplateName: digestTemplate,
		TemplateData: d,
	}
}
