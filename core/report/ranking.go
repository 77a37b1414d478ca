package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/academia/dashboard/core"
)

const (
	RankingLimit = 10

	podiumBadge  = "#f39c12"
	defaultBadge = "#3498db"

	NoData      = "No hay datos disponibles"
	LoadFailure = "Error al cargar reportes"
)

// RankingRow is one line of the top students table.
type RankingRow struct {
	Rank    int    `json:"rank"`
	Badge   string `json:"badge"`
	Student string `json:"student"`
	Course  string `json:"course"`
	Score   string `json:"score"`
}

// RankRows keeps the first RankingLimit students, in the order given.
func RankRows(top []TopStudent) []RankingRow {
	top = head(top, RankingLimit)
	rows := make([]RankingRow, 0, len(top))
	for i, s := range top {
		badge := defaultBadge
		if i < 3 {
			badge = podiumBadge
		}
		avg, _ := s.Average.Float()
		rows = append(rows, RankingRow{
			Rank:    i + 1,
			Badge:   badge,
			Student: s.Student,
			Course:  s.Course,
			Score:   strconv.FormatFloat(avg, 'f', 1, 64),
		})
	}
	return rows
}

// BuildRanking renders the top students table. Student and course names are escaped.
func BuildRanking(top []TopStudent) string {
	rows := RankRows(top)
	if len(rows) == 0 {
		return `<p style="text-align: center; color: #999; padding: 20px;">` + NoData + `</p>`
	}

	var sb strings.Builder
	sb.WriteString(`<table style="width: 100%; font-size: 0.9rem;"><thead><tr style="border-bottom: 2px solid #eee;">`)
	sb.WriteString(`<th style="text-align: left; padding: 8px; width: 10%;">#</th>`)
	sb.WriteString(`<th style="text-align: left; padding: 8px;">Estudiante</th>`)
	sb.WriteString(`<th style="text-align: center; padding: 8px; width: 15%;">Nota</th>`)
	sb.WriteString(`</tr></thead><tbody>`)
	for _, r := range rows {
		fmt.Fprintf(&sb, `<tr style="border-bottom: 1px solid #f0f0f0;">`+
			`<td style="padding: 8px;"><span class="rank-badge" style="background: %s; color: white; padding: 2px 8px; border-radius: 3px; font-size: 0.8rem; font-weight: bold;">%d</span></td>`+
			`<td style="padding: 8px;"><div style="font-weight: 500;">%s</div><div style="font-size: 0.8rem; color: #777;">%s</div></td>`+
			`<td style="text-align: center; padding: 8px;"><span style="font-weight: bold; color: #27ae60; font-size: 1.1rem;">%s</span></td></tr>`,
			r.Badge, r.Rank, core.EscapeHTML(r.Student), core.EscapeHTML(r.Course), r.Score)
	}
	sb.WriteString(`</tbody></table>`)
	return sb.String()
}

// ErrorPlacard is shown in the ranking region when an aggregated fetch fails.
func ErrorPlacard() string {
	return `<div style="text-align: center; padding: 20px; color: #e74c3c;"><i class="fas fa-exclamation-triangle"></i> ` + LoadFailure + `</div>`
}
