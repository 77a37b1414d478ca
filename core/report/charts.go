package report

import (
	"github.com/academia/dashboard/core"
	"github.com/academia/dashboard/core/ui"
)

// Chart limits
const (
	EnrollmentLimit = 10
	AveragesLimit   = 8

	enrollmentLabelMax = 20
	averagesLabelMax   = 15

	unnamed = "Sin nombre"
)

const (
	chartBar      = "bar"
	chartDoughnut = "doughnut"

	animationMs  = 500
	tickRotation = 45
)

// Colours
const (
	enrollmentFill   = "rgba(52, 152, 219, 0.7)"
	enrollmentBorder = "rgba(52, 152, 219, 1)"
	averagesFill     = "rgba(243, 156, 18, 0.7)"
	averagesBorder   = "rgba(243, 156, 18, 1)"
	outcomesBorder   = "#fff"
)

var outcomeColours = []string{
	"rgba(39, 174, 96, 0.8)",
	"rgba(231, 76, 60, 0.8)",
	"rgba(149, 165, 166, 0.8)",
}

func label(name string, max int) string {
	if name == "" {
		name = unnamed
	}
	return core.Truncate(name, max)
}

func baseOptions() ui.ChartOptions {
	return ui.ChartOptions{
		Responsive:          true,
		MaintainAspectRatio: false,
		Animation:           ui.Animation{Duration: animationMs},
	}
}

func rotatedAxis() *ui.Axis {
	return &ui.Axis{Ticks: &ui.Ticks{MaxRotation: tickRotation, MinRotation: tickRotation}}
}

// BuildEnrollmentChart builds the students-per-course bar chart. Empty data yields an empty chart.
func BuildEnrollmentChart(data []EnrollmentCount) ui.ChartConfig {
	labels := make([]string, 0, len(data))
	points := make([]float64, 0, len(data))
	for _, d := range data {
		labels = append(labels, label(d.Course, enrollmentLabelMax))
		points = append(points, float64(d.Count))
	}

	precision := 0
	opts := baseOptions()
	opts.Scales = &ui.Scales{
		X: rotatedAxis(),
		Y: &ui.Axis{BeginAtZero: true, Ticks: &ui.Ticks{Precision: &precision}},
	}
	return ui.ChartConfig{
		Type: chartBar,
		Data: ui.ChartData{
			Labels: labels,
			Datasets: []ui.Dataset{{
				Label:           "Estudiantes",
				Data:            points,
				BackgroundColor: []string{enrollmentFill},
				BorderColor:     enrollmentBorder,
				BorderWidth:     1,
			}},
		},
		Options: opts,
	}
}

// BuildOutcomesChart builds the approved / failed / ungraded doughnut.
func BuildOutcomesChart(data []OutcomeCount) ui.ChartConfig {
	labels := make([]string, 0, len(data))
	points := make([]float64, 0, len(data))
	for _, d := range data {
		labels = append(labels, d.Outcome)
		points = append(points, float64(d.Count))
	}

	opts := baseOptions()
	opts.Plugins.Legend = ui.Legend{
		Display:  true,
		Position: "bottom",
		Labels:   &ui.LegendLabels{BoxWidth: 15, Padding: 10},
	}
	return ui.ChartConfig{
		Type: chartDoughnut,
		Data: ui.ChartData{
			Labels: labels,
			Datasets: []ui.Dataset{{
				Data:            points,
				BackgroundColor: append([]string(nil), outcomeColours...),
				BorderColor:     outcomesBorder,
				BorderWidth:     2,
			}},
		},
		Options: opts,
	}
}

// BuildAveragesChart builds the per-course averages bar chart on the 0 - 5 scale. A missing average is drawn as 0.
func BuildAveragesChart(data []CourseStats) ui.ChartConfig {
	labels := make([]string, 0, len(data))
	points := make([]float64, 0, len(data))
	for _, d := range data {
		labels = append(labels, label(d.Name, averagesLabelMax))
		avg, _ := d.Average.Float()
		points = append(points, avg)
	}

	yMax, step := 5.0, 1.0
	opts := baseOptions()
	opts.Scales = &ui.Scales{
		X: rotatedAxis(),
		Y: &ui.Axis{BeginAtZero: true, Max: &yMax, Ticks: &ui.Ticks{StepSize: &step}},
	}
	return ui.ChartConfig{
		Type: chartBar,
		Data: ui.ChartData{
			Labels: labels,
			Datasets: []ui.Dataset{{
				Label:           "Promedio",
				Data:            points,
				BackgroundColor: []string{averagesFill},
				BorderColor:     averagesBorder,
				BorderWidth:     1,
			}},
		},
		Options: opts,
	}
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
