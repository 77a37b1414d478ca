package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia/dashboard/core/academic"
)

func TestBuildEnrollmentChart(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		for _, data := range [][]EnrollmentCount{nil, {}} {
			cfg := BuildEnrollmentChart(data)
			assert.NotNil(t, cfg.Data.Labels)
			assert.Empty(t, cfg.Data.Labels)
			require.Len(t, cfg.Data.Datasets, 1)
			assert.NotNil(t, cfg.Data.Datasets[0].Data)
			assert.Zero(t, cfg.Points())
		}
	})

	t.Run("labels and axes", func(t *testing.T) {
		cfg := BuildEnrollmentChart(sampleBundle().Enrollment)
		assert.Equal(t, "bar", cfg.Type)
		assert.Equal(t, []string{"Programación Orienta...", "Física", "Sin nombre"}, cfg.Data.Labels)
		assert.Equal(t, []float64{25, 12, 3}, cfg.Data.Datasets[0].Data)
		assert.Equal(t, []string{enrollmentFill}, cfg.Data.Datasets[0].BackgroundColor)

		require.NotNil(t, cfg.Options.Scales)
		y := cfg.Options.Scales.Y
		assert.True(t, y.BeginAtZero)
		require.NotNil(t, y.Ticks.Precision)
		assert.Zero(t, *y.Ticks.Precision)
		assert.Equal(t, 45, cfg.Options.Scales.X.Ticks.MaxRotation)
		assert.Equal(t, 45, cfg.Options.Scales.X.Ticks.MinRotation)
		assert.False(t, cfg.Options.Plugins.Legend.Display)
		assert.Equal(t, 500, cfg.Options.Animation.Duration)
	})
}

func TestBuildOutcomesChart(t *testing.T) {
	cfg := BuildOutcomesChart(sampleBundle().Outcomes)
	assert.Equal(t, "doughnut", cfg.Type)
	assert.Equal(t, []string{OutcomesApproved, OutcomesFailed, OutcomesUngraded}, cfg.Data.Labels)
	assert.Equal(t, []float64{20, 7, 13}, cfg.Data.Datasets[0].Data)
	assert.Equal(t, outcomeColours, cfg.Data.Datasets[0].BackgroundColor)
	assert.Equal(t, "bottom", cfg.Options.Plugins.Legend.Position)
	assert.Nil(t, cfg.Options.Scales)

	empty := BuildOutcomesChart(nil)
	assert.Zero(t, empty.Points())
}

func TestBuildAveragesChart(t *testing.T) {
	data := []CourseStats{
		{Name: "Cálculo Diferencial e Integral", Average: academic.NewScore(3.75)},
		{Name: "Física"},
	}
	cfg := BuildAveragesChart(data)
	assert.Equal(t, []string{"Cálculo Diferen...", "Física"}, cfg.Data.Labels)
	assert.Equal(t, []float64{3.75, 0}, cfg.Data.Datasets[0].Data, "a missing average is drawn as 0")
	assert.Equal(t, "Promedio", cfg.Data.Datasets[0].Label)

	y := cfg.Options.Scales.Y
	assert.True(t, y.BeginAtZero)
	require.NotNil(t, y.Max)
	assert.Equal(t, 5.0, *y.Max)
	require.NotNil(t, y.Ticks.StepSize)
	assert.Equal(t, 1.0, *y.Ticks.StepSize)
}
