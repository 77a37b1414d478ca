package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barChart(points ...float64) ChartConfig {
	return ChartConfig{Type: "bar", Data: ChartData{Labels: []string{}, Datasets: []Dataset{{Data: points}}}}
}

func TestPage_AttachChart(t *testing.T) {
	p := NewPage()
	p.Mount("chart")

	first := p.AttachChart("chart", barChart(1, 2))
	require.NotNil(t, first)
	second := p.AttachChart("chart", barChart(3))
	require.NotNil(t, second)

	assert.True(t, first.Destroyed(), "previous instance must be destroyed")
	assert.False(t, second.Destroyed())
	assert.Equal(t, 1, p.LiveCharts())

	st, ok := p.Region("chart")
	require.True(t, ok)
	require.NotNil(t, st.Chart)
	assert.Equal(t, second.ID, st.Chart.ID)
	assert.Equal(t, 1, st.Chart.Config.Points())
}

func TestPage_MissingRegion(t *testing.T) {
	p := NewPage()

	assert.Nil(t, p.AttachChart("nope", barChart()))
	assert.False(t, p.SetOpacity("nope", OpacityDimmed))
	assert.False(t, p.SetHTML("nope", "<p>x</p>"))
	assert.False(t, p.SetText("nope", "x"))
	assert.False(t, p.SetData("nope", 1))
	assert.Equal(t, 0, p.LiveCharts())
}

func TestPage_UnmountAndDestroy(t *testing.T) {
	p := NewPage()
	p.Mount("a", "b")
	p.AttachChart("a", barChart(1))
	p.AttachChart("b", barChart(1))
	require.Equal(t, 2, p.LiveCharts())

	p.DestroyCharts()
	assert.Equal(t, 0, p.LiveCharts())
	assert.True(t, p.Has("a"))

	p.AttachChart("a", barChart(1))
	p.Unmount("a")
	assert.Equal(t, 0, p.LiveCharts())
	assert.False(t, p.Has("a"))
}

func TestPage_MountKeepsState(t *testing.T) {
	p := NewPage()
	p.Mount("a")
	p.SetText("a", "hello")
	p.SetOpacity("a", OpacityDimmed)

	p.Mount("a", "b")

	snap := p.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "hello", snap["a"].Text)
	assert.Equal(t, OpacityDimmed, snap["a"].Opacity)
	assert.Equal(t, OpacityNormal, snap["b"].Opacity)

	only := p.Snapshot("b", "missing")
	assert.Len(t, only, 1)
}
