package ui

// ChartConfig is a Chart.js compatible chart description.
type ChartConfig struct {
	Type    string       `json:"type"` // bar | doughnut
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BorderWidth     int       `json:"borderWidth,omitempty"`
}

type ChartOptions struct {
	Responsive          bool      `json:"responsive"`
	MaintainAspectRatio bool      `json:"maintainAspectRatio"`
	Animation           Animation `json:"animation"`
	Plugins             Plugins   `json:"plugins"`
	Scales              *Scales   `json:"scales,omitempty"`
}

type Animation struct {
	Duration int `json:"duration"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
}

type Legend struct {
	Display  bool          `json:"display"`
	Position string        `json:"position,omitempty"`
	Labels   *LegendLabels `json:"labels,omitempty"`
}

type LegendLabels struct {
	BoxWidth int `json:"boxWidth"`
	Padding  int `json:"padding"`
}

type Scales struct {
	X *Axis `json:"x,omitempty"`
	Y *Axis `json:"y,omitempty"`
}

type Axis struct {
	BeginAtZero bool     `json:"beginAtZero,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Ticks       *Ticks   `json:"ticks,omitempty"`
}

type Ticks struct {
	Precision   *int     `json:"precision,omitempty"`
	StepSize    *float64 `json:"stepSize,omitempty"`
	MaxRotation int      `json:"maxRotation,omitempty"`
	MinRotation int      `json:"minRotation,omitempty"`
}

// Points returns the number of data points of the first dataset.
func (c ChartConfig) Points() int {
	if len(c.Data.Datasets) == 0 {
		return 0
	}
	return len(c.Data.Datasets[0].Data)
}

// Chart is a live chart instance attached to a region.
type Chart struct {
	ID        uint64      `json:"id"`
	Target    string      `json:"target"`
	Config    ChartConfig `json:"config"`
	destroyed bool
}

func (c *Chart) Destroyed() bool { return c.destroyed }
