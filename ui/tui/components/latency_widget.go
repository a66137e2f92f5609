package components

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
)

const minLatencyCeiling = 100.0

// LatencyWidget plots recent call durations in milliseconds.
type LatencyWidget struct {
	History  []float64
	Capacity int
	Width    int
	Height   int
}

func NewLatencyWidget(width, height, capacity int) *LatencyWidget {
	if capacity < 2 {
		capacity = 2
	}
	return &LatencyWidget{
		History:  make([]float64, 0, capacity+1),
		Capacity: capacity,
		Width:    width,
		Height:   height,
	}
}

func (c *LatencyWidget) Init() tea.Cmd {
	return nil
}

func (c *LatencyWidget) Push(ms float64) {
	if ms < 0 {
		ms = 0
	}
	c.History = append(c.History, ms)
	if len(c.History) > c.Capacity {
		c.History = c.History[len(c.History)-c.Capacity:]
	}
}

func (c *LatencyWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *LatencyWidget) Resize(w, h int) {
	c.Width = w
	c.Height = h
}

// Ceiling is the chart's y maximum: the largest sample plus headroom.
func (c *LatencyWidget) Ceiling() float64 {
	ceiling := minLatencyCeiling
	for _, v := range c.History {
		if v*1.2 > ceiling {
			ceiling = v * 1.2
		}
	}
	return ceiling
}

func (c *LatencyWidget) View() string {
	w, h := c.Width, c.Height
	if w < 10 {
		w = 10
	}
	if h < 4 {
		h = 4
	}

	// width, height, minX, maxX, minY, maxY
	chart := linechart.New(w, h, 0, float64(c.Capacity-1), 0, c.Ceiling())
	for i := 0; i < len(c.History)-1; i++ {
		chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.History[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.History[i+1]},
		)
	}
	chart.DrawXYAxisAndLabel()
	return chart.View()
}

var _ Component = (*LatencyWidget)(nil)
