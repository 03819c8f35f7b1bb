package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/firecalc/firecalc/internal/tui/tuistyles"
)

// DataSeries is a single line in a chart.
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart plots one or more balance paths as a terminal line chart.
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Width      int
	Height     int
	ShowLegend bool
}

// NewASCIIChart creates a chart with default dimensions.
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      60,
		Height:     15,
		ShowLegend: true,
	}
}

// AddSeries appends a line to the chart.
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithSize sets the chart dimensions.
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	if width > 20 {
		c.Width = width
	}
	if height > 5 {
		c.Height = height
	}
	return c
}

// Render returns the styled chart.
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.bounds()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

// bounds finds the padded min/max across all series.
func (c *ASCIIChart) bounds() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, series := range c.Series {
		for _, point := range series.Points {
			minVal = math.Min(minVal, point)
			maxVal = math.Max(maxVal, point)
		}
	}
	if minVal > 0 {
		minVal = 0
	}
	padding := (maxVal - minVal) * 0.1
	if padding == 0 {
		padding = 1
	}
	return minVal, maxVal + padding
}

func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 10
	chartWidth := c.Width - yAxisWidth
	if chartWidth < 10 {
		chartWidth = 10
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for seriesIdx, series := range c.Series {
		c.plotSeries(grid, series, seriesIdx, minVal, maxVal, chartWidth)
	}

	var output strings.Builder
	valueRange := maxVal - minVal
	yAxisStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueRange
		output.WriteString(yAxisStyle.Render(formatChartValue(yValue)))
		output.WriteString(" │")
		output.WriteString(string(row))
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth))
	output.WriteString("\n")

	return output.String()
}

// plotSeries maps one series onto the grid and joins consecutive points
// with Bresenham lines.
func (c *ASCIIChart) plotSeries(grid [][]rune, series *DataSeries, seriesIdx int, minVal, maxVal float64, chartWidth int) {
	if len(series.Points) == 0 {
		return
	}
	char := seriesChar(seriesIdx)
	span := float64(len(series.Points) - 1)
	if span == 0 {
		span = 1
	}

	toGrid := func(i int) (int, int) {
		x := int(float64(i) / span * float64(chartWidth-1))
		y := c.Height - 1 - int((series.Points[i]-minVal)/(maxVal-minVal)*float64(c.Height-1))
		return x, y
	}

	for i := range series.Points {
		x, y := toGrid(i)
		if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
			grid[y][x] = char
		}
		if i > 0 {
			prevX, prevY := toGrid(i - 1)
			drawLine(grid, prevX, prevY, x, y, char)
		}
	}
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine fills empty cells between two points using Bresenham's
// algorithm.
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) && grid[y][x] == ' ' {
			grid[y][x] = char
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (c *ASCIIChart) renderLegend() string {
	var items []string
	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(seriesChar(i)))
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(series.Name)
		items = append(items, fmt.Sprintf("%s %s", symbol, name))
	}
	return tuistyles.SubtitleStyle.Render(strings.Join(items, "  "))
}

// formatChartValue abbreviates Y-axis values to fit the axis gutter.
func formatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
