package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/firecalc/firecalc/internal/tui/tuistyles"
)

// ParamSlider is an adjustable numeric input rendered as a slider bar.
// Field ties the slider to a saved-parameter field name.
type ParamSlider struct {
	Label     string
	Field     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string // "%", "y", "$"
	Format    string // "%.2f", "%.0f"
	Width     int
	IsFocused bool
}

// NewParamSlider creates a slider with sensible display defaults.
func NewParamSlider(label, field string, value, min, max, step float64) *ParamSlider {
	return &ParamSlider{
		Label:  label,
		Field:  field,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Width:  26,
	}
}

// WithUnit sets the unit suffix.
func (p *ParamSlider) WithUnit(unit string) *ParamSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string.
func (p *ParamSlider) WithFormat(format string) *ParamSlider {
	p.Format = format
	return p
}

// Increment increases the value by one step, saturating at Max.
func (p *ParamSlider) Increment() {
	p.SetValue(p.Value + p.Step)
}

// Decrement decreases the value by one step, saturating at Min.
func (p *ParamSlider) Decrement() {
	p.SetValue(p.Value - p.Step)
}

// SetValue sets the value directly, clamping to the slider's range.
func (p *ParamSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// percentage returns the value's position in the range.
func (p *ParamSlider) percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Render returns the slider as a two-line block: label with value, then
// the bar.
func (p *ParamSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	valueStr := fmt.Sprintf(p.Format, p.Value)
	if p.Unit != "" {
		valueStr += p.Unit
	}

	var content strings.Builder
	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString(" ")
	content.WriteString(valueStyle.Render(valueStr))
	content.WriteString("\n")
	content.WriteString(p.renderBar())
	return content.String()
}

func (p *ParamSlider) renderBar() string {
	filled := int(math.Round(float64(p.Width) * p.percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = lipgloss.NewStyle().Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty := p.Width - filled; empty > 1 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")
	return bar.String()
}
