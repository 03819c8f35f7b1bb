package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/firecalc/firecalc/internal/config"
	"github.com/firecalc/firecalc/internal/domain"
)

// Update handles keyboard and resize events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.NextMode):
		m.mode = (m.mode + 1) % 3
		m.focus = 0
		m.syncFocus()
		m.recompute()

	case key.Matches(msg, keys.PrevMode):
		m.mode = (m.mode + 2) % 3
		m.focus = 0
		m.syncFocus()
		m.recompute()

	case key.Matches(msg, keys.Up):
		m.focus--
		m.syncFocus()

	case key.Matches(msg, keys.Down):
		m.focus++
		m.syncFocus()

	case key.Matches(msg, keys.Decrease):
		s := m.current()[m.focus]
		s.Decrement()
		m.propagate(s)
		m.recompute()

	case key.Matches(msg, keys.Increase):
		s := m.current()[m.focus]
		s.Increment()
		m.propagate(s)
		m.recompute()

	case key.Matches(msg, keys.Cycle):
		if m.mode == ModeStochastic {
			m.scenario = nextScenario(m.scenario)
			m.recompute()
		}

	case key.Matches(msg, keys.Save):
		m.saveParams()

	case key.Matches(msg, keys.Open):
		m.loadParams()
	}

	return m, nil
}

func nextScenario(s domain.ReturnScenario) domain.ReturnScenario {
	switch s {
	case domain.ScenarioFixed:
		return domain.ScenarioStressed
	case domain.ScenarioStressed:
		return domain.ScenarioStochastic
	default:
		return domain.ScenarioFixed
	}
}

// saveParams snapshots the active mode's sliders plus the scenario
// selector. Loading applies a field to every mode that has it.
func (m *Model) saveParams() {
	if m.store == nil {
		m.status = "no parameter store configured"
		return
	}

	fields := map[string]string{
		config.FieldScenario: string(m.scenario),
	}
	for _, s := range m.current() {
		fields[s.Field] = strconv.FormatFloat(s.Value, 'f', -1, 64)
	}

	if err := m.store.Save(config.NewParamSnapshot(fields)); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = "parameters saved"
}

// loadParams restores slider values from the store. Fields missing from
// the snapshot keep their current value.
func (m *Model) loadParams() {
	if m.store == nil {
		m.status = "no parameter store configured"
		return
	}

	snap, err := m.store.Load()
	if err != nil {
		m.err = fmt.Errorf("failed to load parameters: %w", err)
		return
	}
	m.err = nil

	if raw, ok := snap.Fields[config.FieldScenario]; ok {
		if sc := domain.ReturnScenario(raw); sc.Valid() {
			m.scenario = sc
		}
	}
	for _, sliders := range m.sliders {
		for _, s := range sliders {
			raw, ok := snap.Fields[s.Field]
			if !ok {
				continue
			}
			if value, err := strconv.ParseFloat(raw, 64); err == nil {
				s.SetValue(value)
			}
		}
	}

	m.recompute()
	m.status = "parameters loaded"
}
