package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firecalc/firecalc/internal/config"
	"github.com/firecalc/firecalc/internal/domain"
)

// memStore keeps snapshots in memory for tests.
type memStore struct {
	snap  config.ParamSnapshot
	saved bool
}

func (s *memStore) Save(snap config.ParamSnapshot) error {
	s.snap = snap
	s.saved = true
	return nil
}

func (s *memStore) Load() (config.ParamSnapshot, error) {
	return s.snap, nil
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestNewModelComputesInitialProjection(t *testing.T) {
	m := NewModel(&memStore{})

	require.NotNil(t, m.projection)
	assert.Nil(t, m.goal)
	assert.Len(t, m.projection.Balances, 51)
}

func TestModeCycling(t *testing.T) {
	m := NewModel(&memStore{})

	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)
	assert.Equal(t, ModeStochastic, m.mode)
	assert.NotNil(t, m.projection)

	next, _ = m.Update(keyMsg("tab"))
	m = next.(Model)
	assert.Equal(t, ModeGoal, m.mode)
	require.NotNil(t, m.goal)
	assert.Nil(t, m.projection)

	next, _ = m.Update(keyMsg("tab"))
	m = next.(Model)
	assert.Equal(t, ModeDrawdown, m.mode)
}

func TestSliderAdjustmentRecomputes(t *testing.T) {
	m := NewModel(&memStore{})
	before := m.projection.FinalBalance()

	// First slider is present value; one step right adds 50k.
	next, _ := m.Update(keyMsg("right"))
	m = next.(Model)

	assert.False(t, m.projection.FinalBalance().Equal(before))
	assert.Equal(t, 1050000.0, m.current()[0].Value)
}

func TestFocusNavigation(t *testing.T) {
	m := NewModel(&memStore{})
	assert.True(t, m.current()[0].IsFocused)

	next, _ := m.Update(keyMsg("down"))
	m = next.(Model)
	assert.False(t, m.current()[0].IsFocused)
	assert.True(t, m.current()[1].IsFocused)

	// Focus saturates at the ends.
	for i := 0; i < 20; i++ {
		next, _ = m.Update(keyMsg("down"))
		m = next.(Model)
	}
	assert.True(t, m.current()[len(m.current())-1].IsFocused)
}

func TestScenarioCycleOnlyInStochasticMode(t *testing.T) {
	m := NewModel(&memStore{})
	initial := m.scenario

	next, _ := m.Update(keyMsg("x"))
	m = next.(Model)
	assert.Equal(t, initial, m.scenario, "drawdown mode must ignore the scenario key")

	next, _ = m.Update(keyMsg("tab"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("x"))
	m = next.(Model)
	assert.NotEqual(t, initial, m.scenario)
	assert.True(t, m.scenario.Valid())
}

func TestSaveAndLoadParams(t *testing.T) {
	store := &memStore{}
	m := NewModel(store)

	// Bump present value, save, reset, load.
	next, _ := m.Update(keyMsg("right"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("s"))
	m = next.(Model)
	require.True(t, store.saved)
	assert.Equal(t, "parameters saved", m.status)

	fresh := NewModel(store)
	assert.Equal(t, 1000000.0, fresh.current()[0].Value)

	next, _ = fresh.Update(keyMsg("o"))
	fresh = next.(Model)
	assert.Equal(t, 1050000.0, fresh.current()[0].Value)
	assert.Equal(t, "parameters loaded", fresh.status)
}

func TestGoalModeRendersMetrics(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time {
		return time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	}
	defer func() { timeNow = restore }()

	m := NewModel(&memStore{})
	m.mode = ModeGoal
	m.recompute()

	require.NotNil(t, m.goal)
	assert.Equal(t, domain.GoalStatusOK, m.goal.Status)

	view := m.View()
	assert.Contains(t, view, "Target amount")
	assert.Contains(t, view, "Time to goal")
	assert.Contains(t, view, "months away")
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	m := NewModel(&memStore{})
	for i := 0; i < 3; i++ {
		assert.NotEmpty(t, m.View())
		next, _ := m.Update(keyMsg("tab"))
		m = next.(Model)
	}
}
