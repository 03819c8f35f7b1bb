package calculation

import (
	"fmt"
	"time"

	"github.com/firecalc/firecalc/internal/domain"
)

// Engine runs every scenario in a configuration through the matching
// calculator. Each run is a stateless pure computation; the engine only
// carries wiring (logger, batch sizing).
type Engine struct {
	logger Logger

	// MonteCarloRuns is the batch size for stochastic scenarios that
	// request Monte Carlo aggregation without specifying their own.
	MonteCarloRuns int
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{
		logger:         NopLogger{},
		MonteCarloRuns: DefaultMonteCarloRuns,
	}
}

// SetLogger replaces the engine's logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.logger = l
}

// RunScenarios executes all scenarios and collects their results. now is
// passed explicitly so goal target dates are testable.
func (e *Engine) RunScenarios(cfg *domain.Configuration, now time.Time) (*domain.Comparison, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}

	comparison := &domain.Comparison{
		Results: make([]domain.ScenarioResult, 0, len(cfg.Scenarios)),
	}

	for i := range cfg.Scenarios {
		scenario := applyAssumptions(cfg.Scenarios[i], cfg.Assumptions)
		result, err := e.runScenario(scenario, now)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		comparison.Results = append(comparison.Results, *result)
	}

	return comparison, nil
}

// runScenario dispatches one scenario to its calculator.
func (e *Engine) runScenario(s domain.Scenario, now time.Time) (*domain.ScenarioResult, error) {
	result := &domain.ScenarioResult{Name: s.Name, Kind: s.Kind}

	switch s.Kind {
	case domain.KindDrawdown:
		if s.Drawdown == nil {
			return nil, fmt.Errorf("missing drawdown parameters")
		}
		e.logger.Debugf("running drawdown scenario %q over %d periods", s.Name, s.Drawdown.Horizon)
		result.Projection = RunDrawdown(*s.Drawdown)

	case domain.KindGoal:
		if s.Goal == nil {
			return nil, fmt.Errorf("missing goal inputs")
		}
		e.logger.Debugf("solving goal scenario %q", s.Name)
		goal := SolveGoal(*s.Goal, now)
		result.Goal = &goal

	case domain.KindStochastic:
		if s.Stochastic == nil {
			return nil, fmt.Errorf("missing stochastic parameters")
		}
		e.logger.Debugf("running %s scenario %q over %d periods",
			s.Stochastic.Scenario, s.Name, s.Stochastic.Horizon)
		result.Projection = RunStochastic(*s.Stochastic)

		if s.MonteCarloRuns > 0 || s.Stochastic.Scenario == domain.ScenarioStochastic {
			runs := s.MonteCarloRuns
			if runs <= 0 {
				runs = e.MonteCarloRuns
			}
			e.logger.Infof("aggregating %d Monte Carlo runs for scenario %q", runs, s.Name)
			result.MonteCarlo = RunMonteCarlo(MonteCarloConfig{
				NumRuns: runs,
				Seed:    s.Stochastic.Seed,
				Params:  *s.Stochastic,
			})
		}

	default:
		return nil, fmt.Errorf("unknown scenario kind %q", s.Kind)
	}

	return result, nil
}

// applyAssumptions fills unset scenario fields from the global block.
func applyAssumptions(s domain.Scenario, a domain.GlobalAssumptions) domain.Scenario {
	if s.Drawdown != nil && s.Drawdown.Horizon == 0 {
		s.Drawdown.Horizon = a.Horizon
	}
	if s.Stochastic != nil {
		if s.Stochastic.Horizon == 0 {
			s.Stochastic.Horizon = a.Horizon
		}
		if s.Stochastic.InflationRate.IsZero() {
			s.Stochastic.InflationRate = a.InflationRate
		}
		if s.Stochastic.MeanReturn.IsZero() {
			s.Stochastic.MeanReturn = a.MeanReturn
		}
		if s.Stochastic.StdDev.IsZero() {
			s.Stochastic.StdDev = a.StdDev
		}
	}
	return s
}
