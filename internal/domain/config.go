package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioKind names which calculator a scenario exercises.
type ScenarioKind string

const (
	KindDrawdown   ScenarioKind = "drawdown"
	KindGoal       ScenarioKind = "goal"
	KindStochastic ScenarioKind = "stochastic"
)

// Valid reports whether the kind is one of the known calculators.
func (k ScenarioKind) Valid() bool {
	switch k {
	case KindDrawdown, KindGoal, KindStochastic:
		return true
	}
	return false
}

// GlobalAssumptions supply fallback values for scenarios that omit a
// field. Rates are decimal fractions.
type GlobalAssumptions struct {
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflationRate"`
	MeanReturn    decimal.Decimal `yaml:"mean_return" json:"meanReturn"`
	StdDev        decimal.Decimal `yaml:"std_dev" json:"stdDev"`
	Horizon       int             `yaml:"horizon" json:"horizon"`
}

// Scenario is one named parameter set in a configuration file. Exactly
// one of the parameter blocks must be set, matching Kind.
type Scenario struct {
	Name       string                `yaml:"name" json:"name"`
	Kind       ScenarioKind          `yaml:"kind" json:"kind"`
	Drawdown   *DrawdownParameters   `yaml:"drawdown,omitempty" json:"drawdown,omitempty"`
	Goal       *GoalInputs           `yaml:"goal,omitempty" json:"goal,omitempty"`
	Stochastic *StochasticParameters `yaml:"stochastic,omitempty" json:"stochastic,omitempty"`

	// MonteCarloRuns, when positive on a stochastic scenario, also runs
	// the Monte Carlo aggregation with this many runs.
	MonteCarloRuns int `yaml:"monte_carlo_runs,omitempty" json:"monteCarloRuns,omitempty"`
}

// Configuration is a parsed scenario file.
type Configuration struct {
	Assumptions GlobalAssumptions `yaml:"assumptions" json:"assumptions"`
	Scenarios   []Scenario        `yaml:"scenarios" json:"scenarios"`
}

// ScenarioResult is the outcome of running one scenario. The populated
// field matches the scenario kind.
type ScenarioResult struct {
	Name       string            `json:"name"`
	Kind       ScenarioKind      `json:"kind"`
	Projection *ProjectionResult `json:"projection,omitempty"`
	Goal       *GoalResult       `json:"goal,omitempty"`
	MonteCarlo *MonteCarloResult `json:"monteCarlo,omitempty"`
}

// Comparison collects the results of every scenario in a configuration.
type Comparison struct {
	ConfigPath string           `json:"configPath,omitempty"`
	Results    []ScenarioResult `json:"results"`
}
