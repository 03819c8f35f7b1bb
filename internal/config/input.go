package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/firecalc/firecalc/internal/domain"
)

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		s := &config.Scenarios[i]
		if err := ip.validateScenario(s); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, s.Name, err)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
	}

	return nil
}

// validateAssumptions checks the global block for out-of-range values.
func (ip *InputParser) validateAssumptions(a *domain.GlobalAssumptions) error {
	if a.Horizon < 0 {
		return fmt.Errorf("horizon must not be negative, got %d", a.Horizon)
	}
	if a.StdDev.IsNegative() {
		return fmt.Errorf("standard deviation must not be negative")
	}
	negOne := decimal.NewFromInt(-1)
	if a.InflationRate.LessThan(negOne) {
		return fmt.Errorf("inflation rate below -100%%")
	}
	if a.MeanReturn.LessThan(negOne) {
		return fmt.Errorf("mean return below -100%%")
	}
	return nil
}

// validateScenario checks one scenario block.
func (ip *InputParser) validateScenario(s *domain.Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !s.Kind.Valid() {
		return fmt.Errorf("unknown scenario kind %q", s.Kind)
	}

	switch s.Kind {
	case domain.KindDrawdown:
		if s.Drawdown == nil {
			return fmt.Errorf("drawdown block is required")
		}
		if s.Drawdown.PresentValue.IsNegative() {
			return fmt.Errorf("present value must not be negative")
		}
		if s.Drawdown.AnnualWithdrawal.IsNegative() {
			return fmt.Errorf("annual withdrawal must not be negative")
		}

	case domain.KindGoal:
		if s.Goal == nil {
			return fmt.Errorf("goal block is required")
		}
		if s.Goal.PresentValue.IsNegative() {
			return fmt.Errorf("present value must not be negative")
		}
		if s.Goal.TargetMultiple.IsNegative() {
			return fmt.Errorf("target multiple must not be negative")
		}

	case domain.KindStochastic:
		if s.Stochastic == nil {
			return fmt.Errorf("stochastic block is required")
		}
		if s.Stochastic.PresentValue.IsNegative() {
			return fmt.Errorf("present value must not be negative")
		}
		if !s.Stochastic.Scenario.Valid() {
			return fmt.Errorf("unknown return scenario %q", s.Stochastic.Scenario)
		}
		if s.Stochastic.StdDev.IsNegative() {
			return fmt.Errorf("standard deviation must not be negative")
		}
		if s.MonteCarloRuns < 0 {
			return fmt.Errorf("monte carlo runs must not be negative, got %d", s.MonteCarloRuns)
		}
	}

	return nil
}
