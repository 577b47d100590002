package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"portfolio-montecarlo/internal/montecarlo"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// DataFile points at a local price table (CSV or JSON). Relative paths
	// are resolved against the config file directory first.
	DataFile   string           `yaml:"data_file"`
	Portfolio  PortfolioConfig  `yaml:"portfolio"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type PortfolioConfig struct {
	Name     string             `yaml:"name"`
	Holdings map[string]float64 `yaml:"holdings"`
}

type SimulationConfig struct {
	Mode           string  `yaml:"mode"`
	NSimulations   int     `yaml:"n_simulations"`
	NSteps         int     `yaml:"n_steps"`
	RiskFreeRate   float64 `yaml:"risk_free_rate"`
	Alpha          float64 `yaml:"alpha"`
	InitialCapital float64 `yaml:"initial_capital"`
	Seed           int64   `yaml:"seed"`
}

// DefaultSimulation returns the parameters used when a config leaves them
// out: a one-year portfolio-mode run at the usual 5% significance level.
func DefaultSimulation() SimulationConfig {
	return SimulationConfig{
		Mode:           string(montecarlo.ModePortfolio),
		NSimulations:   1000,
		NSteps:         252,
		Alpha:          0.05,
		InitialCapital: 10000,
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.Simulation = MergeSimulation(DefaultSimulation(), c.Simulation)
	if c.DataFile != "" && !filepath.IsAbs(c.DataFile) {
		// Prefer interpreting relative paths as relative to the config file
		// directory, falling back to the provided path if that doesn't exist.
		cand := filepath.Join(filepath.Dir(path), c.DataFile)
		if _, err := os.Stat(cand); err == nil {
			c.DataFile = cand
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the config without applying defaults or validating.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Portfolio.Holdings) == 0 {
		return errors.New("portfolio.holdings is required")
	}
	for asset, qty := range c.Portfolio.Holdings {
		if qty < 0 {
			return fmt.Errorf("portfolio.holdings[%s] must be >= 0, got %v", asset, qty)
		}
	}
	// Validate simulation parameters by constructing an engine.
	if _, err := montecarlo.New(c.Simulation.ToEngineConfig(), montecarlo.Mode(c.Simulation.Mode)); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	return nil
}

func (s SimulationConfig) ToEngineConfig() montecarlo.Config {
	return montecarlo.Config{
		NSimulations:   s.NSimulations,
		NSteps:         s.NSteps,
		RiskFreeRate:   s.RiskFreeRate,
		Alpha:          s.Alpha,
		InitialCapital: s.InitialCapital,
		Seed:           s.Seed,
	}
}

// MergeSimulation overlays non-zero fields from override onto base. Used to
// apply request or flag overrides on top of file or default parameters.
// A zero field means "not set"; configs wanting a zero risk-free rate or an
// unseeded run simply omit those keys.
func MergeSimulation(base, override SimulationConfig) SimulationConfig {
	out := base
	if override.Mode != "" {
		out.Mode = override.Mode
	}
	if override.NSimulations != 0 {
		out.NSimulations = override.NSimulations
	}
	if override.NSteps != 0 {
		out.NSteps = override.NSteps
	}
	if override.RiskFreeRate != 0 {
		out.RiskFreeRate = override.RiskFreeRate
	}
	if override.Alpha != 0 {
		out.Alpha = override.Alpha
	}
	if override.InitialCapital != 0 {
		out.InitialCapital = override.InitialCapital
	}
	if override.Seed != 0 {
		out.Seed = override.Seed
	}
	return out
}
