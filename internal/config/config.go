// Package config loads the advisor's tunables from an optional YAML file.
// Everything has a documented default; a missing config file is not an
// error, the advisor just runs with defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tomyanzhiyuan/cookieclickervision/internal/advisor"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/economy"
	"github.com/tomyanzhiyuan/cookieclickervision/internal/rank"
)

// Configuration holds all tunables for the advisor
type Configuration struct {
	// Policy is the active ranking policy name: greedy or relaxed.
	Policy string

	// Alternatives bounds how many runner-up picks are shown.
	Alternatives int

	// PaybackCeilingSeconds is the greedy policy's maximum reasonable
	// payback horizon.
	PaybackCeilingSeconds float64

	Assumptions AssumptionsConfig
	Logging     LoggingConfig
}

// AssumptionsConfig mirrors the economic model's estimation parameters
type AssumptionsConfig struct {
	ClicksPerSecond   float64 `yaml:"clicksPerSecond,omitempty"`
	SynergyFactor     float64 `yaml:"synergyFactor,omitempty"`
	ClickWeight       float64 `yaml:"clickWeight,omitempty"`
	ConservativeBoost float64 `yaml:"conservativeBoost,omitempty"`
	MinDelta          float64 `yaml:"minDelta,omitempty"`
}

// LoggingConfig holds logging options
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // json, console
}

// Default returns the configuration used when no file is given
func Default() *Configuration {
	return &Configuration{
		Policy:                rank.GreedyName,
		Alternatives:          advisor.DefaultAlternatives,
		PaybackCeilingSeconds: rank.DefaultPaybackCeiling,
		Assumptions: AssumptionsConfig{
			ClicksPerSecond:   economy.AssumedClicksPerSecond,
			SynergyFactor:     economy.SynergyFactor,
			ClickWeight:       economy.ClickWeightFactor,
			ConservativeBoost: economy.ConservativeBoostFactor,
			MinDelta:          economy.MinMeaningfulDelta,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// LoadConfiguration loads the YAML config at configPath; an empty path
// yields the defaults
func LoadConfiguration(configPath string) (*Configuration, error) {
	if configPath == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	defaults := Default()
	v.SetDefault("policy", defaults.Policy)
	v.SetDefault("alternatives", defaults.Alternatives)
	v.SetDefault("paybackceilingseconds", defaults.PaybackCeilingSeconds)
	v.SetDefault("assumptions.clickspersecond", defaults.Assumptions.ClicksPerSecond)
	v.SetDefault("assumptions.synergyfactor", defaults.Assumptions.SynergyFactor)
	v.SetDefault("assumptions.clickweight", defaults.Assumptions.ClickWeight)
	v.SetDefault("assumptions.conservativeboost", defaults.Assumptions.ConservativeBoost)
	v.SetDefault("assumptions.mindelta", defaults.Assumptions.MinDelta)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Validate checks the configuration for out-of-range values
func (c *Configuration) Validate() error {
	if c.Policy != rank.GreedyName && c.Policy != rank.RelaxedName {
		return fmt.Errorf("unknown ranking policy %q, expected %s or %s",
			c.Policy, rank.GreedyName, rank.RelaxedName)
	}
	if c.Alternatives < 0 {
		return fmt.Errorf("alternatives must be non-negative, got %d", c.Alternatives)
	}
	if c.PaybackCeilingSeconds < 0 {
		return fmt.Errorf("payback ceiling must be non-negative, got %f", c.PaybackCeilingSeconds)
	}
	return nil
}

// EconomyAssumptions converts the config into model parameters
func (c *Configuration) EconomyAssumptions() economy.Assumptions {
	return economy.Assumptions{
		ClicksPerSecond:   c.Assumptions.ClicksPerSecond,
		SynergyFactor:     c.Assumptions.SynergyFactor,
		ClickWeight:       c.Assumptions.ClickWeight,
		ConservativeBoost: c.Assumptions.ConservativeBoost,
		MinDelta:          c.Assumptions.MinDelta,
	}
}

// RankingPolicy builds the configured policy instance
func (c *Configuration) RankingPolicy() rank.Policy {
	if c.Policy == rank.RelaxedName {
		return rank.NewRelaxed()
	}
	return rank.NewGreedy(c.PaybackCeilingSeconds)
}
