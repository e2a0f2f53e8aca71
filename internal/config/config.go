package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete qacode configuration.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Log      LogConfig      `mapstructure:"log"`
	Output   OutputConfig   `mapstructure:"output"`
	Witness  WitnessConfig  `mapstructure:"witness"`
	Chart    ChartConfig    `mapstructure:"chart"`
}

// AnalysisConfig controls the decomposition itself.
type AnalysisConfig struct {
	// ValidatePrime rejects a composite characteristic instead of warning.
	ValidatePrime bool `mapstructure:"validate_prime"`
	// Parallelism bounds concurrent sub-algebra evaluation.
	Parallelism int `mapstructure:"parallelism"`
}

// LogConfig sets the go-log level for every qacode logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Format is "table" or "json".
	Format string `mapstructure:"format"`
	// StripTrivial drops the trailing "[1]" of component names for semisimple algebras.
	StripTrivial bool `mapstructure:"strip_trivial"`
}

// WitnessConfig bounds residue field searches.
type WitnessConfig struct {
	MaxDegree int `mapstructure:"max_degree"`
}

// ChartConfig sizes the HTML chart.
type ChartConfig struct {
	Width  string `mapstructure:"width"`
	Height string `mapstructure:"height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{ValidatePrime: true, Parallelism: 1},
		Log:      LogConfig{Level: "warn"},
		Output:   OutputConfig{Format: "table", StripTrivial: true},
		Witness:  WitnessConfig{MaxDegree: 48},
		Chart:    ChartConfig{Width: "1200px", Height: "600px"},
	}
}

// SetDefaults registers Default() with viper.
func SetDefaults() {
	d := Default()
	viper.SetDefault("analysis.validate_prime", d.Analysis.ValidatePrime)
	viper.SetDefault("analysis.parallelism", d.Analysis.Parallelism)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("output.format", d.Output.Format)
	viper.SetDefault("output.strip_trivial", d.Output.StripTrivial)
	viper.SetDefault("witness.max_degree", d.Witness.MaxDegree)
	viper.SetDefault("chart.width", d.Chart.Width)
	viper.SetDefault("chart.height", d.Chart.Height)
}

// Load reads the configuration from viper and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidLogLevels lists the accepted log.level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidOutputFormats lists the accepted output.format values.
func ValidOutputFormats() []string {
	return []string{"table", "json"}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Analysis.Parallelism < 1:
		return fmt.Errorf("config: analysis.parallelism must be >= 1 (got %d)", c.Analysis.Parallelism)
	case !slices.Contains(ValidLogLevels(), strings.ToLower(c.Log.Level)):
		return fmt.Errorf("config: log.level must be one of %v (got %q)", ValidLogLevels(), c.Log.Level)
	case !slices.Contains(ValidOutputFormats(), c.Output.Format):
		return fmt.Errorf("config: output.format must be one of %v (got %q)", ValidOutputFormats(), c.Output.Format)
	case c.Witness.MaxDegree < 1:
		return fmt.Errorf("config: witness.max_degree must be >= 1 (got %d)", c.Witness.MaxDegree)
	}
	return nil
}

// ConfigDir returns the directory searched for qacode.yaml.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "qacode")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".qacode"
	}
	return filepath.Join(home, ".config", "qacode")
}
