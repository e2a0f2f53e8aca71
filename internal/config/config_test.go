package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Analysis.ValidatePrime)
	assert.Equal(t, 1, cfg.Analysis.Parallelism)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.True(t, cfg.Output.StripTrivial)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"parallelism", func(c *Config) { c.Analysis.Parallelism = 0 }},
		{"log_level", func(c *Config) { c.Log.Level = "verbose" }},
		{"format", func(c *Config) { c.Output.Format = "csv" }},
		{"witness", func(c *Config) { c.Witness.MaxDegree = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFileAndDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	path := filepath.Join(t.TempDir(), "qacode.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  parallelism: 4\noutput:\n  format: json\n"), 0o644))
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Analysis.Parallelism)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Analysis.ValidatePrime, "unset keys keep their defaults")
	assert.Equal(t, 48, cfg.Witness.MaxDegree)
}

func TestLoadRejectsInvalid(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()
	viper.Set("log.level", "loud")
	_, err := Load()
	assert.Error(t, err)
}

func TestConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "qacode"), ConfigDir())
}
