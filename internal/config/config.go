// Package config loads the YAML configuration for the fuzz and bench
// harness commands (worker counts, trial counts, seed, alphabet
// presets), following the same yaml.v3 struct-tag style as
// internal/logger/zap.Config.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AlphabetPreset names a base and the alphabet to use for it, letting
// the harness config reuse the same named bases spec.md calls out
// (-3,-2,2,3,8,10,16,75,128) without repeating the alphabet string at
// every call site.
type AlphabetPreset struct {
	Base  int    `yaml:"base"`
	Chars string `yaml:"chars"`
}

// HarnessConfig configures a fuzz or bench run. The fuzz and bench
// commands read Workers, Chains, Iterations, Decay, Verbose and
// Alphabets; Seed and Logging are loaded but neither command uses them
// (fuzz seeds its chains randomly).
type HarnessConfig struct {
	Workers    int              `yaml:"workers"`
	Chains     int              `yaml:"chains"`
	Iterations int              `yaml:"iterations"`
	Decay      float64          `yaml:"decay"`
	Seed       uint64           `yaml:"seed"`
	Verbose    bool             `yaml:"verbose"`
	Alphabets  []AlphabetPreset `yaml:"alphabets"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LoggingConfig mirrors internal/logger/zap.Config's fields so one YAML
// file can carry logger settings; the CLI does not build its logger
// from it.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Encoding   string `yaml:"encoding"`
	OutputPath string `yaml:"output_path"`
}

// Default returns sane defaults, applied before a config file's values
// are overlaid on top so a partial YAML file is always valid.
func Default() HarnessConfig {
	return HarnessConfig{
		Workers:    0, // 0 means runtime.NumCPU()
		Chains:     4,
		Iterations: 100_000,
		Decay:      0.9999,
		Seed:       1,
		Alphabets: []AlphabetPreset{
			{Base: 10, Chars: "0123456789"},
			{Base: -10, Chars: "0123456789"},
			{Base: 2, Chars: "01"},
			{Base: -2, Chars: "01"},
			{Base: 3, Chars: "012"},
			{Base: -3, Chars: "012"},
			{Base: 8, Chars: "01234567"},
			{Base: 16, Chars: "0123456789abcdef"},
		},
		Logging: LoggingConfig{Level: "info", Encoding: "console", OutputPath: "stderr"},
	}
}

// Load reads a YAML file at path and overlays it onto Default().
func Load(path string) (HarnessConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the config is usable before a harness run
// starts, rather than failing partway through a long fuzz session.
func (c HarnessConfig) Validate() error {
	if c.Chains <= 0 {
		return fmt.Errorf("config: chains must be > 0, got %d", c.Chains)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("config: iterations must be > 0, got %d", c.Iterations)
	}
	if c.Decay <= 0 || c.Decay >= 1 {
		return fmt.Errorf("config: decay must be in (0,1), got %f", c.Decay)
	}
	if len(c.Alphabets) == 0 {
		return fmt.Errorf("config: at least one alphabet preset is required")
	}
	for _, a := range c.Alphabets {
		absBase := a.Base
		if absBase < 0 {
			absBase = -absBase
		}
		if absBase < 2 {
			return fmt.Errorf("config: alphabet preset base %d is out of range", a.Base)
		}
		if len(a.Chars) != absBase {
			return fmt.Errorf("config: alphabet preset for base %d has %d characters, want %d", a.Base, len(a.Chars), absBase)
		}
	}
	return nil
}
