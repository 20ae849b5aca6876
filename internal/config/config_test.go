package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Chains != Default().Chains {
		t.Errorf("Load(\"\") should return Default(), got chains=%d", cfg.Chains)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "harness.yaml")
	content := "chains: 8\niterations: 500\nseed: 42\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Chains != 8 {
		t.Errorf("chains = %d, want 8", cfg.Chains)
	}
	if cfg.Iterations != 500 {
		t.Errorf("iterations = %d, want 500", cfg.Iterations)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
	// Unset fields keep their defaults.
	if cfg.Decay != Default().Decay {
		t.Errorf("decay should keep default, got %f", cfg.Decay)
	}
	if len(cfg.Alphabets) == 0 {
		t.Error("alphabets should keep default preset list")
	}
}

func TestValidateRejectsBadAlphabetLength(t *testing.T) {
	cfg := Default()
	cfg.Alphabets = []AlphabetPreset{{Base: 10, Chars: "012"}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for mismatched alphabet length")
	}
}

func TestValidateRejectsZeroChains(t *testing.T) {
	cfg := Default()
	cfg.Chains = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for zero chains")
	}
}

func TestValidateRejectsDecayOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.Decay = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for decay out of (0,1)")
	}
}
