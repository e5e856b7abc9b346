package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Size != 20 {
		t.Errorf("default Size = %d, want 20", config.Size)
	}
	if config.AliveProbability != 30 {
		t.Errorf("default AliveProbability = %v, want 30", config.AliveProbability)
	}
	if config.FrameRate != time.Second {
		t.Errorf("default FrameRate = %v, want 1s", config.FrameRate)
	}
	if config.MaxGenerations != 0 {
		t.Errorf("default MaxGenerations = %d, want 0 (run forever)", config.MaxGenerations)
	}
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if config.Size != DefaultConfig().Size {
		t.Errorf("missing file should return defaults, got Size = %d", config.Size)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"size": 32, "alive_probability": 45, "stagnation_threshold": 7}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Size != 32 {
		t.Errorf("Size = %d, want 32", config.Size)
	}
	if config.AliveProbability != 45 {
		t.Errorf("AliveProbability = %v, want 45", config.AliveProbability)
	}
	if config.StagnationThreshold != 7 {
		t.Errorf("StagnationThreshold = %d, want 7", config.StagnationThreshold)
	}
	// Untouched fields keep their defaults.
	if config.FrameRate != time.Second {
		t.Errorf("FrameRate = %v, want default 1s", config.FrameRate)
	}
}

func TestLoadConfigMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
