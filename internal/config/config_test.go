package config_test

import (
	"os"
	"testing"

	"github.com/kalenmd/qrgen/internal/config"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("/nonexistent/qrgen-config.yaml")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ECC != "medium" {
		t.Errorf("ECC = %q, want %q", cfg.ECC, "medium")
	}
	if cfg.MaxVersion != 40 {
		t.Errorf("MaxVersion = %d, want 40", cfg.MaxVersion)
	}
}

func TestLoad_EmptyFileReturnsDefaults(t *testing.T) {
	f, err := os.CreateTemp("", "*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	f.Close()

	cfg, err := config.Load(f.Name())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Border != 4 {
		t.Errorf("Border = %d, want 4", cfg.Border)
	}
}

func TestLoad_OverlaysFileOnDefaults(t *testing.T) {
	f, err := os.CreateTemp("", "*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	f.WriteString("ecc: high\nmin_version: 5\n")
	f.Close()

	cfg, err := config.Load(f.Name())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ECC != "high" {
		t.Errorf("ECC = %q, want %q", cfg.ECC, "high")
	}
	if cfg.MinVersion != 5 {
		t.Errorf("MinVersion = %d, want 5", cfg.MinVersion)
	}
	if cfg.MaxVersion != 40 {
		t.Errorf("MaxVersion = %d, want 40 (untouched default)", cfg.MaxVersion)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/nested/config.yaml"

	cfg := config.Defaults()
	cfg.OutputPath = "out.svg"
	cfg.OpenBrowser = true

	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.OutputPath != "out.svg" {
		t.Errorf("OutputPath = %q, want %q", loaded.OutputPath, "out.svg")
	}
	if !loaded.OpenBrowser {
		t.Error("OpenBrowser = false, want true")
	}
}
