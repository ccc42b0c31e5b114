package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/heatcurve/internal/curve"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TargetTemp != 21 {
		t.Errorf("expected target 21, got %f", cfg.TargetTemp)
	}
	if cfg.HeatCurve != 1.5 {
		t.Errorf("expected heat curve 1.5, got %f", cfg.HeatCurve)
	}
	if cfg.Chart.Height <= 0 {
		t.Error("chart height should be positive")
	}
	if err := cfg.Params().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatcurve.yaml")
	data := []byte("target_temp: 20.5\nheat_curve: 0.8\ntheme: minimal\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.TargetTemp != 20.5 || cfg.HeatCurve != 0.8 {
		t.Errorf("unexpected params: %+v", cfg.Params())
	}
	if cfg.Theme != "minimal" {
		t.Errorf("expected theme minimal, got %s", cfg.Theme)
	}
	// unset keys keep their defaults
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected log level %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.Chart.Height != DefaultChartHeight {
		t.Errorf("expected chart height %d, got %d", DefaultChartHeight, cfg.Chart.Height)
	}
}

func TestLoad_OutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatcurve.yaml")
	if err := os.WriteFile(path, []byte("heat_curve: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, curve.ErrHeatCurveOutOfRange) {
		t.Errorf("expected ErrHeatCurveOutOfRange, got %v", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatcurve.yaml")
	cfg := DefaultConfig()
	cfg.HeatCurve = 2.25

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("underfloor")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.HeatCurve != 0.5 {
		t.Errorf("expected heat curve 0.5, got %f", p.HeatCurve)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := DefaultConfig()
		cfg.ApplyPreset(GetPreset(name))
		if err := cfg.Params().Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestLoadOver_KeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatcurve.yaml")
	if err := os.WriteFile(path, []byte("target_temp: 19\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := DefaultConfig()
	base.ApplyPreset(GetPreset("underfloor"))

	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.TargetTemp != 19 {
		t.Errorf("expected file target 19, got %f", cfg.TargetTemp)
	}
	if cfg.HeatCurve != 0.5 {
		t.Errorf("expected preset heat curve 0.5, got %f", cfg.HeatCurve)
	}
	if base.TargetTemp != 21 {
		t.Error("base was modified")
	}
}
