package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/heatcurve/internal/curve"
)

const (
	DefaultTheme       = "ocean"
	DefaultLogLevel    = "info"
	DefaultChartHeight = 15
	DefaultChartWidth  = 0 // one column per sample
)

type Config struct {
	TargetTemp float64     `yaml:"target_temp"`
	HeatCurve  float64     `yaml:"heat_curve"`
	Theme      string      `yaml:"theme"`
	LogLevel   string      `yaml:"log_level"`
	Chart      ChartConfig `yaml:"chart"`
}

type ChartConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		TargetTemp: curve.DefaultTarget,
		HeatCurve:  curve.DefaultHeatCurve,
		Theme:      DefaultTheme,
		LogLevel:   DefaultLogLevel,
		Chart: ChartConfig{
			Height: DefaultChartHeight,
			Width:  DefaultChartWidth,
		},
	}
}

// Load reads a YAML file over the defaults and validates the curve inputs.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver is Load with base in place of the defaults. Keys missing from the
// file keep base's values; base itself is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Params().Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() curve.Params {
	return curve.Params{TargetTemp: c.TargetTemp, HeatCurve: c.HeatCurve}
}

// ApplyPreset copies the preset's curve inputs into c.
func (c *Config) ApplyPreset(p *Preset) {
	c.TargetTemp = p.TargetTemp
	c.HeatCurve = p.HeatCurve
}
