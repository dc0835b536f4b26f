// Package config holds qrgen's CLI defaults, loaded from a YAML file so
// flags don't have to be repeated on every invocation.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is qrgen's on-disk configuration.
type Config struct {
	ECC         string `yaml:"ecc"`
	MinVersion  int    `yaml:"min_version"`
	MaxVersion  int    `yaml:"max_version"`
	BoostECL    bool   `yaml:"boost_ecl"`
	Border      int    `yaml:"border"`
	OutputPath  string `yaml:"output_path"`
	OpenBrowser bool   `yaml:"open_browser"`
}

func defaults() *Config {
	return &Config{
		ECC:        "medium",
		MinVersion: 1,
		MaxVersion: 40,
		BoostECL:   true,
		Border:     4,
		OutputPath: "qrcode.svg",
	}
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return defaults()
}

// Load reads cfg from path, starting from Defaults and overlaying whatever
// fields are present in the file. A missing file is not an error; Load
// returns the defaults unchanged, letting the caller decide whether to
// Save them back out.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
