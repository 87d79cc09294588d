// Package config resolves engine settings from defaults, an optional
// YAML file and environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
		Roster  string `yaml:"roster"`
	} `yaml:"app"`

	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	var cfg Config
	cfg.App.DataDir = "data"
	cfg.App.Roster = "config/companies.csv"
	cfg.Schedule.Cron = "0 */6 * * *"
	return cfg
}

// Load resolves the config from path. A missing file is not an error,
// the defaults simply stand. Environment variables win over the file:
// OPENROLES_DATA_DIR, OPENROLES_ROSTER, OPENROLES_CRON.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// keep defaults
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	overlayEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func overlayEnv(cfg *Config) {
	if v := os.Getenv("OPENROLES_DATA_DIR"); v != "" {
		cfg.App.DataDir = v
	}
	if v := os.Getenv("OPENROLES_ROSTER"); v != "" {
		cfg.App.Roster = v
	}
	if v := os.Getenv("OPENROLES_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
}

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.DataDir == "" {
		errs = append(errs, "app.data_dir must not be empty")
	}
	if cfg.App.Roster == "" {
		errs = append(errs, "app.roster must not be empty")
	}
	if cfg.Schedule.Cron == "" {
		errs = append(errs, "schedule.cron must not be empty")
	}

	if len(errs) > 0 {
		out := "config validation failed:"
		for _, e := range errs {
			out += "\n- " + e
		}
		return errors.New(out)
	}
	return nil
}
