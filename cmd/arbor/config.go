package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/arbor"
)

const defaultConfigPath = "arbor.yaml"

// Config is the optional arbor.yaml next to the scripts being run.
type Config struct {
	Debug         bool   `yaml:"debug"`
	MaxTreeDepth  int    `yaml:"max_tree_depth" validate:"gte=0"`
	MaxChildCount int    `yaml:"max_child_count" validate:"gte=0"`
	LogLevel      string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	ShowGroups    bool   `yaml:"show_groups"`
	ShowStrays    bool   `yaml:"show_strays"`
}

var configValidate = validator.New()

// loadConfig reads and validates the config at path. A missing file is only
// an error when the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := configValidate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newRegistry builds a registry that logs to w with the configured level
// and debug checks.
func (c Config) newRegistry(w io.Writer) *arbor.Registry {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.level()}))
	return arbor.NewRegistry(
		arbor.WithLogger(logger),
		arbor.WithDebug(c.Debug),
		arbor.WithDebugThresholds(c.MaxTreeDepth, c.MaxChildCount),
	)
}
