// SPDX-License-Identifier: MIT

// Package config loads and validates axisep settings from YAML.
//
// Values absent from the file keep their defaults, and every loaded
// Config is checked with validator struct tags before use. Command-line
// flags are applied on top by the CLI, after Load.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/axisep/instance"
	"github.com/katalvlaran/axisep/separator"
)

// Error policies for a failed instance.
const (
	OnErrorHalt = "halt"
	OnErrorSkip = "skip"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every batch and CLI setting.
type Config struct {
	InputDir       string `yaml:"input_dir"`
	OutputDir      string `yaml:"output_dir"`
	InstancePrefix string `yaml:"instance_prefix" validate:"required,excludesall=/\\"`
	SolutionPrefix string `yaml:"solution_prefix" validate:"required,excludesall=/\\"`

	// First and Last bound the instance numbers a batch visits.
	First int `yaml:"first" validate:"gte=0"`
	Last  int `yaml:"last" validate:"gtefield=First"`

	// Capacity is the largest accepted point count per instance. Each
	// solver holds a dense n² relation, so 10000 points cost about 100 MB
	// per worker.
	Capacity int `yaml:"capacity" validate:"gte=1,lte=10000"`
	// Workers bounds how many instances are solved in parallel.
	Workers int    `yaml:"workers" validate:"gte=1,lte=256"`
	OnError string `yaml:"on_error" validate:"oneof=halt skip"`

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=auto text json"`

	// RenderDir, when set, receives a PNG per solved instance.
	RenderDir string `yaml:"render_dir,omitempty"`
	// MetricsFile, when set, receives the Prometheus text exposition after a batch.
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// Default returns the configuration used when no file is given: instances
// 1..99 in the working directory, sequential, halting on the first error.
func Default() Config {
	return Config{
		InputDir:       ".",
		OutputDir:      ".",
		InstancePrefix: instance.DefaultInstancePrefix,
		SolutionPrefix: instance.DefaultSolutionPrefix,
		First:          1,
		Last:           99,
		Capacity:       separator.DefaultCapacity,
		Workers:        1,
		OnError:        OnErrorHalt,
		LogLevel:       "info",
		LogFormat:      "auto",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks c against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s fails %q (value %v): %w", fe.Field(), fe.Tag(), fe.Value(), ErrInvalid)
		}

		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}

	return nil
}

// Load reads path over Default and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Write stores cfg at path as YAML, creating parent directories.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Store returns the instance.Store described by c.
func (c Config) Store() instance.Store {
	return instance.Store{
		InputDir:       c.InputDir,
		OutputDir:      c.OutputDir,
		InstancePrefix: c.InstancePrefix,
		SolutionPrefix: c.SolutionPrefix,
	}
}
