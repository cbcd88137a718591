// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config handles the configuration of a gocase harness run.
// Values are taken from the defaults, then an optional YAML file, then
// an optional .env file and finally the process environment; a later
// source overrides an earlier one.
package config

import (
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvWorkers  = "GOCASE_WORKERS"
	EnvLogLevel = "GOCASE_LOG_LEVEL"
	EnvFilter   = "GOCASE_FILTER"
	EnvRelTol   = "GOCASE_REL_TOL"
	EnvAbsTol   = "GOCASE_ABS_TOL"
)

// Config holds the configuration of a harness run.
type Config struct {

	// Workers is the number of invocations run concurrently.
	Workers int `yaml:"workers"`

	// LogLevel of the structured logger: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Filter is a regular expression selecting the cases to run by
	// name; empty selects all.
	Filter string `yaml:"filter"`

	// Tolerance is the default tolerance of approximate comparisons.
	Tolerance Tolerance `yaml:"tolerance"`
}

// Tolerance holds the default relative and absolute tolerances.
type Tolerance struct {
	Rel float64 `yaml:"rel"`
	Abs float64 `yaml:"abs"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Workers:   1,
		LogLevel:  "warn",
		Tolerance: Tolerance{Rel: 1e-6, Abs: 1e-12},
	}
}

// Load returns the configuration from the defaults overridden by given
// YAML file (if path isn't empty), a .env file in the working directory
// (if it exists) and the environment.  The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		bb, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "config: read")
		}
		if err := yaml.Unmarshal(bb, cfg); err != nil {
			return nil, errors.Wrapf(err, "config: parse %s", path)
		}
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "config: .env")
	}
	if err := cfg.fromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fromEnv() error {
	if v, ok := os.LookupEnv(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "config: %s", EnvWorkers)
		}
		c.Workers = n
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvFilter); ok {
		c.Filter = v
	}
	for env, dst := range map[string]*float64{
		EnvRelTol: &c.Tolerance.Rel, EnvAbsTol: &c.Tolerance.Abs} {
		v, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "config: %s", env)
		}
		*dst = f
	}
	return nil
}

// Validate rejects a non-positive number of workers, negative
// tolerances and an invalid filter.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Errorf("config: workers must be positive; got %d",
			c.Workers)
	}
	if c.Tolerance.Rel < 0 || c.Tolerance.Abs < 0 {
		return errors.Errorf("config: negative tolerance %+v", c.Tolerance)
	}
	if _, err := c.FilterRe(); err != nil {
		return err
	}
	return nil
}

// FilterRe returns the compiled filter; nil if no filter is set.
func (c *Config) FilterRe() (*regexp.Regexp, error) {
	if c.Filter == "" {
		return nil, nil
	}
	re, err := regexp.Compile(c.Filter)
	if err != nil {
		return nil, errors.Wrap(err, "config: filter")
	}
	return re, nil
}
