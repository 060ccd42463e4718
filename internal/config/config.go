// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads glossgen configuration files.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-glossary/span"
)

// Config is the glossgen configuration.
type Config struct {
	// Title is the title of the index page.
	Title string `yaml:"title"`

	// Heading is the heading of the index page.
	Heading string `yaml:"heading"`

	// Separators are the runes that delimit words in definitions.
	Separators string `yaml:"separators"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is one of text or json.
	LogFormat string `yaml:"log_format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Title:      "Glossary",
		Heading:    "Glossary",
		Separators: span.DefaultSeparators,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads the configuration at path. Defaults are returned if the file
// does not exist, and fill in any fields the file leaves empty.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Title == "" {
		cfg.Title = d.Title
	}
	if cfg.Heading == "" {
		cfg.Heading = d.Heading
	}
	if cfg.Separators == "" {
		cfg.Separators = d.Separators
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = d.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = d.LogFormat
	}
}
