// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-glossary/internal/config"
)

func initCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "title",
			Usage:   "index page `TITLE`",
			EnvVars: []string{"GLOSSGEN_TITLE"},
		},
		&cli.StringFlag{
			Name:    "heading",
			Usage:   "index page `HEADING`",
			EnvVars: []string{"GLOSSGEN_HEADING"},
		},
	}

	return &cli.Command{
		Name:      "init",
		Usage:     "Write a config file",
		ArgsUsage: "FILE",
		Description: "Write the effective configuration, defaults overridden " +
			"by flags, to a new YAML config file.",
		Flags: append(flags, configFlags()...),
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("%w: expected 1 argument, got %d", ErrFlagParse, c.Args().Len())
			}
			path := c.Args().First()

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%w: %s", ErrConfigExists, path)
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			slog.Info("wrote config", "file", path)
			return nil
		},
	}
}
