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
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-glossary/internal/config"
	"github.com/ianlewis/go-glossary/internal/logging"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrGlossgen is a parent error for all command errors.
var ErrGlossgen = errors.New("glossgen")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrGlossgen)

// ErrTermNotFound indicates a term is not in the glossary.
var ErrTermNotFound = fmt.Errorf("%w: term not found", ErrGlossgen)

// ErrConfigExists indicates that init would overwrite a config file.
var ErrConfigExists = fmt.Errorf("%w: config file exists", ErrGlossgen)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but the root command generates a glossary rather than dispatching.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// loadConfig loads the config file given by the --config flag, or the first
// config found in the default locations, and applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path == "" {
		for _, loc := range configLocations() {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	for name, field := range map[string]*string{
		"title":      &cfg.Title,
		"heading":    &cfg.Heading,
		"separators": &cfg.Separators,
		"log-level":  &cfg.LogLevel,
		"log-format": &cfg.LogFormat,
	} {
		if c.IsSet(name) {
			*field = c.String(name)
		}
	}

	if err := logging.Init(c.App.ErrWriter, cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return cfg, nil
}

// configFlags are flags shared by all commands.
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "read configuration from `FILE`",
			Aliases: []string{"c"},
			EnvVars: []string{"GLOSSGEN_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "separators",
			Usage:   "characters that separate words in definitions",
			EnvVars: []string{"GLOSSGEN_SEPARATORS"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log `LEVEL` (debug, info, warn, error)",
			EnvVars: []string{"GLOSSGEN_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log `FORMAT` (text, json)",
			EnvVars: []string{"GLOSSGEN_LOG_FORMAT"},
		},
	}
}

func newGlossgenApp() *cli.App {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Usage:   "read the glossary from `FILE`",
			Aliases: []string{"i"},
			EnvVars: []string{"GLOSSGEN_INPUT"},
		},
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write pages to `DIR`",
			Aliases: []string{"o"},
			EnvVars: []string{"GLOSSGEN_OUTPUT"},
		},
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
	flags = append(flags, configFlags()...)
	flags = append(flags,
		// Special flags are shown at the end.
		&cli.BoolFlag{
			Name:               "help",
			Usage:              "print this help text and exit",
			Aliases:            []string{"h"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "version",
			Usage:              "print version information and exit",
			Aliases:            []string{"V"},
			DisableDefaultText: true,
		},
	)

	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Generate cross-linked HTML glossaries.",
		Description: strings.Join([]string{
			"Reads a glossary file of terms and definitions and writes an",
			"index page and one page per term. Words in definitions that",
			"match other terms link to their pages.",
			"",
			"The input file and output directory are prompted for when",
			"not given as flags.",
		}, "\n"),
		Flags:           flags,
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		ErrWriter:       os.Stderr,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return printVersion(c)
			}
			return generate(c)
		},
		Commands: []*cli.Command{
			listCommand(),
			showCommand(),
			initCommand(),
		},
	}
}
