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
	"fmt"

	"github.com/urfave/cli/v2"

	glossary "github.com/ianlewis/go-glossary"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:        "show",
		Usage:       "Show a glossary entry",
		ArgsUsage:   "FILE TERM",
		Description: "Print a term's definition from a glossary file as plain text.",
		Flags:       configFlags(),
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("%w: expected 2 arguments, got %d", ErrFlagParse, c.Args().Len())
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			g, err := glossary.Open(c.Args().Get(0), &glossary.Options{
				Separators: cfg.Separators,
			})
			if err != nil {
				return err
			}

			term := c.Args().Get(1)
			e, ok := g.Entry(term)
			if !ok {
				return fmt.Errorf("%w: %q", ErrTermNotFound, term)
			}

			if _, err := fmt.Fprint(c.App.Writer, e); err != nil {
				return fmt.Errorf("printing entry: %w", err)
			}
			return nil
		},
	}
}
