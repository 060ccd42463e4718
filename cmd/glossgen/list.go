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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	glossary "github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/span"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List glossary terms",
		ArgsUsage: "FILE",
		Description: "List the terms of a glossary file in index order with " +
			"the number of words in each definition and the number of terms " +
			"it links to.",
		Flags: configFlags(),
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("%w: expected 1 argument, got %d", ErrFlagParse, c.Args().Len())
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			g, err := glossary.Open(c.Args().First(), &glossary.Options{
				Separators: cfg.Separators,
			})
			if err != nil {
				return err
			}

			seps := g.Separators()
			tbl := table.New("Term", "Words", "Links").WithWriter(c.App.Writer)
			for _, e := range g.Entries() {
				var words int
				for s := range span.All(e.Definition(), seps) {
					if !s.Separator {
						words++
					}
				}
				tbl.AddRow(e.Title(), words, len(e.Links()))
			}
			tbl.Print()

			return nil
		},
	}
}
