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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	glossary "github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/render"
)

// prompt writes msg to w and reads a line from r.
func prompt(w io.Writer, r *bufio.Reader, msg string) (string, error) {
	if _, err := fmt.Fprint(w, msg); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading %q: %w", strings.TrimSpace(msg), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// generate writes the glossary pages.
func generate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	in := bufio.NewReader(c.App.Reader)
	input := c.String("input")
	if input == "" {
		input, err = prompt(c.App.Writer, in, "Input file to use: ")
		if err != nil {
			return err
		}
	}
	output := c.String("output")
	if output == "" {
		output, err = prompt(c.App.Writer, in, "Folder to save output to: ")
		if err != nil {
			return err
		}
	}

	g, err := glossary.Open(input, &glossary.Options{
		Separators: cfg.Separators,
	})
	if err != nil {
		return err
	}

	r, err := render.New(&render.Options{
		Title:   cfg.Title,
		Heading: cfg.Heading,
	})
	if err != nil {
		return err
	}

	w, err := render.NewDirWriter(output)
	if err != nil {
		return err
	}

	slog.Info("generating glossary", "input", input, "output", output, "terms", g.Len())
	if err := r.Render(g, w); err != nil {
		return err
	}
	slog.Info("generated glossary", "pages", g.Len()+1)

	return nil
}
