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

// Package render writes glossaries as HTML pages.
//
// A glossary is rendered as an index.html page listing every term, and one
// <term>.html page per term. Definitions are inserted as is and are not
// escaped.
package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	glossary "github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/link"
)

// IndexName is the file name of the index page.
const IndexName = "index.html"

const indexTmpl = `<html>
<head>
<title>{{.Title}}</title>
</head>
<body>
<p style="font-size:20pt;"><b><u>{{.Heading}}</u></b></p>

<p style="font-size:16pt;"><b>Index</b></p>
<ul>
{{- range .Terms}}
<li><a href="{{href .}}">{{.}}</a></li>
{{- end}}
</ul>
</body>
</html>
`

const pageTmpl = `<html>
<head>
<title>{{.Term}}</title>
</head>
<body>
<p style="color:red;"><b><i>{{upper .Term}}</i></b></p>

<p style="text-align:left;">{{.Linked}}.</p>

Return to <a href="{{.Index}}">index</a>.
</body>
</html>
`

// Options are options for a Renderer.
type Options struct {
	// Title is the title of the index page.
	Title string

	// Heading is the heading shown at the top of the index page.
	Heading string
}

// DefaultOptions is the default options for a Renderer.
var DefaultOptions = &Options{
	Title:   "Glossary",
	Heading: "Glossary",
}

// Renderer renders glossary pages.
type Renderer struct {
	title   string
	heading string

	index *template.Template
	page  *template.Template
}

// New returns a new Renderer.
func New(opts *Options) (*Renderer, error) {
	if opts == nil {
		opts = DefaultOptions
	}

	r := &Renderer{
		title:   DefaultOptions.Title,
		heading: DefaultOptions.Heading,
	}
	if opts.Title != "" {
		r.title = opts.Title
	}
	if opts.Heading != "" {
		r.heading = opts.Heading
	}

	upper := cases.Upper(language.Und)
	funcs := template.FuncMap{
		"href":  link.PageHref,
		"upper": upper.String,
	}

	var err error
	r.index, err = template.New("index").Funcs(funcs).Parse(indexTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}
	r.page, err = template.New("page").Funcs(funcs).Parse(pageTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return r, nil
}

// Index returns the index page listing terms in the given order.
func (r *Renderer) Index(terms []string) ([]byte, error) {
	var b bytes.Buffer
	err := r.index.Execute(&b, struct {
		Title   string
		Heading string
		Terms   []string
	}{
		Title:   r.title,
		Heading: r.heading,
		Terms:   terms,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering index: %w", err)
	}
	return b.Bytes(), nil
}

// Page returns the page for a glossary entry.
func (r *Renderer) Page(e *glossary.Entry) ([]byte, error) {
	var b bytes.Buffer
	err := r.page.Execute(&b, struct {
		Term   string
		Linked string
		Index  string
	}{
		Term:   e.Title(),
		Linked: e.Linked(),
		Index:  IndexName,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page for %q: %w", e.Title(), err)
	}
	return b.Bytes(), nil
}

// Render writes a page for every entry of g followed by the index page.
func (r *Renderer) Render(g *glossary.Glossary, w Writer) error {
	entries := g.Entries()
	for _, e := range entries {
		b, err := r.Page(e)
		if err != nil {
			return err
		}
		name := link.PageHref(e.Title())
		if err := w.WriteFile(name, b); err != nil {
			return fmt.Errorf("writing %q: %w", name, err)
		}
		slog.Debug("wrote page", "term", e.Title(), "file", name)
	}

	b, err := r.Index(g.Terms())
	if err != nil {
		return err
	}
	if err := w.WriteFile(IndexName, b); err != nil {
		return fmt.Errorf("writing %q: %w", IndexName, err)
	}
	slog.Debug("wrote index", "file", IndexName, "terms", len(entries))

	return nil
}
