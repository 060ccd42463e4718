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

package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Compression is the compression used for a test glossary file.
type Compression int

const (
	// None writes the glossary as plain text.
	None Compression = iota

	// Gzip compresses the glossary with gzip.
	Gzip

	// DictZip compresses the glossary with dictzip.
	DictZip
)

// GlossaryOptions are options for writing a test glossary file.
type GlossaryOptions struct {
	// Ext is an optional file extension. Defaults to '.txt.gz' for Gzip,
	// '.txt.dz' for DictZip and '.txt' otherwise.
	Ext string

	// Compression is the compression to use.
	Compression Compression
}

// GetExt returns the file extension for the options.
func (o *GlossaryOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		switch o.Compression {
		case Gzip:
			return ".txt.gz"
		case DictZip:
			return ".txt.dz"
		case None:
		}
	}
	return ".txt"
}

// WriteGlossary writes text to a glossary file in a temporary directory and
// returns its path.
func WriteGlossary(t *testing.T, text string, opts *GlossaryOptions) string {
	t.Helper()
	if opts == nil {
		opts = &GlossaryOptions{}
	}

	path := filepath.Join(t.TempDir(), "glossary"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var z io.WriteCloser
	switch opts.Compression {
	case Gzip:
		z = gzip.NewWriter(f)
	case DictZip:
		z, err = dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
	case None:
	}

	if z == nil {
		if _, err := io.WriteString(f, text); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if _, err := io.WriteString(z, text); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}
