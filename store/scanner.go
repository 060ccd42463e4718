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

package store

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// maxRecordSize is the largest record the Scanner will read.
const maxRecordSize = 1 << 20

// Record is a glossary file entry.
type Record struct {
	// Term is the first line of the record.
	Term string

	// Definition is the remaining lines of the record joined by single
	// spaces.
	Definition string
}

// Scanner scans glossary records from start to end.
type Scanner struct {
	s   *bufio.Scanner
	rec *Record
}

// NewScanner returns a new Scanner that reads records from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		s: bufio.NewScanner(r),
	}
	s.s.Buffer(make([]byte, 0, 4096), maxRecordSize)
	s.s.Split(splitRecord)
	return s
}

// Scan advances to the next record. It returns false if the scan stops either
// by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		if rec := parseRecord(s.s.Text()); rec != nil {
			s.rec = rec
			return true
		}
	}
	s.rec = nil
	return false
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Record returns the most recent record read by Scan.
func (s *Scanner) Record() *Record {
	return s.rec
}

// parseRecord builds a record from the lines of a token. It returns nil if
// the token has no term.
func parseRecord(token string) *Record {
	var lines []string
	for _, l := range strings.Split(token, "\n") {
		l = strings.TrimSuffix(l, "\r")
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return &Record{
		Term:       lines[0],
		Definition: strings.Join(lines[1:], " "),
	}
}

// splitRecord splits the input into records. Records are separated by one or
// more blank lines.
func splitRecord(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// Skip blank lines before the record.
	start := 0
	for start < len(data) {
		i := bytes.IndexByte(data[start:], '\n')
		if i < 0 || !isBlank(data[start:start+i]) {
			break
		}
		start += i + 1
	}

	for end := start; end < len(data); {
		i := bytes.IndexByte(data[end:], '\n')
		if i < 0 {
			break
		}
		if isBlank(data[end : end+i]) {
			// Found the blank line ending the record.
			return end + i + 1, data[start:end], nil
		}
		end += i + 1
	}

	if atEOF {
		if start == len(data) {
			return start, nil, nil
		}
		return len(data), data[start:], nil
	}

	// Request more data.
	return start, nil, nil
}

func isBlank(line []byte) bool {
	return len(line) == 0 || (len(line) == 1 && line[0] == '\r')
}
