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

// Package glossary implements a library for turning glossary text files into
// cross-linked glossaries in pure Go.
//
// A glossary is built in several steps:
//  1. The glossary file is read into a store of terms and definitions (see
//     package store).
//  2. The terms are ordered alphabetically, ignoring case (see package
//     rank).
//  3. Each definition is split into words and separators (see package span)
//     and every word matching a known term is turned into a hyperlink (see
//     package link).
//
// Pages for the glossary can then be written with package render.
package glossary
