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

// Package store implements reading glossary text files.
//
// A glossary file is a list of records separated by one or more blank lines.
// Each record comes in two parts:
//  1. The term: the first line of the record.
//  2. The definition: all following lines of the record, joined by single
//     spaces. The definition is empty if the record has only one line.
//
// For example:
//
//	cat
//	a small animal that is not a dog
//
//	dog
//	a small animal that is not a cat
package store
