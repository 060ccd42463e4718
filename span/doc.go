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

// Package span splits text into spans of words and separators.
//
// A span is a maximal run of runes that are either all members of a
// separator set or all not members of it. The spans of a text tile it
// exactly, in order, with no gaps or overlaps. For example, with the default
// separators " ," the text "a cat, a dog" is split into:
//
//	"a" " " "cat" ", " "a" " " "dog"
package span
