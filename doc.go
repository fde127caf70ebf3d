// Copyright 2025 The liwca Authors
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

// Package liwca implements reading, writing and converting LIWC-style
// dictionaries in pure Go.
//
// A dictionary maps named categories (e.g. "sleep", "anger") to word
// patterns, possibly wildcard-terminated for prefix matching. Dictionaries
// are stored in several formats:
//  1. A .dic file: a tag-delimited text format with a numeric category
//     header and one body line per term. See the dic subpackage.
//  2. A .dicx file: a CSV container that additionally carries per-entry
//     weights and a metadata preamble. See the dicx subpackage.
//  3. Wide tabular .csv/.tsv files: one row per term, one indicator column
//     per category.
//
// ReadFile and WriteFile convert between any of these by file extension,
// with transparent gzip/dictzip decompression. The registry subpackage
// fetches published dictionaries from a bundled catalog, and the liwc22
// subpackage drives the external LIWC-22 analysis application.
//
// This module only manages dictionary definitions. It does not implement
// the word-counting algorithm itself.
package liwca
