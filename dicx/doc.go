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

// Package dicx implements reading and writing LIWC .dicx files.
//
// A .dicx file is a CSV container with an optional '#'-prefixed preamble:
//
//	# name: Sleep Dictionary
//	# publisher: Example Lab
//	DicTerm,sleep,dream
//	nap,X,
//	nightmare,1.5,X
//
// The table's first column is always DicTerm. Every other column is a
// category; a cell is empty (the term is not a member), the letter X (plain
// membership), or a decimal number (weighted membership).
//
// The container format is defined by the upstream tool and treated as an
// opaque contract. Preamble lines are preserved verbatim and in order,
// including keys this package does not recognize and lines that are not in
// key: value form at all, so that Decode followed by Encode reproduces the
// preamble exactly.
package dicx
