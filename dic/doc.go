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

// Package dic implements reading and writing LIWC .dic files.
//
// A .dic file has two sections separated by sentinel lines containing a
// single '%' character:
//  1. A header enumerating the dictionary's categories, one per line, as a
//     numeric id followed by the category name.
//  2. A body mapping terms into categories, one term per line, as the term
//     followed by a tab and the ids of every category it belongs to.
//
// For example:
//
//	%
//	1	sleep
//	2	dream
//	%
//	nap	1
//	nightmare	2,1
//
// Terms may end in a '*' wildcard marker denoting prefix matching in the
// consuming analysis tool. The marker is preserved verbatim. Published .dic
// files are inconsistent about whether body ids are comma or tab separated;
// the scanner accepts both, while the encoder always emits comma separation.
package dic
