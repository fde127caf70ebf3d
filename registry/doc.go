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

// Package registry fetches published dictionaries by name.
//
// A bundled manifest maps each public dictionary name to its download URL
// and the SHA-256 checksum of the published artifact. Downloads are cached
// in a per-user directory and a cached artifact is reused only while its
// checksum still matches the manifest. Artifacts published as plain word
// lists, supplementary tables, or web pages are converted to .dicx files
// after download.
package registry
