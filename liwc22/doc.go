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

// Package liwc22 drives the LIWC-22 desktop application and its command
// line interface.
//
// The liwc-22-cli executable only works while the LIWC-22 application is
// running, so Tool manages the application process alongside the analysis
// invocations. See https://www.liwc.app/help/cli.
package liwc22
