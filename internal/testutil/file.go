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

// Package testutil provides helpers for building dictionary fixture files.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// WriteFile writes a fixture file under dir and returns its path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing fixture %q: %v", name, err)
	}
	return path
}

// WriteDictzip writes a dictzip-compressed fixture file under dir and
// returns its path. The name should carry a .dz extension.
func WriteDictzip(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture %q: %v", name, err)
	}
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatalf("creating dictzip writer: %v", err)
	}
	if _, err := z.Write(data); err != nil {
		t.Fatalf("writing fixture %q: %v", name, err)
	}
	if err := z.Close(); err != nil {
		t.Fatalf("closing fixture %q: %v", name, err)
	}
	return path
}

// WriteGzip writes a gzip-compressed fixture file under dir and returns its
// path. The name should carry a .gz extension.
func WriteGzip(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture %q: %v", name, err)
	}
	defer f.Close()

	z := gzip.NewWriter(f)
	if _, err := z.Write(data); err != nil {
		t.Fatalf("writing fixture %q: %v", name, err)
	}
	if err := z.Close(); err != nil {
		t.Fatalf("closing fixture %q: %v", name, err)
	}
	return path
}
