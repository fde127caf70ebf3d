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

package registry

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/remrama/liwca/errors"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest string
		expected []Entry
		err      bool
	}{
		{
			name: "single entry",
			manifest: `dictionaries:
  - name: honor
    file: honor.dic
    url: https://example.com/honor.dic
    sha256: abc123
`,
			expected: []Entry{
				{
					Name:   "honor",
					File:   "honor.dic",
					URL:    "https://example.com/honor.dic",
					SHA256: "abc123",
				},
			},
		},
		{
			name: "entry with processor",
			manifest: `dictionaries:
  - name: threat
    file: threat.txt
    url: https://example.com/threat.txt
    sha256: abc123
    processor: wordlist
`,
			expected: []Entry{
				{
					Name:      "threat",
					File:      "threat.txt",
					URL:       "https://example.com/threat.txt",
					SHA256:    "abc123",
					Processor: "wordlist",
				},
			},
		},
		{
			name: "preserves manifest order",
			manifest: `dictionaries:
  - name: zeta
    file: zeta.dic
    url: https://example.com/zeta.dic
    sha256: abc
  - name: alpha
    file: alpha.dic
    url: https://example.com/alpha.dic
    sha256: def
`,
			expected: []Entry{
				{Name: "zeta", File: "zeta.dic", URL: "https://example.com/zeta.dic", SHA256: "abc"},
				{Name: "alpha", File: "alpha.dic", URL: "https://example.com/alpha.dic", SHA256: "def"},
			},
		},
		{
			name: "missing checksum",
			manifest: `dictionaries:
  - name: honor
    file: honor.dic
    url: https://example.com/honor.dic
`,
			err: true,
		},
		{
			name: "duplicate name",
			manifest: `dictionaries:
  - name: honor
    file: honor.dic
    url: https://example.com/honor.dic
    sha256: abc
  - name: honor
    file: honor2.dic
    url: https://example.com/honor2.dic
    sha256: def
`,
			err: true,
		},
		{
			name: "unknown processor",
			manifest: `dictionaries:
  - name: threat
    file: threat.txt
    url: https://example.com/threat.txt
    sha256: abc
    processor: bogus
`,
			err: true,
		},
		{
			name:     "invalid yaml",
			manifest: "dictionaries: [",
			err:      true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, err := Load([]byte(tc.manifest))
			if tc.err {
				if err == nil {
					t.Fatalf("Load: expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(tc.expected, r.Entries()); diff != "" {
				t.Errorf("unexpected entries (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r, err := Load([]byte(`dictionaries:
  - name: honor
    file: honor.dic
    url: https://example.com/honor.dic
    sha256: abc123
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	e, err := r.Lookup("honor")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got, want := e.File, "honor.dic"; got != want {
		t.Errorf("unexpected file: got %q, want %q", got, want)
	}

	_, err = r.Lookup("Honor")
	if !stderrors.Is(err, errors.ErrNotFound) {
		t.Errorf("Lookup is case-sensitive: unexpected error: %v", err)
	}
	var nfErr *errors.NotFoundError
	if !stderrors.As(err, &nfErr) {
		t.Fatalf("Lookup: expected NotFoundError, got %v", err)
	}
	if got, want := nfErr.Name, "Honor"; got != want {
		t.Errorf("unexpected name: got %q, want %q", got, want)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	r, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(r.Entries()) == 0 {
		t.Fatal("Default: empty registry")
	}
	for _, name := range []string{"honor", "threat", "sleep", "dreams", "bigtwo_a", "bigtwo_b"} {
		if _, err := r.Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
}
