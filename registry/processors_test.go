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
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProcessors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		processor string
		raw       string
		expected  []string
		err       bool
	}{
		{
			name:      "wordlist",
			processor: "wordlist",
			raw:       "danger\nattack\nthreat*\n",
			expected:  []string{"attack", "danger", "threat*"},
		},
		{
			name:      "wordlist folds and dedups",
			processor: "wordlist",
			raw:       "Danger\n  danger \n\nATTACK\n",
			expected:  []string{"attack", "danger"},
		},
		{
			name:      "wordlist empty",
			processor: "wordlist",
			raw:       "\n\n",
			err:       true,
		},
		{
			name:      "table skips heading row",
			processor: "table",
			raw:       "Term\tVariant\nsleep\tsleeps\nnap\tnaps\n",
			expected:  []string{"nap", "naps", "sleep", "sleeps"},
		},
		{
			name:      "table heading only",
			processor: "table",
			raw:       "Term\tVariant\n",
			err:       true,
		},
		{
			name:      "html",
			processor: "html",
			raw:       "<html><body><p>dream</p><p>nightmare</p></body></html>",
			expected:  []string{"dream", "nightmare"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			proc := processors[tc.processor]
			if proc == nil {
				t.Fatalf("unknown processor %q", tc.processor)
			}

			d, err := proc("test", []byte(tc.raw))
			if tc.err {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("processor: %v", err)
			}

			if diff := cmp.Diff([]string{"test"}, d.Categories()); diff != "" {
				t.Errorf("unexpected categories (-want, +got):\n%s", diff)
			}
			terms := d.Terms("test")
			sort.Strings(terms)
			if diff := cmp.Diff(tc.expected, terms); diff != "" {
				t.Errorf("unexpected terms (-want, +got):\n%s", diff)
			}
		})
	}
}
