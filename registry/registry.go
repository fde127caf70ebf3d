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
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/remrama/liwca/errors"
)

//go:embed registry.yaml
var manifest []byte

// Entry is a record of an available remote dictionary.
type Entry struct {
	// Name is the public dictionary name used for lookup.
	Name string `yaml:"name"`

	// File is the published artifact's file name, used as the cache key.
	File string `yaml:"file"`

	// URL is the artifact's download URL.
	URL string `yaml:"url"`

	// SHA256 is the hex checksum of the raw download.
	SHA256 string `yaml:"sha256"`

	// Processor names the conversion applied to raw artifacts that are not
	// readable dictionary files. Empty for entries that need none.
	Processor string `yaml:"processor,omitempty"`
}

// Registry is a read-only catalog of remote dictionaries.
type Registry struct {
	order   []string
	entries map[string]Entry
}

// Load parses a registry manifest.
func Load(data []byte) (*Registry, error) {
	var m struct {
		Dictionaries []Entry `yaml:"dictionaries"`
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing registry manifest: %w", err)
	}

	r := &Registry{entries: map[string]Entry{}}
	for _, e := range m.Dictionaries {
		if e.Name == "" || e.File == "" || e.URL == "" || e.SHA256 == "" {
			return nil, fmt.Errorf("registry manifest: incomplete entry %q", e.Name)
		}
		if _, ok := r.entries[e.Name]; ok {
			return nil, fmt.Errorf("registry manifest: duplicate entry %q", e.Name)
		}
		if e.Processor != "" {
			if _, ok := processors[e.Processor]; !ok {
				return nil, fmt.Errorf("registry manifest: entry %q: unknown processor %q", e.Name, e.Processor)
			}
		}
		r.order = append(r.order, e.Name)
		r.entries[e.Name] = e
	}
	return r, nil
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return Load(manifest)
})

// Default returns the registry loaded from the bundled manifest. The
// manifest is parsed once per process.
func Default() (*Registry, error) {
	return defaultRegistry()
}

// Lookup finds an entry by its public name. The match is exact and
// case-sensitive.
func (r *Registry) Lookup(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, &errors.NotFoundError{Name: name}
	}
	return e, nil
}

// Entries returns all entries in manifest order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}
