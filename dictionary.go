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

package liwca

import (
	"strings"

	"github.com/remrama/liwca/errors"
	"github.com/remrama/liwca/internal/folding"
)

// Dictionary is an in-memory LIWC-style dictionary. It maps named categories
// to term patterns. Category order is significant: writers assign sequential
// numeric ids based on it.
//
// Terms are folded on insertion: lowercased, trimmed, and internal whitespace
// collapsed. A trailing wildcard marker ('*') denotes prefix matching in the
// consuming analysis tool; it is preserved verbatim and never interpreted
// here.
type Dictionary struct {
	categories []string
	terms      map[string][]string
	members    map[string]map[string]bool
	weights    map[string]map[string]float64
	meta       Metadata
}

// Pair is a single (term, category) membership in the dictionary's long form.
type Pair struct {
	Term     string
	Category string

	// Weight is the pair's weight. Zero means unweighted membership.
	Weight float64
}

// Field is a single metadata attribute. A Field with an empty Key holds a raw
// packed-container line that is carried through conversions verbatim.
type Field struct {
	Key   string
	Value string
}

// Metadata holds a dictionary's descriptive attributes. Fields preserve the
// order and content of the source file's preamble so that the packed format
// round-trips byte-for-byte, including fields this module does not
// understand.
type Metadata struct {
	Fields []Field
}

// Metadata keys recognized by this module.
const (
	MetaName        = "name"
	MetaPublisher   = "publisher"
	MetaVersion     = "version"
	MetaDescription = "description"
)

// Get returns the value for the given key, or the empty string.
func (m *Metadata) Get(key string) string {
	for _, f := range m.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// Set sets the value for the given key, replacing an existing field in place
// or appending a new one.
func (m *Metadata) Set(key, value string) {
	for i, f := range m.Fields {
		if f.Key == key {
			m.Fields[i].Value = value
			return
		}
	}
	m.Fields = append(m.Fields, Field{Key: key, Value: value})
}

// Name returns the dictionary name.
func (m *Metadata) Name() string { return m.Get(MetaName) }

// Publisher returns the dictionary publisher.
func (m *Metadata) Publisher() string { return m.Get(MetaPublisher) }

// Version returns the dictionary version.
func (m *Metadata) Version() string { return m.Get(MetaVersion) }

// Description returns the dictionary description.
func (m *Metadata) Description() string { return m.Get(MetaDescription) }

// New returns a new empty Dictionary.
func New() *Dictionary {
	return &Dictionary{
		terms:   map[string][]string{},
		members: map[string]map[string]bool{},
		weights: map[string]map[string]float64{},
	}
}

// AddCategory appends a new category. Adding a duplicate or empty category
// name is a validation error.
func (d *Dictionary) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &errors.ValidationError{Msg: "empty category name"}
	}
	if _, ok := d.members[name]; ok {
		return &errors.ValidationError{Msg: "duplicate category " + name}
	}
	d.categories = append(d.categories, name)
	d.members[name] = map[string]bool{}
	return nil
}

// Add maps the given terms into a category. The category must already exist.
// Terms are folded; duplicates within the category are ignored. A term that
// is empty after folding is a validation error.
func (d *Dictionary) Add(category string, terms ...string) error {
	set, ok := d.members[category]
	if !ok {
		return &errors.ValidationError{Msg: "unknown category " + category}
	}
	for _, term := range terms {
		folded := folding.Term(term)
		if folded == "" {
			return &errors.ValidationError{Msg: "empty term in category " + category}
		}
		if set[folded] {
			continue
		}
		set[folded] = true
		d.terms[category] = append(d.terms[category], folded)
	}
	return nil
}

// Categories returns the category names in insertion order.
func (d *Dictionary) Categories() []string {
	out := make([]string, len(d.categories))
	copy(out, d.categories)
	return out
}

// Terms returns the category's terms in insertion order.
func (d *Dictionary) Terms(category string) []string {
	out := make([]string, len(d.terms[category]))
	copy(out, d.terms[category])
	return out
}

// Has reports whether the term belongs to the category. The term is folded
// before the lookup.
func (d *Dictionary) Has(category, term string) bool {
	return d.members[category][folding.Term(term)]
}

// Len returns the number of (term, category) pairs.
func (d *Dictionary) Len() int {
	n := 0
	for _, terms := range d.terms {
		n += len(terms)
	}
	return n
}

// Weight returns the pair's weight, or zero for unweighted membership.
func (d *Dictionary) Weight(category, term string) float64 {
	return d.weights[category][folding.Term(term)]
}

// SetWeight sets the pair's weight. The pair must exist. A zero weight
// removes the weight, returning the pair to unweighted membership.
func (d *Dictionary) SetWeight(category, term string, weight float64) error {
	folded := folding.Term(term)
	if !d.members[category][folded] {
		return &errors.ValidationError{Msg: "no term " + folded + " in category " + category}
	}
	if weight == 0 {
		delete(d.weights[category], folded)
		return nil
	}
	if d.weights[category] == nil {
		d.weights[category] = map[string]float64{}
	}
	d.weights[category][folded] = weight
	return nil
}

// Meta returns the dictionary's metadata for reading and modification.
func (d *Dictionary) Meta() *Metadata {
	return &d.meta
}

// Pairs returns the dictionary's long form: one Pair per (term, category)
// membership, ordered by category then term insertion order.
func (d *Dictionary) Pairs() []Pair {
	var pairs []Pair
	for _, cat := range d.categories {
		for _, term := range d.terms[cat] {
			pairs = append(pairs, Pair{
				Term:     term,
				Category: cat,
				Weight:   d.weights[cat][term],
			})
		}
	}
	return pairs
}

// FromPairs builds a Dictionary from long-form pairs. Categories are created
// in first-seen order.
func FromPairs(pairs []Pair) (*Dictionary, error) {
	d := New()
	for _, p := range pairs {
		if _, ok := d.members[p.Category]; !ok {
			if err := d.AddCategory(p.Category); err != nil {
				return nil, err
			}
		}
		if err := d.Add(p.Category, p.Term); err != nil {
			return nil, err
		}
		if p.Weight != 0 {
			if err := d.SetWeight(p.Category, p.Term, p.Weight); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// Merge combines dictionaries into a new Dictionary. Categories are merged by
// name in first-seen order and term lists are unioned. When the same pair is
// weighted in more than one input, the last weight wins. Metadata is taken
// from the first dictionary that has any.
func Merge(dicts ...*Dictionary) *Dictionary {
	merged := New()
	for _, d := range dicts {
		if d == nil {
			continue
		}
		for _, cat := range d.categories {
			if _, ok := merged.members[cat]; !ok {
				// cat comes from a built Dictionary so it is non-empty
				// and not yet present; AddCategory cannot fail.
				_ = merged.AddCategory(cat)
			}
			for _, term := range d.terms[cat] {
				_ = merged.Add(cat, term)
				if w := d.weights[cat][term]; w != 0 {
					_ = merged.SetWeight(cat, term, w)
				}
			}
		}
		if len(merged.meta.Fields) == 0 && len(d.meta.Fields) > 0 {
			merged.meta.Fields = append([]Field{}, d.meta.Fields...)
		}
	}
	return merged
}

// Equal reports whether two dictionaries are equivalent: same categories in
// the same order, same term sets per category, same weights, and same
// metadata. Term insertion order within a category is not significant.
func (d *Dictionary) Equal(o *Dictionary) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.categories) != len(o.categories) {
		return false
	}
	for i, cat := range d.categories {
		if o.categories[i] != cat {
			return false
		}
		if len(d.terms[cat]) != len(o.terms[cat]) {
			return false
		}
		for _, term := range d.terms[cat] {
			if !o.members[cat][term] {
				return false
			}
			if d.weights[cat][term] != o.weights[cat][term] {
				return false
			}
		}
	}
	if len(d.meta.Fields) != len(o.meta.Fields) {
		return false
	}
	for i := range d.meta.Fields {
		if d.meta.Fields[i] != o.meta.Fields[i] {
			return false
		}
	}
	return true
}

// validate checks that the dictionary can be written out.
func (d *Dictionary) validate() error {
	if len(d.categories) == 0 {
		return &errors.ValidationError{Msg: "no categories"}
	}
	for _, cat := range d.categories {
		for _, term := range d.terms[cat] {
			if strings.TrimSpace(term) == "" {
				return &errors.ValidationError{Msg: "empty term in category " + cat}
			}
		}
	}
	return nil
}
