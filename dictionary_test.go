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
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/remrama/liwca/errors"
)

// mustDict builds a Dictionary from category -> terms in the given category
// order, failing the test on error.
func mustDict(t *testing.T, categories []string, terms map[string][]string) *Dictionary {
	t.Helper()

	d := New()
	for _, cat := range categories {
		if err := d.AddCategory(cat); err != nil {
			t.Fatalf("AddCategory(%q): %v", cat, err)
		}
		if err := d.Add(cat, terms[cat]...); err != nil {
			t.Fatalf("Add(%q): %v", cat, err)
		}
	}
	return d
}

func TestDictionary_AddCategory(t *testing.T) {
	t.Parallel()

	d := New()
	if err := d.AddCategory("sleep"); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if err := d.AddCategory("dream"); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}

	if err := d.AddCategory("sleep"); !stderrors.Is(err, errors.ErrValidation) {
		t.Fatalf("duplicate category; want ErrValidation, got %v", err)
	}
	if err := d.AddCategory("  "); !stderrors.Is(err, errors.ErrValidation) {
		t.Fatalf("empty category; want ErrValidation, got %v", err)
	}

	expected := []string{"sleep", "dream"}
	if diff := cmp.Diff(expected, d.Categories()); diff != "" {
		t.Fatalf("Categories (-want, +got):\n%s", diff)
	}
}

func TestDictionary_Add(t *testing.T) {
	t.Parallel()

	d := New()
	if err := d.AddCategory("sleep"); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}

	if err := d.Add("sleep", "Nap", "nap", "CANT  SLEEP", "dream*"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Terms are folded and deduplicated, insertion order preserved.
	expected := []string{"nap", "cant sleep", "dream*"}
	if diff := cmp.Diff(expected, d.Terms("sleep")); diff != "" {
		t.Fatalf("Terms (-want, +got):\n%s", diff)
	}

	if !d.Has("sleep", "NAP") {
		t.Fatal("Has should fold its term argument")
	}
	if d.Has("sleep", "insomnia") {
		t.Fatal("Has reported a missing term")
	}

	if err := d.Add("dream", "nightmare"); !stderrors.Is(err, errors.ErrValidation) {
		t.Fatalf("unknown category; want ErrValidation, got %v", err)
	}
	if err := d.Add("sleep", "   "); !stderrors.Is(err, errors.ErrValidation) {
		t.Fatalf("empty term; want ErrValidation, got %v", err)
	}
}

func TestDictionary_weights(t *testing.T) {
	t.Parallel()

	d := mustDict(t, []string{"sleep"}, map[string][]string{
		"sleep": {"nap", "insomnia"},
	})

	if err := d.SetWeight("sleep", "insomnia", 1.5); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}
	if want, got := 1.5, d.Weight("sleep", "insomnia"); want != got {
		t.Fatalf("Weight; want: %v, got: %v", want, got)
	}
	if want, got := 0.0, d.Weight("sleep", "nap"); want != got {
		t.Fatalf("Weight; want: %v, got: %v", want, got)
	}

	// A zero weight removes the weight.
	if err := d.SetWeight("sleep", "insomnia", 0); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}
	if want, got := 0.0, d.Weight("sleep", "insomnia"); want != got {
		t.Fatalf("Weight; want: %v, got: %v", want, got)
	}

	if err := d.SetWeight("sleep", "missing", 1); !stderrors.Is(err, errors.ErrValidation) {
		t.Fatalf("missing pair; want ErrValidation, got %v", err)
	}
}

func TestDictionary_Pairs(t *testing.T) {
	t.Parallel()

	d := mustDict(t, []string{"sleep", "dream"}, map[string][]string{
		"sleep": {"nap", "nightmare"},
		"dream": {"nightmare"},
	})
	if err := d.SetWeight("dream", "nightmare", 2); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}

	expected := []Pair{
		{Term: "nap", Category: "sleep"},
		{Term: "nightmare", Category: "sleep"},
		{Term: "nightmare", Category: "dream", Weight: 2},
	}
	if diff := cmp.Diff(expected, d.Pairs()); diff != "" {
		t.Fatalf("Pairs (-want, +got):\n%s", diff)
	}

	rebuilt, err := FromPairs(d.Pairs())
	if err != nil {
		t.Fatalf("FromPairs: %v", err)
	}
	if !rebuilt.Equal(d) {
		t.Fatal("FromPairs(Pairs()) is not equivalent to the original")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a := mustDict(t, []string{"sleep"}, map[string][]string{
		"sleep": {"nap", "nightmare"},
	})
	b := mustDict(t, []string{"dream", "sleep"}, map[string][]string{
		"dream": {"nightmare"},
		"sleep": {"insomnia"},
	})
	if err := b.SetWeight("sleep", "insomnia", 1.5); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}

	merged := Merge(a, b)

	expected := mustDict(t, []string{"sleep", "dream"}, map[string][]string{
		"sleep": {"nap", "nightmare", "insomnia"},
		"dream": {"nightmare"},
	})
	if err := expected.SetWeight("sleep", "insomnia", 1.5); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}

	if !merged.Equal(expected) {
		t.Fatalf("Merge; want %v with pairs %v, got %v with pairs %v",
			expected.Categories(), expected.Pairs(), merged.Categories(), merged.Pairs())
	}
}

func TestDictionary_Equal(t *testing.T) {
	t.Parallel()

	base := func(t *testing.T) *Dictionary {
		t.Helper()
		return mustDict(t, []string{"sleep", "dream"}, map[string][]string{
			"sleep": {"nap", "nightmare"},
			"dream": {"nightmare"},
		})
	}

	d := base(t)
	if !d.Equal(base(t)) {
		t.Fatal("identical dictionaries should be equal")
	}

	// Term order within a category is not significant.
	reordered := mustDict(t, []string{"sleep", "dream"}, map[string][]string{
		"sleep": {"nightmare", "nap"},
		"dream": {"nightmare"},
	})
	if !d.Equal(reordered) {
		t.Fatal("term order should not affect equality")
	}

	// Category order is significant.
	swapped := mustDict(t, []string{"dream", "sleep"}, map[string][]string{
		"sleep": {"nap", "nightmare"},
		"dream": {"nightmare"},
	})
	if d.Equal(swapped) {
		t.Fatal("category order should affect equality")
	}

	weighted := base(t)
	if err := weighted.SetWeight("sleep", "nap", 2); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}
	if d.Equal(weighted) {
		t.Fatal("weights should affect equality")
	}

	withMeta := base(t)
	withMeta.Meta().Set(MetaName, "Sleep Dictionary")
	if d.Equal(withMeta) {
		t.Fatal("metadata should affect equality")
	}
}

func TestMetadata(t *testing.T) {
	t.Parallel()

	var m Metadata
	m.Set(MetaName, "Sleep Dictionary")
	m.Set(MetaPublisher, "Example Lab")
	m.Set(MetaName, "Sleep Dictionary v2")

	if want, got := "Sleep Dictionary v2", m.Name(); want != got {
		t.Fatalf("Name; want: %q, got: %q", want, got)
	}
	if want, got := "Example Lab", m.Publisher(); want != got {
		t.Fatalf("Publisher; want: %q, got: %q", want, got)
	}
	if want, got := "", m.Get("unknown"); want != got {
		t.Fatalf("Get; want: %q, got: %q", want, got)
	}

	// Set replaces in place, preserving field order.
	expected := []Field{
		{Key: MetaName, Value: "Sleep Dictionary v2"},
		{Key: MetaPublisher, Value: "Example Lab"},
	}
	if diff := cmp.Diff(expected, m.Fields); diff != "" {
		t.Fatalf("Fields (-want, +got):\n%s", diff)
	}
}
