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
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/k3a/html2text"

	"github.com/remrama/liwca"
	"github.com/remrama/liwca/errors"
)

// A processor converts a raw published artifact into a single-category
// dictionary named after the registry entry. Some published dictionaries are
// distributed as plain word lists, supplementary tables, or web pages rather
// than readable .dic/.dicx files.
type processor func(name string, raw []byte) (*liwca.Dictionary, error)

var processors = map[string]processor{
	"wordlist": processWordlist,
	"table":    processTable,
	"html":     processHTML,
}

// wordlist builds a dictionary from terms, dropping empties, into a single
// category named after the entry.
func wordlist(name string, terms []string) (*liwca.Dictionary, error) {
	d := liwca.New()
	if err := d.AddCategory(name); err != nil {
		return nil, err
	}
	n := 0
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		if err := d.Add(name, term); err != nil {
			return nil, err
		}
		n++
	}
	if n == 0 {
		return nil, &errors.FormatError{Msg: "no terms in raw " + name + " artifact"}
	}
	d.Meta().Set(liwca.MetaName, name)
	return d, nil
}

// processWordlist reads a plain text word list, one term per line.
func processWordlist(name string, raw []byte) (*liwca.Dictionary, error) {
	return wordlist(name, strings.Split(string(raw), "\n"))
}

// processTable reads a published supplementary table in tab-separated form.
// The first line is a heading and is skipped; every remaining cell is a
// term.
func processTable(name string, raw []byte) (*liwca.Dictionary, error) {
	cr := csv.NewReader(strings.NewReader(string(raw)))
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading raw %s table: %w", name, err)
	}
	if len(records) < 2 {
		return nil, &errors.FormatError{Msg: "no terms in raw " + name + " artifact"}
	}

	var terms []string
	for _, record := range records[1:] {
		terms = append(terms, record...)
	}
	return wordlist(name, terms)
}

// processHTML reads a word list published as an HTML page, one term per
// rendered text line.
func processHTML(name string, raw []byte) (*liwca.Dictionary, error) {
	text := html2text.HTML2Text(string(raw))
	return wordlist(name, strings.Split(text, "\n"))
}
