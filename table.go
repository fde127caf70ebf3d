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
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/remrama/liwca/dicx"
	"github.com/remrama/liwca/errors"
)

// wideTermColumn is the name of the term column in wide tabular files.
const wideTermColumn = "DicTerm"

// WideTable is a dictionary's wide tabular form: one row per unique term,
// one column per category. Cells use the .dicx convention (empty, X, or a
// decimal weight) so weights survive the tabular path. Metadata does not.
type WideTable struct {
	// Columns are the category column names.
	Columns []string

	// Rows are the table rows, one per term.
	Rows []WideRow
}

// WideRow is a single wide-table row.
type WideRow struct {
	Term  string
	Cells []string
}

// Wide converts the dictionary to its wide tabular form. Rows are ordered by
// first appearance of the term across categories.
func (d *Dictionary) Wide() *WideTable {
	t := &WideTable{Columns: d.Categories()}
	for _, term := range d.termOrder() {
		row := WideRow{Term: term, Cells: make([]string, len(d.categories))}
		for i, cat := range d.categories {
			row.Cells[i] = dicx.FormatCell(d.weights[cat][term], d.members[cat][term])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// FromWide builds a Dictionary from a wide table.
func FromWide(t *WideTable) (*Dictionary, error) {
	d := New()
	for _, col := range t.Columns {
		if err := d.AddCategory(col); err != nil {
			return nil, err
		}
	}
	for _, row := range t.Rows {
		if len(row.Cells) != len(t.Columns) {
			return nil, &errors.FormatError{Msg: "row " + row.Term + " has inconsistent column count"}
		}
		for i, cell := range row.Cells {
			weight, member, err := dicx.ParseCell(cell)
			if err != nil {
				return nil, &errors.FormatError{Msg: err.Error()}
			}
			if !member {
				continue
			}
			if err := d.Add(t.Columns[i], row.Term); err != nil {
				return nil, err
			}
			if weight != 0 {
				if err := d.SetWeight(t.Columns[i], row.Term, weight); err != nil {
					return nil, err
				}
			}
		}
	}
	return d, nil
}

// ReadWide reads a wide table from r using the given field delimiter.
func ReadWide(r io.Reader, comma rune) (*WideTable, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma

	header, err := cr.Read()
	if err != nil {
		return nil, &errors.FormatError{Msg: "missing " + wideTermColumn + " header"}
	}
	if header[0] != wideTermColumn {
		return nil, &errors.FormatError{Line: 1, Msg: "first column must be " + wideTermColumn}
	}

	t := &WideTable{Columns: header[1:]}
	seen := map[string]bool{}
	for _, col := range t.Columns {
		if col == "" {
			return nil, &errors.FormatError{Line: 1, Msg: "empty category column"}
		}
		if seen[col] {
			return nil, &errors.FormatError{Line: 1, Msg: "duplicate category column " + col}
		}
		seen[col] = true
	}

	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &errors.FormatError{Line: line, Msg: err.Error()}
		}
		if strings.TrimSpace(record[0]) == "" {
			return nil, &errors.FormatError{Line: line, Msg: "empty term"}
		}
		cells := make([]string, len(record)-1)
		copy(cells, record[1:])
		t.Rows = append(t.Rows, WideRow{Term: record[0], Cells: cells})
	}
	return t, nil
}

// WriteWide writes the wide table to w using the given field delimiter.
func WriteWide(w io.Writer, t *WideTable, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write(append([]string{wideTermColumn}, t.Columns...)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	record := make([]string, len(t.Columns)+1)
	for _, row := range t.Rows {
		if len(row.Cells) != len(t.Columns) {
			return &errors.ValidationError{Msg: "row " + row.Term + " has inconsistent column count"}
		}
		record[0] = row.Term
		copy(record[1:], row.Cells)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
