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

package dicx

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/remrama/liwca/errors"
)

// termColumn is the required name of the table's first column.
const termColumn = "DicTerm"

// memberCell marks plain (unweighted) membership.
const memberCell = "X"

// Field is a single preamble line. A Field with a non-empty Key was parsed
// from a '# key: value' line; a Field with an empty Key holds any other
// preamble line verbatim.
type Field struct {
	Key   string
	Value string
}

// Row is a single table row.
type Row struct {
	// Term is the row's term, from the DicTerm column.
	Term string

	// Cells holds one cell per category column. Each cell is empty, the
	// letter X, or a decimal number.
	Cells []string
}

// File is the parsed content of a .dicx file.
type File struct {
	// Preamble holds the '#'-prefixed lines before the table, in order.
	Preamble []Field

	// Columns are the category column names, excluding DicTerm.
	Columns []string

	// Rows are the table rows in file order.
	Rows []Row
}

// ParseCell interprets a table cell. It returns the cell's weight (zero for
// plain membership) and whether the cell denotes membership at all.
func ParseCell(cell string) (float64, bool, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false, nil
	}
	if cell == memberCell {
		return 0, true, nil
	}
	w, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false, fmt.Errorf("bad cell value %q", cell)
	}
	return w, true, nil
}

// FormatCell renders a cell value. Plain membership is the letter X; a
// weighted membership is the weight's shortest decimal representation.
func FormatCell(weight float64, member bool) string {
	if !member {
		return ""
	}
	if weight == 0 {
		return memberCell
	}
	return strconv.FormatFloat(weight, 'g', -1, 64)
}

// Decode reads a complete .dicx file from r.
func Decode(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)
	f := &File{}

	// Preamble lines precede the CSV table.
	line := 0
	for {
		b, err := br.Peek(1)
		if err == io.EOF {
			return nil, &errors.FormatError{Msg: "missing " + termColumn + " header"}
		}
		if err != nil {
			return nil, fmt.Errorf("reading preamble: %w", err)
		}
		if b[0] != '#' {
			break
		}
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading preamble: %w", err)
		}
		line++
		f.Preamble = append(f.Preamble, parseField(strings.TrimRight(raw, "\r\n")))
	}

	cr := csv.NewReader(br)
	header, err := cr.Read()
	if err != nil {
		return nil, &errors.FormatError{Line: line + 1, Msg: "missing " + termColumn + " header"}
	}
	if header[0] != termColumn {
		return nil, &errors.FormatError{Line: line + 1, Msg: "first column must be " + termColumn}
	}
	seen := map[string]bool{}
	for _, col := range header[1:] {
		if col == "" || col == termColumn {
			return nil, &errors.FormatError{Line: line + 1, Msg: "bad category column " + strconv.Quote(col)}
		}
		if seen[col] {
			return nil, &errors.FormatError{Line: line + 1, Msg: "duplicate category column " + col}
		}
		seen[col] = true
		f.Columns = append(f.Columns, col)
	}

	terms := map[string]bool{}
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		// The header is the first csv line after the preamble.
		fileLine := line + 1 + row
		if err != nil {
			// The csv reader reports inconsistent column counts itself.
			return nil, &errors.FormatError{Line: fileLine, Msg: err.Error()}
		}
		term := record[0]
		if strings.TrimSpace(term) == "" {
			return nil, &errors.FormatError{Line: fileLine, Msg: "empty term"}
		}
		if terms[term] {
			return nil, &errors.FormatError{Line: fileLine, Msg: "duplicate term " + term}
		}
		terms[term] = true

		cells := make([]string, len(record)-1)
		copy(cells, record[1:])
		for _, cell := range cells {
			if _, _, err := ParseCell(cell); err != nil {
				return nil, &errors.FormatError{Line: fileLine, Msg: err.Error()}
			}
		}
		f.Rows = append(f.Rows, Row{Term: term, Cells: cells})
	}

	return f, nil
}

// Encode writes f to w in .dicx format.
func Encode(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)
	for _, field := range f.Preamble {
		if _, err := bw.WriteString(formatField(field) + "\n"); err != nil {
			return fmt.Errorf("writing preamble: %w", err)
		}
	}

	cw := csv.NewWriter(bw)
	header := append([]string{termColumn}, f.Columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	record := make([]string, len(header))
	for _, row := range f.Rows {
		if len(row.Cells) != len(f.Columns) {
			return &errors.FormatError{Msg: "row " + row.Term + " has inconsistent column count"}
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
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// parseField parses one preamble line. Lines not in '# key: value' form are
// kept verbatim so they round-trip unchanged.
func parseField(raw string) Field {
	rest, ok := strings.CutPrefix(raw, "# ")
	if ok {
		if key, value, found := strings.Cut(rest, ": "); found {
			key = strings.TrimSpace(key)
			if key != "" && !strings.ContainsAny(key, " \t") {
				return Field{Key: key, Value: value}
			}
		}
	}
	return Field{Value: raw}
}

// formatField renders one preamble line.
func formatField(f Field) string {
	if f.Key == "" {
		return f.Value
	}
	return "# " + f.Key + ": " + f.Value
}
