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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/remrama/liwca/dic"
	"github.com/remrama/liwca/dicx"
	"github.com/remrama/liwca/errors"
)

// Dictionary file extensions supported by ReadFile and WriteFile. A .dic or
// .dicx path may additionally carry a .gz or .dz compression suffix.
const (
	ExtDic  = ".dic"
	ExtDicx = ".dicx"
	ExtCSV  = ".csv"
	ExtTSV  = ".tsv"
)

// ReadFile reads a dictionary from path, choosing the parser by file
// extension. Tabular files are read in wide form. Files with a trailing .gz
// or .dz extension are decompressed transparently.
func ReadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	ext := strings.ToLower(filepath.Ext(path))
	name := path
	if ext == ".gz" || ext == ".dz" {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
		name = strings.TrimSuffix(path, filepath.Ext(path))
		ext = strings.ToLower(filepath.Ext(name))
	}

	d, err := Read(r, ext)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// Read reads a dictionary from r in the format denoted by the given file
// extension (ExtDic, ExtDicx, ExtCSV or ExtTSV).
func Read(r io.Reader, ext string) (*Dictionary, error) {
	switch ext {
	case ExtDic:
		f, err := dic.Decode(r)
		if err != nil {
			return nil, err
		}
		return fromDic(f)
	case ExtDicx:
		f, err := dicx.Decode(r)
		if err != nil {
			return nil, err
		}
		return fromDicx(f)
	case ExtCSV:
		t, err := ReadWide(r, ',')
		if err != nil {
			return nil, err
		}
		return FromWide(t)
	case ExtTSV:
		t, err := ReadWide(r, '\t')
		if err != nil {
			return nil, err
		}
		return FromWide(t)
	default:
		return nil, &errors.FormatError{Msg: "unsupported file extension: " + ext}
	}
}

// WriteFile writes the dictionary to path, choosing the format by file
// extension. Tabular files are written in wide form. A trailing .gz or .dz
// extension compresses the output with gzip or dictzip respectively.
//
// Writing the .dic format cannot represent weights or metadata; when either
// is dropped a warning is returned for it. Warnings are not errors: the file
// is still written.
func WriteFile(d *Dictionary, path string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name := path
	compress := ""
	if ext == ".gz" || ext == ".dz" {
		compress = ext
		name = strings.TrimSuffix(path, filepath.Ext(path))
		ext = strings.ToLower(filepath.Ext(name))
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %q: %w", path, err)
	}

	var w io.Writer = f
	var zc io.Closer
	switch compress {
	case ".gz":
		zw := gzip.NewWriter(f)
		w, zc = zw, zw
	case ".dz":
		zw, err := dictzip.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("creating %q: %w", path, err)
		}
		w, zc = zw, zw
	}

	warnings, err := Write(w, d, ext)
	if err != nil {
		if zc != nil {
			zc.Close()
		}
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("writing %q: %w", path, err)
	}
	if zc != nil {
		if err := zc.Close(); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing %q: %w", path, err)
		}
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing %q: %w", path, err)
	}
	return warnings, nil
}

// Write writes the dictionary to w in the format denoted by the given file
// extension. See WriteFile for warning semantics.
func Write(w io.Writer, d *Dictionary, ext string) ([]string, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	switch ext {
	case ExtDic:
		f, warnings := toDic(d)
		if err := dic.Encode(w, f); err != nil {
			return nil, err
		}
		return warnings, nil
	case ExtDicx:
		if err := dicx.Encode(w, toDicx(d)); err != nil {
			return nil, err
		}
		return nil, nil
	case ExtCSV:
		return nil, WriteWide(w, d.Wide(), ',')
	case ExtTSV:
		return nil, WriteWide(w, d.Wide(), '\t')
	default:
		return nil, &errors.FormatError{Msg: "unsupported file extension: " + ext}
	}
}

// fromDic converts a parsed .dic file into a Dictionary.
func fromDic(f *dic.File) (*Dictionary, error) {
	d := New()
	names := map[int]string{}
	for _, c := range f.Categories {
		if err := d.AddCategory(c.Name); err != nil {
			return nil, &errors.FormatError{Msg: err.Error()}
		}
		names[c.ID] = c.Name
	}
	for _, e := range f.Entries {
		for _, id := range e.IDs {
			if err := d.Add(names[id], e.Term); err != nil {
				return nil, &errors.FormatError{Msg: err.Error()}
			}
		}
	}
	return d, nil
}

// toDic converts a Dictionary into a .dic file, assigning sequential ids from
// the current category order. Weights and metadata are not representable in
// the format; a warning is returned for each drop.
func toDic(d *Dictionary) (*dic.File, []string) {
	f := &dic.File{}
	ids := map[string]int{}
	for i, cat := range d.categories {
		id := i + 1
		ids[cat] = id
		f.Categories = append(f.Categories, dic.Category{ID: id, Name: cat})
	}

	droppedWeights := 0
	for _, term := range d.termOrder() {
		entry := dic.Entry{Term: term}
		for _, cat := range d.categories {
			if !d.members[cat][term] {
				continue
			}
			entry.IDs = append(entry.IDs, ids[cat])
			if d.weights[cat][term] != 0 {
				droppedWeights++
			}
		}
		f.Entries = append(f.Entries, entry)
	}

	var warnings []string
	if droppedWeights > 0 {
		warnings = append(warnings,
			strconv.Itoa(droppedWeights)+" weighted entries written without weights: not representable in "+ExtDic)
	}
	if len(d.meta.Fields) > 0 {
		warnings = append(warnings, "metadata dropped: not representable in "+ExtDic)
	}
	return f, warnings
}

// fromDicx converts a parsed .dicx file into a Dictionary.
func fromDicx(f *dicx.File) (*Dictionary, error) {
	d := New()
	for _, col := range f.Columns {
		if err := d.AddCategory(col); err != nil {
			return nil, &errors.FormatError{Msg: err.Error()}
		}
	}
	for _, row := range f.Rows {
		for i, cell := range row.Cells {
			weight, member, err := dicx.ParseCell(cell)
			if err != nil {
				return nil, &errors.FormatError{Msg: err.Error()}
			}
			if !member {
				continue
			}
			cat := f.Columns[i]
			if err := d.Add(cat, row.Term); err != nil {
				return nil, &errors.FormatError{Msg: err.Error()}
			}
			if weight != 0 {
				if err := d.SetWeight(cat, row.Term, weight); err != nil {
					return nil, &errors.FormatError{Msg: err.Error()}
				}
			}
		}
	}
	for _, field := range f.Preamble {
		d.meta.Fields = append(d.meta.Fields, Field{Key: field.Key, Value: field.Value})
	}
	return d, nil
}

// toDicx converts a Dictionary into a .dicx file.
func toDicx(d *Dictionary) *dicx.File {
	f := &dicx.File{Columns: d.Categories()}
	for _, field := range d.meta.Fields {
		f.Preamble = append(f.Preamble, dicx.Field{Key: field.Key, Value: field.Value})
	}
	for _, term := range d.termOrder() {
		row := dicx.Row{Term: term, Cells: make([]string, len(d.categories))}
		for i, cat := range d.categories {
			row.Cells[i] = dicx.FormatCell(d.weights[cat][term], d.members[cat][term])
		}
		f.Rows = append(f.Rows, row)
	}
	return f
}

// termOrder returns the dictionary's unique terms in first-seen order across
// categories.
func (d *Dictionary) termOrder() []string {
	var terms []string
	seen := map[string]bool{}
	for _, cat := range d.categories {
		for _, term := range d.terms[cat] {
			if seen[term] {
				continue
			}
			seen[term] = true
			terms = append(terms, term)
		}
	}
	return terms
}
