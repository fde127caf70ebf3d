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

package dic

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/remrama/liwca/errors"
)

// sentinel is the section delimiter line.
const sentinel = "%"

// Category is a .dic header entry.
type Category struct {
	// ID is the category's numeric id in the file.
	ID int

	// Name is the category name.
	Name string
}

// Entry is a .dic body entry.
type Entry struct {
	// Term is the word or pattern, possibly wildcard-terminated.
	Term string

	// IDs are the ids of the categories the term belongs to, in file order.
	IDs []int
}

// Scanner reads a .dic file from start to end. NewScanner consumes the
// header section; Scan then advances through the body one entry at a time.
type Scanner struct {
	s          *bufio.Scanner
	categories []Category
	ids        map[int]bool
	entry      *Entry
	line       int
	err        error
}

// NewScanner returns a Scanner for the .dic data in r. The header section is
// read and validated immediately; its categories are available from
// Categories.
func NewScanner(r io.Reader) (*Scanner, error) {
	s := &Scanner{
		s:   bufio.NewScanner(bufio.NewReader(r)),
		ids: map[int]bool{},
	}
	if err := s.readHeader(); err != nil {
		return nil, err
	}
	return s, nil
}

// Categories returns the header's categories in file order.
func (s *Scanner) Categories() []Category {
	return s.categories
}

// Scan advances to the next body entry. It returns false if the scan stops
// either by reaching the end of the body or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		s.line++
		line := strings.TrimRight(s.s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := s.parseEntry(line)
		if err != nil {
			s.err = err
			return false
		}
		s.entry = entry
		return true
	}
	s.err = s.s.Err()
	return false
}

// Entry returns the body entry read by the last call to Scan.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// readHeader consumes lines through the closing sentinel.
func (s *Scanner) readHeader() error {
	opened := false
	names := map[string]bool{}
	for s.s.Scan() {
		s.line++
		line := strings.TrimRight(s.s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, sentinel) {
			if !opened {
				opened = true
				continue
			}
			// Closing sentinel; the body follows.
			return nil
		}
		if !opened {
			return &errors.FormatError{Line: s.line, Msg: "missing category section delimiter"}
		}

		// Header lines are id then name separated by whitespace. Some
		// published files pad with spaces instead of a single tab.
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return &errors.FormatError{Line: s.line, Msg: "bad category line: " + line}
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return &errors.FormatError{Line: s.line, Msg: "bad category id: " + fields[0]}
		}
		name := strings.Join(fields[1:], " ")
		if s.ids[id] {
			return &errors.FormatError{Line: s.line, Msg: "duplicate category id: " + fields[0]}
		}
		if names[name] {
			return &errors.FormatError{Line: s.line, Msg: "duplicate category name: " + name}
		}
		s.ids[id] = true
		names[name] = true
		s.categories = append(s.categories, Category{ID: id, Name: name})
	}
	if err := s.s.Err(); err != nil {
		return err
	}
	if !opened {
		return &errors.FormatError{Msg: "missing category section delimiter"}
	}
	return &errors.FormatError{Line: s.line, Msg: "unterminated category section"}
}

// parseEntry parses a single body line. Ids after the term may be separated
// by tabs, commas, or both.
func (s *Scanner) parseEntry(line string) (*Entry, error) {
	fields := strings.Split(line, "\t")
	term := strings.TrimSpace(fields[0])
	if term == "" {
		return nil, &errors.FormatError{Line: s.line, Msg: "empty term"}
	}

	entry := &Entry{Term: term}
	for _, field := range fields[1:] {
		for _, tok := range strings.Split(field, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			id, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &errors.FormatError{Line: s.line, Msg: "bad category id: " + tok}
			}
			if !s.ids[id] {
				return nil, &errors.FormatError{Line: s.line, Msg: "unknown category id: " + tok}
			}
			entry.IDs = append(entry.IDs, id)
		}
	}
	if len(entry.IDs) == 0 {
		return nil, &errors.FormatError{Line: s.line, Msg: "term belongs to no categories: " + term}
	}
	return entry, nil
}
