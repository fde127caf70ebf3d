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
	"fmt"
	"io"
	"strconv"
)

// File is the parsed content of a .dic file.
type File struct {
	Categories []Category
	Entries    []Entry
}

// Decode reads a complete .dic file from r.
func Decode(r io.Reader) (*File, error) {
	s, err := NewScanner(r)
	if err != nil {
		return nil, err
	}

	f := &File{Categories: s.Categories()}
	for s.Scan() {
		f.Entries = append(f.Entries, *s.Entry())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// Encode writes f to w in .dic format. Categories are written in order with
// their listed ids; body ids are comma separated.
func Encode(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(sentinel + "\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, c := range f.Categories {
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", c.ID, c.Name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if _, err := bw.WriteString(sentinel + "\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range f.Entries {
		if _, err := bw.WriteString(e.Term); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}
		for i, id := range e.IDs {
			sep := ","
			if i == 0 {
				sep = "\t"
			}
			if _, err := bw.WriteString(sep + strconv.Itoa(id)); err != nil {
				return fmt.Errorf("writing entry: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
