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

package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/remrama/liwca"
)

var infoCommand = &cli.Command{
	Name:        "info",
	Usage:       "Describe a dictionary file",
	ArgsUsage:   "FILE",
	Description: "Print a dictionary's metadata and per-category term counts.",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected FILE argument", ErrUsage)
		}

		d, err := liwca.ReadFile(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDxutil, err)
		}

		meta := d.Meta()
		for _, key := range []string{
			liwca.MetaName,
			liwca.MetaPublisher,
			liwca.MetaVersion,
			liwca.MetaDescription,
		} {
			if value := meta.Get(key); value != "" {
				fmt.Fprintf(c.App.Writer, "%-12s %s\n", key+":", value)
			}
		}
		fmt.Fprintf(c.App.Writer, "%-12s %d\n", "categories:", len(d.Categories()))
		fmt.Fprintf(c.App.Writer, "%-12s %d\n", "terms:", d.Len())
		fmt.Fprintln(c.App.Writer)

		tbl := table.New("CATEGORY", "TERMS", "WEIGHTED")
		tbl.WithWriter(c.App.Writer)
		for _, cat := range d.Categories() {
			weighted := 0
			for _, term := range d.Terms(cat) {
				if d.Weight(cat, term) != 0 {
					weighted++
				}
			}
			tbl.AddRow(cat, len(d.Terms(cat)), weighted)
		}
		tbl.Print()

		return nil
	},
}
