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

	"github.com/remrama/liwca/registry"
)

var listCommand = &cli.Command{
	Name:        "list",
	Usage:       "List fetchable dictionaries",
	Description: "List the dictionaries available to the fetch command.",
	Action: func(c *cli.Context) error {
		reg, err := registry.Default()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDxutil, err)
		}

		tbl := table.New("NAME", "FILE", "URL")
		tbl.WithWriter(c.App.Writer)
		for _, e := range reg.Entries() {
			tbl.AddRow(e.Name, e.File, e.URL)
		}
		tbl.Print()

		return nil
	},
}
