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

	"github.com/urfave/cli/v2"

	"github.com/remrama/liwca"
)

var convertCommand = &cli.Command{
	Name:      "convert",
	Usage:     "Convert a dictionary to another format",
	ArgsUsage: "SRC DST",
	Description: "Convert the dictionary at SRC to the format implied by DST's\n" +
		"file extension. Conversions that drop data print a warning for\n" +
		"each drop.",
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: expected SRC and DST arguments", ErrUsage)
		}
		src := c.Args().Get(0)
		dst := c.Args().Get(1)

		d, err := liwca.ReadFile(src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDxutil, err)
		}

		warnings, err := liwca.WriteFile(d, dst)
		for _, w := range warnings {
			fmt.Fprintf(c.App.ErrWriter, "warning: %s\n", w)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDxutil, err)
		}
		return nil
	},
}
