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
	"github.com/remrama/liwca/registry"
)

var fetchCommand = &cli.Command{
	Name:      "fetch",
	Usage:     "Download a published dictionary",
	ArgsUsage: "NAME",
	Description: "Download the named dictionary into the local cache. With\n" +
		"--output the dictionary is also written to FILE in the format\n" +
		"implied by its extension.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write the dictionary to `FILE`",
			Aliases: []string{"o"},
		},
		&cli.StringFlag{
			Name:  "cache-dir",
			Usage: "cache downloads in `DIR`",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected NAME argument", ErrUsage)
		}
		name := c.Args().Get(0)

		var opts []registry.Option
		if dir := c.String("cache-dir"); dir != "" {
			opts = append(opts, registry.WithCacheDir(dir))
		}
		f, err := registry.NewFetcher(opts...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDxutil, err)
		}

		path, err := f.Fetch(c.Context, name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDxutil, err)
		}

		output := c.String("output")
		if output == "" {
			fmt.Fprintln(c.App.Writer, path)
			return nil
		}

		d, err := liwca.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDxutil, err)
		}
		warnings, err := liwca.WriteFile(d, output)
		for _, w := range warnings {
			fmt.Fprintf(c.App.ErrWriter, "warning: %s\n", w)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDxutil, err)
		}
		fmt.Fprintln(c.App.Writer, output)
		return nil
	},
}
