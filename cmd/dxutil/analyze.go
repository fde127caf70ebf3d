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
	"os"

	"github.com/urfave/cli/v2"

	"github.com/remrama/liwca/liwc22"
)

var analyzeCommand = &cli.Command{
	Name:      "analyze",
	Usage:     "Run a LIWC-22 word count analysis",
	ArgsUsage: "INPUT",
	Description: "Analyze INPUT with the LIWC-22 application, which must be\n" +
		"installed and licensed. The application is started if it is not\n" +
		"already running and stopped afterwards unless --keep-running is\n" +
		"given.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "dictionary",
			Usage:    "analyze with the dictionary at `FILE`",
			Aliases:  []string{"d"},
			Required: true,
		},
		&cli.StringFlag{
			Name:     "output",
			Usage:    "write results to `FILE`",
			Aliases:  []string{"o"},
			Required: true,
		},
		&cli.StringFlag{
			Name:  "app",
			Usage: "LIWC-22 application `PATH`",
			Value: liwcLocation(),
		},
		&cli.BoolFlag{
			Name:  "keep-running",
			Usage: "leave the LIWC-22 application running",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected INPUT argument", ErrUsage)
		}

		tool := liwc22.New(liwc22.WithAppName(c.String("app")))
		if !c.Bool("keep-running") {
			defer func() {
				if err := tool.Stop(); err != nil {
					fmt.Fprintln(c.App.ErrWriter, err)
				}
			}()
		}

		path, err := tool.Analyze(c.Context, c.String("dictionary"), c.Args().Get(0), c.String("output"))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDxutil, err)
		}
		fmt.Fprintln(c.App.Writer, path)
		return nil
	},
}

// liwcLocation returns the default LIWC-22 application path, preferring a
// known install location when one exists.
func liwcLocation() string {
	if home := os.Getenv("LIWC22_HOME"); home != "" {
		return home
	}
	for _, loc := range liwcLocations() {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return liwc22.DefaultAppName
}
