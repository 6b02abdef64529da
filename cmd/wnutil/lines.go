// Copyright 2026 Ian Lewis
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
)

var linesCommand = &cli.Command{
	Name:      "lines",
	Usage:     "print the lines of a sorted database file between two prefixes",
	ArgsUsage: "FILE LOWER [UPPER]",
	Action: func(c *cli.Context) error {
		if c.NArg() < 2 || c.NArg() > 3 {
			return fmt.Errorf("%w: expected FILE LOWER [UPPER]", ErrFlagParse)
		}

		db, err := openDatabase(c)
		if err != nil {
			return err
		}
		defer db.Close()

		lines, err := db.Lines(c.Args().Get(0), c.Args().Get(1), c.Args().Get(2))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWnutil, err)
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(c.App.Writer, line); err != nil {
				return fmt.Errorf("%w: %w", ErrWnutil, err)
			}
		}
		return nil
	},
}
