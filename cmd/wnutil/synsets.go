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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordnet/pos"
)

var synsetsCommand = &cli.Command{
	Name:      "synsets",
	Usage:     "print the synsets containing a word",
	ArgsUsage: "WORD...",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "pos",
			Usage:   "search only the `CATEGORY` (noun, verb, adj, adv, sat)",
			Aliases: []string{"p"},
		},
		&cli.BoolFlag{
			Name:               "morph",
			Usage:              "include synsets of base forms of the word",
			Aliases:            []string{"m"},
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing word", ErrFlagParse)
		}

		categories, err := parseCategories(c.StringSlice("pos"))
		if err != nil {
			return err
		}

		db, err := openDatabase(c)
		if err != nil {
			return err
		}
		defer db.Close()

		tbl := table.New("Word", "POS", "Offset", "Words", "Gloss").WithWriter(c.App.Writer)
		for _, word := range c.Args().Slice() {
			synsets, err := db.Synsets(word, categories, c.Bool("morph"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWnutil, err)
			}
			for _, s := range synsets {
				tbl.AddRow(
					word,
					s.Category(),
					fmt.Sprintf("%08d", s.Offset()),
					strings.Join(s.Words, ", "),
					s.Gloss,
				)
			}
		}
		tbl.Print()

		return nil
	},
}

// parseCategories parses category flag values. Values may be comma separated.
func parseCategories(values []string) ([]pos.Category, error) {
	var categories []pos.Category
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			if name == "" {
				continue
			}
			c, err := pos.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("%w: --pos %q: %w", ErrFlagParse, name, err)
			}
			categories = append(categories, c)
		}
	}
	return categories, nil
}
