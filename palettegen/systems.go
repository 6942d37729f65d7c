// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettegen

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"cogentcore.org/palette/palette"
)

// Systems lists the available step systems.
func Systems(c *Config) error {
	all, err := c.systems()
	if err != nil {
		return err
	}
	return WriteSystems(os.Stdout, all)
}

// WriteSystems writes the given systems as a table to w.
func WriteSystems(w io.Writer, systems []palette.System) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBASE\tSTEPS")
	for _, s := range systems {
		steps := make([]string, len(s.Steps))
		for i, st := range s.Steps {
			steps[i] = strconv.Itoa(st)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.ID, s.Name, s.BaseStep, strings.Join(steps, " "))
	}
	return tw.Flush()
}
