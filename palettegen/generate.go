// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettegen

import (
	"fmt"
	"os"
	"text/tabwriter"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/palette"
	"github.com/muesli/termenv"
)

// Generate prints the palette of the base color as a table with color
// swatches, contrast ratios against white, and contrast levels.
func Generate(c *Config) error {
	p, err := c.Palette()
	if err != nil {
		return err
	}
	return WriteTable(termenv.NewOutput(os.Stdout), p)
}

// WriteTable writes the steps of the given palette as a table to the given
// output. Swatches are last on each line, and only colored if the
// output supports colors.
func WriteTable(out *termenv.Output, p palette.Palette) error {
	fmt.Fprintf(out, "%s, base %s\n\n", p.System.Name, colors.AsHex(p.Base))
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, s := range p.Steps {
		sw := out.String("      ").Background(out.Color(s.Hex()))
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%s\t%s\n", s.Step, s.Hex(), s.Contrast.Ratio, s.Contrast.Level, flags(s), sw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pass, fail := p.Counts()
	_, err := fmt.Fprintf(out, "\n%d pass, %d fail\n", pass, fail)
	return err
}

// flags returns the markers of a step in a table.
func flags(s palette.Step) string {
	switch {
	case s.IsBase:
		return "base"
	case s.Locked:
		return "locked"
	}
	return ""
}
