// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettegen

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"text/tabwriter"

	"cogentcore.org/core/colors/cam/hct"
	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/cam/lch"
	"cogentcore.org/palette/contrast"
	"cogentcore.org/palette/palette"
)

// Inspect shows the base color in every color format and
// color space that palettegen knows, with its contrast.
func Inspect(c *Config) error {
	base, err := c.base()
	if err != nil {
		return err
	}
	return WriteInspect(os.Stdout, base)
}

// WriteInspect writes the details of the given color to w.
func WriteInspect(w io.Writer, c color.RGBA) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range colors.FormatValues() {
		fmt.Fprintf(tw, "%s\t%s\n", f, colors.AsFormat(c, f))
	}
	fmt.Fprintf(tw, "lch\t%s\n", lch.FromColor(c))
	h := hct.FromColor(c)
	fmt.Fprintf(tw, "hct\thct(%.2f %.2f %.2f)\n", h.Hue, h.Chroma, h.Tone)
	fmt.Fprintf(tw, "luminance\t%.4f\n", contrast.Luminance(c))
	onWhite := contrast.OnWhite(c)
	fmt.Fprintf(tw, "on white\t%.2f\t%s\n", onWhite.Ratio, onWhite.Level)
	onBlack := contrast.Of(c, colors.Black)
	fmt.Fprintf(tw, "on black\t%.2f\t%s\n", onBlack.Ratio, onBlack.Level)
	if !onWhite.Pass {
		if r, ok := palette.Repair(c); ok {
			fmt.Fprintf(tw, "repaired\t%s\t%.2f\n", colors.AsHex(r), contrast.OnWhite(r).Ratio)
		} else {
			fmt.Fprintf(tw, "repaired\tnone\n")
		}
	}
	return tw.Flush()
}
