// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"

	"cogentcore.org/palette/colors/cam/lch"
	"cogentcore.org/palette/contrast"
)

// MaxRepairSteps is the maximum number of unit lightness
// decrements tried by [Repair].
const MaxRepairSteps = 100

// Repair returns the lightest darker version of c, with the same
// hue and chroma in [lch.LCH] space, that passes the AA contrast level
// against white. It returns c unchanged and true if c already passes.
// It returns c unchanged and false if no passing color is found
// before the lightness reaches 0 or [MaxRepairSteps] are tried.
func Repair(c color.RGBA) (color.RGBA, bool) {
	if contrast.OnWhite(c).Pass {
		return c, true
	}
	r, ok := RepairLCH(lch.FromColor(c))
	if !ok {
		return c, false
	}
	return r.AsRGBA(), true
}

// RepairLCH does the search of [Repair] in [lch.LCH] space, lowering
// L by 1 at a time and keeping C and H exactly. It returns the first
// passing color and true, or c and false if there is none.
func RepairLCH(c lch.LCH) (lch.LCH, bool) {
	try := c
	for range MaxRepairSteps {
		if try.L <= 0 {
			break
		}
		try = try.WithL(try.L - 1)
		if contrast.OnWhite(try.AsRGBA()).Pass {
			return try, true
		}
	}
	return c, false
}
