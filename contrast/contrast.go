// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contrast computes WCAG 2 relative luminance and contrast ratios,
// and maps contrast ratios to compliance levels.
package contrast

import (
	"image/color"
	"math"

	"cogentcore.org/palette/colors"
)

// Minimum contrast ratios of the compliance levels.
const (
	MinAAA     = 7
	MinAA      = 4.5
	MinAALarge = 3
)

// Status is the contrast of a foreground color against a background.
type Status struct {

	// Ratio is the contrast ratio (1-21), rounded to 2 decimal places.
	Ratio float64 `json:"ratio"`

	// Level is the compliance level of Ratio.
	Level Level `json:"level"`

	// Pass is whether Ratio meets [MinAA], the level required
	// for normal text.
	Pass bool `json:"isPass"`
}

// Luminance returns the relative luminance (0-1) of the given color,
// as defined by WCAG 2. Alpha is ignored.
func Luminance(c color.Color) float64 {
	rc := colors.AsRGBA(c)
	return 0.2126*linear(rc.R) + 0.7152*linear(rc.G) + 0.0722*linear(rc.B)
}

// linear removes the sRGB gamma of the given component, using the
// 0.03928 threshold of the WCAG 2 definition.
func linear(v uint8) float64 {
	f := float64(v) / 255
	if f <= 0.03928 {
		return f / 12.92
	}
	return math.Pow((f+0.055)/1.055, 2.4)
}

// Ratio returns the unrounded contrast ratio between the two colors.
// The ratio will be between 1 and 21, and does not depend on the order
// of the colors.
func Ratio(a, b color.Color) float64 {
	return RatioOfLuminances(Luminance(a), Luminance(b))
}

// RatioOfLuminances returns the contrast ratio of two relative luminances.
func RatioOfLuminances(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 0.05) / (darker + 0.05)
}

// Round rounds the given ratio to 2 decimal places, halves away from zero.
func Round(ratio float64) float64 {
	return math.Round(ratio*100) / 100
}

// Of returns the contrast [Status] of fg against bg. The ratio is rounded
// to 2 decimal places before the level is determined, so a ratio of
// 4.499 counts as 4.5.
func Of(fg, bg color.Color) Status {
	r := Round(Ratio(fg, bg))
	return Status{Ratio: r, Level: LevelOf(r), Pass: r >= MinAA}
}

// OnWhite returns the contrast [Status] of c against pure white,
// the background used for all palette evaluation.
func OnWhite(c color.Color) Status {
	return Of(c, colors.White)
}
