// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lch provides the cylindrical form of the CIE L*a*b* color space
// (also known as HCL), which is used for perceptually uniform interpolation
// of colors and for lightness adjustments that preserve hue and chroma.
package lch

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/palette/colors/cam/cie"
)

// LCH is a color in the cylindrical CIE L*a*b* space (D50 white point).
//
// Gray colors have no hue, which is represented as NaN in H.
// Pure black and white additionally have an undefined chroma (NaN in C).
// During interpolation an undefined component takes the value of the
// other color, so that a ramp from white to a saturated color keeps
// the hue of that color throughout.
type LCH struct {

	// L is the perceptual lightness (L*) from 0 (black) to 100 (white).
	L float64

	// C is the chroma, the distance from the neutral axis (0 and up).
	C float64

	// H is the hue angle in degrees (0-360).
	H float64
}

// New returns a new [LCH] with the given lightness, chroma and hue.
func New(l, c, h float64) LCH {
	return LCH{L: l, C: c, H: h}
}

// FromColor converts the given color to [LCH].
// Alpha is ignored.
func FromColor(c color.Color) LCH {
	r, g, b, _ := c.RGBA()
	return FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// FromRGB converts the given 8-bit sRGB components to [LCH].
func FromRGB(r, g, b uint8) LCH {
	l, la, lb := cie.SRGBToLAB(cie.SRGBUint8ToFloat(r, g, b))
	if la == 0 && lb == 0 {
		ch := math.NaN()
		if l > 0 && l < 100 {
			ch = 0
		}
		return LCH{L: l, C: ch, H: math.NaN()}
	}
	h := math.Atan2(lb, la) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return LCH{L: l, C: math.Sqrt(la*la + lb*lb), H: h}
}

// LAB returns the L*a*b* coordinates of the color.
// An undefined hue or chroma results in a neutral color.
func (c LCH) LAB() (l, a, b float64) {
	if c.IsAchromatic() || math.IsNaN(c.C) {
		return c.L, 0, 0
	}
	h := c.H * math.Pi / 180
	return c.L, math.Cos(h) * c.C, math.Sin(h) * c.C
}

// AsRGBA returns the color as an opaque [color.RGBA]. Components outside
// of the sRGB gamut are clamped individually, so the result may differ in
// hue and chroma from c for colors that can not be displayed.
func (c LCH) AsRGBA() color.RGBA {
	r, g, b := cie.LABToSRGB(c.LAB())
	ur, ug, ub := cie.SRGBFloatToUint8(r, g, b)
	return color.RGBA{ur, ug, ub, 255}
}

// RGBA implements the [color.Color] interface.
func (c LCH) RGBA() (r, g, b, a uint32) {
	return c.AsRGBA().RGBA()
}

// IsAchromatic returns whether the color has no defined hue.
func (c LCH) IsAchromatic() bool {
	return math.IsNaN(c.H)
}

// WithL returns the color with the given lightness,
// keeping the chroma and hue.
func (c LCH) WithL(l float64) LCH {
	c.L = l
	return c
}

func (c LCH) String() string {
	return fmt.Sprintf("lch(%.2f %.2f %.2f)", c.L, c.C, c.H)
}
