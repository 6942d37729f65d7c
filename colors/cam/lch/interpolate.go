// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lch

import (
	"image/color"
	"math"
)

// Lerp returns the componentwise linear interpolation between a and b
// at position t (0-1). Hue is interpolated arithmetically, without
// taking the shorter way around the hue circle. Components that are
// undefined (NaN) in one of the colors take the value of the other.
func Lerp(a, b LCH, t float64) LCH {
	return LCH{
		L: lerp(a.L, b.L, t),
		C: lerp(a.C, b.C, t),
		H: lerp(a.H, b.H, t),
	}
}

// Interpolate returns the color at position t (0-1) on the
// path from a to b in [LCH] space, as an opaque [color.RGBA].
func Interpolate(a, b color.Color, t float64) color.RGBA {
	return Lerp(FromColor(a), FromColor(b), t).AsRGBA()
}

func lerp(a, b, t float64) float64 {
	d := b - a
	if d == 0 || math.IsNaN(d) {
		if math.IsNaN(a) {
			return b
		}
		return a
	}
	return a + d*t
}
