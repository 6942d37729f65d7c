// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// WhiteD50 is the XYZ of the D50 reference white (Y normalized to 1).
var WhiteD50 = [3]float64{0.96422, 1, 0.82521}

const (
	labT0 = 4.0 / 29
	labT1 = 6.0 / 29
	labT2 = 3 * labT1 * labT1
	labT3 = labT1 * labT1 * labT1
)

// LABCompress is the compression function used in converting XYZ to LAB.
func LABCompress(t float64) float64 {
	if t > labT3 {
		return math.Pow(t, 1.0/3)
	}
	return t/labT2 + labT0
}

// LABUncompress is the uncompress function used in converting LAB to XYZ.
func LABUncompress(t float64) float64 {
	if t > labT1 {
		return t * t * t
	}
	return labT2 * (t - labT0)
}

// XYZToLAB converts a color from XYZ (D50) to L*a*b* coordinates.
// Neutral inputs (x, y and z in proportion to the white point)
// should go through [SRGBToLAB], which keeps a and b exactly 0.
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / WhiteD50[0])
	fy := LABCompress(y / WhiteD50[1])
	fz := LABCompress(z / WhiteD50[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts L*a*b* coordinates to XYZ (D50).
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = WhiteD50[0] * LABUncompress(fx)
	y = WhiteD50[1] * LABUncompress(fy)
	z = WhiteD50[2] * LABUncompress(fz)
	return
}

// SRGBToLAB converts 0-1 normalized sRGB components to L*a*b*.
// Gray inputs (r == g == b) get a and b of exactly 0, which the
// floating point matrix product alone would not guarantee.
func SRGBToLAB(r, g, b float64) (l, la, lb float64) {
	x, y, z := SRGBToXYZ(r, g, b)
	if r == g && g == b {
		return YToL(100 * y / WhiteD50[1]), 0, 0
	}
	return XYZToLAB(x, y, z)
}

// LABToSRGB converts L*a*b* to 0-1 normalized (unclamped) sRGB components.
func LABToSRGB(l, a, b float64) (r, g, bl float64) {
	x, y, z := LABToXYZ(l, a, b)
	return XYZToSRGB(x, y, z)
}

// YToL converts a Y component of XYZ (0-100 scale)
// to a perceptual luminance L* (0-100).
func YToL(y float64) float64 {
	return 116*LABCompress(y/100) - 16
}
