// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// The XYZ space used here is relative to the D50 white point,
// with the sRGB primaries chromatically adapted with the Bradford
// transform, as in CSS Color 4 Lab and d3-color.

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space
// relative to the D50 white point.
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	x = 0.4360747*rl + 0.3850649*gl + 0.1430804*bl
	y = 0.2225045*rl + 0.7168786*gl + 0.0606169*bl
	z = 0.0139322*rl + 0.0971045*gl + 0.7141733*bl
	return
}

// XYZToSRGBLin converts XYZ CIE standard color space (D50) to sRGB linear.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	rl = 3.1338561*x - 1.6168667*y - 0.4906146*z
	gl = -0.9787684*x + 1.9161415*y + 0.0334540*z
	bl = 0.0719453*x - 0.2289914*y + 1.4052427*z
	return
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space (D50).
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	return SRGBLinToXYZ(rl, gl, bl)
}

// XYZToSRGB converts XYZ CIE standard color space (D50) into sRGB.
// The result may be outside of the 0-1 gamut (or NaN for negative
// linear values); use [SRGBFloatToUint8] to clamp it.
func XYZToSRGB(x, y, z float64) (r, g, b float64) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	return SRGBFromLinear(rl, gl, bl)
}
