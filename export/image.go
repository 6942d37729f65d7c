// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"image"
	"image/color"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/palette"
)

// Image returns an image of the given steps as a strip of
// swatches, each of the given size.
func Image(steps []palette.Step, size image.Point) *image.RGBA {
	cs := make([]color.Color, len(steps))
	for i, s := range steps {
		cs[i] = s.Color
	}
	return colors.Strip(cs, size)
}
