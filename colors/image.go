// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
	"image/draw"
)

// Uniform returns a new [image.Uniform] filled completely with the given color.
func Uniform(c color.Color) image.Image {
	return image.NewUniform(c)
}

// Strip returns a new image with a horizontal strip of swatches of the
// given colors, each of the given size.
func Strip(cs []color.Color, size image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.X*len(cs), size.Y))
	for i, c := range cs {
		r := image.Rect(i*size.X, 0, (i+1)*size.X, size.Y)
		draw.Draw(img, r, Uniform(c), image.Point{}, draw.Src)
	}
	return img
}
