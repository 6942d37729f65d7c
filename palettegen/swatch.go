// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettegen

import (
	"image"
	"log/slog"

	"cogentcore.org/palette/export"
	"cogentcore.org/palette/palette"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// DefaultSwatchFile is the file that [Swatch] writes to
// if no output file is given.
const DefaultSwatchFile = "palette.png"

// Swatch writes the palette as a PNG strip of swatches.
func Swatch(c *Config) error {
	p, err := c.Palette()
	if err != nil {
		return err
	}
	fn := c.Output
	if fn == "" {
		fn = DefaultSwatchFile
	}
	if err := imgio.Save(fn, SwatchImage(p, c.Size, c.Scale), imgio.PNGEncoder()); err != nil {
		return err
	}
	slog.Info("wrote swatch", "file", fn, "steps", len(p.Steps))
	return nil
}

// SwatchImage returns the steps of the given palette as a strip of square
// swatches of the given size, resized by the given scale factor.
func SwatchImage(p palette.Palette, size int, scale float64) *image.RGBA {
	size = max(size, 1)
	img := export.Image(p.Steps, image.Pt(size, size))
	if scale <= 0 || scale == 1 {
		return img
	}
	b := img.Bounds()
	w := max(int(float64(b.Dx())*scale), 1)
	h := max(int(float64(b.Dy())*scale), 1)
	return transform.Resize(img, w, h, transform.NearestNeighbor)
}
