// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Format is a textual representation of a color used in code.
type Format int32 //enums:enum -transform lower -accept-lower

const (
	// Hex is the #RRGGBB form.
	Hex Format = iota

	// RGB is the CSS rgb(r, g, b) form.
	RGB

	// HSL is the CSS hsl(h, s%, l%) form.
	HSL

	// OKLCH is the CSS oklch(L% C H) form.
	OKLCH
)

// AsFormat returns the given color in the given format.
// Unknown formats fall back to [Hex].
func AsFormat(c color.Color, f Format) string {
	rc := AsRGBA(c)
	switch f {
	case RGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", rc.R, rc.G, rc.B)
	case HSL:
		h, s, l := toColorful(rc).Hsl()
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", trim(h, 1), trim(s*100, 1), trim(l*100, 1))
	case OKLCH:
		l, ch, h := toColorful(rc).OkLch()
		return fmt.Sprintf("oklch(%s%% %s %s)", trim(l*100, 2), trim(ch, 4), trim(h, 2))
	}
	return AsHex(rc)
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// trim formats v with at most the given number of decimals,
// dropping trailing zeros.
func trim(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
