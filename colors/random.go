// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"math/rand/v2"
)

// Random returns a uniformly distributed random opaque color
// using the given source, or the global source if it is nil.
func Random(r *rand.Rand) color.RGBA {
	var v uint32
	if r == nil {
		v = rand.Uint32N(1 << 24)
	} else {
		v = r.Uint32N(1 << 24)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}
