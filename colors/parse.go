// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse normalizes and parses a user supplied color string. It accepts
// CSS color names (like "steelblue"), #RGB shorthand, and hex colors
// with or without the leading #. The normalized string is then parsed
// with [FromHex], so the only error is one wrapping [ErrInvalidHex].
func Parse(s string) (color.RGBA, error) {
	hex, err := Normalize(s)
	if err != nil {
		return color.RGBA{}, err
	}
	return FromHex(hex)
}

// Normalize converts a user supplied color string into
// the canonical uppercase #RRGGBB form.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return AsHex(c), nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	if !IsHex(s) {
		return "", fmt.Errorf("colors.Normalize: %q: %w", s, ErrInvalidHex)
	}
	return strings.ToUpper(s), nil
}
