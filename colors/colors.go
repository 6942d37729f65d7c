// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the conversion of 8-bit sRGB colors
// to and from their textual representations.
package colors

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
)

var (
	// White is pure opaque white (#FFFFFF).
	White = color.RGBA{255, 255, 255, 255}

	// Black is pure opaque black (#000000).
	Black = color.RGBA{0, 0, 0, 255}
)

// ErrInvalidHex is returned for color strings that are not
// of the form #RRGGBB.
var ErrInvalidHex = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// FromHex parses the given #RRGGBB hex color string (case-insensitive,
// surrounding space ignored) and returns the resulting opaque color.
// Any other input returns an error wrapping [ErrInvalidHex]; see
// [MustFromHex] for a version that does not return an error, and [Parse]
// for a more lenient version.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	if !hexPattern.MatchString(hex) {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %q: %w", hex, ErrInvalidHex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %q: %w", hex, ErrInvalidHex)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// IsHex returns whether the given string is a valid #RRGGBB hex color.
func IsHex(hex string) bool {
	return hexPattern.MatchString(strings.TrimSpace(hex))
}

// AsHex returns the color as a standard uppercase
// 2-hexadecimal-digits-per-component string without alpha.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
}

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	if rc, ok := c.(color.RGBA); ok {
		return rc
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
