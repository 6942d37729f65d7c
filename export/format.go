// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

// Format is a code format that a palette can be exported to.
type Format int32 //enums:enum -transform kebab -accept-lower

const (
	// Tailwind3 is a tailwind.config.js theme extension.
	Tailwind3 Format = iota

	// Tailwind4 is a Tailwind CSS v4 @theme block.
	Tailwind4

	// CSS is a :root block of CSS custom properties.
	CSS

	// SCSS is a list of SCSS variables.
	SCSS

	// SVG is an SVG image of labeled swatches, for use in design tools.
	SVG

	// JSON is a simple JSON object with the colors keyed by step.
	JSON

	// FigmaTokens is the W3C design tokens JSON format, as read by Tokens Studio.
	FigmaTokens

	// FigmaAPI is a Figma plugin script that creates a variable collection.
	FigmaAPI
)

// UsesColorFormat returns whether the format writes colors in the
// requested color format. [FigmaTokens] and [FigmaAPI] always use hex
// colors, as their consumers expect.
func (f Format) UsesColorFormat() bool {
	switch f {
	case Tailwind3, Tailwind4, CSS, SCSS, SVG, JSON:
		return true
	}
	return false
}

// Ext returns the conventional file extension of the format, with the dot.
func (f Format) Ext() string {
	switch f {
	case Tailwind3, FigmaAPI:
		return ".js"
	case Tailwind4, CSS:
		return ".css"
	case SCSS:
		return ".scss"
	case SVG:
		return ".svg"
	}
	return ".json"
}
