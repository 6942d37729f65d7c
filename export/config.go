// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"strings"

	"cogentcore.org/core/base/strcase"
	"cogentcore.org/palette/colors"
)

// Casing is the case convention applied to the token prefix.
type Casing int32 //enums:enum -transform lower -accept-lower

const (
	// Kebab is kebab-case: brand-blue.
	Kebab Casing = iota

	// Camel is lowerCamelCase: brandBlue.
	Camel

	// Snake is snake_case: brand_blue.
	Snake
)

// Apply returns s converted to the casing.
func (c Casing) Apply(s string) string {
	switch c {
	case Camel:
		return strcase.ToLowerCamel(s)
	case Snake:
		return strcase.ToSnake(s)
	}
	return strcase.ToKebab(s)
}

// DefaultPrefix is the token prefix used when none is given.
const DefaultPrefix = "brand"

// Config is the token naming and value configuration of an export.
type Config struct {

	// Prefix is the name that tokens start with, as in brand-500.
	Prefix string

	// Casing is the case convention applied to the prefix.
	Casing Casing

	// ColorFormat is the format of color values, for the formats
	// where [Format.UsesColorFormat].
	ColorFormat colors.Format
}

// prefix returns the cased prefix, or [DefaultPrefix] if it is empty.
func (c *Config) prefix() string {
	p := c.Casing.Apply(strings.TrimSpace(c.Prefix))
	if p == "" {
		return DefaultPrefix
	}
	return p
}
