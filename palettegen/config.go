// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palettegen implements the palettegen command line tool, which
// generates color palettes from a base color and exports them as code.
package palettegen

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/export"
	"cogentcore.org/palette/palette"
)

// ConfigFile is the name of the default configuration file.
const ConfigFile = "palettegen.toml"

// Config is the configuration information for palettegen.
type Config struct {

	// Color is the base color of the palette, as a hex code, with or
	// without the leading #, or a CSS color name.
	Color string `posarg:"0" required:"-" default:"#3B82F6"`

	// System is the id of the step system to generate.
	System string `flag:"s,system" default:"tailwind"`

	// Systems is an optional catalog file (.toml, .yaml or .json) with
	// additional step systems, which replace built-in systems with the same id.
	Systems string `flag:"systems"`

	// AutoAdjust darkens every step that does not pass the AA contrast
	// level against white, when possible.
	AutoAdjust bool `flag:"a,auto-adjust"`

	// Random uses a random base color instead of Color.
	Random bool `flag:"random"`

	// Set overrides the colors of individual steps after generation,
	// as step=color pairs such as 700=#123456. Overridden steps are locked.
	Set []string `flag:"set"`

	// Format is the export format.
	Format export.Format `flag:"f,format" default:"tailwind3"`

	// ColorFormat is the format of color values in exported code.
	ColorFormat colors.Format `flag:"color-format" default:"hex"`

	// Prefix is the name that exported tokens start with.
	Prefix string `flag:"p,prefix" default:"brand"`

	// Casing is the case convention of the prefix.
	Casing export.Casing `flag:"casing" default:"kebab"`

	// Output is the file to write to. Export writes to standard
	// output if it is empty.
	Output string `flag:"o,output"`

	// Copy copies exported code to the clipboard.
	Copy bool `flag:"copy"`

	// Size is the width and height of each swatch in a PNG swatch strip.
	Size int `flag:"size" default:"100"`

	// Scale resizes PNG swatch strips by the given factor.
	Scale float64 `flag:"scale" default:"1"`
}

// base returns the base color.
func (c *Config) base() (color.RGBA, error) {
	if c.Random {
		return colors.Random(nil), nil
	}
	return colors.Parse(c.Color)
}

// systems returns the built-in systems, with those of
// the Systems file merged in, if any.
func (c *Config) systems() ([]palette.System, error) {
	sys := palette.Builtin()
	if c.Systems == "" {
		return sys, nil
	}
	extra, err := palette.OpenSystems(c.Systems)
	if err != nil {
		return nil, err
	}
	return palette.Merge(sys, extra), nil
}

// Palette returns the palette described by the configuration,
// with any overrides in Set applied and locked.
func (c *Config) Palette() (palette.Palette, error) {
	base, err := c.base()
	if err != nil {
		return palette.Palette{}, err
	}
	all, err := c.systems()
	if err != nil {
		return palette.Palette{}, err
	}
	sys, err := palette.Lookup(all, c.System)
	if err != nil {
		return palette.Palette{}, err
	}
	p, err := palette.New(base, sys, c.AutoAdjust)
	if err != nil {
		return p, err
	}
	for _, s := range c.Set {
		step, sc, err := ParseOverride(s)
		if err != nil {
			return p, err
		}
		// overrides win over the lock of the base step
		if p, err = p.SetLocked(step, false); err != nil {
			return p, err
		}
		if p, err = p.Edit(step, sc); err != nil {
			return p, err
		}
		if p, err = p.SetLocked(step, true); err != nil {
			return p, err
		}
	}
	return p, nil
}

// ParseOverride parses a step=color override, such as 700=#123456.
func ParseOverride(s string) (int, color.RGBA, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return 0, color.RGBA{}, fmt.Errorf("palettegen: invalid override %q: expected step=color", s)
	}
	step, err := strconv.Atoi(strings.TrimSpace(k))
	if err != nil {
		return 0, color.RGBA{}, fmt.Errorf("palettegen: invalid override %q: %w", s, err)
	}
	c, err := colors.Parse(v)
	if err != nil {
		return 0, color.RGBA{}, fmt.Errorf("palettegen: invalid override %q: %w", s, err)
	}
	return step, c, nil
}
