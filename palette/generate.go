// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates perceptually uniform color scales from a
// single base color, with optional repair of steps that do not have
// enough contrast against white.
package palette

import (
	"image/color"
	"log/slog"
	"math"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/cam/lch"
	"cogentcore.org/palette/contrast"
)

const (
	// LightEasing is the exponent applied to the position on the light ramp.
	// Being below 1, steps converge towards the base color faster than linear.
	LightEasing = 0.9

	// DarkEasing is the exponent applied to the position on the dark ramp.
	// Being above 1, it slows the darkening right after the base color.
	DarkEasing = 1.1
)

// Generate returns the palette of the given base color for the given system,
// with one [Step] per system step, in the order of the system. Steps before
// the base step are interpolated in [lch.LCH] space from white to the base
// color, and steps after it from the base color to black. If autoAdjust is
// true, every step that does not pass the AA contrast level against white
// is darkened with [Repair], which may not always succeed.
// Generate returns nil if the system is not valid.
func Generate(base color.RGBA, sys System, autoAdjust bool) []Step {
	if err := sys.Validate(); err != nil {
		slog.Debug("palette: not generating", "err", err)
		return nil
	}
	base.A = 255
	tBase := sys.Position(sys.BaseStep)
	steps := make([]Step, len(sys.Steps))
	for i, s := range sys.Steps {
		c := stepColor(base, sys.Position(s), tBase)
		st := contrast.OnWhite(c)
		if autoAdjust && !st.Pass {
			if rc, ok := Repair(c); ok {
				c = rc
				st = contrast.OnWhite(c)
			} else {
				slog.Debug("palette: contrast repair failed", "step", s, "color", colors.AsHex(c))
			}
		}
		isBase := s == sys.BaseStep
		steps[i] = Step{Step: s, Color: c, IsBase: isBase, Locked: isBase, Contrast: st}
	}
	return steps
}

// GenerateHex is like [Generate], but takes the base color as a #RRGGBB
// string. It returns nil if the color is not valid.
func GenerateHex(hex string, sys System, autoAdjust bool) []Step {
	base, err := colors.FromHex(hex)
	if err != nil {
		slog.Debug("palette: not generating", "err", err)
		return nil
	}
	return Generate(base, sys, autoAdjust)
}

// stepColor returns the raw color at normalized position t,
// where the base color is at tBase.
func stepColor(base color.RGBA, t, tBase float64) color.RGBA {
	switch {
	case t < tBase:
		return lightRamp(base, t, tBase)
	case t > tBase:
		return darkRamp(base, t, tBase)
	}
	return base
}

// lightRamp returns the color at position t (< tBase) on the
// ramp from white to base.
func lightRamp(base color.RGBA, t, tBase float64) color.RGBA {
	if tBase <= 0 {
		return colors.White
	}
	return lch.Interpolate(colors.White, base, math.Pow(t/tBase, LightEasing))
}

// darkRamp returns the color at position t (> tBase) on the
// ramp from base to black.
func darkRamp(base color.RGBA, t, tBase float64) color.RGBA {
	if tBase >= 1 {
		return colors.Black
	}
	return lch.Interpolate(base, colors.Black, math.Pow((t-tBase)/(1-tBase), DarkEasing))
}
