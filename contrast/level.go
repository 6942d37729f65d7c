// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

// Level is a WCAG compliance level derived from a contrast ratio.
// Levels are ordered by strictness, so a >= b means that a
// satisfies everything b does.
type Level int32 //enums:enum -line-comment -accept-lower

const (
	// Fail is any ratio below 3.
	Fail Level = iota

	// AALarge is a ratio of at least 3, enough for large text
	// and user interface components.
	AALarge // AA+

	// AA is a ratio of at least 4.5, enough for normal text.
	AA

	// AAA is a ratio of at least 7.
	AAA
)

// LevelOf returns the compliance level of the given contrast ratio.
func LevelOf(ratio float64) Level {
	switch {
	case ratio >= MinAAA:
		return AAA
	case ratio >= MinAA:
		return AA
	case ratio >= MinAALarge:
		return AALarge
	}
	return Fail
}
