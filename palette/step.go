// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"encoding/json"
	"image/color"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/contrast"
)

// Step is one generated color of a palette.
type Step struct {

	// Step is the step value from the [System].
	Step int

	// Color is the opaque color of the step.
	Color color.RGBA

	// IsBase is whether this is the base step of the system.
	IsBase bool

	// Locked is whether the step is protected from edits.
	// The base step starts locked.
	Locked bool

	// Contrast is the contrast of Color against white.
	Contrast contrast.Status
}

// Hex returns the color of the step as an uppercase #RRGGBB string.
func (s Step) Hex() string {
	return colors.AsHex(s.Color)
}

type stepJSON struct {
	Step     int             `json:"step"`
	Hex      string          `json:"hex"`
	IsBase   bool            `json:"isBase"`
	Locked   bool            `json:"locked"`
	Contrast contrast.Status `json:"contrast"`
}

// MarshalJSON implements [json.Marshaler], representing the
// color as a hex string.
func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepJSON{s.Step, s.Hex(), s.IsBase, s.Locked, s.Contrast})
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *Step) UnmarshalJSON(b []byte) error {
	var sj stepJSON
	if err := json.Unmarshal(b, &sj); err != nil {
		return err
	}
	c, err := colors.FromHex(sj.Hex)
	if err != nil {
		return err
	}
	*s = Step{Step: sj.Step, Color: c, IsBase: sj.IsBase, Locked: sj.Locked, Contrast: sj.Contrast}
	return nil
}
