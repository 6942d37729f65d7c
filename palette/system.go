// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrEmptySystem is returned for a [System] without steps.
	ErrEmptySystem = errors.New("system has no steps")

	// ErrUnsortedSteps is returned for a [System] whose steps
	// are not strictly increasing.
	ErrUnsortedSteps = errors.New("system steps are not strictly increasing")

	// ErrBaseStepMissing is returned for a [System] whose base step
	// is not one of its steps.
	ErrBaseStepMissing = errors.New("system base step is not one of its steps")
)

// System is a named scale of steps, such as the 50-950 scale of Tailwind CSS,
// together with the step that the base color is pinned to.
type System struct {

	// ID is the short identifier used to select the system.
	ID string `json:"id" toml:"id" yaml:"id"`

	// Name is the display name of the system.
	Name string `json:"name" toml:"name" yaml:"name"`

	// Description is a one line description of the system.
	Description string `json:"description,omitempty" toml:"description" yaml:"description,omitempty"`

	// Steps are the strictly increasing step values of the scale.
	Steps []int `json:"steps" toml:"steps" yaml:"steps"`

	// BaseStep is the step that the base color maps to exactly.
	// It must be one of Steps.
	BaseStep int `json:"baseStep" toml:"baseStep" yaml:"baseStep"`
}

// Validate returns an error if the system does not have a non-empty
// strictly increasing list of steps that includes the base step.
func (s *System) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("palette: system %q: %w", s.ID, ErrEmptySystem)
	}
	for i := 1; i < len(s.Steps); i++ {
		if s.Steps[i] <= s.Steps[i-1] {
			return fmt.Errorf("palette: system %q: step %d after %d: %w", s.ID, s.Steps[i], s.Steps[i-1], ErrUnsortedSteps)
		}
	}
	if !slices.Contains(s.Steps, s.BaseStep) {
		return fmt.Errorf("palette: system %q: base step %d: %w", s.ID, s.BaseStep, ErrBaseStepMissing)
	}
	return nil
}

// Position returns the normalized position (0-1) of the given step
// between the first and last steps of the system. A system with a
// single step has every step at position 0.
func (s *System) Position(step int) float64 {
	lo, hi := s.Steps[0], s.Steps[len(s.Steps)-1]
	if hi == lo {
		return 0
	}
	return float64(step-lo) / float64(hi-lo)
}

// Clone returns a copy of the system that does not share its steps.
func (s System) Clone() System {
	s.Steps = slices.Clone(s.Steps)
	return s
}

func (s System) String() string {
	return fmt.Sprintf("%s (%s): %v, base %d", s.Name, s.ID, s.Steps, s.BaseStep)
}
