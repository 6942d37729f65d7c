// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/palette/contrast"
)

var (
	// ErrStepLocked is returned by [Palette.Edit] for a locked step.
	ErrStepLocked = errors.New("step is locked")

	// ErrStepNotFound is returned for a step that is not in the palette.
	ErrStepNotFound = errors.New("step not found")
)

// Palette is an editing session over a generated palette.
// All methods return a new Palette and never modify the receiver,
// so a Palette value can be kept as an undo point.
type Palette struct {

	// Base is the base color.
	Base color.RGBA

	// System is the step system.
	System System

	// AutoAdjust is whether failing steps are repaired.
	AutoAdjust bool

	// Steps are the current steps, in the order of the system.
	Steps []Step
}

// New returns a new palette generated from the given base color and system.
// It returns an error if the system is not valid.
func New(base color.RGBA, sys System, autoAdjust bool) (Palette, error) {
	if err := sys.Validate(); err != nil {
		return Palette{}, err
	}
	base.A = 255
	sys = sys.Clone()
	return Palette{Base: base, System: sys, AutoAdjust: autoAdjust, Steps: Generate(base, sys, autoAdjust)}, nil
}

// regenerate returns p with its steps generated again. Steps that were
// locked by the user keep their color if the new system has them.
// The base step always takes the base color.
func (p Palette) regenerate() Palette {
	old := p.Steps
	p.Steps = Generate(p.Base, p.System, p.AutoAdjust)
	for _, o := range old {
		if !o.Locked || o.IsBase {
			continue
		}
		i := p.index(o.Step)
		if i < 0 || p.Steps[i].IsBase {
			continue
		}
		p.Steps[i].Color = o.Color
		p.Steps[i].Locked = true
		p.Steps[i].Contrast = contrast.OnWhite(o.Color)
	}
	return p
}

// WithBase returns the palette regenerated from the given base color.
func (p Palette) WithBase(base color.RGBA) Palette {
	base.A = 255
	p.Base = base
	return p.regenerate()
}

// WithSystem returns the palette regenerated for the given system.
// It returns an error if the system is not valid.
func (p Palette) WithSystem(sys System) (Palette, error) {
	if err := sys.Validate(); err != nil {
		return p, err
	}
	p.System = sys.Clone()
	return p.regenerate(), nil
}

// WithAutoAdjust returns the palette regenerated with the given
// auto adjust setting.
func (p Palette) WithAutoAdjust(autoAdjust bool) Palette {
	p.AutoAdjust = autoAdjust
	return p.regenerate()
}

func (p *Palette) index(step int) int {
	return slices.IndexFunc(p.Steps, func(s Step) bool { return s.Step == step })
}

// Step returns the step with the given step value, and whether it exists.
func (p Palette) Step(step int) (Step, bool) {
	i := p.index(step)
	if i < 0 {
		return Step{}, false
	}
	return p.Steps[i], true
}

// Edit returns the palette with the color of the given step replaced
// by c, and its contrast evaluated again. Locked steps can not be edited.
func (p Palette) Edit(step int, c color.RGBA) (Palette, error) {
	i := p.index(step)
	if i < 0 {
		return p, fmt.Errorf("palette.Edit: %d: %w", step, ErrStepNotFound)
	}
	if p.Steps[i].Locked {
		return p, fmt.Errorf("palette.Edit: %d: %w", step, ErrStepLocked)
	}
	c.A = 255
	p.Steps = slices.Clone(p.Steps)
	p.Steps[i].Color = c
	p.Steps[i].Contrast = contrast.OnWhite(c)
	return p, nil
}

// SetLocked returns the palette with the lock state of the given step set.
func (p Palette) SetLocked(step int, locked bool) (Palette, error) {
	i := p.index(step)
	if i < 0 {
		return p, fmt.Errorf("palette.SetLocked: %d: %w", step, ErrStepNotFound)
	}
	p.Steps = slices.Clone(p.Steps)
	p.Steps[i].Locked = locked
	return p, nil
}

// ToggleLock returns the palette with the lock state of the given step flipped.
func (p Palette) ToggleLock(step int) (Palette, error) {
	s, ok := p.Step(step)
	if !ok {
		return p, fmt.Errorf("palette.ToggleLock: %d: %w", step, ErrStepNotFound)
	}
	return p.SetLocked(step, !s.Locked)
}

// Counts returns the number of steps that reach at least the
// [contrast.AALarge] level against white, and the number that do not.
func (p Palette) Counts() (pass, fail int) {
	for _, s := range p.Steps {
		if s.Contrast.Level != contrast.Fail {
			pass++
		} else {
			fail++
		}
	}
	return
}
