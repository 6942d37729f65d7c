// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	for _, s := range Builtin() {
		assert.NoError(t, s.Validate(), s.ID)
	}
	tests := []struct {
		sys System
		err error
	}{
		{System{ID: "a"}, ErrEmptySystem},
		{System{ID: "b", Steps: []int{1, 1, 2}, BaseStep: 1}, ErrUnsortedSteps},
		{System{ID: "c", Steps: []int{3, 2}, BaseStep: 2}, ErrUnsortedSteps},
		{System{ID: "d", Steps: []int{1, 2}, BaseStep: 5}, ErrBaseStepMissing},
		{System{ID: "e", Steps: []int{7}, BaseStep: 7}, nil},
	}
	for _, tt := range tests {
		err := tt.sys.Validate()
		if tt.err == nil {
			assert.NoError(t, err, tt.sys.ID)
			continue
		}
		assert.ErrorIs(t, err, tt.err, tt.sys.ID)
	}
}

func TestPosition(t *testing.T) {
	assert.Equal(t, 0.0, Tailwind.Position(50))
	assert.Equal(t, 1.0, Tailwind.Position(950))
	assert.InDelta(t, 450.0/900, Tailwind.Position(500), 1e-12)
	assert.InDelta(t, 0.4, Material.Position(40), 1e-12)
	single := System{Steps: []int{3}, BaseStep: 3}
	assert.Equal(t, 0.0, single.Position(3))
}

func TestClone(t *testing.T) {
	c := Tailwind.Clone()
	c.Steps[0] = 25
	assert.Equal(t, 50, Tailwind.Steps[0])
}

func TestLookup(t *testing.T) {
	s, err := Lookup(Builtin(), "Material")
	require.NoError(t, err)
	assert.Equal(t, "material", s.ID)
	assert.Equal(t, 40, s.BaseStep)

	_, err = Lookup(Builtin(), "tailwnd")
	assert.ErrorIs(t, err, ErrUnknownSystem)
	assert.ErrorContains(t, err, `did you mean "tailwind"`)

	_, err = Lookup(Builtin(), "zzz")
	assert.ErrorIs(t, err, ErrUnknownSystem)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestOpenSystems(t *testing.T) {
	ts, err := OpenSystems(filepath.Join("testdata", "systems.toml"))
	require.NoError(t, err)
	require.Len(t, ts, 2)
	assert.Equal(t, "radix", ts[0].ID)
	assert.Equal(t, 9, ts[0].BaseStep)
	assert.Len(t, ts[0].Steps, 12)
	assert.Equal(t, "12 step scale.", ts[0].Description)

	ys, err := OpenSystems(filepath.Join("testdata", "systems.yaml"))
	require.NoError(t, err)
	require.Len(t, ys, 1)
	assert.Equal(t, System{ID: "open", Name: "Open Color", Steps: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, BaseStep: 6}, ys[0])

	js, err := OpenSystems(filepath.Join("testdata", "systems.json"))
	require.NoError(t, err)
	require.Len(t, js, 1)
	assert.Equal(t, "carbon", js[0].ID)
	assert.Equal(t, 60, js[0].BaseStep)

	_, err = OpenSystems(filepath.Join("testdata", "invalid.toml"))
	assert.ErrorIs(t, err, ErrEmptySystem)
	assert.ErrorIs(t, err, ErrUnsortedSteps)
	assert.ErrorIs(t, err, ErrBaseStepMissing)
	assert.ErrorContains(t, err, `duplicate system id "unsorted"`)

	_, err = OpenSystems(filepath.Join("testdata", "systems.txt"))
	assert.ErrorContains(t, err, "unsupported file type")

	_, err = OpenSystems(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptySystem))
}

func TestMerge(t *testing.T) {
	ts, err := OpenSystems(filepath.Join("testdata", "systems.toml"))
	require.NoError(t, err)
	all := Merge(Builtin(), ts)
	require.Len(t, all, 5)
	assert.Equal(t, "tailwind", all[0].ID)
	assert.Equal(t, "Tailwind (Extended)", all[0].Name)
	assert.Equal(t, 25, all[0].Steps[0])
	assert.Equal(t, "radix", all[4].ID)

	s, err := Lookup(all, "radix")
	require.NoError(t, err)
	assert.Equal(t, 9, s.BaseStep)
}
