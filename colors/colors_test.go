// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"math/rand/v2"
	"strings"
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blue = color.RGBA{0x3B, 0x82, 0xF6, 255}

func TestFromHex(t *testing.T) {
	c, err := FromHex("#3B82F6")
	require.NoError(t, err)
	assert.Equal(t, blue, c)

	c, err = FromHex(" #3b82f6 ")
	require.NoError(t, err)
	assert.Equal(t, blue, c)

	for _, bad := range []string{"", "#", "3B82F6", "#3B82F", "#3B82F6A", "#GGGGGG", "#FFF", "blue", "#3B82F6FF"} {
		_, err := FromHex(bad)
		assert.True(t, errors.Is(err, ErrInvalidHex), "expected invalid hex error for %q", bad)
		assert.False(t, IsHex(bad), bad)
	}

	assert.Panics(t, func() { MustFromHex("nope") })
	assert.Equal(t, White, MustFromHex("#ffffff"))
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#3B82F6", AsHex(blue))
	assert.Equal(t, "#000000", AsHex(Black))
	assert.Equal(t, "#FFFFFF", AsHex(color.Gray{255}))
	assert.Equal(t, "nil", AsHex(nil))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#3b82f6", "#3B82F6"},
		{"3b82f6", "#3B82F6"},
		{"#abc", "#AABBCC"},
		{"fff", "#FFFFFF"},
		{"SteelBlue", "#4682B4"},
		{"  white ", "#FFFFFF"},
	}
	for _, test := range tests {
		hex, err := Normalize(test.in)
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.want, hex, test.in)
		}
		c, err := Parse(test.in)
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.want, AsHex(c), test.in)
		}
	}

	_, err := Parse("not a color")
	assert.True(t, errors.Is(err, ErrInvalidHex))
	_, err = Parse("#12345")
	assert.True(t, errors.Is(err, ErrInvalidHex))
}

func TestAsFormat(t *testing.T) {
	assert.Equal(t, "#3B82F6", AsFormat(blue, Hex))
	assert.Equal(t, "rgb(59, 130, 246)", AsFormat(blue, RGB))
	assert.Equal(t, "hsl(217.2, 91.2%, 59.8%)", AsFormat(blue, HSL))
	assert.Equal(t, "hsl(0, 0%, 100%)", AsFormat(White, HSL))
	assert.True(t, strings.HasPrefix(AsFormat(blue, OKLCH), "oklch(62.3"), AsFormat(blue, OKLCH))
	assert.Equal(t, "#3B82F6", AsFormat(blue, Format(42)))
}

func TestFormatText(t *testing.T) {
	assert.Equal(t, []Format{Hex, RGB, HSL, OKLCH}, FormatValues())
	assert.Equal(t, "oklch", OKLCH.String())
	var f Format
	assert.NoError(t, f.SetString("OKLCH"))
	assert.Equal(t, OKLCH, f)
	require.NoError(t, f.UnmarshalText([]byte("hsl")))
	assert.Equal(t, HSL, f)
	assert.Error(t, f.SetString("cmyk"))
	assert.Equal(t, HSL, f)
	assert.Equal(t, "9", Format(9).String())
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	a := Random(r)
	r = rand.New(rand.NewPCG(1, 2))
	assert.Equal(t, a, Random(r))
	assert.Equal(t, uint8(255), a.A)
	assert.Equal(t, uint8(255), Random(nil).A)
}
