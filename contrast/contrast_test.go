// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"encoding/json"
	"image/color"
	"testing"

	"cogentcore.org/palette/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuminance(t *testing.T) {
	assert.Equal(t, 0.0, Luminance(colors.Black))
	assert.InDelta(t, 1, Luminance(colors.White), 1e-12)
	assert.InDelta(t, 0.2355, Luminance(colors.MustFromHex("#3B82F6")), 1e-4)
	// below the 0.03928 threshold the transfer is linear
	assert.InDelta(t, 0.2126*(10.0/255)/12.92, Luminance(color.RGBA{10, 0, 0, 255}), 1e-12)

	for v := 0; v < 256; v += 5 {
		l := Luminance(color.RGBA{uint8(v), uint8(255 - v), uint8(v / 2), 255})
		assert.GreaterOrEqual(t, l, 0.0)
		assert.LessOrEqual(t, l, 1.0)
	}
}

func TestOf(t *testing.T) {
	type data struct {
		fg    string
		bg    string
		ratio float64
		level Level
		pass  bool
	}
	tests := []data{
		{"#000000", "#FFFFFF", 21, AAA, true},
		{"#FFFFFF", "#000000", 21, AAA, true},
		{"#FFFFFF", "#FFFFFF", 1, Fail, false},
		{"#3B82F6", "#3B82F6", 1, Fail, false},
		{"#3B82F6", "#FFFFFF", 3.68, AALarge, false},
		{"#0068D8", "#FFFFFF", 5.29, AA, true},
		{"#004CB6", "#FFFFFF", 7.75, AAA, true},
		{"#FFFF00", "#FFFFFF", 1.07, Fail, false},
	}
	for i, test := range tests {
		s := Of(colors.MustFromHex(test.fg), colors.MustFromHex(test.bg))
		if s.Ratio != test.ratio || s.Level != test.level || s.Pass != test.pass {
			t.Errorf("%d: %s on %s: expected %v %v %v but got %v %v %v", i, test.fg, test.bg,
				test.ratio, test.level, test.pass, s.Ratio, s.Level, s.Pass)
		}
	}
	assert.Equal(t, Of(colors.MustFromHex("#3B82F6"), colors.White), OnWhite(colors.MustFromHex("#3B82F6")))
}

func TestRatioSymmetric(t *testing.T) {
	a := colors.MustFromHex("#EF4444")
	b := colors.MustFromHex("#10B981")
	assert.Equal(t, Ratio(a, b), Ratio(b, a))
	assert.Equal(t, 1.0, Ratio(a, a))
}

func TestLevelOf(t *testing.T) {
	assert.Equal(t, AAA, LevelOf(7))
	assert.Equal(t, AA, LevelOf(6.99))
	assert.Equal(t, AA, LevelOf(4.5))
	assert.Equal(t, AALarge, LevelOf(4.49))
	assert.Equal(t, AALarge, LevelOf(3))
	assert.Equal(t, Fail, LevelOf(2.99))
	assert.True(t, AAA > AA && AA > AALarge && AALarge > Fail)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 4.5, Round(4.499))
	assert.Equal(t, 4.49, Round(4.494))
	assert.Equal(t, 1.13, Round(1.125))
	assert.Equal(t, 21.0, Round(RatioOfLuminances(1, 0)))
}

func TestLevelText(t *testing.T) {
	assert.Equal(t, "AA+", AALarge.String())
	assert.Equal(t, "7", Level(7).String())
	assert.Equal(t, []Level{Fail, AALarge, AA, AAA}, LevelValues())
	assert.Equal(t, "AA is a ratio of at least 4.5, enough for normal text.", AA.Desc())

	b, err := json.Marshal(Status{Ratio: 4.53, Level: AA, Pass: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ratio":4.53,"level":"AA","isPass":true}`, string(b))

	var s Status
	require.NoError(t, json.Unmarshal([]byte(`{"ratio":3.1,"level":"AA+","isPass":false}`), &s))
	assert.Equal(t, AALarge, s.Level)

	var l Level
	require.NoError(t, l.SetString("aa+"))
	assert.Equal(t, AALarge, l)
	require.NoError(t, l.SetString("AAA"))
	assert.Equal(t, AAA, l)
	assert.Error(t, l.SetString("B"))
	assert.Equal(t, AAA, l)
}
