// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"encoding/json"
	"image"
	"strings"
	"testing"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testSteps = []palette.Step{
		{Step: 50, Color: colors.MustFromHex("#CEFEFF")},
		{Step: 500, Color: colors.MustFromHex("#3B82F6"), IsBase: true, Locked: true},
	}
	testConfig = Config{Prefix: "brand"}
)

func code(t *testing.T, cfg Config, f Format) string {
	t.Helper()
	s, err := Code(testSteps, palette.Tailwind, cfg, f)
	require.NoError(t, err)
	return s
}

func TestTailwind3(t *testing.T) {
	assert.Equal(t, `// tailwind.config.js
module.exports = {
  theme: {
    extend: {
      colors: {
        'brand-50': '#CEFEFF',
        'brand-500': '#3B82F6',
      }
    }
  }
}`, code(t, testConfig, Tailwind3))
}

func TestTailwind4(t *testing.T) {
	cfg := testConfig
	cfg.ColorFormat = colors.RGB
	assert.Equal(t, `@theme {
  --color-brand-50: rgb(206, 254, 255);
  --color-brand-500: rgb(59, 130, 246);
}`, code(t, cfg, Tailwind4))
}

func TestCSS(t *testing.T) {
	assert.Equal(t, `:root {
  /* Tailwind CSS Scale - Base: brand */
  --brand-50: #CEFEFF;
  --brand-500: #3B82F6;
}`, code(t, testConfig, CSS))

	cfg := testConfig
	cfg.ColorFormat = colors.HSL
	assert.Contains(t, code(t, cfg, CSS), "--brand-500: hsl(217.2, 91.2%, 59.8%);")
}

func TestSCSS(t *testing.T) {
	assert.Equal(t, "// Tailwind CSS Scale\n$brand-50: #CEFEFF;\n$brand-500: #3B82F6;", code(t, testConfig, SCSS))
}

func TestSVG(t *testing.T) {
	cfg := testConfig
	cfg.ColorFormat = colors.RGB
	s := code(t, cfg, SVG)
	assert.True(t, strings.HasPrefix(s, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 150" width="200" height="150">`))
	assert.Contains(t, s, `<rect width="200" height="150" class="bg" />`)
	assert.Contains(t, s, `
    <g transform="translate(100, 0)">
      <rect width="100" height="100" fill="#3B82F6" />
      <text x="10" y="125" class="label">500</text>
      <text x="10" y="142" class="hex">RGB(59, 130, 246)</text>
    </g>
  </g>
</svg>`)
	assert.Equal(t, 3, strings.Count(s, "<g"))
}

func TestJSON(t *testing.T) {
	cfg := testConfig
	cfg.ColorFormat = colors.RGB
	assert.Equal(t, `{
  "name": "brand",
  "system": "Tailwind CSS",
  "colors": {
    "50": "rgb(206, 254, 255)",
    "500": "rgb(59, 130, 246)"
  }
}`, code(t, cfg, JSON))
}

func TestJSONOrder(t *testing.T) {
	steps := palette.GenerateHex("#EF4444", palette.Tailwind, false)
	s, err := Code(steps, palette.Tailwind, testConfig, JSON)
	require.NoError(t, err)
	assert.Less(t, strings.Index(s, `"50"`), strings.Index(s, `"100"`))
	assert.Less(t, strings.Index(s, `"900"`), strings.Index(s, `"950"`))

	var v struct {
		Colors map[string]string
	}
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	assert.Len(t, v.Colors, 11)
	assert.Equal(t, "#EF4444", v.Colors["500"])
}

func TestFigmaTokens(t *testing.T) {
	assert.Equal(t, `{
  "brand": {
    "50": {
      "$value": "#CEFEFF",
      "$type": "color"
    },
    "500": {
      "$value": "#3B82F6",
      "$type": "color"
    }
  }
}`, code(t, Config{Prefix: "brand", ColorFormat: colors.OKLCH}, FigmaTokens))
}

func TestFigmaAPI(t *testing.T) {
	s := code(t, Config{Prefix: "Brand Blue"}, FigmaAPI)
	assert.Contains(t, s, `createVariableCollection("Brand-blue Scale");`)
	assert.Contains(t, s, `  const colors = [
    { name: "brand-blue/50", value: { r: 0.807843137254902, g: 0.996078431372549, b: 1 } },
    { name: "brand-blue/500", value: { r: 0.23137254901960785, g: 0.5098039215686274, b: 0.9647058823529412 } }
  ];`)
}

func TestCasing(t *testing.T) {
	assert.Equal(t, "brand-blue", Kebab.Apply("Brand Blue"))
	assert.Equal(t, "brandBlue", Camel.Apply("Brand Blue"))
	assert.Equal(t, "brand_blue", Snake.Apply("Brand Blue"))

	cfg := Config{Prefix: "brand blue", Casing: Camel}
	assert.Contains(t, code(t, cfg, SCSS), "$brandBlue-500: #3B82F6;")

	assert.Contains(t, code(t, Config{}, CSS), "--brand-500: #3B82F6;")

	var c Casing
	assert.NoError(t, c.SetString("Snake"))
	assert.Equal(t, Snake, c)
	assert.Error(t, c.SetString("pascal"))
	assert.Equal(t, Snake, c)
	assert.Equal(t, []Casing{Kebab, Camel, Snake}, CasingValues())
}

func TestFormat(t *testing.T) {
	for _, f := range FormatValues() {
		var g Format
		require.NoError(t, g.SetString(f.String()))
		assert.Equal(t, f, g)
	}
	var f Format
	assert.NoError(t, f.UnmarshalText([]byte("Figma-Tokens")))
	assert.Equal(t, FigmaTokens, f)
	assert.Error(t, f.SetString("xml"))
	assert.Equal(t, FigmaTokens, f)
	assert.Equal(t, "20", Format(20).String())
	assert.Equal(t, "figma-api", FigmaAPI.String())

	assert.True(t, SVG.UsesColorFormat())
	assert.True(t, JSON.UsesColorFormat())
	assert.False(t, FigmaTokens.UsesColorFormat())
	assert.False(t, FigmaAPI.UsesColorFormat())
	assert.Equal(t, ".js", Tailwind3.Ext())
	assert.Equal(t, ".json", FigmaTokens.Ext())

	_, err := Code(testSteps, palette.Tailwind, testConfig, Format(20))
	assert.Error(t, err)
}

func TestImage(t *testing.T) {
	img := Image(testSteps, image.Pt(10, 4))
	assert.Equal(t, image.Rect(0, 0, 20, 4), img.Bounds())
	assert.Equal(t, testSteps[0].Color, img.RGBAAt(9, 3))
	assert.Equal(t, testSteps[1].Color, img.RGBAAt(10, 0))
	assert.Equal(t, testSteps[1].Color, img.RGBAAt(19, 3))
}
