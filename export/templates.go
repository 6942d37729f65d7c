// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import "text/template"

// token is one step as passed to the code templates.
type token struct {
	Step  int
	Hex   string
	Value string

	// X is the horizontal offset of the step in the SVG.
	X int

	// R, G, B are the components as Figma 0-1 numbers.
	R, G, B string
}

// codeData is the data passed to the code templates.
type codeData struct {
	Prefix     string
	System     string
	Collection string
	Width      int
	Tokens     []token
}

// svgStepWidth is the width of one SVG swatch.
const svgStepWidth = 100

var Tailwind3Tmpl = template.Must(template.New("Tailwind3").Parse(
	`// tailwind.config.js
module.exports = {
  theme: {
    extend: {
      colors: {
{{range .Tokens}}        '{{$.Prefix}}-{{.Step}}': '{{.Value}}',
{{end}}      }
    }
  }
}`))

var Tailwind4Tmpl = template.Must(template.New("Tailwind4").Parse(
	`@theme {
{{range .Tokens}}  --color-{{$.Prefix}}-{{.Step}}: {{.Value}};
{{end}}}`))

var CSSTmpl = template.Must(template.New("CSS").Parse(
	`:root {
  /* {{.System}} Scale - Base: {{.Prefix}} */
{{range .Tokens}}  --{{$.Prefix}}-{{.Step}}: {{.Value}};
{{end}}}`))

var SCSSTmpl = template.Must(template.New("SCSS").Parse(
	`// {{.System}} Scale{{range .Tokens}}
${{$.Prefix}}-{{.Step}}: {{.Value}};{{end}}`))

var SVGTmpl = template.Must(template.New("SVG").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 {{.Width}} 150" width="{{.Width}}" height="150">
  <defs>
    <style>
      .label { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; font-size: 14px; font-weight: 600; fill: #111827; }
      .hex { font-family: "JetBrains Mono", monospace; font-size: 12px; fill: #6B7280; }
      .bg { fill: #ffffff; }
    </style>
  </defs>
  <rect width="{{.Width}}" height="150" class="bg" />
  <g>
    {{range .Tokens}}
    <g transform="translate({{.X}}, 0)">
      <rect width="100" height="100" fill="{{.Hex}}" />
      <text x="10" y="125" class="label">{{.Step}}</text>
      <text x="10" y="142" class="hex">{{.Value}}</text>
    </g>{{end}}
  </g>
</svg>`))

var FigmaAPITmpl = template.Must(template.New("FigmaAPI").Parse(
	`// Run this in Figma Console or Scripter Plugin
(async () => {
  const collection = figma.variables.createVariableCollection("{{.Collection}}");
  const modeId = collection.modes[0].modeId;

  const colors = [
{{range $i, $t := .Tokens}}{{if $i}},
{{end}}    { name: "{{$.Prefix}}/{{.Step}}", value: { r: {{.R}}, g: {{.G}}, b: {{.B}} } }{{end}}
  ];

  for (const c of colors) {
    const variable = figma.variables.createVariable(c.name, collection.id, "COLOR");
    variable.setValueForMode(modeId, c.value);
  }
  
  figma.notify("Created " + colors.length + " variables");
})();`))
