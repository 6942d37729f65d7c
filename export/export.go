// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes generated palettes as code for
// CSS frameworks and design tools.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"
	"unicode/utf8"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/palette"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Code returns the given steps of a palette of the given system as code
// in the given format.
func Code(steps []palette.Step, sys palette.System, cfg Config, f Format) (string, error) {
	var b strings.Builder
	if err := Write(&b, steps, sys, cfg, f); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write writes the given steps of a palette of the given system as code
// in the given format to w.
func Write(w io.Writer, steps []palette.Step, sys palette.System, cfg Config, f Format) error {
	d := newCodeData(steps, sys, &cfg, f)
	var tmpl *template.Template
	switch f {
	case Tailwind3:
		tmpl = Tailwind3Tmpl
	case Tailwind4:
		tmpl = Tailwind4Tmpl
	case CSS:
		tmpl = CSSTmpl
	case SCSS:
		tmpl = SCSSTmpl
	case SVG:
		tmpl = SVGTmpl
	case FigmaAPI:
		tmpl = FigmaAPITmpl
	case JSON:
		return writeJSON(w, simpleJSON{Name: d.Prefix, System: d.System, Colors: stepMap(d.Tokens)})
	case FigmaTokens:
		return writeJSON(w, designTokens{prefix: d.Prefix, tokens: d.Tokens})
	default:
		return fmt.Errorf("export.Write: unknown export format %s", f)
	}
	if err := tmpl.Execute(w, d); err != nil {
		return fmt.Errorf("export.Write: %s: %w", f, err)
	}
	return nil
}

func newCodeData(steps []palette.Step, sys palette.System, cfg *Config, f Format) *codeData {
	d := &codeData{
		Prefix: cfg.prefix(),
		System: sys.Name,
		Width:  len(steps) * svgStepWidth,
		Tokens: make([]token, len(steps)),
	}
	d.Collection = capitalize(d.Prefix) + " Scale"
	cf := colors.Hex
	if f.UsesColorFormat() {
		cf = cfg.ColorFormat
	}
	for i, s := range steps {
		t := token{
			Step:  s.Step,
			Hex:   s.Hex(),
			Value: colors.AsFormat(s.Color, cf),
			X:     i * svgStepWidth,
			R:     unit(s.Color.R),
			G:     unit(s.Color.G),
			B:     unit(s.Color.B),
		}
		if f == SVG {
			t.Value = strings.ToUpper(t.Value)
		}
		d.Tokens[i] = t
	}
	return d
}

// capitalize returns s with its first letter in upper case.
func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[n:]
}

// unit returns v as a number in the range 0-1, as used by Figma.
func unit(v uint8) string {
	return strconv.FormatFloat(float64(v)/255, 'f', -1, 64)
}

// stepMap is a JSON object of values keyed by step,
// in the order of the steps.
type stepMap []token

func (m stepMap) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, t := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		v, err := json.Marshal(t.Value)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "%q:%s", strconv.Itoa(t.Step), v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

type simpleJSON struct {
	Name   string  `json:"name"`
	System string  `json:"system"`
	Colors stepMap `json:"colors"`
}

// designTokens is a W3C design token group of color tokens.
type designTokens struct {
	prefix string
	tokens []token
}

type colorToken struct {
	Value string `json:"$value"`
	Type  string `json:"$type"`
}

func (dt designTokens) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	p, err := json.Marshal(dt.prefix)
	if err != nil {
		return nil, err
	}
	b.WriteByte('{')
	b.Write(p)
	b.WriteString(":{")
	for i, t := range dt.tokens {
		if i > 0 {
			b.WriteByte(',')
		}
		v, err := json.Marshal(colorToken{Value: t.Hex, Type: "color"})
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "%q:%s", strconv.Itoa(t.Step), v)
	}
	b.WriteString("}}")
	return b.Bytes(), nil
}

// writeJSON writes v with two space indentation, without a trailing newline.
func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("export.Write: %w", err)
	}
	_, err = w.Write(b)
	return err
}
