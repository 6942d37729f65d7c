// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettegen

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/palette/export"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// Export writes the palette as code in the configured format to the
// output file, or to standard output if there is none. Code written
// to a terminal is syntax highlighted.
func Export(c *Config) error {
	code, f, err := c.Code()
	if err != nil {
		return err
	}
	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(code+"\n"), 0666); err != nil {
			return err
		}
		slog.Info("exported palette", "format", f, "file", c.Output)
	} else if term.IsTerminal(int(os.Stdout.Fd())) {
		if err := Highlight(os.Stdout, code, f); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(os.Stdout, code)
	}
	if c.Copy {
		if err := clipboard.WriteAll(code); err != nil {
			return fmt.Errorf("palettegen: copying to clipboard: %w", err)
		}
		slog.Info("copied palette to clipboard", "format", f)
	}
	return nil
}

// Code returns the palette as code in the configured format,
// and the format.
func (c *Config) Code() (string, export.Format, error) {
	p, err := c.Palette()
	if err != nil {
		return "", c.Format, err
	}
	ec := export.Config{Prefix: c.Prefix, Casing: c.Casing, ColorFormat: c.ColorFormat}
	code, err := export.Code(p.Steps, p.System, ec, c.Format)
	return code, c.Format, err
}

// Highlight writes the given code in the given format to w with
// terminal syntax highlighting.
func Highlight(w io.Writer, code string, f export.Format) error {
	if err := quick.Highlight(w, code, Lexer(f), "terminal256", "monokai"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Lexer returns the name of the chroma lexer for the given format.
func Lexer(f export.Format) string {
	switch f {
	case export.Tailwind3, export.FigmaAPI:
		return "javascript"
	case export.Tailwind4, export.CSS:
		return "css"
	case export.SCSS:
		return "scss"
	case export.SVG:
		return "xml"
	}
	return "json"
}
