// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command palettegen generates perceptually uniform color palettes from a
// base color, repairs their contrast, and exports them as code.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/palette/palettegen"
)

func main() {
	opts := cli.DefaultOptions("palettegen", "Palettegen generates color palettes from a base color and exports them as code for CSS frameworks and design tools.")
	opts.DefaultFiles = []string{palettegen.ConfigFile}
	type cmd = cli.Cmd[*palettegen.Config]
	cli.Run(opts, &palettegen.Config{},
		&cmd{Func: palettegen.Generate, Name: "generate", Doc: "Generate prints the palette with contrast ratios against white", Root: true},
		&cmd{Func: palettegen.Export, Name: "export", Doc: "Export writes the palette as code"},
		&cmd{Func: palettegen.Systems, Name: "systems", Doc: "Systems lists the available step systems"},
		&cmd{Func: palettegen.Inspect, Name: "inspect", Doc: "Inspect shows the base color in every color format"},
		&cmd{Func: palettegen.Swatch, Name: "swatch", Doc: "Swatch writes the palette as a PNG strip of swatches"},
		&cmd{Func: palettegen.Watch, Name: "watch", Doc: "Watch exports the palette again whenever the configuration changes"},
	)
}
