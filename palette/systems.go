// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// ErrUnknownSystem is returned by [Lookup] for an unknown system id.
var ErrUnknownSystem = errors.New("unknown system")

var (
	// Tailwind is the 50-950 scale of Tailwind CSS.
	Tailwind = System{
		ID:          "tailwind",
		Name:        "Tailwind CSS",
		Description: "Expertly crafted spacing. 50-950 scale. Optimized for UI.",
		Steps:       []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950},
		BaseStep:    500,
	}

	// Material is the tonal palette scale of Material Design 3.
	Material = System{
		ID:          "material",
		Name:        "Material Design 3",
		Description: "Tonal palettes key to MD3 dynamic color.",
		Steps:       []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100},
		BaseStep:    40,
	}

	// Ant is the 10 step scale of Ant Design.
	Ant = System{
		ID:          "ant",
		Name:        "Ant Design",
		Description: "Natural algorithms with a 10-step scale.",
		Steps:       []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		BaseStep:    6,
	}

	// Atlassian is the scale of the Atlassian Design System.
	Atlassian = System{
		ID:          "atlassian",
		Name:        "Atlassian Design",
		Description: "Specific scales for enterprise software density.",
		Steps:       []int{50, 75, 100, 200, 300, 400, 500, 600, 700, 800, 900},
		BaseStep:    400,
	}
)

// Builtin returns the built-in systems, in display order.
// The returned systems can be modified freely.
func Builtin() []System {
	return []System{Tailwind.Clone(), Material.Clone(), Ant.Clone(), Atlassian.Clone()}
}

// Lookup returns the system with the given id (case-insensitive) from
// the given systems. If there is no such system, the error names the most
// similar id, if any is reasonably close.
func Lookup(systems []System, id string) (System, error) {
	best, bestSim := "", 0.0
	lev := metrics.NewLevenshtein()
	for _, s := range systems {
		if strings.EqualFold(s.ID, id) {
			return s.Clone(), nil
		}
		if sim := strutil.Similarity(strings.ToLower(id), s.ID, lev); sim > bestSim {
			best, bestSim = s.ID, sim
		}
	}
	if bestSim >= 0.5 {
		return System{}, fmt.Errorf("palette: %w %q (did you mean %q?)", ErrUnknownSystem, id, best)
	}
	return System{}, fmt.Errorf("palette: %w %q", ErrUnknownSystem, id)
}
