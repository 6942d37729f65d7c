// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// catalog is the file format for additional systems.
type catalog struct {
	Systems []System `json:"systems" toml:"systems" yaml:"systems"`
}

// OpenSystems reads the systems defined in the given catalog file.
// The format is determined by the file extension: .toml, .yaml, .yml
// or .json. A leading ~ in the path is expanded to the home directory.
// All systems are validated, and ids must be unique within the file.
func OpenSystems(filename string) ([]System, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	var cat catalog
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".toml":
		err = tomlx.Open(&cat, fn)
	case ".json":
		err = jsonx.Open(&cat, fn)
	case ".yaml", ".yml":
		var b []byte
		b, err = os.ReadFile(fn)
		if err == nil {
			err = yaml.Unmarshal(b, &cat)
		}
	default:
		return nil, fmt.Errorf("palette.OpenSystems: %q: unsupported file type", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("palette.OpenSystems: %w", err)
	}
	var errs []error
	seen := map[string]bool{}
	for i := range cat.Systems {
		s := &cat.Systems[i]
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("palette: duplicate system id %q", s.ID))
		}
		seen[s.ID] = true
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("palette.OpenSystems: %q: %w", filename, errors.Join(errs...))
	}
	return cat.Systems, nil
}

// Merge returns the given base systems with the extra systems appended.
// Extra systems replace base systems with the same id, in place.
func Merge(base, extra []System) []System {
	res := make([]System, 0, len(base)+len(extra))
	idx := map[string]int{}
	for _, s := range base {
		idx[s.ID] = len(res)
		res = append(res, s)
	}
	for _, s := range extra {
		if i, ok := idx[s.ID]; ok {
			res[i] = s
			continue
		}
		idx[s.ID] = len(res)
		res = append(res, s)
	}
	return res
}
