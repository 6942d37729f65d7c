// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettegen

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"reflect"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/cli"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// WatchDebounce is how long [Watch] waits after a change
// before exporting again.
const WatchDebounce = 200 * time.Millisecond

// Watch exports the palette, and exports it again whenever the
// configuration file or the systems file changes, until interrupted.
func Watch(c *Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return WatchContext(ctx, c, Export)
}

// WatchContext runs fun with the configuration, and runs it again with
// the configuration reloaded from [ConfigFile] whenever that file or
// the systems file changes, until the context is done. Values given
// on the command line keep precedence over the file on every reload.
func WatchContext(ctx context.Context, c *Config, fun func(c *Config) error) error {
	files, err := c.watchFiles()
	if err != nil {
		return err
	}
	base, err := openConfigFile()
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dirs := map[string]bool{}
	for fn := range files {
		dir := filepath.Dir(fn)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	errors.Log(fun(c))
	slog.Info("watching for changes", "files", len(files))

	timer := time.NewTimer(WatchDebounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !files[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			timer.Reset(WatchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "err", err)
		case <-timer.C:
			nc, err := c.reload(base)
			if errors.Log(err) != nil {
				continue
			}
			slog.Info("change detected, exporting again")
			errors.Log(fun(nc))
		}
	}
}

// watchFiles returns the absolute paths of the files that [WatchContext] watches.
func (c *Config) watchFiles() (map[string]bool, error) {
	files := map[string]bool{}
	add := func(fn string) error {
		fn, err := homedir.Expand(fn)
		if err != nil {
			return err
		}
		fn, err = filepath.Abs(fn)
		if err != nil {
			return err
		}
		files[fn] = true
		return nil
	}
	if err := add(ConfigFile); err != nil {
		return nil, err
	}
	if c.Systems != "" {
		if err := add(c.Systems); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// openConfigFile returns the configuration given by the default
// values of its fields and [ConfigFile], if it exists.
func openConfigFile() (*Config, error) {
	c := &Config{}
	if err := cli.SetFromDefaults(c); err != nil {
		return nil, err
	}
	if !errors.Log1(fsx.FileExists(ConfigFile)) {
		return c, nil
	}
	if err := tomlx.Open(c, ConfigFile); err != nil {
		return nil, err
	}
	return c, nil
}

// reload returns the configuration reopened from [ConfigFile], with
// the fields of c that differ from base kept as they are in c. base is
// the configuration that [openConfigFile] returned when c was set up,
// so those fields are the ones given on the command line.
func (c *Config) reload(base *Config) (*Config, error) {
	nc, err := openConfigFile()
	if err != nil {
		return nil, err
	}
	cv := reflect.ValueOf(c).Elem()
	bv := reflect.ValueOf(base).Elem()
	nv := reflect.ValueOf(nc).Elem()
	for i := range cv.NumField() {
		if !reflect.DeepEqual(cv.Field(i).Interface(), bv.Field(i).Interface()) {
			nv.Field(i).Set(cv.Field(i))
		}
	}
	return nc, nil
}
