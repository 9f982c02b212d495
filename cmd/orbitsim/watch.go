// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/scenegraph/orbit"
	"github.com/fsnotify/fsnotify"
)

// watchSettings watches the given settings file and sends the newly
// opened settings on the returned channel whenever it is written.
// The directory is watched so that editors that replace the file
// on save are also seen. Watching stops when ctx is done.
func watchSettings(ctx context.Context, filename string) (<-chan *orbit.Settings, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	filename = filepath.Clean(filename)
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return nil, err
	}
	ch := make(chan *orbit.Settings, 1)
	go func() {
		defer w.Close()
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filename || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				s, err := orbit.OpenSettings(filename)
				if err != nil {
					slog.Error("orbitsim: reloading settings", "file", filename, "err", err)
					continue
				}
				slog.Info("settings reloaded", "file", filename)
				select {
				case <-ch:
				default:
				}
				ch <- s
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("orbitsim: watching settings", "err", err)
			}
		}
	}()
	return ch, nil
}
