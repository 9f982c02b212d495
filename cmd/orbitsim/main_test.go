// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/scenegraph/orbit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	assert.NoError(t, run(context.Background(), "", 10, false))

	fn := filepath.Join(t.TempDir(), "orbit.toml")
	s := orbit.NewSettings()
	s.EnableDamping = true
	require.NoError(t, s.Save(fn))
	assert.NoError(t, run(context.Background(), fn, 10, false))

	assert.Error(t, run(context.Background(), filepath.Join(t.TempDir(), "missing.toml"), 10, false))
}

func TestWatchSettings(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "orbit.toml")
	s := orbit.NewSettings()
	require.NoError(t, s.Save(fn))

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := watchSettings(ctx, fn)
	require.NoError(t, err)

	s.RotateSpeed = 3
	require.NoError(t, s.Save(fn))
	// a save can be seen as several writes, so wait for the final contents
	timeout := time.After(5 * time.Second)
	for seen := false; !seen; {
		select {
		case got := <-ch:
			seen = got.RotateSpeed == 3
		case <-timeout:
			t.Fatal("settings change not seen")
		}
	}

	cancel()
	for range ch {
	}
}
