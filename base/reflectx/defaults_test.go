// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mode int

func (m *mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "fast":
		*m = 2
	default:
		*m = 1
	}
	return nil
}

type inner struct {
	Speed float32 `default:"0.5"`
}

type testConfig struct {
	inner
	Name    string  `default:"orbit"`
	On      bool    `default:"true"`
	Count   int     `default:"3"`
	Max     float32 `default:"+Inf"`
	Mode    mode    `default:"fast"`
	Nested  inner
	NoTag   float32
	private int `default:"9"`
}

func TestSetFromDefaultTags(t *testing.T) {
	cfg := &testConfig{NoTag: 7}
	assert.NoError(t, SetFromDefaultTags(cfg))
	assert.Equal(t, "orbit", cfg.Name)
	assert.True(t, cfg.On)
	assert.Equal(t, 3, cfg.Count)
	assert.True(t, math.IsInf(float64(cfg.Max), 1))
	assert.Equal(t, mode(2), cfg.Mode)
	assert.Equal(t, float32(0.5), cfg.Nested.Speed)
	assert.Equal(t, float32(7), cfg.NoTag)
	assert.Equal(t, 0, cfg.private)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaultTags(testConfig{}))
	assert.Error(t, SetFromDefaultTags(&struct {
		N int `default:"abc"`
	}{}))
	assert.NoError(t, SetFromDefaultTags(nil))
}
