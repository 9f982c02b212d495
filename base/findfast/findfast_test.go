// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package findfast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindFunc(t *testing.T) {
	s := []int{10, 11, 12, 13, 14, 15}
	eq := func(v int) func(e int) bool { return func(e int) bool { return e == v } }
	for i, v := range s {
		assert.Equal(t, i, FindFunc(s, eq(v)))
		assert.Equal(t, i, FindFunc(s, eq(v), 0))
		assert.Equal(t, i, FindFunc(s, eq(v), 5))
		assert.Equal(t, i, FindFunc(s, eq(v), 100))
	}
	assert.Equal(t, -1, FindFunc(s, eq(99), 2))
	assert.Equal(t, -1, FindFunc([]int{}, eq(1)))
}
