// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package findfast implements a bidirectional slice search that
// starts from a guessed index, which is fast when an element
// is usually found near where it was last time.
package findfast

// FindFunc returns the index of the first element found in the slice that
// matches according to the given match function, searching outward
// alternately above and below the optional starting index.
// With no starting index the search starts in the middle.
// Returns -1 if not found.
func FindFunc[T any](s []T, match func(e T) bool, startIndex ...int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	si := n / 2
	if len(startIndex) > 0 && startIndex[0] >= 0 {
		si = min(startIndex[0], n-1)
	}
	for d := 0; si-d >= 0 || si+d < n; d++ {
		if lo := si - d; lo >= 0 && match(s[lo]) {
			return lo
		}
		if hi := si + d + 1; hi < n && match(s[hi]) {
			return hi
		}
	}
	return -1
}
