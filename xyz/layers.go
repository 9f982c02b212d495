// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Layers is a bit mask of the 32 layers a node can belong to.
// A camera renders a node only when their layers overlap.
type Layers uint32

// Set makes layer the only member of the mask.
func (ly *Layers) Set(layer int) {
	*ly = 1 << uint(layer)
}

// Enable adds layer to the mask.
func (ly *Layers) Enable(layer int) {
	*ly |= 1 << uint(layer)
}

// EnableAll adds all layers to the mask.
func (ly *Layers) EnableAll() {
	*ly = 0xffffffff
}

// Toggle flips membership of layer.
func (ly *Layers) Toggle(layer int) {
	*ly ^= 1 << uint(layer)
}

// Disable removes layer from the mask.
func (ly *Layers) Disable(layer int) {
	*ly &^= 1 << uint(layer)
}

// DisableAll removes all layers from the mask.
func (ly *Layers) DisableAll() {
	*ly = 0
}

// Test returns whether the two masks share at least one layer.
func (ly Layers) Test(other Layers) bool {
	return ly&other != 0
}

// IsEnabled returns whether layer is in the mask.
func (ly Layers) IsEnabled(layer int) bool {
	return ly&(1<<uint(layer)) != 0
}
