// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// UpdateMatrix composes the local matrix from the pose and marks
// the world matrix as needing an update.
func (nb *NodeBase) UpdateMatrix() {
	nb.Pose.UpdateMatrix()
	nb.MatrixWorldNeedsUpdate = true
}

// updateWorldFromParent sets our world matrix from our parent's
// world matrix and our local matrix.
func (nb *NodeBase) updateWorldFromParent() {
	prev := nb.Pose.WorldMatrix
	if _, pb := nb.parentNode(); pb != nil {
		nb.Pose.UpdateWorldMatrix(&pb.Pose.WorldMatrix)
	} else {
		nb.Pose.UpdateWorldMatrix(nil)
	}
	if nb.Pose.WorldMatrix != prev {
		nb.worldChanged = true
	}
}

func (nb *NodeBase) UpdateMatrixWorld(force bool) {
	if nb.MatrixAutoUpdate {
		nb.UpdateMatrix()
	}
	if nb.MatrixWorldNeedsUpdate || force {
		nb.updateWorldFromParent()
		nb.MatrixWorldNeedsUpdate = false
		force = true
	}
	for _, kid := range nb.Children {
		ki, kb := AsNode(kid)
		if ki == nil {
			continue
		}
		if kb.MatrixWorldAutoUpdate || force {
			ki.UpdateMatrixWorld(force)
		}
	}
}

func (nb *NodeBase) UpdateWorldMatrix(updateParents, updateChildren bool) {
	if updateParents {
		if pi, pb := nb.parentNode(); pi != nil && pb.MatrixWorldAutoUpdate {
			pi.UpdateWorldMatrix(true, false)
		}
	}
	if nb.MatrixAutoUpdate {
		nb.UpdateMatrix()
	}
	nb.updateWorldFromParent()
	if !updateChildren {
		return
	}
	for _, kid := range nb.Children {
		ki, kb := AsNode(kid)
		if ki == nil || !kb.MatrixWorldAutoUpdate {
			continue
		}
		ki.UpdateWorldMatrix(false, true)
	}
}
