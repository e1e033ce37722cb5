// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// First - return the node with the lowest key value
func (tree *Tree[K]) First() *Node[K] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K]) first() *Node[K] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K]) Last() *Node[K] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K]) last() *Node[K] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}
