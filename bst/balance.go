// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Height - height of the whole tree
// an empty tree and a single node tree both have height zero
func (tree *Tree[K]) Height() int {
	return tree.root.Height()
}

// Height - height of the sub-tree rooted at the node
// zero for nil and for a leaf, otherwise one more than the highest child
func (p *Node[K]) Height() int {
	if nil == p || (nil == p.left && nil == p.right) {
		return 0
	}
	return 1 + max(p.left.Height(), p.right.Height())
}

// Depth - the difference between the height of the tree and the
// height of the node
//
// Note: this is not a count of the links from the root, e.g. the
//       root is at depth zero and every leaf is at the depth of the
//       tree height even when it is close to the root.
func (tree *Tree[K]) Depth(p *Node[K]) int {
	return tree.Height() - p.Height()
}

// Balanced - true if at every node the heights of the two sub-trees
// differ by no more than one
func (tree *Tree[K]) Balanced() bool {
	return tree.root.Balanced()
}

// Balanced - true if the sub-tree rooted at the node is balanced
func (p *Node[K]) Balanced() bool {
	_, ok := checkBalance(p)
	return ok
}

// internal: height and balance of a sub-tree in a single pass
// heights follow the same rule as Height
func checkBalance[K any](p *Node[K]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}

	d := lh - rh
	if d < -1 || d > 1 {
		return 0, false
	}

	if nil == p.left && nil == p.right {
		return 0, true
	}
	return 1 + max(lh, rh), true
}

// Rebalance - rebuild the tree balanced from its keys
func (tree *Tree[K]) Rebalance() {
	keys := tree.InOrder(nil)
	tree.root = buildSorted(keys)
	tree.count = len(keys)
}
