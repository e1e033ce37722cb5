// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// which link of the parent holds a node
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Delete - removes a specific key from the tree
// returns the removed key and true, or the zero key and false if the
// key was not in the tree
func (tree *Tree[K]) Delete(key K) (K, bool) {
	parent := (*Node[K])(nil)
	br := root
	p := tree.root

search:
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			parent, br, p = p, left, p.left
		case c > 0: // key > p.key
			parent, br, p = p, right, p.right
		default:
			break search
		}
	}

	if nil == p { // key not in tree
		var zero K
		return zero, false
	}

	if nil != p.left && nil != p.right {

		// in-order successor: lowest node in the right sub-tree
		sParent := p
		sBranch := right
		s := p.right
		for nil != s.left {
			sParent, sBranch, s = s, left, s.left
		}

		// successor has no left child so this is a detach or splice
		tree.unlink(sParent, sBranch, s)

		// p.right must be read after the unlink as it may have been the successor
		s.left = p.left
		s.right = p.right
		tree.relink(parent, br, s)

	} else {
		tree.unlink(parent, br, p)
	}

	p.left = nil
	p.right = nil
	tree.count -= 1

	return p.key, true
}

// internal: remove a node that has at most one child
func (tree *Tree[K]) unlink(parent *Node[K], br branch, p *Node[K]) {
	switch {
	case nil == p.left && nil == p.right:
		tree.relink(parent, br, nil)
	case nil != p.left && nil == p.right:
		tree.relink(parent, br, p.left)
	case nil == p.left && nil != p.right:
		tree.relink(parent, br, p.right)
	default:
		fault.Panicf("bst: unlink: node: %v has two children", p.key)
	}
}

// internal: store a sub-tree in the parent link selected by branch
func (tree *Tree[K]) relink(parent *Node[K], br branch, p *Node[K]) {
	switch br {
	case root:
		tree.root = p
	case left:
		parent.left = p
	case right:
		parent.right = p
	default:
		fault.Panicf("bst: relink: invalid branch: %d", br)
	}
}
