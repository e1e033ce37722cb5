// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - insert a new key into the tree
// returns false if the key was already present, the tree is unchanged
func (tree *Tree[K]) Insert(key K) bool {
	if nil == tree.root {
		tree.root = &Node[K]{key: key}
		tree.count += 1
		return true
	}

	p := tree.root
	for {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			if nil == p.left {
				p.left = &Node[K]{key: key}
				tree.count += 1
				return true
			}
			p = p.left
		case c > 0: // key > p.key
			if nil == p.right {
				p.right = &Node[K]{key: key}
				tree.count += 1
				return true
			}
			p = p.right
		default:
			return false
		}
	}
}
