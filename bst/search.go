// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - find a specific key
// returns nil if the key is not in the tree
func (tree *Tree[K]) Find(key K) *Node[K] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Contains - true if the key is in the tree
func (tree *Tree[K]) Contains(key K) bool {
	return nil != tree.Find(key)
}
