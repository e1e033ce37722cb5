// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/slices"
)

// replace the whole tree with a balanced tree of the keys
// the callers slice is not modified
func (tree *Tree[K]) build(keys []K) {
	sorted := slices.Clone(keys)
	slices.SortFunc(sorted, tree.compare)
	sorted = slices.CompactFunc(sorted, func(a K, b K) bool {
		return 0 == tree.compare(a, b)
	})

	tree.root = buildSorted(sorted)
	tree.count = len(sorted)
}

// internal: keys must be sorted and unique
//
// the lower of the two middle keys is chosen on even lengths so the
// shape only depends on the set of keys
func buildSorted[K any](keys []K) *Node[K] {
	if 0 == len(keys) {
		return nil
	}

	mid := (len(keys) - 1) / 2

	return &Node[K]{
		key:   keys[mid],
		left:  buildSorted(keys[:mid]),
		right: buildSorted(keys[mid+1:]),
	}
}
