// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
)

// CheckOrder - check the key ordering and node count for consistency
func (tree *Tree[K]) CheckOrder() bool {
	n, ok := tree.checkOrder(tree.root, nil, nil)
	if !ok {
		return false
	}
	if n != tree.count {
		fmt.Printf("fail count: actual: %d  expected: %d\n", n, tree.count)
		return false
	}
	return true
}

// internal: consistency checker
// every key must be strictly between the optional bounds
func (tree *Tree[K]) checkOrder(p *Node[K], low *Node[K], high *Node[K]) (int, bool) {
	if nil == p {
		return 0, true
	}
	if nil != low && tree.compare(low.key, p.key) >= 0 {
		fmt.Printf("fail at node: %v   not above: %v\n", p.key, low.key)
		return 0, false
	}
	if nil != high && tree.compare(p.key, high.key) >= 0 {
		fmt.Printf("fail at node: %v   not below: %v\n", p.key, high.key)
		return 0, false
	}
	nl, ok := tree.checkOrder(p.left, low, p)
	if !ok {
		return 0, false
	}
	nr, ok := tree.checkOrder(p.right, p, high)
	if !ok {
		return 0, false
	}
	return 1 + nl + nr, true
}
