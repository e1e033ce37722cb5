// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"
)

// CompareFunc - three way comparison for ordering keys
// returns -1, 0, +1 (or any negative, zero, positive value) for a < b, a == b, a > b
type CompareFunc[K any] func(a K, b K) int

// Node - a node in the tree
type Node[K any] struct {
	left  *Node[K] // left sub-tree
	right *Node[K] // right sub-tree
	key   K        // key part for ordering
}

// Tree - type to hold the root node of a tree
type Tree[K any] struct {
	root    *Node[K]
	count   int
	compare CompareFunc[K]
}

// New - create a balanced tree from the keys using their natural order
//
// duplicate keys are removed and the order of the keys is not significant
func New[K constraints.Ordered](keys ...K) *Tree[K] {
	return NewFunc(compareOrdered[K], keys...)
}

// NewFunc - create a balanced tree from the keys using the compare
// function for ordering
func NewFunc[K any](compare CompareFunc[K], keys ...K) *Tree[K] {
	if nil == compare {
		panic("bst: nil compare function")
	}
	tree := &Tree[K]{
		root:    nil,
		count:   0,
		compare: compare,
	}
	tree.build(keys)
	return tree
}

// natural ordering
// a NaN is below every other value and equal to another NaN
func compareOrdered[K constraints.Ordered](a K, b K) int {
	aNaN := a != a
	bNaN := b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return +1
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Key - read the key from a node item
func (p *Node[K]) Key() K {
	return p.key
}

// Left - return the left child of a node
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[K]) Right() *Node[K] {
	return p.right
}

// IsLeaf - true if the node has no children
func (p *Node[K]) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K]) GetChildrenByDepth(depth uint) []*Node[K] {
	nodes := []*Node[K]{}

	if depth == 0 {
		nodes = []*Node[K]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
