// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Visitor - called once for each key during a traversal
type Visitor[K any] func(key K)

// LevelOrder - keys in breadth first order, each level from left to right
//
// if visit is not nil it is called for each key in the same order
func (tree *Tree[K]) LevelOrder(visit Visitor[K]) []K {
	keys := make([]K, 0, tree.count)
	if nil == tree.root {
		return keys
	}

	q := newQueue(tree.root)
	for !q.isEmpty() {
		p := q.dequeue()
		keys = emit(keys, p.key, visit)

		if nil != p.left {
			q.enqueue(p.left)
		}
		if nil != p.right {
			q.enqueue(p.right)
		}
	}
	return keys
}

// InOrder - keys in ascending order: left, node, right
//
// if visit is not nil it is called for each key in the same order
func (tree *Tree[K]) InOrder(visit Visitor[K]) []K {
	return inOrder(tree.root, make([]K, 0, tree.count), visit)
}

// PreOrder - keys in node, left, right order
//
// if visit is not nil it is called for each key in the same order
func (tree *Tree[K]) PreOrder(visit Visitor[K]) []K {
	return preOrder(tree.root, make([]K, 0, tree.count), visit)
}

// PostOrder - keys in left, right, node order
//
// if visit is not nil it is called for each key in the same order
func (tree *Tree[K]) PostOrder(visit Visitor[K]) []K {
	return postOrder(tree.root, make([]K, 0, tree.count), visit)
}

func inOrder[K any](p *Node[K], keys []K, visit Visitor[K]) []K {
	if nil == p {
		return keys
	}
	keys = inOrder(p.left, keys, visit)
	keys = emit(keys, p.key, visit)
	return inOrder(p.right, keys, visit)
}

func preOrder[K any](p *Node[K], keys []K, visit Visitor[K]) []K {
	if nil == p {
		return keys
	}
	keys = emit(keys, p.key, visit)
	keys = preOrder(p.left, keys, visit)
	return preOrder(p.right, keys, visit)
}

func postOrder[K any](p *Node[K], keys []K, visit Visitor[K]) []K {
	if nil == p {
		return keys
	}
	keys = postOrder(p.left, keys, visit)
	keys = postOrder(p.right, keys, visit)
	return emit(keys, p.key, visit)
}

// append a key and call the optional visitor
func emit[K any](keys []K, key K, visit Visitor[K]) []K {
	if nil != visit {
		visit(key)
	}
	return append(keys, key)
}
