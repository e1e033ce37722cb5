// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// FIFO of nodes for breadth first traversal
type queue[K any] struct {
	items []*Node[K]
	head  int
}

func newQueue[K any](items ...*Node[K]) *queue[K] {
	return &queue[K]{
		items: items,
		head:  0,
	}
}

func (q *queue[K]) enqueue(p *Node[K]) {
	q.items = append(q.items, p)
}

// returns nil when empty
func (q *queue[K]) dequeue() *Node[K] {
	if q.isEmpty() {
		return nil
	}
	p := q.items[q.head]
	q.items[q.head] = nil // drop reference
	q.head += 1
	return p
}

func (q *queue[K]) isEmpty() bool {
	return q.head >= len(q.items)
}
