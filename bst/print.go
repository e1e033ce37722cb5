// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// String - an ASCII graphic representation of the tree
//
// children are labelled "<" for left and ">" for right, a missing
// child is shown as "-" when its sibling is present
func (tree *Tree[K]) String() string {
	if nil == tree.root {
		return treeprint.NewWithRoot("(empty)").String()
	}
	t := treeprint.NewWithRoot(fmt.Sprintf("%v", tree.root.key))
	addChildren(t, tree.root)
	return t.String()
}

// Print - display the tree and return its height
func (tree *Tree[K]) Print(w io.Writer) int {
	fmt.Fprint(w, tree.String())
	return tree.Height()
}

func addChildren[K any](t treeprint.Tree, p *Node[K]) {
	if p.IsLeaf() {
		return
	}
	addChild(t, "<", p.left)
	addChild(t, ">", p.right)
}

func addChild[K any](t treeprint.Tree, label string, p *Node[K]) {
	switch {
	case nil == p:
		t.AddNode(label + " -")
	case p.IsLeaf():
		t.AddNode(fmt.Sprintf("%s %v", label, p.key))
	default:
		addChildren(t.AddBranch(fmt.Sprintf("%s %v", label, p.key)), p)
	}
}
