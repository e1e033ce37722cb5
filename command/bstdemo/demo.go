// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

// snapshot of a tree
type treeState struct {
	Count      int    `json:"count"`
	Height     int    `json:"height"`
	Balanced   bool   `json:"balanced"`
	LevelOrder []int  `json:"level_order"`
	InOrder    []int  `json:"in_order"`
	PreOrder   []int  `json:"pre_order"`
	PostOrder  []int  `json:"post_order"`
	Tree       string `json:"tree,omitempty"`
}

// result of a run
type report struct {
	Sample              []int     `json:"sample"`
	Built               treeState `json:"built"`
	Inserted            int       `json:"inserted"`
	Duplicates          int       `json:"duplicates"`
	BalancedAfterInsert bool      `json:"balanced_after_insert"`
	Rebalanced          treeState `json:"rebalanced"`
}

// build a tree from random keys, disturb it with random insertions,
// then rebalance it; text output is written as it happens, JSON
// output as a single block at the end
func run(log *logger.L, config *Configuration, source KeySource, out io.Writer) (*report, error) {

	sample, err := drawKeys(source, config.SampleSize, config.SampleLow, config.SampleHigh)
	if nil != err {
		log.Errorf("sample: error: %s", err)
		return nil, err
	}
	log.Debugf("sample: %v", sample)

	r := &report{
		Sample: sample,
	}

	tree := bst.New(sample...)
	log.Infof("built: %d keys from sample of: %d  height: %d", tree.Count(), len(sample), tree.Height())

	if !tree.Balanced() {
		log.Criticalf("built tree is not balanced")
		return nil, fault.ErrNotBalancedAfterBuild
	}

	r.Built = snapshot(tree, config.ShowTree)
	if err := printState(out, config.Output, "built", r.Built); nil != err {
		return nil, err
	}

	for i := 0; i < config.InsertCount; i += 1 {
		key, err := source.Key(config.InsertLow, config.InsertHigh)
		if nil != err {
			log.Errorf("insert: %d  error: %s", i, err)
			return nil, err
		}
		if tree.Insert(key) {
			r.Inserted += 1
		} else {
			r.Duplicates += 1
		}
	}
	log.Infof("inserted: %d  duplicates: %d  height: %d", r.Inserted, r.Duplicates, tree.Height())

	// random insertions will usually unbalance the tree, but that
	// cannot be guaranteed
	r.BalancedAfterInsert = tree.Balanced()
	if r.BalancedAfterInsert {
		if config.RequireUnbalanced {
			log.Criticalf("tree is still balanced after: %d insertions", config.InsertCount)
			return nil, fault.ErrStillBalanced
		}
		log.Warnf("tree is still balanced after: %d insertions", config.InsertCount)
	}

	tree.Rebalance()
	if !tree.Balanced() {
		log.Criticalf("rebalanced tree is not balanced")
		return nil, fault.ErrNotBalancedAfterRebalance
	}
	log.Infof("rebalanced: %d keys  height: %d", tree.Count(), tree.Height())

	r.Rebalanced = snapshot(tree, config.ShowTree)
	if err := printState(out, config.Output, "rebalanced", r.Rebalanced); nil != err {
		return nil, err
	}

	if outputJSON == config.Output {
		if err := printJson(out, "", r); nil != err {
			return nil, err
		}
	}
	return r, nil
}

// draw count keys in low..high, duplicates are possible
func drawKeys(source KeySource, count int, low int, high int) ([]int, error) {
	keys := make([]int, count)
	for i := range keys {
		key, err := source.Key(low, high)
		if nil != err {
			return nil, err
		}
		keys[i] = key
	}
	return keys, nil
}

func snapshot(tree *bst.Tree[int], showTree bool) treeState {
	s := treeState{
		Count:      tree.Count(),
		Height:     tree.Height(),
		Balanced:   tree.Balanced(),
		LevelOrder: tree.LevelOrder(nil),
		InOrder:    tree.InOrder(nil),
		PreOrder:   tree.PreOrder(nil),
		PostOrder:  tree.PostOrder(nil),
	}
	if showTree {
		s.Tree = tree.String()
	}
	return s
}

// text output only, JSON is written as a whole at the end
func printState(out io.Writer, format string, title string, s treeState) error {
	if outputText != format {
		return nil
	}

	_, err := fmt.Fprintf(out,
		"%s: count: %d  height: %d\n"+
			"Level order: %v\n"+
			"In order: %v\n"+
			"Pre order: %v\n"+
			"Post order: %v\n",
		title, s.Count, s.Height,
		s.LevelOrder,
		s.InOrder,
		s.PreOrder,
		s.PostOrder,
	)
	if nil != err {
		return err
	}
	if "" != s.Tree {
		_, err = fmt.Fprint(out, s.Tree)
	}
	return err
}
