// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a binary search tree that is built balanced from a
// set of keys and can be rebuilt balanced on request
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes only point down to their children, there are no parent
// pointers.  Insert and delete do not rotate, so after a series of
// updates the tree may lose its balance; Balanced reports this and
// Rebalance rebuilds the whole tree from its sorted keys.
//
// Keys are unique: construction removes duplicates and inserting a
// key that is already present leaves the tree unchanged.
package bst
