// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that various errors can be classified
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrExistsTwo, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrInvalidTwo, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrNotFoundTwo, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{ErrProcessTwo, false, false, false, true},
		{fault.ErrAlreadyInitialised, true, false, false, false},
		{fault.ErrInvalidRange, false, true, false, false},
		{fault.ErrNotFoundConfigFile, false, false, true, false},
		{fault.ErrStillBalanced, false, false, false, true},
		{errors.New("plain"), false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "tree did not rebalance", fault.ErrNotBalancedAfterRebalance.Error())
	assert.Equal(t, "base", fault.GenericError("base").Error())
}

// without an initialised logger the messages go to stdout
func TestPanics(t *testing.T) {
	assert.PanicsWithValue(t, "broken", func() {
		fault.Panic("broken")
	})
	assert.PanicsWithValue(t, "node: 7 broken", func() {
		fault.Panicf("node: %d broken", 7)
	})
	assert.PanicsWithValue(t, "parse failed with error: invalid range", func() {
		fault.PanicIfError("parse", fault.ErrInvalidRange)
	})
	assert.NotPanics(t, func() {
		fault.PanicIfError("parse", nil)
	})
}
