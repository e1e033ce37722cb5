// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrInvalidConfiguration      = InvalidError("configuration did not return a table")
	ErrInvalidCount              = InvalidError("count must not be negative")
	ErrInvalidLogFile            = InvalidError("log file must be a plain file name")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidOutputFormat       = InvalidError("output format must be text or json")
	ErrInvalidRange              = InvalidError("range low is above range high")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrNotBalancedAfterBuild     = ProcessError("tree was not built balanced")
	ErrNotBalancedAfterRebalance = ProcessError("tree did not rebalance")
	ErrNotFoundConfigFile        = NotFoundError("config file is not found")
	ErrStillBalanced             = ProcessError("tree is still balanced after random insertions")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
