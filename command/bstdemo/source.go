// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/bitmark-inc/bstree/fault"
)

//go:generate mockgen -source=source.go -destination=mocks/keysource.go -package=mocks

// KeySource - supplies the keys for a demonstration run
type KeySource interface {
	// Key - a key in the closed range low..high
	Key(low int, high int) (int, error)
}

// uniformly distributed keys from a random byte stream
type randomSource struct {
	reader io.Reader
}

func newRandomSource() KeySource {
	return &randomSource{
		reader: rand.Reader,
	}
}

// Key - a uniformly distributed key in low..high
func (s *randomSource) Key(low int, high int) (int, error) {
	if low > high {
		return 0, fault.ErrInvalidRange
	}
	bigLow := big.NewInt(int64(low))

	// high - low + 1 can exceed the range of int
	limit := big.NewInt(int64(high))
	limit.Sub(limit, bigLow)
	limit.Add(limit, big.NewInt(1))

	n, err := rand.Int(s.reader, limit)
	if nil != err {
		return 0, err
	}
	return int(n.Add(n, bigLow).Int64()), nil
}
