// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// output an indented JSON block with an optional title line
func printJson(out io.Writer, title string, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	if "" == title {
		_, err = fmt.Fprintf(out, "%s\n", b)
	} else {
		_, err = fmt.Fprintf(out, "%s:\n%s\n", title, b)
	}
	return err
}
