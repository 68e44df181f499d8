// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type counterReply struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

func runCounter(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if c.NArg() < 1 || c.NArg() > 2 {
		return fmt.Errorf("usage: counter NAME [DELTA]")
	}
	name := c.Args().Get(0)

	delta, add, err := int64Argument(c, 1, "delta")
	if nil != err {
		return err
	}

	var value int64
	if add {
		if m.verbose {
			fmt.Fprintf(m.e, "add: %d to counter: %q\n", delta, name)
		}
		value, err = m.provider.AddCounter(name, delta)
	} else {
		value, err = m.provider.GetCounter(name)
	}
	if nil != err {
		return err
	}

	return printJson(m.w, counterReply{Name: name, Value: value})
}
