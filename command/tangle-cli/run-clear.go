// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runClear(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	t, err := typeArgument(c)
	if nil != err {
		return err
	}

	if !c.Bool("yes") {
		return fmt.Errorf("clear of: %s requires --yes", t)
	}

	if err := m.provider.Clear(t); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "cleared: %s\n", t)
	}
	return nil
}
