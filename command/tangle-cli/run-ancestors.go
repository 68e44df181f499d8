// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tanglestore/model"
)

func runAncestors(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hashes, err := m.provider.GetAncestorHashes()
	if nil != err {
		return err
	}

	// stored bottom first
	top := make([]model.Hash, len(hashes))
	for i, h := range hashes {
		top[len(hashes)-1-i] = h
	}
	return printJson(m.w, top)
}
