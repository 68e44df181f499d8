// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tanglestore/storage"
)

type infoReply struct {
	File              string                `json:"file"`
	Database          storage.Configuration `json:"database"`
	TotalTransactions int64                 `json:"total_transactions"`
	Ancestors         int                   `json:"ancestors"`
	Statistics        storage.Statistics    `json:"statistics"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	total, err := m.provider.TotalTransactions()
	if nil != err {
		return err
	}

	ancestors, err := m.provider.GetAncestorHashes()
	if nil != err {
		return err
	}

	info := infoReply{
		File:              m.file,
		Database:          m.config.Database,
		TotalTransactions: total,
		Ancestors:         len(ancestors),
		Statistics:        m.provider.Statistics(),
	}
	return printJson(m.w, info)
}
