// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tanglestore/model"
)

type recordReply struct {
	Type     string      `json:"type"`
	Key      string      `json:"key"`
	Data     string      `json:"data,omitempty"`
	Metadata string      `json:"metadata,omitempty"`
	Record   interface{} `json:"record,omitempty"`
}

func runLatest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	t, err := typeArgument(c)
	if nil != err {
		return err
	}

	key, record, err := m.provider.Latest(t)
	if nil != err {
		return err
	}
	if nil == key {
		return fmt.Errorf("no %s records", t)
	}

	return printJson(m.w, describe(t, key, record))
}

// a printable form of a record
func describe(t model.Type, key model.Indexable, record model.Persistable) recordReply {
	reply := recordReply{
		Type:     t.String(),
		Key:      fmt.Sprintf("%x", key.Bytes()),
		Data:     fmt.Sprintf("%x", record.Bytes()),
		Metadata: fmt.Sprintf("%x", record.Metadata()),
	}

	switch r := record.(type) {
	case *model.Transaction:
		if state, ok := r.State(); ok {
			reply.Record = state
		}
		reply.Data = ""
	case *model.Milestone:
		reply.Record = r
	case *model.Hashes:
		reply.Record = r.Set
	}
	return reply
}
