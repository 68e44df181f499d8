// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tanglestore/model"
)

func TestParseVariables(t *testing.T) {
	v, err := parseVariables([]string{"chain=devnet", "path=/a=b", "empty="})
	assert.NoError(t, err, "parse")
	assert.Equal(t, map[string]string{"chain": "devnet", "path": "/a=b", "empty": ""}, v, "wrong variables")

	for _, bad := range []string{"novalue", "=x"} {
		_, err := parseVariables([]string{bad})
		assert.Error(t, err, "accepted: %q", bad)
	}
}

func TestDescribe(t *testing.T) {
	var h model.Hash
	h[0] = 0xab

	m := model.NewMilestone(7, h)
	reply := describe(model.MilestoneType, m.Key(), m)
	assert.Equal(t, "milestone", reply.Type, "type")
	assert.Equal(t, "80000007", reply.Key, "key")
	assert.Equal(t, m, reply.Record, "record")

	set := model.NewHashes(model.TagType, h)
	reply = describe(model.TagType, &h, set)
	assert.Equal(t, "tag", reply.Type, "type")
	assert.Equal(t, set.Set, reply.Record, "record")
	assert.Equal(t, "", reply.Metadata, "metadata")
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "transaction, milestone, state-diff, approvee, address, bundle, tag, obsolete-tag", typeNames(), "names")
}
