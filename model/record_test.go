// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tanglestore/fault"
	"github.com/bitmark-inc/tanglestore/model"
)

func TestNewRecordsAreAbsent(t *testing.T) {
	for _, recordType := range model.Types() {
		record, err := model.New(recordType)
		assert.Nil(t, err, "new %s", recordType)
		assert.True(t, model.IsAbsent(record), "new %s is not absent", recordType)
		assert.Equal(t, recordType, record.Type(), "wrong type tag")

		key, err := model.NewKey(recordType)
		assert.Nil(t, err, "new key %s", recordType)
		assert.NotNil(t, key, "nil key for %s", recordType)

		found, err := model.TypeFromString(recordType.String())
		assert.Nil(t, err, "lookup %s", recordType)
		assert.Equal(t, recordType, found, "lookup by name")
	}

	_, err := model.New(model.NullType)
	assert.Equal(t, fault.ErrUnknownRecordType, err, "null type accepted")

	_, err = model.TypeFromString("no-such-type")
	assert.Equal(t, fault.ErrUnknownRecordType, err, "unknown name accepted")

	assert.True(t, model.IsAbsent(nil), "nil record must be absent")
}

func TestTransactionData(t *testing.T) {
	data := bytes.Repeat([]byte{1}, model.TransactionSize)
	tx, err := model.NewTransaction(data)
	assert.Nil(t, err, "new transaction")
	assert.Equal(t, data, tx.Bytes(), "data differs")
	assert.Nil(t, tx.Metadata(), "unexpected metadata")
	assert.False(t, model.IsAbsent(tx), "transaction with data is absent")
	assert.Equal(t, model.TransactionHash(data), tx.Hash(), "hash differs")

	_, err = model.NewTransaction(data[1:])
	assert.Equal(t, fault.ErrTransactionSize, err, "short transaction accepted")
}

func TestTransactionMetadata(t *testing.T) {
	state := model.TransactionMetadata{
		Validity:       -1,
		Type:           2,
		ArrivalTime:    1571234567890,
		Height:         99,
		SnapshotIndex:  1050000,
		MilestoneIndex: 1050001,
		Solid:          true,
		Milestone:      false,
	}
	tx := &model.Transaction{}
	tx.SetState(state)
	assert.False(t, model.IsAbsent(tx), "metadata only transaction is absent")

	encoded := tx.Metadata()
	assert.Equal(t, model.TransactionMetadataSize, len(encoded), "metadata size")

	tx2 := &model.Transaction{}
	err := tx2.ReadMetadata(encoded)
	assert.Nil(t, err, "read metadata")
	decoded, ok := tx2.State()
	assert.True(t, ok, "no state after read")
	assert.Equal(t, state, decoded, "metadata round trip")

	// longer buffers are accepted, the tail is ignored
	err = tx2.ReadMetadata(bytes.Repeat([]byte{1}, model.TransactionSize))
	assert.Nil(t, err, "long metadata rejected")

	err = tx2.ReadMetadata(encoded[:model.TransactionMetadataSize-1])
	assert.Equal(t, fault.ErrMetadataSize, err, "short metadata accepted")
}

func TestMilestone(t *testing.T) {
	h := model.TransactionHash([]byte("milestone"))
	m := model.NewMilestone(1050000, h)
	assert.Equal(t, model.NewIntegerIndex(1050000).Bytes(), m.Key().Bytes(), "key")

	m2 := &model.Milestone{}
	assert.True(t, model.IsAbsent(m2), "empty milestone")
	err := m2.Read(m.Bytes())
	assert.Nil(t, err, "read")
	assert.Equal(t, m.Index, m2.Index, "index")
	assert.Equal(t, m.Hash, m2.Hash, "hash")

	err = m2.Read([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrMilestoneSize, err, "bad size accepted")
}

func TestHashes(t *testing.T) {
	h1 := model.TransactionHash([]byte("one"))
	h2 := model.TransactionHash([]byte("two"))

	set := model.NewHashes(model.ApproveeType)
	assert.True(t, model.IsAbsent(set), "empty set")
	set.Add(h1)
	set.Add(h2)
	set.Add(h1)
	assert.Equal(t, 2, len(set.Set), "duplicate added")
	assert.True(t, set.Contains(h2), "missing member")

	decoded := model.NewHashes(model.ApproveeType)
	err := decoded.Read(set.Bytes())
	assert.Nil(t, err, "read")
	assert.Equal(t, set.Set, decoded.Set, "round trip")

	err = decoded.Read(make([]byte, model.HashLength+1))
	assert.Equal(t, fault.ErrHashesSize, err, "bad size accepted")
}

func TestStateDiff(t *testing.T) {
	s := model.NewStateDiff()
	assert.True(t, model.IsAbsent(s), "empty diff")

	s.Changes[model.TransactionHash([]byte("a"))] = 100
	s.Changes[model.TransactionHash([]byte("b"))] = -100
	s.Changes[model.TransactionHash([]byte("c"))] = 0

	encoded := s.Bytes()
	assert.Equal(t, encoded, s.Bytes(), "encoding is not deterministic")

	s2 := model.NewStateDiff()
	err := s2.Read(encoded)
	assert.Nil(t, err, "read")
	assert.Equal(t, s.Changes, s2.Changes, "round trip")

	err = s2.Read(encoded[1:])
	assert.Equal(t, fault.ErrStateDiffSize, err, "bad size accepted")
}
