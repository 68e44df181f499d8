// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tanglestore/fault"
	"github.com/bitmark-inc/tanglestore/model"
	"github.com/bitmark-inc/tanglestore/storage"
	"github.com/bitmark-inc/tanglestore/storage/mocks"
)

var errDisk = errors.New("disk failure")

// a provider on a mock engine that has been opened on an existing database
func setupMock(t *testing.T) (*storage.Provider, *mocks.MockEngine) {
	ctl := gomock.NewController(t)
	t.Cleanup(ctl.Finish)

	version := []byte{0x00, 0x00, 0x01, 0x00}

	engine := mocks.NewMockEngine(ctl)
	engine.EXPECT().Open(gomock.Any()).Return(nil).Times(1)
	engine.EXPECT().Get(storage.MetadataFamily(), gomock.Any()).Return(version, nil).Times(1)

	p := storage.NewWithEngine(testConfiguration(t, "mock"), engine)
	require.NoError(t, p.Initialise(), "initialise")
	return p, engine
}

func TestGetIOError(t *testing.T) {
	p, engine := setupMock(t)
	engine.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errDisk).Times(1)

	hash := filledHash(1)
	_, err := p.Get(model.TransactionType, &hash)
	assert.True(t, fault.IsErrIO(err), "wrong error class: %v", err)
	assert.True(t, errors.Is(err, errDisk), "cause not kept: %v", err)
}

func TestMetadataIOError(t *testing.T) {
	p, engine := setupMock(t)
	gomock.InOrder(
		engine.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1),
		engine.EXPECT().Get(storage.MetadataFamily(), gomock.Any()).Return(nil, errDisk).Times(1),
	)

	hash := filledHash(1)
	_, err := p.Get(model.TransactionType, &hash)
	assert.True(t, fault.IsErrIO(err), "wrong error class: %v", err)
}

func TestGetSerializationError(t *testing.T) {
	p, engine := setupMock(t)
	engine.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte{1, 2, 3}, nil).Times(1)

	hash := filledHash(1)
	_, err := p.Get(model.TransactionType, &hash)
	assert.Equal(t, fault.ErrTransactionSize, err, "wrong error")
	assert.True(t, fault.IsErrSerialization(err), "wrong error class")
}

func TestNavigateSerializationError(t *testing.T) {
	p, engine := setupMock(t)
	element := storage.Element{
		Key:   []byte{1, 2},
		Value: model.NewMilestone(1, filledHash(1)).Bytes(),
	}
	engine.EXPECT().Step(gomock.Any(), gomock.Nil(), storage.Forward).Return(element, true, nil).Times(1)

	_, _, err := p.First(model.MilestoneType)
	assert.Equal(t, fault.ErrIndexLength, err, "wrong error")
}

func TestNavigateIOError(t *testing.T) {
	p, engine := setupMock(t)
	engine.EXPECT().Step(gomock.Any(), gomock.Any(), storage.Backward).Return(storage.Element{}, false, errDisk).Times(1)

	_, _, err := p.Latest(model.MilestoneType)
	assert.True(t, fault.IsErrIO(err), "wrong error class: %v", err)
}

func TestSaveIOError(t *testing.T) {
	p, engine := setupMock(t)
	engine.EXPECT().Write(gomock.Any()).Return(errDisk).Times(1)

	key, tx := makeTransaction(t, 1)
	err := p.Save(key, tx)
	assert.True(t, fault.IsErrIO(err), "wrong error class: %v", err)
	assert.True(t, errors.Is(err, fault.ErrStorageIO), "wrong error: %v", err)
}

func TestClearIOError(t *testing.T) {
	p, engine := setupMock(t)
	engine.EXPECT().Drop(gomock.Any(), gomock.Any()).Return(errDisk).Times(1)

	err := p.Clear(model.TagType)
	assert.True(t, fault.IsErrIO(err), "wrong error class: %v", err)
}

func TestCounterCorrupt(t *testing.T) {
	p, engine := setupMock(t)
	engine.EXPECT().Get(storage.MetadataFamily(), gomock.Any()).Return([]byte{1, 2, 3}, nil).Times(1)

	_, err := p.GetCounter("pruned")
	assert.Equal(t, fault.ErrCounterLength, err, "wrong error")
}

func TestCounterWriteFailure(t *testing.T) {
	p, engine := setupMock(t)
	gomock.InOrder(
		engine.EXPECT().Get(storage.MetadataFamily(), gomock.Any()).Return(nil, nil).Times(1),
		engine.EXPECT().Write(gomock.Any()).Return(errDisk).Times(1),
		engine.EXPECT().Get(storage.MetadataFamily(), gomock.Any()).Return(nil, nil).Times(1),
	)

	_, err := p.AddCounter("pruned", 3)
	assert.True(t, fault.IsErrIO(err), "wrong error class: %v", err)

	// the failed value must not be cached
	value, err := p.GetCounter("pruned")
	assert.NoError(t, err, "get")
	assert.Equal(t, int64(0), value, "failed write is visible")
}

func TestAncestorsTruncated(t *testing.T) {
	tests := [][]byte{
		{0x80},                         // count varint cut short
		{0x03, 0x01},                   // more keys than bytes
		{0x01, 0x30, 0x01},             // key length past the end
		{0x02, 0x04, 0, 0, 0, 1, 0x81}, // second key length cut short
	}

	for i, buffer := range tests {
		p, engine := setupMock(t)
		engine.EXPECT().Get(storage.MetadataFamily(), gomock.Any()).Return(buffer, nil).Times(1)

		_, err := p.GetAncestors(func() model.Indexable {
			return new(model.IntegerIndex)
		})
		assert.True(t, fault.IsErrSerialization(err), "%d: wrong error: %v", i, err)
	}
}

// crashingEngine - an engine whose commits can be made to fail
type crashingEngine struct {
	storage.Engine
	crash bool
}

func (c *crashingEngine) Write(batch *storage.Batch) error {
	if c.crash {
		return errDisk
	}
	return c.Engine.Write(batch)
}

func TestCrashDuringBatch(t *testing.T) {
	for _, engine := range engines {
		conf := testConfiguration(t, engine)

		plain, err := storage.NewEngine(conf)
		require.NoError(t, err, engine)
		crashing := &crashingEngine{Engine: plain}

		p := storage.NewWithEngine(conf, crashing)
		require.NoError(t, p.Initialise(), engine)

		key1, tx1 := makeTransaction(t, 1)
		require.NoError(t, p.Save(key1, tx1), "%s: save", engine)

		key2, tx2 := makeTransaction(t, 2)
		tx2.SetState(testState)
		milestone := model.NewMilestone(3, *key2)

		crashing.crash = true
		err = p.SaveBatch([]storage.Entry{
			{Key: key2, Record: tx2},
			{Key: milestone.Key(), Record: milestone},
		})
		assert.True(t, fault.IsErrIO(err), "%s: wrong error class: %v", engine, err)

		err = p.DeleteBatch([]storage.Reference{
			{Type: model.TransactionType, Key: key1},
		})
		assert.True(t, fault.IsErrIO(err), "%s: wrong error class: %v", engine, err)
		require.NoError(t, p.Finalise(), engine)

		// reopen on the plain engine
		p, err = storage.New(conf)
		require.NoError(t, err, engine)
		require.NoError(t, p.Initialise(), "%s: reopen", engine)

		record, err := p.Get(model.TransactionType, key1)
		require.NoError(t, err, "%s: get", engine)
		assert.Equal(t, tx1.Bytes(), record.Bytes(), "%s: committed data lost", engine)

		record, err = p.Get(model.TransactionType, key2)
		require.NoError(t, err, "%s: get", engine)
		assert.True(t, model.IsAbsent(record), "%s: failed batch partly visible", engine)

		record, err = p.Get(model.MilestoneType, milestone.Key())
		require.NoError(t, err, "%s: get", engine)
		assert.True(t, model.IsAbsent(record), "%s: failed batch partly visible", engine)

		require.NoError(t, p.Finalise(), engine)
	}
}
