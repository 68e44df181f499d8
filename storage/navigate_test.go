// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tanglestore/fault"
	"github.com/bitmark-inc/tanglestore/model"
	"github.com/bitmark-inc/tanglestore/storage"
)

// save milestones with the given indexes
func saveMilestones(t *testing.T, p *storage.Provider, indexes ...int32) {
	entries := make([]storage.Entry, 0, len(indexes))
	for _, i := range indexes {
		m := model.NewMilestone(i, filledHash(byte(i)))
		entries = append(entries, storage.Entry{Key: m.Key(), Record: m})
	}
	require.NoError(t, p.SaveBatch(entries), "save milestones")
}

// the integer value of a navigation result, checking the record matches
func milestoneIndex(t *testing.T, key model.Indexable, record model.Persistable) int32 {
	require.NotNil(t, key, "no key returned")
	index := key.(*model.IntegerIndex).Value()
	assert.Equal(t, index, record.(*model.Milestone).Index, "record does not match key")
	return index
}

func TestNavigateEmpty(t *testing.T) {
	forEachEngine(t, func(t *testing.T, p *storage.Provider) {
		key, record, err := p.First(model.MilestoneType)
		assert.NoError(t, err, "first")
		assert.Nil(t, key, "key from empty family")
		assert.True(t, model.IsAbsent(record), "record from empty family")

		key, record, err = p.Latest(model.MilestoneType)
		assert.NoError(t, err, "latest")
		assert.Nil(t, key, "key from empty family")
		assert.True(t, model.IsAbsent(record), "record from empty family")
	})
}

func TestNavigate(t *testing.T) {
	forEachEngine(t, func(t *testing.T, p *storage.Provider) {
		saveMilestones(t, p, 10, 1, 5)

		// a neighbouring family must not be visible
		bucket := filledHash(0xff)
		require.NoError(t, p.Save(&bucket, model.NewHashes(model.ObsoleteTagType, bucket)), "save obsolete tag")
		require.NoError(t, p.Save(&bucket, model.NewHashes(model.AddressType, bucket)), "save address")

		key, record, err := p.First(model.MilestoneType)
		require.NoError(t, err, "first")
		assert.Equal(t, int32(1), milestoneIndex(t, key, record), "first")

		key, record, err = p.Latest(model.MilestoneType)
		require.NoError(t, err, "latest")
		assert.Equal(t, int32(10), milestoneIndex(t, key, record), "latest")

		key, record, err = p.Next(model.MilestoneType, model.NewIntegerIndex(5))
		require.NoError(t, err, "next")
		assert.Equal(t, int32(10), milestoneIndex(t, key, record), "next of 5")

		key, record, err = p.Previous(model.MilestoneType, model.NewIntegerIndex(5))
		require.NoError(t, err, "previous")
		assert.Equal(t, int32(1), milestoneIndex(t, key, record), "previous of 5")

		// keys that are not stored
		key, record, err = p.Next(model.MilestoneType, model.NewIntegerIndex(6))
		require.NoError(t, err, "next")
		assert.Equal(t, int32(10), milestoneIndex(t, key, record), "next of 6")

		key, record, err = p.Previous(model.MilestoneType, model.NewIntegerIndex(6))
		require.NoError(t, err, "previous")
		assert.Equal(t, int32(5), milestoneIndex(t, key, record), "previous of 6")

		key, record, err = p.Previous(model.MilestoneType, model.NewIntegerIndex(100))
		require.NoError(t, err, "previous")
		assert.Equal(t, int32(10), milestoneIndex(t, key, record), "previous of 100")

		// ends of the family
		key, record, err = p.Next(model.MilestoneType, model.NewIntegerIndex(10))
		require.NoError(t, err, "next")
		assert.Nil(t, key, "next of latest")
		assert.True(t, model.IsAbsent(record), "next of latest")

		key, record, err = p.Previous(model.MilestoneType, model.NewIntegerIndex(1))
		require.NoError(t, err, "previous")
		assert.Nil(t, key, "previous of first")
		assert.True(t, model.IsAbsent(record), "previous of first")
	})
}

func TestNavigateNegativeIndexes(t *testing.T) {
	forEachEngine(t, func(t *testing.T, p *storage.Provider) {
		saveMilestones(t, p, 3, -7, 0, -1, 2147483647, -2147483648)

		expected := []int32{-2147483648, -7, -1, 0, 3, 2147483647}

		key, record, err := p.First(model.MilestoneType)
		require.NoError(t, err, "first")

		actual := []int32{}
		for nil != key {
			actual = append(actual, milestoneIndex(t, key, record))
			key, record, err = p.Next(model.MilestoneType, key)
			require.NoError(t, err, "next")
		}
		assert.Equal(t, expected, actual, "forward order")

		key, record, err = p.Latest(model.MilestoneType)
		require.NoError(t, err, "latest")

		actual = []int32{}
		for nil != key {
			actual = append([]int32{milestoneIndex(t, key, record)}, actual...)
			key, record, err = p.Previous(model.MilestoneType, key)
			require.NoError(t, err, "previous")
		}
		assert.Equal(t, expected, actual, "backward order")
	})
}

func TestNavigateMissingKey(t *testing.T) {
	forEachEngine(t, func(t *testing.T, p *storage.Provider) {
		_, _, err := p.Next(model.MilestoneType, nil)
		assert.Equal(t, fault.ErrMissingKey, err, "next")
		_, _, err = p.Previous(model.MilestoneType, nil)
		assert.Equal(t, fault.ErrMissingKey, err, "previous")
	})
}

func TestForEach(t *testing.T) {
	forEachEngine(t, func(t *testing.T, p *storage.Provider) {
		saveMilestones(t, p, 4, 2, 8, 6)

		indexes := []int32{}
		err := p.ForEach(model.MilestoneType, func(key model.Indexable, record model.Persistable) error {
			indexes = append(indexes, milestoneIndex(t, key, record))
			return nil
		})
		assert.NoError(t, err, "for each")
		assert.Equal(t, []int32{2, 4, 6, 8}, indexes, "wrong order")

		stop := errors.New("stop")
		n := 0
		err = p.ForEach(model.MilestoneType, func(model.Indexable, model.Persistable) error {
			n += 1
			if 2 == n {
				return stop
			}
			return nil
		})
		assert.Equal(t, stop, err, "callback error not returned")
		assert.Equal(t, 2, n, "iteration did not stop")
	})
}

func TestFetchCursor(t *testing.T) {
	forEachEngine(t, func(t *testing.T, p *storage.Provider) {
		saveMilestones(t, p, 1, 2, 3, 4, 5)

		family, err := storage.FamilyOf(model.MilestoneType)
		require.NoError(t, err, "family")

		cursor := p.NewFetchCursor(family)

		_, err = cursor.Fetch(0)
		assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

		indexes := []int32{}
		for {
			elements, err := cursor.Fetch(2)
			require.NoError(t, err, "fetch")
			if 0 == len(elements) {
				break
			}
			assert.LessOrEqual(t, len(elements), 2, "too many elements")
			for _, e := range elements {
				var index model.IntegerIndex
				require.NoError(t, index.Read(e.Key), "key")
				indexes = append(indexes, index.Value())
			}
		}
		assert.Equal(t, []int32{1, 2, 3, 4, 5}, indexes, "wrong elements")

		elements, err := p.NewFetchCursor(family).Seek(model.NewIntegerIndex(4).Bytes()).Fetch(10)
		require.NoError(t, err, "fetch after seek")
		require.Equal(t, 2, len(elements), "wrong count after seek")
		assert.Equal(t, model.NewIntegerIndex(4).Bytes(), elements[0].Key, "seek start is included")
	})
}
