// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/bitmark-inc/tanglestore/fault"
)

// size of one address/value pair
const stateDiffEntrySize = HashLength + 8

// StateDiff - balance changes caused by confirming a milestone
type StateDiff struct {
	Changes map[Hash]int64
}

// NewStateDiff - create an empty state diff
func NewStateDiff() *StateDiff {
	return &StateDiff{
		Changes: make(map[Hash]int64),
	}
}

// Type - record type tag
func (s *StateDiff) Type() Type {
	return StateDiffType
}

// Bytes - address ++ value pairs in ascending address order
func (s *StateDiff) Bytes() []byte {
	if 0 == len(s.Changes) {
		return nil
	}
	addresses := make([]Hash, 0, len(s.Changes))
	for address := range s.Changes {
		addresses = append(addresses, address)
	}
	sort.Slice(addresses, func(i, j int) bool {
		return bytes.Compare(addresses[i][:], addresses[j][:]) < 0
	})

	buffer := make([]byte, len(addresses)*stateDiffEntrySize)
	for i, address := range addresses {
		n := i * stateDiffEntrySize
		copy(buffer[n:], address[:])
		binary.BigEndian.PutUint64(buffer[n+HashLength:], uint64(s.Changes[address]))
	}
	return buffer
}

// Read - decode address/value pairs
func (s *StateDiff) Read(buffer []byte) error {
	if 0 != len(buffer)%stateDiffEntrySize {
		return fault.ErrStateDiffSize
	}
	changes := make(map[Hash]int64, len(buffer)/stateDiffEntrySize)
	for n := 0; n < len(buffer); n += stateDiffEntrySize {
		var address Hash
		copy(address[:], buffer[n:])
		changes[address] = int64(binary.BigEndian.Uint64(buffer[n+HashLength:]))
	}
	s.Changes = changes
	return nil
}

// Metadata - state diffs have no metadata
func (s *StateDiff) Metadata() []byte {
	return nil
}

// ReadMetadata - state diffs have no metadata
func (s *StateDiff) ReadMetadata(buffer []byte) error {
	return nil
}
