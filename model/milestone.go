// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

import (
	"encoding/binary"

	"github.com/bitmark-inc/tanglestore/fault"
)

// MilestoneSize - encoded size of a milestone record
const MilestoneSize = 4 + HashLength

// Milestone - the milestone transaction confirmed at an index
type Milestone struct {
	Index int32
	Hash  Hash
	valid bool
}

// NewMilestone - create a milestone record
func NewMilestone(index int32, hash Hash) *Milestone {
	return &Milestone{
		Index: index,
		Hash:  hash,
		valid: true,
	}
}

// Type - record type tag
func (m *Milestone) Type() Type {
	return MilestoneType
}

// Key - the index key the milestone is stored under
func (m *Milestone) Key() *IntegerIndex {
	return NewIntegerIndex(m.Index)
}

// Bytes - index(4) ++ hash
func (m *Milestone) Bytes() []byte {
	if !m.valid {
		return nil
	}
	buffer := make([]byte, MilestoneSize)
	binary.BigEndian.PutUint32(buffer, uint32(m.Index))
	copy(buffer[4:], m.Hash[:])
	return buffer
}

// Read - decode a milestone
func (m *Milestone) Read(buffer []byte) error {
	if MilestoneSize != len(buffer) {
		return fault.ErrMilestoneSize
	}
	m.Index = int32(binary.BigEndian.Uint32(buffer))
	copy(m.Hash[:], buffer[4:])
	m.valid = true
	return nil
}

// Metadata - milestones have no metadata
func (m *Milestone) Metadata() []byte {
	return nil
}

// ReadMetadata - milestones have no metadata
func (m *Milestone) ReadMetadata(buffer []byte) error {
	return nil
}
