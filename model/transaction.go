// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

import (
	"encoding/binary"

	"github.com/bitmark-inc/tanglestore/fault"
)

// sizes of the transaction payloads
const (
	TransactionSize         = 1604
	TransactionMetadataSize = 64
)

// metadata flag bits
const (
	flagSolid     = 1 << 0
	flagMilestone = 1 << 1
)

// TransactionMetadata - per transaction state maintained by the node
type TransactionMetadata struct {
	Validity       int32
	Type           int32
	ArrivalTime    int64
	Height         int64
	SnapshotIndex  int32
	MilestoneIndex int32
	Solid          bool
	Milestone      bool
}

// Transaction - a raw transaction and its metadata
type Transaction struct {
	data     []byte
	metadata *TransactionMetadata
}

// NewTransaction - create a transaction record from raw data
func NewTransaction(data []byte) (*Transaction, error) {
	tx := &Transaction{}
	if err := tx.Read(data); nil != err {
		return nil, err
	}
	return tx, nil
}

// Type - record type tag
func (tx *Transaction) Type() Type {
	return TransactionType
}

// Hash - digest of the raw data, the key the transaction is stored under
func (tx *Transaction) Hash() Hash {
	return TransactionHash(tx.data)
}

// Bytes - raw transaction data
func (tx *Transaction) Bytes() []byte {
	return tx.data
}

// Read - set the raw transaction data
func (tx *Transaction) Read(buffer []byte) error {
	if TransactionSize != len(buffer) {
		return fault.ErrTransactionSize
	}
	tx.data = make([]byte, TransactionSize)
	copy(tx.data, buffer)
	return nil
}

// State - metadata values, second value is false if no metadata is set
func (tx *Transaction) State() (TransactionMetadata, bool) {
	if nil == tx.metadata {
		return TransactionMetadata{}, false
	}
	return *tx.metadata, true
}

// SetState - replace the metadata values
func (tx *Transaction) SetState(m TransactionMetadata) {
	tx.metadata = &m
}

// Metadata - encoded metadata, nil if none is set
//
//	validity(4) ++ type(4) ++ arrival(8) ++ height(8) ++ snapshot(4)
//	++ milestone(4) ++ flags(1) ++ reserved
func (tx *Transaction) Metadata() []byte {
	m := tx.metadata
	if nil == m {
		return nil
	}
	buffer := make([]byte, TransactionMetadataSize)
	binary.BigEndian.PutUint32(buffer[0:], uint32(m.Validity))
	binary.BigEndian.PutUint32(buffer[4:], uint32(m.Type))
	binary.BigEndian.PutUint64(buffer[8:], uint64(m.ArrivalTime))
	binary.BigEndian.PutUint64(buffer[16:], uint64(m.Height))
	binary.BigEndian.PutUint32(buffer[24:], uint32(m.SnapshotIndex))
	binary.BigEndian.PutUint32(buffer[28:], uint32(m.MilestoneIndex))
	flags := byte(0)
	if m.Solid {
		flags |= flagSolid
	}
	if m.Milestone {
		flags |= flagMilestone
	}
	buffer[32] = flags
	return buffer
}

// ReadMetadata - decode metadata
//
// any bytes after the fixed layout are ignored
func (tx *Transaction) ReadMetadata(buffer []byte) error {
	if len(buffer) < TransactionMetadataSize {
		return fault.ErrMetadataSize
	}
	flags := buffer[32]
	tx.metadata = &TransactionMetadata{
		Validity:       int32(binary.BigEndian.Uint32(buffer[0:])),
		Type:           int32(binary.BigEndian.Uint32(buffer[4:])),
		ArrivalTime:    int64(binary.BigEndian.Uint64(buffer[8:])),
		Height:         int64(binary.BigEndian.Uint64(buffer[16:])),
		SnapshotIndex:  int32(binary.BigEndian.Uint32(buffer[24:])),
		MilestoneIndex: int32(binary.BigEndian.Uint32(buffer[28:])),
		Solid:          0 != flags&flagSolid,
		Milestone:      0 != flags&flagMilestone,
	}
	return nil
}
