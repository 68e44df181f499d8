// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

import (
	"strings"

	"github.com/bitmark-inc/tanglestore/fault"
)

// Type - record type tag, fixed for the lifetime of a record
type Type uint8

// record types - zero is reserved for named metadata entries
const (
	NullType Type = iota
	TransactionType
	MilestoneType
	StateDiffType
	ApproveeType
	AddressType
	BundleType
	TagType
	ObsoleteTagType
)

// Indexable - a key that encodes to a byte comparable sequence
type Indexable interface {
	Bytes() []byte
	Read(buffer []byte) error
}

// Persistable - a record with independently stored data and metadata
type Persistable interface {
	Type() Type
	Bytes() []byte
	Read(buffer []byte) error
	Metadata() []byte
	ReadMetadata(buffer []byte) error
}

// constructors for each record type
type recordInfo struct {
	name        string
	newRecord   func() Persistable
	newKey      func() Indexable
	hasMetadata bool
}

var records = map[Type]recordInfo{
	TransactionType: {
		name:        "transaction",
		newRecord:   func() Persistable { return new(Transaction) },
		newKey:      func() Indexable { return new(Hash) },
		hasMetadata: true,
	},
	MilestoneType: {
		name:      "milestone",
		newRecord: func() Persistable { return new(Milestone) },
		newKey:    func() Indexable { return new(IntegerIndex) },
	},
	StateDiffType: {
		name:      "state-diff",
		newRecord: func() Persistable { return NewStateDiff() },
		newKey:    func() Indexable { return new(Hash) },
	},
	ApproveeType: {
		name:      "approvee",
		newRecord: func() Persistable { return NewHashes(ApproveeType) },
		newKey:    func() Indexable { return new(Hash) },
	},
	AddressType: {
		name:      "address",
		newRecord: func() Persistable { return NewHashes(AddressType) },
		newKey:    func() Indexable { return new(Hash) },
	},
	BundleType: {
		name:      "bundle",
		newRecord: func() Persistable { return NewHashes(BundleType) },
		newKey:    func() Indexable { return new(Hash) },
	},
	TagType: {
		name:      "tag",
		newRecord: func() Persistable { return NewHashes(TagType) },
		newKey:    func() Indexable { return new(Hash) },
	},
	ObsoleteTagType: {
		name:      "obsolete-tag",
		newRecord: func() Persistable { return NewHashes(ObsoleteTagType) },
		newKey:    func() Indexable { return new(Hash) },
	},
}

// Types - all record types in tag order
func Types() []Type {
	return []Type{
		TransactionType,
		MilestoneType,
		StateDiffType,
		ApproveeType,
		AddressType,
		BundleType,
		TagType,
		ObsoleteTagType,
	}
}

// Valid - check if the type is a known record type
func (t Type) Valid() bool {
	_, ok := records[t]
	return ok
}

// HasMetadata - true if records of this type carry a metadata payload
func (t Type) HasMetadata() bool {
	return records[t].hasMetadata
}

// String - name of the record type
func (t Type) String() string {
	if info, ok := records[t]; ok {
		return info.name
	}
	return "unknown"
}

// TypeFromString - look up a record type by its name
func TypeFromString(name string) (Type, error) {
	name = strings.ToLower(name)
	for t, info := range records {
		if info.name == name {
			return t, nil
		}
	}
	return NullType, fault.ErrUnknownRecordType
}

// New - create an empty (absent) record of the given type
func New(t Type) (Persistable, error) {
	info, ok := records[t]
	if !ok {
		return nil, fault.ErrUnknownRecordType
	}
	return info.newRecord(), nil
}

// NewKey - create an empty key of the kind used by the given type
func NewKey(t Type) (Indexable, error) {
	info, ok := records[t]
	if !ok {
		return nil, fault.ErrUnknownRecordType
	}
	return info.newKey(), nil
}

// IsAbsent - a record with neither data nor metadata does not exist
func IsAbsent(record Persistable) bool {
	if nil == record {
		return true
	}
	return 0 == len(record.Bytes()) && 0 == len(record.Metadata())
}
