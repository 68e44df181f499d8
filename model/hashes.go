// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

import (
	"github.com/bitmark-inc/tanglestore/fault"
)

// Hashes - a set of transaction hashes indexed by one hash
//
// used for approvees, addresses, bundles and tags
type Hashes struct {
	kind Type
	Set  []Hash
}

// NewHashes - create an empty hash set record of one of the index types
func NewHashes(kind Type, hashes ...Hash) *Hashes {
	return &Hashes{
		kind: kind,
		Set:  hashes,
	}
}

// Type - record type tag
func (h *Hashes) Type() Type {
	return h.kind
}

// Add - append a hash if it is not already present
func (h *Hashes) Add(hash Hash) {
	for _, existing := range h.Set {
		if existing == hash {
			return
		}
	}
	h.Set = append(h.Set, hash)
}

// Contains - check if a hash is a member
func (h *Hashes) Contains(hash Hash) bool {
	for _, existing := range h.Set {
		if existing == hash {
			return true
		}
	}
	return false
}

// Bytes - concatenated hashes
func (h *Hashes) Bytes() []byte {
	if 0 == len(h.Set) {
		return nil
	}
	buffer := make([]byte, 0, len(h.Set)*HashLength)
	for _, hash := range h.Set {
		buffer = append(buffer, hash[:]...)
	}
	return buffer
}

// Read - decode concatenated hashes
func (h *Hashes) Read(buffer []byte) error {
	if 0 != len(buffer)%HashLength {
		return fault.ErrHashesSize
	}
	set := make([]Hash, len(buffer)/HashLength)
	for i := range set {
		copy(set[i][:], buffer[i*HashLength:])
	}
	h.Set = set
	return nil
}

// Metadata - hash sets have no metadata
func (h *Hashes) Metadata() []byte {
	return nil
}

// ReadMetadata - hash sets have no metadata
func (h *Hashes) ReadMetadata(buffer []byte) error {
	return nil
}
