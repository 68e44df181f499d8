// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

//go:generate mockgen -source=engine.go -destination=mocks/engine.go -package=mocks

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Direction - order of a step through a family
type Direction int

// step directions
const (
	Forward Direction = iota
	Backward
)

// Target - keys of a family starting with a prefix, nil prefix for the whole family
type Target struct {
	Family Family
	Prefix []byte
}

// Engine - an ordered key/value store holding several families
//
// Get returns nil, nil for a missing key.  Step with a nil key
// returns the first (Forward) or last (Backward) element of a family,
// otherwise the nearest element strictly after or before the key.
// Write and Drop are atomic.
type Engine interface {
	Open(families []Family) error
	Close() error
	Get(family Family, key []byte) ([]byte, error)
	Has(family Family, key []byte) (bool, error)
	Write(batch *Batch) error
	Step(family Family, key []byte, direction Direction) (Element, bool, error)
	Scan(family Family, start []byte, f func(Element) error) error
	Drop(targets ...Target) error
}

// a single put or delete
type operation struct {
	family Family
	key    []byte
	value  []byte
	remove bool
}

// Batch - a set of puts and deletes committed together
type Batch struct {
	operations []operation
	removals   int
}

// NewBatch - create an empty batch
func NewBatch() *Batch {
	return &Batch{}
}

// Put - add a store of a key/value pair
func (b *Batch) Put(family Family, key []byte, value []byte) {
	b.operations = append(b.operations, operation{
		family: family,
		key:    key,
		value:  value,
	})
}

// Delete - add a removal of a key
func (b *Batch) Delete(family Family, key []byte) {
	b.operations = append(b.operations, operation{
		family: family,
		key:    key,
		remove: true,
	})
	b.removals += 1
}

// Len - number of operations
func (b *Batch) Len() int {
	return len(b.operations)
}

// Removals - number of delete operations
func (b *Batch) Removals() int {
	return b.removals
}

// Replay - call put or remove for each operation in order
func (b *Batch) Replay(put func(family Family, key []byte, value []byte) error, remove func(family Family, key []byte) error) error {
	for _, op := range b.operations {
		var err error
		if op.remove {
			err = remove(op.family, op.key)
		} else {
			err = put(op.family, op.key, op.value)
		}
		if nil != err {
			return err
		}
	}
	return nil
}
