// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk tangle data store
//
// The store is split into column families.  Each family is defined by
// a single prefix byte taken from the family registry, one family per
// record type plus one reserved family for metadata.  The engine
// (LevelDB or Badger) only ever sees prefixed keys.
//
// Notes:
// 1. each family has a single byte prefix (to spread the keys in the engine)
// 2. ++           = concatenation of byte data
// 3. hash         = 48 byte SHA3-384 digest
// 4. index        = int32 big endian with sign bit inverted (4 bytes)
// 5. tag          = record type tag (1 byte, never zero)
// 6. name         = UTF-8 string
//
// Records:
//
//	T ++ hash                  - transactions
//	                             data: raw transaction (1604 bytes)
//	M ++ index                 - milestones
//	                             data: index ++ hash
//	D ++ hash                  - state diffs
//	                             data: [ hash ++ value(int64) ]
//	A ++ hash                  - approvees
//	R ++ hash                  - addresses
//	B ++ hash                  - bundles
//	G ++ hash                  - tags
//	O ++ hash                  - obsolete tags
//	                             data: [ hash ]
//
// Metadata:
//
//	Z ++ tag ++ key            - metadata payload of a record
//	                             data: record specific
//	Z ++ 0x00 ++ name          - named entry
//
// Named entries:
//
//	version                    - database version (big endian uint32, 4 bytes)
//	ancestors                  - traversal stack, bottom first
//	                             data: count(varint) ++ [ length(varint) ++ key ]
//	anything else              - counter (big endian int64, 8 bytes)
//
// Writes of several records are a single engine batch so either all
// of them are visible or none are.
package storage
