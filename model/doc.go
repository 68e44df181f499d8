// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package model - typed records and keys of the tangle
//
// Every record is a Persistable: a data payload plus an optional
// metadata payload, each with its own encoding.  Every record type is
// addressed by exactly one kind of Indexable key.
//
// Keys:
//
//	Hash          - 48 byte SHA3-384 digest, compared as raw bytes
//	IntegerIndex  - signed 32 bit integer stored big endian with the
//	                sign bit inverted so that byte order is numeric order
//
// Records:
//
//	Transaction   - Hash         → raw transaction (1604 bytes)
//	                               metadata: validity ++ type ++ arrival ++ height
//	                                         ++ snapshot ++ milestone ++ flags ++ reserved
//	Milestone     - IntegerIndex → index ++ milestone hash
//	StateDiff     - Hash         → [ address hash ++ value(int64) ]
//	Approvee      - Hash         → [ hash ]
//	Address       - Hash         → [ hash ]
//	Bundle        - Hash         → [ hash ]
//	Tag           - Hash         → [ hash ]
//	ObsoleteTag   - Hash         → [ hash ]
package model
