// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tanglestore/fault"
)

// HashLength - number of bytes in a hash
const HashLength = 48

// Hash - content identifier of a transaction or index bucket
type Hash [HashLength]byte

// TransactionHash - SHA3-384 digest of the raw transaction data
func TransactionHash(data []byte) Hash {
	return Hash(sha3.Sum384(data))
}

// HashFromBytes - convert and validate a byte slice to a hash
func HashFromBytes(h *Hash, buffer []byte) error {
	if HashLength != len(buffer) {
		return fault.ErrHashLength
	}
	copy(h[:], buffer)
	return nil
}

// HashFromHex - convert a hex string to a hash
func HashFromHex(s string) (Hash, error) {
	var h Hash
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return h, err
	}
	err = HashFromBytes(&h, buffer)
	return h, err
}

// Bytes - key bytes
func (h Hash) Bytes() []byte {
	buffer := make([]byte, HashLength)
	copy(buffer, h[:])
	return buffer
}

// Read - decode a key
func (h *Hash) Read(buffer []byte) error {
	return HashFromBytes(h, buffer)
}

// String - hex for the fmt package (for %s)
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// GoString - tagged hex for the fmt package (for %#v)
func (h Hash) GoString() string {
	return "<SHA3-384:" + hex.EncodeToString(h[:]) + ">"
}

// MarshalText - hex text
func (h Hash) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(HashLength))
	hex.Encode(buffer, h[:])
	return buffer, nil
}

// UnmarshalText - hex text to hash
func (h *Hash) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	return HashFromBytes(h, buffer[:byteCount])
}

// Scan - hex to hash for the fmt scan routines
func (h *Hash) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	})
	if nil != err {
		return err
	}
	return h.UnmarshalText(token)
}
