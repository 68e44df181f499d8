// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package model

import (
	"encoding/binary"
	"strconv"

	"github.com/bitmark-inc/tanglestore/fault"
)

// IndexLength - number of bytes in an encoded integer index
const IndexLength = 4

// flipping the sign bit maps math.MinInt32 to 0x00000000 and
// math.MaxInt32 to 0xffffffff
const signBit = uint32(1) << 31

// IntegerIndex - sequence style key
type IntegerIndex int32

// NewIntegerIndex - make a key pointer from a value
func NewIntegerIndex(value int32) *IntegerIndex {
	i := IntegerIndex(value)
	return &i
}

// Value - the integer value
func (i IntegerIndex) Value() int32 {
	return int32(i)
}

// Bytes - order preserving key bytes
func (i IntegerIndex) Bytes() []byte {
	buffer := make([]byte, IndexLength)
	binary.BigEndian.PutUint32(buffer, uint32(i)^signBit)
	return buffer
}

// Read - decode a key
func (i *IntegerIndex) Read(buffer []byte) error {
	if IndexLength != len(buffer) {
		return fault.ErrIndexLength
	}
	*i = IntegerIndex(int32(binary.BigEndian.Uint32(buffer) ^ signBit))
	return nil
}

// String - decimal value
func (i IntegerIndex) String() string {
	return strconv.FormatInt(int64(i), 10)
}
