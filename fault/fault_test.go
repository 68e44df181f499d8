// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bitmark-inc/tanglestore/fault"
)

var (
	ErrExistsOne        = fault.ExistsError("exists one ")
	ErrExistsTwo        = fault.ExistsError("exists two")
	ErrInvalidOne       = fault.InvalidError("invalid one")
	ErrInvalidTwo       = fault.InvalidError("invalid two")
	ErrIOOne            = fault.IOError("io one")
	ErrIOTwo            = fault.IOError("io two")
	ErrNotFoundOne      = fault.NotFoundError("not found one")
	ErrNotFoundTwo      = fault.NotFoundError("not found two")
	ErrSerializationOne = fault.SerializationError("serialization one")
	ErrSerializationTwo = fault.SerializationError("serialization two")
	ErrUnavailableOne   = fault.UnavailableError("unavailable one")
	ErrUnavailableTwo   = fault.UnavailableError("unavailable two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		exists        bool
		invalid       bool
		io            bool
		notFound      bool
		serialization bool
		unavailable   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false},
		{ErrIOOne, false, false, true, false, false, false},
		{ErrIOTwo, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false},
		{ErrSerializationOne, false, false, false, false, true, false},
		{ErrSerializationTwo, false, false, false, false, true, false},
		{ErrUnavailableOne, false, false, false, false, false, true},
		{ErrUnavailableTwo, false, false, false, false, false, true},
		{fault.Wrap(ErrIOOne, errors.New("disk full")), false, false, true, false, false, false},
		{fmt.Errorf("outer: %w", fault.Wrap(ErrUnavailableOne, errors.New("locked"))), false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrIO(err) != e.io {
			t.Errorf("%d: expected 'io' == %v for err = %v", i, e.io, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrSerialization(err) != e.serialization {
			t.Errorf("%d: expected 'serialization' == %v for err = %v", i, e.serialization, err)
		}
		if fault.IsErrUnavailable(err) != e.unavailable {
			t.Errorf("%d: expected 'unavailable' == %v for err = %v", i, e.unavailable, err)
		}
	}
}

// a wrapped error keeps both the class and the cause
func TestWrap(t *testing.T) {
	cause := errors.New("leveldb: closed")
	err := fault.Wrap(fault.ErrStorageIO, cause)

	if !errors.Is(err, fault.ErrStorageIO) {
		t.Errorf("wrapped error is not the class: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("wrapped error does not unwrap to cause: %v", err)
	}
	if "storage input/output failed: leveldb: closed" != err.Error() {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if fault.ErrStorageIO != fault.Wrap(fault.ErrStorageIO, nil) {
		t.Errorf("wrap of nil cause must return the class")
	}
}
