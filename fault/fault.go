// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type IOError GenericError
type NotFoundError GenericError
type SerializationError GenericError
type UnavailableError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrAncestorsTruncated    = SerializationError("ancestors record is truncated")
	ErrCounterLength         = SerializationError("counter length is invalid")
	ErrDatabaseVersion       = UnavailableError("database version is newer than supported")
	ErrDuplicateFamilyPrefix = InvalidError("duplicate column family prefix")
	ErrHashLength            = SerializationError("hash length is invalid")
	ErrHashesSize            = SerializationError("hash set size is invalid")
	ErrIndexLength           = SerializationError("integer index length is invalid")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidFamilyPrefix   = InvalidError("invalid column family prefix")
	ErrInvalidLogDirectory   = InvalidError("log directory is not a directory")
	ErrMetadataSize          = SerializationError("metadata size is invalid")
	ErrMilestoneSize         = SerializationError("milestone size is invalid")
	ErrMissingKey            = InvalidError("key is required")
	ErrMissingLogDirectory   = InvalidError("log directory is required")
	ErrMissingRecord         = InvalidError("record is required")
	ErrNoMetadata            = InvalidError("record type has no metadata")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrReadOnly              = InvalidError("database is read only")
	ErrReservedName          = InvalidError("name is reserved")
	ErrStateDiffSize         = SerializationError("state diff size is invalid")
	ErrStorageIO             = IOError("storage input/output failed")
	ErrStorageUnavailable    = UnavailableError("storage is unavailable")
	ErrTransactionSize       = SerializationError("transaction size is invalid")
	ErrUnknownEngine         = InvalidError("unknown storage engine")
	ErrUnknownRecordType     = InvalidError("unknown record type")
	ErrVersionLength         = SerializationError("database version length is invalid")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e IOError) Error() string            { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e SerializationError) Error() string { return string(e) }
func (e UnavailableError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool        { var c ExistsError; return errors.As(e, &c) }
func IsErrInvalid(e error) bool       { var c InvalidError; return errors.As(e, &c) }
func IsErrIO(e error) bool            { var c IOError; return errors.As(e, &c) }
func IsErrNotFound(e error) bool      { var c NotFoundError; return errors.As(e, &c) }
func IsErrSerialization(e error) bool { var c SerializationError; return errors.As(e, &c) }
func IsErrUnavailable(e error) bool   { var c UnavailableError; return errors.As(e, &c) }

// wrapped - an error class carrying the engine error that caused it
type wrapped struct {
	class error
	cause error
}

// Wrap - attach a cause to one of the error instances above
//
// the result compares equal to the class with errors.Is, matches the
// IsErrX of the class and unwraps to the cause
func Wrap(class error, cause error) error {
	if nil == cause {
		return class
	}
	return &wrapped{
		class: class,
		cause: cause,
	}
}

func (w *wrapped) Error() string {
	return w.class.Error() + ": " + w.cause.Error()
}

func (w *wrapped) Unwrap() []error {
	return []error{w.class, w.cause}
}
