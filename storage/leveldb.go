// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// every commit is flushed to disk before it is acknowledged
var syncWrite = &ldb_opt.WriteOptions{Sync: true}

type levelDB struct {
	configuration Configuration
	db            *leveldb.DB
	log           *logger.L
}

func newLevelDB(configuration Configuration) *levelDB {
	return &levelDB{
		configuration: configuration,
		log:           logger.New("leveldb"),
	}
}

// Open - open the database files
//
// LevelDB keeps its journal in the data directory, the log directory
// only has to be usable
func (l *levelDB) Open(families []Family) error {
	if err := validateFamilies(families); nil != err {
		return err
	}
	readOnly := l.configuration.ReadOnly
	if !readOnly {
		if err := os.MkdirAll(l.configuration.LogDirectory, 0700); nil != err {
			return err
		}
	}

	opt := &ldb_opt.Options{
		BlockCacheCapacity: l.configuration.CacheSize,
		ErrorIfExist:       false,
		ErrorIfMissing:     readOnly,
		ReadOnly:           readOnly,
	}

	db, err := leveldb.OpenFile(l.configuration.Directory, opt)
	if nil != err {
		l.log.Errorf("open: %q  error: %s", l.configuration.Directory, err)
		return err
	}
	l.db = db
	l.log.Infof("opened: %q  families: %d", l.configuration.Directory, len(families))
	return nil
}

// Close - flush and close the database files
func (l *levelDB) Close() error {
	if nil == l.db {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	l.log.Info("closed")
	return err
}

// Get - read a value for a given key
func (l *levelDB) Get(family Family, key []byte) ([]byte, error) {
	value, err := l.db.Get(family.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Has - check if a key exists
func (l *levelDB) Has(family Family, key []byte) (bool, error) {
	return l.db.Has(family.prefixKey(key), nil)
}

// Write - commit a batch
func (l *levelDB) Write(batch *Batch) error {
	trx := new(leveldb.Batch)
	err := batch.Replay(
		func(family Family, key []byte, value []byte) error {
			trx.Put(family.prefixKey(key), value)
			return nil
		},
		func(family Family, key []byte) error {
			trx.Delete(family.prefixKey(key))
			return nil
		},
	)
	if nil != err {
		return err
	}
	return l.db.Write(trx, syncWrite)
}

// Step - move to the neighbour of a key
func (l *levelDB) Step(family Family, key []byte, direction Direction) (Element, bool, error) {
	iter := l.iterator(family, nil)
	defer iter.Release()

	found := false
	switch {
	case nil == key && Forward == direction:
		found = iter.First()

	case nil == key:
		found = iter.Last()

	case Forward == direction:
		prefixedKey := family.prefixKey(key)
		found = iter.Seek(prefixedKey)
		if found && bytes.Equal(iter.Key(), prefixedKey) {
			found = iter.Next()
		}

	default:
		// seek lands on the first key >= the given key
		if iter.Seek(family.prefixKey(key)) {
			found = iter.Prev()
		} else {
			found = iter.Last()
		}
	}

	result := Element{}
	if found {
		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		value := iter.Value()

		result.Key = family.stripKey(iter.Key())
		result.Value = make([]byte, len(value))
		copy(result.Value, value)
	}
	return result, found, iter.Error()
}

// Scan - run a function on all elements from start to the end of a family
func (l *levelDB) Scan(family Family, start []byte, f func(Element) error) error {
	iter := l.iterator(family, start)

	var err error
iterating:
	for iter.Next() {
		key := iter.Key()
		value := iter.Value()

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(Element{
			Key:   family.stripKey(key),
			Value: dataValue,
		})
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}

// Drop - remove all keys of the targets in one batch
func (l *levelDB) Drop(targets ...Target) error {
	trx := new(leveldb.Batch)
	for _, target := range targets {
		iter := l.db.NewIterator(ldb_util.BytesPrefix(target.Family.prefixKey(target.Prefix)), nil)
		for iter.Next() {
			trx.Delete(iter.Key())
		}
		iter.Release()
		if err := iter.Error(); nil != err {
			return err
		}
	}
	if 0 == trx.Len() {
		return nil
	}
	l.log.Debugf("drop: %d keys", trx.Len())
	return l.db.Write(trx, syncWrite)
}

// iterator over the whole family, optionally starting at a key
func (l *levelDB) iterator(family Family, start []byte) iterator.Iterator {
	searchRange := ldb_util.BytesPrefix([]byte{family.Prefix})
	if nil != start {
		searchRange.Start = family.prefixKey(start)
	}
	return l.db.NewIterator(searchRange, nil)
}
