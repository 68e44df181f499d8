// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"errors"

	"github.com/bitmark-inc/logger"
	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

type badgerDB struct {
	configuration Configuration
	db            *badger.DB
	log           *logger.L
}

func newBadgerDB(configuration Configuration) *badgerDB {
	return &badgerDB{
		configuration: configuration,
		log:           logger.New("badger"),
	}
}

// Open - open the database, value log kept in the log directory
func (b *badgerDB) Open(families []Family) error {
	if err := validateFamilies(families); nil != err {
		return err
	}

	opts := badger.DefaultOptions(b.configuration.Directory).
		WithValueDir(b.configuration.LogDirectory).
		WithSyncWrites(true).
		WithReadOnly(b.configuration.ReadOnly).
		WithBlockCacheSize(int64(b.configuration.CacheSize)).
		WithLogger(newBadgerLogger(b.log))
	opts.Compression = options.None
	opts.CompactL0OnClose = !b.configuration.ReadOnly

	db, err := badger.Open(opts)
	if nil != err {
		b.log.Errorf("open: %q  error: %s", b.configuration.Directory, err)
		return err
	}
	b.db = db
	b.log.Infof("opened: %q  families: %d", b.configuration.Directory, len(families))
	return nil
}

// Close - flush and close the database
func (b *badgerDB) Close() error {
	if nil == b.db {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.log.Info("closed")
	return err
}

// Get - read a value for a given key
func (b *badgerDB) Get(family Family, key []byte) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(family.prefixKey(key))
		if nil != err {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	return value, err
}

// Has - check if a key exists
func (b *badgerDB) Has(family Family, key []byte) (bool, error) {
	err := b.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(family.prefixKey(key))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return nil == err, err
}

// Write - commit a batch as a single transaction
func (b *badgerDB) Write(batch *Batch) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return batch.Replay(
			func(family Family, key []byte, value []byte) error {
				return txn.Set(family.prefixKey(key), value)
			},
			func(family Family, key []byte) error {
				return txn.Delete(family.prefixKey(key))
			},
		)
	})
}

// Step - move to the neighbour of a key
func (b *badgerDB) Step(family Family, key []byte, direction Direction) (Element, bool, error) {
	prefix := []byte{family.Prefix}
	result := Element{}
	found := false

	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		var seek []byte
		if Forward == direction {
			opts.Prefix = prefix
			seek = prefix
			if nil != key {
				seek = family.prefixKey(key)
			}
		} else {
			// reverse seek lands on the last key <= seek
			opts.Reverse = true
			seek = []byte{family.Prefix + 1}
			if nil != key {
				seek = family.prefixKey(key)
			}
		}

		iter := txn.NewIterator(opts)
		defer iter.Close()

		iter.Seek(seek)
		if iter.Valid() && bytes.Equal(iter.Item().Key(), seek) && (nil != key || Backward == direction) {
			iter.Next()
		}
		if !iter.ValidForPrefix(prefix) {
			return nil
		}

		item := iter.Item()
		value, err := item.ValueCopy(nil)
		if nil != err {
			return err
		}
		result.Key = family.stripKey(item.KeyCopy(nil))
		result.Value = value
		found = true
		return nil
	})
	return result, found, err
}

// Scan - run a function on all elements from start to the end of a family
func (b *badgerDB) Scan(family Family, start []byte, f func(Element) error) error {
	prefix := []byte{family.Prefix}
	seek := prefix
	if nil != start {
		seek = family.prefixKey(start)
	}

	return b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		iter := txn.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(seek); iter.ValidForPrefix(prefix); iter.Next() {
			item := iter.Item()
			value, err := item.ValueCopy(nil)
			if nil != err {
				return err
			}
			err = f(Element{
				Key:   family.stripKey(item.KeyCopy(nil)),
				Value: value,
			})
			if nil != err {
				return err
			}
		}
		return nil
	})
}

// Drop - remove all keys of the targets
func (b *badgerDB) Drop(targets ...Target) error {
	prefixes := make([][]byte, 0, len(targets))
	for _, target := range targets {
		prefixes = append(prefixes, target.Family.prefixKey(target.Prefix))
	}
	if 0 == len(prefixes) {
		return nil
	}
	b.log.Debugf("drop: %d prefixes", len(prefixes))
	return b.db.DropPrefix(prefixes...)
}
