// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/tanglestore/fault"
	"github.com/bitmark-inc/tanglestore/model"
	"github.com/bitmark-inc/tanglestore/util"
)

const ancestorsName = "ancestors"

// StoreAncestors - replace the saved traversal stack
//
// the slice is bottom first, the last element is the top of the stack
//
//	count(varint) ++ [ length(varint) ++ key ]...
func (p *Provider) StoreAncestors(stack []model.Indexable) error {
	release, err := p.acquireWrite()
	if nil != err {
		return err
	}
	defer release()

	buffer := util.AppendVarint64(nil, uint64(len(stack)))
	for _, key := range stack {
		if nil == key {
			return fault.ErrMissingKey
		}
		k := key.Bytes()
		buffer = util.AppendVarint64(buffer, uint64(len(k)))
		buffer = append(buffer, k...)
	}

	p.ancestorsLock.Lock()
	defer p.ancestorsLock.Unlock()

	p.statistics.writes.Increment()

	batch := NewBatch()
	batch.Put(metadataFamily, namedKey(ancestorsName), buffer)
	if err := p.engine.Write(batch); nil != err {
		p.log.Errorf("store ancestors: %d keys  error: %s", len(stack), err)
		return fault.Wrap(fault.ErrStorageIO, err)
	}
	p.cache.Set(ancestorsName, buffer)

	p.log.Debugf("stored ancestors: %d keys", len(stack))
	return nil
}

// GetAncestors - read back the saved traversal stack
//
// newKey creates an empty key of the kind that was stored, an empty
// stack is returned if none was ever saved
func (p *Provider) GetAncestors(newKey func() model.Indexable) ([]model.Indexable, error) {
	release, err := p.acquire()
	if nil != err {
		return nil, err
	}
	defer release()

	p.ancestorsLock.Lock()
	buffer, ok := p.cache.Get(ancestorsName)
	if !ok {
		buffer, err = p.engine.Get(metadataFamily, namedKey(ancestorsName))
		if nil == err && nil != buffer {
			p.cache.Set(ancestorsName, buffer)
		}
	}
	p.ancestorsLock.Unlock()

	if nil != err {
		p.log.Errorf("get ancestors: error: %s", err)
		return nil, fault.Wrap(fault.ErrStorageIO, err)
	}

	p.statistics.reads.Increment()

	if 0 == len(buffer) {
		return []model.Indexable{}, nil
	}

	count, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrAncestorsTruncated
	}
	buffer = buffer[n:]

	// every key needs at least its length byte
	if count > uint64(len(buffer)) {
		return nil, fault.ErrAncestorsTruncated
	}

	stack := make([]model.Indexable, 0, count)
	for i := uint64(0); i < count; i += 1 {
		length, n := util.FromVarint64(buffer)
		if 0 == n || length > uint64(len(buffer)-n) {
			return nil, fault.ErrAncestorsTruncated
		}
		buffer = buffer[n:]

		key := newKey()
		if err := key.Read(buffer[:length]); nil != err {
			return nil, err
		}
		stack = append(stack, key)
		buffer = buffer[length:]
	}
	return stack, nil
}

// GetAncestorHashes - the saved traversal stack as transaction hashes
func (p *Provider) GetAncestorHashes() ([]model.Hash, error) {
	stack, err := p.GetAncestors(func() model.Indexable {
		return new(model.Hash)
	})
	if nil != err {
		return nil, err
	}
	hashes := make([]model.Hash, len(stack))
	for i, key := range stack {
		hashes[i] = *key.(*model.Hash)
	}
	return hashes, nil
}
