// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/tanglestore/fault"
	"github.com/bitmark-inc/tanglestore/model"
)

// Get - read a record by key
//
// a missing key gives an absent record of the requested type, not an error
func (p *Provider) Get(t model.Type, key model.Indexable) (model.Persistable, error) {
	release, err := p.acquire()
	if nil != err {
		return nil, err
	}
	defer release()

	family, err := FamilyOf(t)
	if nil != err {
		return nil, err
	}
	if nil == key {
		return nil, fault.ErrMissingKey
	}

	unlock := p.lockFamilies(map[model.Type]struct{}{t: {}})
	defer unlock()

	p.statistics.reads.Increment()

	keyBytes := key.Bytes()
	data, err := p.engine.Get(family, keyBytes)
	if nil != err {
		p.log.Errorf("get: %s  key: %x  error: %s", t, keyBytes, err)
		return nil, fault.Wrap(fault.ErrStorageIO, err)
	}

	return p.decode(t, keyBytes, data)
}

// Exists - check for the data payload of a record without decoding it
func (p *Provider) Exists(t model.Type, key model.Indexable) (bool, error) {
	release, err := p.acquire()
	if nil != err {
		return false, err
	}
	defer release()

	family, err := FamilyOf(t)
	if nil != err {
		return false, err
	}
	if nil == key {
		return false, fault.ErrMissingKey
	}

	unlock := p.lockFamilies(map[model.Type]struct{}{t: {}})
	defer unlock()

	p.statistics.reads.Increment()

	found, err := p.engine.Has(family, key.Bytes())
	if nil != err {
		p.log.Errorf("exists: %s  key: %x  error: %s", t, key.Bytes(), err)
		return false, fault.Wrap(fault.ErrStorageIO, err)
	}
	return found, nil
}

// build a record from its data payload and any stored metadata
//
// data and metadata are independent, either may be missing
func (p *Provider) decode(t model.Type, key []byte, data []byte) (model.Persistable, error) {
	record, err := model.New(t)
	if nil != err {
		return nil, err
	}

	if 0 != len(data) {
		if err := record.Read(data); nil != err {
			p.log.Warnf("decode: %s  key: %x  error: %s", t, key, err)
			return nil, err
		}
	}

	if !t.HasMetadata() {
		return record, nil
	}

	metadata, err := p.engine.Get(metadataFamily, recordMetadataKey(t, key))
	if nil != err {
		p.log.Errorf("get metadata: %s  key: %x  error: %s", t, key, err)
		return nil, fault.Wrap(fault.ErrStorageIO, err)
	}
	if 0 != len(metadata) {
		if err := record.ReadMetadata(metadata); nil != err {
			p.log.Warnf("decode metadata: %s  key: %x  error: %s", t, key, err)
			return nil, err
		}
	}
	return record, nil
}
