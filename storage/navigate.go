// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"

	"github.com/bitmark-inc/tanglestore/fault"
	"github.com/bitmark-inc/tanglestore/model"
)

// First - the record with the lowest key of a type
//
// when the family is empty the key is nil and the record is absent
func (p *Provider) First(t model.Type) (model.Indexable, model.Persistable, error) {
	return p.step(t, nil, Forward)
}

// Latest - the record with the highest key of a type
func (p *Provider) Latest(t model.Type) (model.Indexable, model.Persistable, error) {
	return p.step(t, nil, Backward)
}

// Next - the record with the smallest key strictly greater than key
func (p *Provider) Next(t model.Type, key model.Indexable) (model.Indexable, model.Persistable, error) {
	if nil == key {
		return nil, nil, fault.ErrMissingKey
	}
	return p.step(t, key.Bytes(), Forward)
}

// Previous - the record with the largest key strictly less than key
func (p *Provider) Previous(t model.Type, key model.Indexable) (model.Indexable, model.Persistable, error) {
	if nil == key {
		return nil, nil, fault.ErrMissingKey
	}
	return p.step(t, key.Bytes(), Backward)
}

func (p *Provider) step(t model.Type, key []byte, direction Direction) (model.Indexable, model.Persistable, error) {
	release, err := p.acquire()
	if nil != err {
		return nil, nil, err
	}
	defer release()

	family, err := FamilyOf(t)
	if nil != err {
		return nil, nil, err
	}

	unlock := p.lockFamilies(map[model.Type]struct{}{t: {}})
	defer unlock()

	p.statistics.navigations.Increment()

	element, found, err := p.engine.Step(family, key, direction)
	if nil != err {
		p.log.Errorf("step: %s  key: %x  error: %s", t, key, err)
		return nil, nil, fault.Wrap(fault.ErrStorageIO, err)
	}
	if !found {
		record, _ := model.New(t)
		return nil, record, nil
	}

	return p.element(t, element)
}

// decode both halves of a stored element
func (p *Provider) element(t model.Type, element Element) (model.Indexable, model.Persistable, error) {
	key, err := model.NewKey(t)
	if nil != err {
		return nil, nil, err
	}
	if err := key.Read(element.Key); nil != err {
		p.log.Warnf("decode key: %s  key: %x  error: %s", t, element.Key, err)
		return nil, nil, err
	}

	record, err := p.decode(t, element.Key, element.Value)
	if nil != err {
		return nil, nil, err
	}
	return key, record, nil
}

// to stop a scan once enough elements are collected
var errEnough = errors.New("enough")

// ForEach - call f on every record of a type in key order
//
// an error from f stops the iteration and is returned
func (p *Provider) ForEach(t model.Type, f func(model.Indexable, model.Persistable) error) error {
	release, err := p.acquire()
	if nil != err {
		return err
	}
	defer release()

	family, err := FamilyOf(t)
	if nil != err {
		return err
	}

	unlock := p.lockFamilies(map[model.Type]struct{}{t: {}})
	defer unlock()

	var callbackErr error
	err = p.engine.Scan(family, nil, func(element Element) error {
		key, record, err := p.element(t, element)
		if nil != err {
			return err
		}
		callbackErr = f(key, record)
		return callbackErr
	})
	if nil != err && err != callbackErr {
		if fault.IsErrSerialization(err) || fault.IsErrIO(err) {
			return err
		}
		p.log.Errorf("for each: %s  error: %s", t, err)
		return fault.Wrap(fault.ErrStorageIO, err)
	}
	return err
}

// FetchCursor - raw paged access to one family
type FetchCursor struct {
	provider *Provider
	family   Family
	start    []byte
}

// NewFetchCursor - initialise a cursor to the start of a family
func (p *Provider) NewFetchCursor(family Family) *FetchCursor {
	return &FetchCursor{
		provider: p,
		family:   family,
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.start = key
	return cursor
}

// Fetch - return up to count elements and advance the cursor
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	p := cursor.provider
	release, err := p.acquire()
	if nil != err {
		return nil, err
	}
	defer release()

	results := make([]Element, 0, count)
	err = p.engine.Scan(cursor.family, cursor.start, func(element Element) error {
		results = append(results, element)
		if len(results) >= count {
			return errEnough
		}
		return nil
	})
	if nil != err && errEnough != err {
		p.log.Errorf("fetch: %s  error: %s", cursor.family.Name, err)
		return nil, fault.Wrap(fault.ErrStorageIO, err)
	}

	// the smallest key after the last one returned
	if n := len(results); n > 0 {
		last := results[n-1].Key
		next := make([]byte, len(last)+1)
		copy(next, last)
		cursor.start = next
	}
	return results, nil
}
