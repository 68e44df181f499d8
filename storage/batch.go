// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/tanglestore/fault"
	"github.com/bitmark-inc/tanglestore/model"
)

// Entry - a record to be stored under a key
type Entry struct {
	Key    model.Indexable
	Record model.Persistable
}

// Reference - the location of a record
type Reference struct {
	Type model.Type
	Key  model.Indexable
}

// Save - store a single record
func (p *Provider) Save(key model.Indexable, record model.Persistable) error {
	return p.SaveBatch([]Entry{{Key: key, Record: record}})
}

// SaveBatch - store several records, all become visible together or none do
//
// the stored record is replaced: an empty payload removes what was
// stored before, so a later Get returns exactly what was saved
func (p *Provider) SaveBatch(entries []Entry) error {
	release, err := p.acquireWrite()
	if nil != err {
		return err
	}
	defer release()

	batch := NewBatch()
	types := make(map[model.Type]struct{})

	for _, entry := range entries {
		t, family, err := checkEntry(entry)
		if nil != err {
			return err
		}
		types[t] = struct{}{}

		key := entry.Key.Bytes()
		if data := entry.Record.Bytes(); 0 != len(data) {
			batch.Put(family, key, data)
		} else {
			batch.Delete(family, key)
		}
		if t.HasMetadata() {
			putMetadata(batch, t, key, entry.Record.Metadata())
		}
	}

	return p.commit("save", batch, types)
}

// SaveMetadata - replace only the metadata of a record, its data is untouched
func (p *Provider) SaveMetadata(key model.Indexable, record model.Persistable) error {
	release, err := p.acquireWrite()
	if nil != err {
		return err
	}
	defer release()

	t, _, err := checkEntry(Entry{Key: key, Record: record})
	if nil != err {
		return err
	}
	if !t.HasMetadata() {
		return fault.ErrNoMetadata
	}

	batch := NewBatch()
	putMetadata(batch, t, key.Bytes(), record.Metadata())

	return p.commit("save metadata", batch, map[model.Type]struct{}{t: {}})
}

// validate an entry and find the family of its record
func checkEntry(entry Entry) (model.Type, Family, error) {
	if nil == entry.Record {
		return model.NullType, Family{}, fault.ErrMissingRecord
	}
	if nil == entry.Key {
		return model.NullType, Family{}, fault.ErrMissingKey
	}
	t := entry.Record.Type()
	family, err := FamilyOf(t)
	return t, family, err
}

// empty metadata deletes the stored entry
func putMetadata(batch *Batch, t model.Type, key []byte, metadata []byte) {
	if 0 != len(metadata) {
		batch.Put(metadataFamily, recordMetadataKey(t, key), metadata)
	} else {
		batch.Delete(metadataFamily, recordMetadataKey(t, key))
	}
}

// Delete - remove a single record
func (p *Provider) Delete(t model.Type, key model.Indexable) error {
	return p.DeleteBatch([]Reference{{Type: t, Key: key}})
}

// DeleteBatch - remove the data and metadata of several records together
//
// missing keys are ignored
func (p *Provider) DeleteBatch(references []Reference) error {
	release, err := p.acquireWrite()
	if nil != err {
		return err
	}
	defer release()

	batch := NewBatch()
	types := make(map[model.Type]struct{})

	for _, reference := range references {
		if nil == reference.Key {
			return fault.ErrMissingKey
		}
		family, err := FamilyOf(reference.Type)
		if nil != err {
			return err
		}
		types[reference.Type] = struct{}{}

		key := reference.Key.Bytes()
		batch.Delete(family, key)
		if reference.Type.HasMetadata() {
			batch.Delete(metadataFamily, recordMetadataKey(reference.Type, key))
		}
	}

	return p.commit("delete", batch, types)
}

// Clear - remove every record of a type together with its metadata
func (p *Provider) Clear(t model.Type) error {
	release, err := p.acquireWrite()
	if nil != err {
		return err
	}
	defer release()

	family, err := FamilyOf(t)
	if nil != err {
		return err
	}

	lock := p.familyLocks[family.Prefix]
	lock.Lock()
	defer lock.Unlock()

	p.statistics.clears.Increment()

	err = p.engine.Drop(
		Target{Family: family},
		Target{Family: metadataFamily, Prefix: []byte{byte(t)}},
	)
	if nil != err {
		p.log.Errorf("clear: %s  error: %s", t, err)
		return fault.Wrap(fault.ErrStorageIO, err)
	}
	p.log.Infof("cleared: %s", t)
	return nil
}

// write a batch holding read locks on the families it touches
func (p *Provider) commit(operation string, batch *Batch, types map[model.Type]struct{}) error {
	if 0 == batch.Len() {
		return nil
	}

	unlock := p.lockFamilies(types)
	defer unlock()

	p.statistics.writes.Add(uint64(batch.Len() - batch.Removals()))
	p.statistics.deletes.Add(uint64(batch.Removals()))

	if err := p.engine.Write(batch); nil != err {
		p.log.Errorf("%s: %d operations  error: %s", operation, batch.Len(), err)
		return fault.Wrap(fault.ErrStorageIO, err)
	}
	p.log.Debugf("%s: %d operations", operation, batch.Len())
	return nil
}
