// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/tanglestore/fault"
)

// TransactionCountName - counter holding the number of stored transactions
const TransactionCountName = "transaction-count"

const counterLength = 8

// named entries that are not counters
var reservedNames = map[string]struct{}{
	versionName:   {},
	ancestorsName: {},
}

// AddCounter - atomically add delta to a named counter and return the new value
//
// a counter that was never written starts at zero
func (p *Provider) AddCounter(name string, delta int64) (int64, error) {
	release, err := p.acquireWrite()
	if nil != err {
		return 0, err
	}
	defer release()

	if err := checkCounterName(name); nil != err {
		return 0, err
	}

	lock := p.counterLocks.get(name)
	lock.Lock()
	defer lock.Unlock()

	p.statistics.counters.Increment()

	value, err := p.readCounter(name)
	if nil != err {
		return 0, err
	}

	value += delta
	if value < 0 {
		p.log.Warnf("counter: %q  delta: %d  negative result: %d", name, delta, value)
	}

	buffer := make([]byte, counterLength)
	binary.BigEndian.PutUint64(buffer, uint64(value))

	batch := NewBatch()
	batch.Put(metadataFamily, namedKey(name), buffer)
	if err := p.engine.Write(batch); nil != err {
		p.log.Errorf("counter: %q  write error: %s", name, err)
		return 0, fault.Wrap(fault.ErrStorageIO, err)
	}
	p.cache.Set(name, buffer)

	return value, nil
}

// GetCounter - current value of a named counter, zero if never written
func (p *Provider) GetCounter(name string) (int64, error) {
	release, err := p.acquire()
	if nil != err {
		return 0, err
	}
	defer release()

	if err := checkCounterName(name); nil != err {
		return 0, err
	}

	p.statistics.reads.Increment()

	return p.readCounter(name)
}

// AddTransactionCount - adjust the stored transaction total
func (p *Provider) AddTransactionCount(delta int64) (int64, error) {
	return p.AddCounter(TransactionCountName, delta)
}

// TotalTransactions - the stored transaction total
func (p *Provider) TotalTransactions() (int64, error) {
	return p.GetCounter(TransactionCountName)
}

func checkCounterName(name string) error {
	if "" == name {
		return fault.ErrMissingKey
	}
	if _, ok := reservedNames[name]; ok {
		return fault.ErrReservedName
	}
	return nil
}

func (p *Provider) readCounter(name string) (int64, error) {
	buffer, ok := p.cache.Get(name)
	if !ok {
		var err error
		buffer, err = p.engine.Get(metadataFamily, namedKey(name))
		if nil != err {
			p.log.Errorf("counter: %q  read error: %s", name, err)
			return 0, fault.Wrap(fault.ErrStorageIO, err)
		}
	}
	if nil == buffer {
		return 0, nil
	}
	if counterLength != len(buffer) {
		p.log.Errorf("counter: %q  length: %d", name, len(buffer))
		return 0, fault.ErrCounterLength
	}
	return int64(binary.BigEndian.Uint64(buffer)), nil
}
