// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"os"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tanglestore/fault"
	"github.com/bitmark-inc/tanglestore/model"
)

// for database version
const (
	versionName    = "version"
	currentVersion = 0x100
	versionLength  = 4
)

// Provider - an open handle on a tangle database
type Provider struct {
	sync.RWMutex

	configuration Configuration
	engine        Engine
	open          bool
	log           *logger.L

	// held for write only by Clear
	familyLocks map[byte]*sync.RWMutex

	counterLocks  *lockSet
	ancestorsLock sync.Mutex
	cache         *metadataCache

	statistics statistics
}

// New - create a provider using the configured engine
//
// the database is not opened until Initialise
func New(configuration Configuration) (*Provider, error) {
	engine, err := NewEngine(configuration)
	if nil != err {
		return nil, err
	}
	return NewWithEngine(configuration, engine), nil
}

// NewEngine - create the engine named in the configuration
func NewEngine(configuration Configuration) (Engine, error) {
	switch configuration.Engine {
	case "", EngineLevelDB:
		return newLevelDB(configuration), nil
	case EngineBadger:
		return newBadgerDB(configuration), nil
	default:
		return nil, fault.ErrUnknownEngine
	}
}

// NewWithEngine - create a provider on top of a caller supplied engine
func NewWithEngine(configuration Configuration, engine Engine) *Provider {
	locks := make(map[byte]*sync.RWMutex)
	for _, f := range Families() {
		locks[f.Prefix] = new(sync.RWMutex)
	}

	return &Provider{
		configuration: configuration,
		engine:        engine,
		log:           logger.New("storage"),
		familyLocks:   locks,
		counterLocks:  newLockSet(),
		cache:         newMetadataCache(),
	}
}

// Initialise - open up the database
//
// this must be called before any other operation
func (p *Provider) Initialise() error {
	p.Lock()
	defer p.Unlock()

	if p.open {
		return fault.ErrAlreadyInitialised
	}

	if err := checkLogDirectory(p.configuration.LogDirectory); nil != err {
		p.log.Errorf("log directory: %q  error: %s", p.configuration.LogDirectory, err)
		return fault.Wrap(fault.ErrStorageUnavailable, err)
	}

	if err := p.engine.Open(Families()); nil != err {
		p.log.Errorf("open error: %s", err)
		return fault.Wrap(fault.ErrStorageUnavailable, err)
	}

	ok := false
	defer func() {
		if !ok {
			p.engine.Close()
		}
	}()

	version, err := p.readVersion()
	if nil != err {
		return err
	}

	// ensure no database downgrade
	if version > currentVersion {
		p.log.Criticalf("database version: %d > current version: %d", version, currentVersion)
		return fault.ErrDatabaseVersion
	}

	if 0 == version && p.configuration.ReadOnly {
		p.log.Warn("read only database has no version")
	} else if 0 == version {
		p.log.Infof("new database, set version: %d", currentVersion)
		if err := p.writeVersion(currentVersion); nil != err {
			return err
		}
	}

	ok = true
	p.open = true
	p.log.Infof("initialised engine: %q  version: %d", p.configuration.Engine, currentVersion)
	return nil
}

// Finalise - flush and close the database
//
// calling on a closed provider does nothing
func (p *Provider) Finalise() error {
	p.Lock()
	defer p.Unlock()

	if !p.open {
		return nil
	}
	p.open = false
	p.cache.Clear()

	if err := p.engine.Close(); nil != err {
		p.log.Errorf("close error: %s", err)
		return fault.Wrap(fault.ErrStorageIO, err)
	}
	p.log.Info("finalised")
	return nil
}

// Configuration - the values the provider was created with
func (p *Provider) Configuration() Configuration {
	return p.configuration
}

// the log directory may not exist yet, but must not be a plain file
func checkLogDirectory(directory string) error {
	if "" == directory {
		return fault.ErrMissingLogDirectory
	}
	info, err := os.Stat(directory)
	if os.IsNotExist(err) {
		return nil
	}
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return fault.ErrInvalidLogDirectory
	}
	return nil
}

// caller must hold the provider lock
func (p *Provider) readVersion() (int, error) {
	value, err := p.engine.Get(metadataFamily, namedKey(versionName))
	if nil != err {
		return 0, fault.Wrap(fault.ErrStorageUnavailable, err)
	}
	if nil == value {
		return 0, nil
	}
	if versionLength != len(value) {
		p.log.Criticalf("database version length: %d", len(value))
		return 0, fault.Wrap(fault.ErrStorageUnavailable, fault.ErrVersionLength)
	}
	return int(binary.BigEndian.Uint32(value)), nil
}

// caller must hold the provider lock
func (p *Provider) writeVersion(version int) error {
	value := make([]byte, versionLength)
	binary.BigEndian.PutUint32(value, uint32(version))

	batch := NewBatch()
	batch.Put(metadataFamily, namedKey(versionName), value)
	if err := p.engine.Write(batch); nil != err {
		return fault.Wrap(fault.ErrStorageUnavailable, err)
	}
	return nil
}

// begin an operation, release with the returned function
func (p *Provider) acquire() (func(), error) {
	p.RLock()
	if !p.open {
		p.RUnlock()
		return nil, fault.ErrNotInitialised
	}
	return p.RUnlock, nil
}

// as acquire, but refuse a provider opened read only
func (p *Provider) acquireWrite() (func(), error) {
	release, err := p.acquire()
	if nil != err {
		return nil, err
	}
	if p.configuration.ReadOnly {
		release()
		return nil, fault.ErrReadOnly
	}
	return release, nil
}

// read lock the families of the given types in prefix order
func (p *Provider) lockFamilies(types map[model.Type]struct{}) func() {
	prefixes := make([]byte, 0, len(types))
	for _, f := range Families() {
		for t := range types {
			if recordFamilies[t].Prefix == f.Prefix {
				prefixes = append(prefixes, f.Prefix)
				break
			}
		}
	}
	for _, prefix := range prefixes {
		p.familyLocks[prefix].RLock()
	}
	return func() {
		for i := len(prefixes) - 1; i >= 0; i -= 1 {
			p.familyLocks[prefixes[i]].RUnlock()
		}
	}
}
