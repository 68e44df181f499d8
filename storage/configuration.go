// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"go-simpler.org/env"
)

// available engines
const (
	EngineLevelDB = "leveldb"
	EngineBadger  = "badger"
)

// basic defaults
const (
	defaultEngine       = EngineLevelDB
	defaultDirectory    = "mainnetdb"
	defaultLogDirectory = "mainnetdb.log"
	defaultCacheSize    = 4 * 1024 * 1024
)

// Configuration - values passed once at construction
type Configuration struct {
	Engine       string `gluamapper:"engine" env:"TANGLE_DB_ENGINE" usage:"storage engine: leveldb or badger" json:"engine"`
	Directory    string `gluamapper:"directory" env:"TANGLE_DB_PATH" usage:"data directory" json:"directory"`
	LogDirectory string `gluamapper:"log_directory" env:"TANGLE_DB_LOG_PATH" usage:"write-ahead log directory" json:"log_directory"`
	CacheSize    int    `gluamapper:"cache_size" env:"TANGLE_DB_CACHE_SIZE" usage:"engine block cache in bytes" json:"cache_size"`
	ReadOnly     bool   `gluamapper:"read_only" env:"TANGLE_DB_READ_ONLY" usage:"open without writing anything" json:"read_only"`
}

// DefaultConfiguration - configuration used when nothing is specified
func DefaultConfiguration() Configuration {
	return Configuration{
		Engine:       defaultEngine,
		Directory:    defaultDirectory,
		LogDirectory: defaultLogDirectory,
		CacheSize:    defaultCacheSize,
	}
}

// LoadEnvironment - override any values that are set in the environment
func (c *Configuration) LoadEnvironment() error {
	return env.Load(c, nil)
}
