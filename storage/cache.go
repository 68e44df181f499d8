// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// metadataCache - recently written named entries
//
// entries are only set after a successful commit, under the lock
// that serialises writers of that name, and never expire so no
// cleanup goroutine is started
type metadataCache struct {
	cache *cache.Cache
}

func newMetadataCache() *metadataCache {
	return &metadataCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *metadataCache) Get(name string) ([]byte, bool) {
	obj, found := c.cache.Get(name)
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

func (c *metadataCache) Set(name string, value []byte) {
	c.cache.Set(name, value, cache.NoExpiration)
}

func (c *metadataCache) Clear() {
	c.cache.Flush()
}
