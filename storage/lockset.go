// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// lockSet - one mutex per name, created on first use
type lockSet struct {
	locks *xsync.MapOf[string, *sync.Mutex]
}

func newLockSet() *lockSet {
	return &lockSet{
		locks: xsync.NewMapOf[string, *sync.Mutex](),
	}
}

func (l *lockSet) get(name string) *sync.Mutex {
	lock, _ := l.locks.LoadOrCompute(name, func() *sync.Mutex {
		return new(sync.Mutex)
	})
	return lock
}
