// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/tanglestore/counter"
)

type statistics struct {
	reads       counter.Counter
	writes      counter.Counter
	deletes     counter.Counter
	navigations counter.Counter
	clears      counter.Counter
	counters    counter.Counter
}

// Statistics - operation totals since the provider was created
type Statistics struct {
	Reads       uint64 `json:"reads"`
	Writes      uint64 `json:"writes"`
	Deletes     uint64 `json:"deletes"`
	Navigations uint64 `json:"navigations"`
	Clears      uint64 `json:"clears"`
	Counters    uint64 `json:"counters"`
}

// Statistics - snapshot of the operation totals
func (p *Provider) Statistics() Statistics {
	return Statistics{
		Reads:       p.statistics.reads.Uint64(),
		Writes:      p.statistics.writes.Uint64(),
		Deletes:     p.statistics.deletes.Uint64(),
		Navigations: p.statistics.navigations.Uint64(),
		Clears:      p.statistics.clears.Uint64(),
		Counters:    p.statistics.counters.Uint64(),
	}
}
