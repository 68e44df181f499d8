// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"strings"

	"github.com/bitmark-inc/logger"
)

// badgerLogger - route badger's internal messages to a logger channel
type badgerLogger struct {
	log *logger.L
}

func newBadgerLogger(log *logger.L) *badgerLogger {
	return &badgerLogger{log: log}
}

// badger terminates most messages with a newline
func trim(format string) string {
	return strings.TrimRight(format, "\n")
}

func (b *badgerLogger) Errorf(format string, args ...interface{}) {
	b.log.Errorf(trim(format), args...)
}

func (b *badgerLogger) Warningf(format string, args ...interface{}) {
	b.log.Warnf(trim(format), args...)
}

func (b *badgerLogger) Infof(format string, args ...interface{}) {
	b.log.Infof(trim(format), args...)
}

func (b *badgerLogger) Debugf(format string, args ...interface{}) {
	b.log.Debugf(trim(format), args...)
}
