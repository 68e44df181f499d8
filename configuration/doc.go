// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must
// return a table:
//
//	local M = {}
//	M.data_directory = "."
//	M.database = {
//	    engine = "leveldb",
//	    directory = "mainnetdb",
//	    log_directory = "mainnetdb.log",
//	    cache_size = 4194304,
//	}
//	M.logging = {
//	    directory = "log",
//	    file = "tangle.log",
//	    levels = { DEFAULT = "info" },
//	}
//	return M
//
// after the file is read any TANGLE_DB_* environment variables
// override the database section.
package configuration
