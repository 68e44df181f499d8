// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tanglestore/model"
)

// split repeated NAME=VALUE arguments
func parseVariables(items []string) (map[string]string, error) {
	variables := make(map[string]string, len(items))
	for _, item := range items {
		s := strings.SplitN(item, "=", 2)
		if 2 != len(s) || "" == s[0] {
			return nil, fmt.Errorf("variable: %q is not NAME=VALUE", item)
		}
		variables[s[0]] = s[1]
	}
	return variables, nil
}

// the record type named by the first argument
func typeArgument(c *cli.Context) (model.Type, error) {
	if 1 != c.NArg() {
		return model.NullType, fmt.Errorf("exactly one record type is required, one of: %s", typeNames())
	}
	return model.TypeFromString(c.Args().Get(0))
}

func typeNames() string {
	names := make([]string, 0, len(model.Types()))
	for _, t := range model.Types() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

// parse an optional signed integer argument
func int64Argument(c *cli.Context, n int, name string) (int64, bool, error) {
	if c.NArg() <= n {
		return 0, false, nil
	}
	value, err := strconv.ParseInt(c.Args().Get(n), 10, 64)
	if nil != err {
		return 0, false, fmt.Errorf("%s: %q is not an integer", name, c.Args().Get(n))
	}
	return value, true, nil
}
