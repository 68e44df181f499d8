// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tanglestore/configuration"
	"github.com/bitmark-inc/tanglestore/storage"
)

type metadata struct {
	file     string
	config   *configuration.Configuration
	provider *storage.Provider
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "tangle-cli"
	app.Usage = "inspect and maintain a tangle database"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "tangle.conf",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringSliceFlag{
			Name:  "var",
			Usage: " configuration variable `NAME=VALUE` (repeatable)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "show configuration, counters and operation statistics",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "counter",
			Usage:     "display a counter, or add DELTA to it",
			ArgsUsage: "NAME [DELTA]",
			Action:    runCounter,
		},
		{
			Name:      "ancestors",
			Usage:     "display the saved traversal stack, top first",
			ArgsUsage: " ",
			Action:    runAncestors,
		},
		{
			Name:      "latest",
			Usage:     "display the record with the highest key of a type",
			ArgsUsage: "TYPE",
			Action:    runLatest,
		},
		{
			Name:      "clear",
			Usage:     "remove every record of a type",
			ArgsUsage: "TYPE",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "yes, y",
					Usage: "*confirm the removal",
				},
			},
			Action: runClear,
		},
		{
			Name:      "version",
			Usage:     "display tangle-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version":
			return nil
		}

		file := c.GlobalString("config")
		variables, err := parseVariables(c.GlobalStringSlice("var"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file, variables)
		if nil != err {
			return err
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}

		provider, err := storage.New(config.Database)
		if nil != err {
			logger.Finalise()
			return err
		}
		if err := provider.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:     file,
			config:   config,
			provider: provider,
			verbose:  verbose,
			e:        e,
			w:        w,
		}

		return nil
	}

	// close the database if it was opened
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		err := m.provider.Finalise()
		logger.Finalise()
		return err
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
