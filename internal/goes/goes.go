// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package goes dispatches a multi-command binary by name.
package goes

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/platinasystems/gpu/cmd"
	"github.com/platinasystems/log"
)

var (
	Exit = os.Exit

	Stdout io.Writer = os.Stdout
)

type ByName map[string]cmd.Cmd

// Plot commands on map.
func (byName ByName) Plot(cmds ...cmd.Cmd) {
	for _, v := range cmds {
		name := v.String()
		if _, found := byName[name]; found {
			panic(fmt.Errorf("%s: duplicate", name))
		}
		if _, found := cmd.Helpers[name]; found {
			panic(fmt.Errorf("%s: reserved", name))
		}
		byName[name] = v
	}
}

// Names of the visible commands in order.
func (byName ByName) Names() []string {
	names := make([]string, 0, len(byName))
	for k, v := range byName {
		if !cmd.WhatKind(v).IsHidden() {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// Main runs the arg[0] command in the current context.
// When run w/o args this uses os.Args and exits instead of returns on error.
//
// If the args has "-h", "-help", or "--help", this prints the command
// usage and apropos. Similarly for "-apropos", "-man", and "-usage".
//
// Daemons run in the foreground; SIGTERM or SIGINT closes them.
func (byName ByName) Main(args ...string) (err error) {
	if len(args) == 0 {
		args = os.Args
		defer func() {
			if err != nil && err != io.EOF {
				fmt.Fprintf(os.Stderr, "%s: %v\n",
					filepath.Base(os.Args[0]), err)
				Exit(1)
			}
		}()
	}
	if len(args) > 0 {
		if _, found := byName[filepath.Base(args[0])]; found {
			args[0] = filepath.Base(args[0])
		} else if _, found := cmd.Helpers[args[0]]; !found &&
			!strings.HasPrefix(args[0], "-") {
			args = args[1:]
		}
	}
	if len(args) == 0 {
		args = []string{"help"}
	}
	cmd.Swap(args)
	name, args := args[0], args[1:]
	if _, found := cmd.Helpers[name]; found {
		return byName.helper(name, args...)
	}
	v, found := byName[name]
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}
	if !cmd.WhatKind(v).IsDaemon() {
		return v.Main(args...)
	}
	if closer, found := v.(io.Closer); found {
		sigch := make(chan os.Signal, 1)
		signal.Notify(sigch, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(sigch)
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case sig := <-sigch:
				log.Print("daemon", "info", name, ": ", sig)
				closer.Close()
			case <-done:
			}
		}()
	}
	err = v.Main(args...)
	if err != nil {
		log.Print("daemon", "err", name, ": ", err)
	}
	return
}

func (byName ByName) helper(name string, args ...string) error {
	if len(args) == 0 {
		if name != "help" && name != "apropos" {
			return fmt.Errorf("%s: missing COMMAND", name)
		}
		for _, k := range byName.Names() {
			fmt.Fprintf(Stdout, "%-12s %s\n", k,
				byName[k].Apropos())
		}
		return nil
	}
	v, found := byName[args[0]]
	if !found {
		return fmt.Errorf("%s: command not found", args[0])
	}
	switch name {
	case "apropos":
		fmt.Fprintln(Stdout, v.Apropos())
	case "usage":
		fmt.Fprintln(Stdout, "usage:", v.Usage())
	case "man":
		fmt.Fprintf(Stdout, "NAME\n\t%s - %s\n\nSYNOPSIS\n\t%s\n%s\n",
			v, v.Apropos(), v.Usage(), cmd.Man(v))
	default:
		fmt.Fprintf(Stdout, "usage:\t%s\n\n%s\n", v.Usage(), v.Apropos())
	}
	return nil
}
