// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/platinasystems/gpu/cmd"
	"github.com/platinasystems/gpu/internal/test"
	"github.com/platinasystems/gpu/lang"
)

type echo struct{ got []string }

func (*echo) String() string { return "echo" }
func (*echo) Usage() string  { return "echo [STRING]..." }

func (*echo) Apropos() lang.Alt {
	return lang.Alt{lang.EnUS: "print arguments"}
}

func (c *echo) Main(args ...string) error {
	c.got = args
	return nil
}

type hidden struct{ echo }

func (*hidden) String() string { return "hidden" }
func (*hidden) Kind() cmd.Kind { return cmd.Hidden }

type daemon struct{ closed bool }

func (*daemon) String() string       { return "daemon" }
func (*daemon) Usage() string        { return "daemon" }
func (*daemon) Apropos() lang.Alt    { return lang.Alt{lang.EnUS: "run"} }
func (*daemon) Kind() cmd.Kind       { return cmd.Daemon }
func (*daemon) Main(...string) error { return errors.New("stopped") }
func (d *daemon) Close() error       { d.closed = true; return nil }

func capture(t *testing.T) *bytes.Buffer {
	buf := new(bytes.Buffer)
	save := Stdout
	Stdout = buf
	t.Cleanup(func() { Stdout = save })
	return buf
}

func TestDispatch(t *testing.T) {
	assert := test.Assert{TB: t}
	e := new(echo)
	byName := make(ByName)
	byName.Plot(e, new(hidden), new(daemon))

	assert.Nil(byName.Main("goes-gpu", "echo", "a", "b"))
	assert.Equal(e.got, []string{"a", "b"})

	assert.Nil(byName.Main("/usr/bin/echo", "c"))
	assert.Equal(e.got, []string{"c"})

	assert.Error(byName.Main("goes-gpu", "nosuch"), "nosuch: command not found")
	assert.Error(byName.Main("goes-gpu", "daemon"), "stopped")
	assert.Equal(byName.Names(), []string{"daemon", "echo"})
}

func TestHelpers(t *testing.T) {
	assert := test.Assert{TB: t}
	byName := make(ByName)
	byName.Plot(new(echo))

	buf := capture(t)
	assert.Nil(byName.Main("goes-gpu", "echo", "-usage"))
	assert.Equal(buf.String(), "usage: echo [STRING]...\n")

	buf.Reset()
	assert.Nil(byName.Main("goes-gpu", "-apropos", "echo"))
	assert.Equal(buf.String(), "print arguments\n")

	buf.Reset()
	assert.Nil(byName.Main("goes-gpu"))
	assert.True(strings.HasPrefix(buf.String(), "echo "))

	assert.Error(byName.Main("goes-gpu", "man"), "man: missing COMMAND")
}

func TestPlotDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	byName := make(ByName)
	byName.Plot(new(echo), new(echo))
}
