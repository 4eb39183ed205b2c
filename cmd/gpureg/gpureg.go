// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gpureg

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/gpu/hw"
	"github.com/platinasystems/gpu/internal/target"
	"github.com/platinasystems/gpu/lang"
	"github.com/platinasystems/parms"
)

type Command struct{}

func (Command) String() string { return "gpureg" }

func (Command) Usage() string {
	return "gpureg [-pci ADDR | -sim FILE] [[-r] | -w] OFFSET [-D DATA]"
}

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "read/write GPU registers",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	This command reads and writes 32-bit GPU registers.
	  -r to read from register, default
	  -w to write to register
	     OFFSET is a BAR0 offset, e.g. 0x000 for boot0
	  -D DATA is a 32-bit value
	  -pci ADDR selects the PCI function; default, first found
	  -sim FILE reads a YAML register dump instead`,
	}
}

func (Command) Main(args ...string) error {
	flag, args := flags.New(args, "-r", "-w")
	parm, args := parms.New(args, "-D", "-pci", "-sim")
	if len(args) == 0 {
		return fmt.Errorf("OFFSET: missing")
	}
	if len(args) > 1 {
		return fmt.Errorf("%v: unexpected", args[1:])
	}
	r, closer, err := target.Open(parm.ByName["-pci"], parm.ByName["-sim"])
	if err != nil {
		return err
	}
	defer closer()
	return Access(os.Stdout, r, flag.ByName["-w"], args[0],
		parm.ByName["-D"])
}

// Access writes data to, or prints the value at, the offset of r.
func Access(w io.Writer, r hw.Regs, write bool, offset, data string) error {
	if data == "" {
		data = "0x0"
	}
	a, err := strconv.ParseUint(offset, 0, 32)
	if err != nil {
		return fmt.Errorf("%s: %v", offset, err)
	}
	if a&3 != 0 {
		return fmt.Errorf("%s: unaligned", offset)
	}
	if l, found := r.(interface{ Len() int }); found && a+4 > uint64(l.Len()) {
		return fmt.Errorf("%s: %w", offset, hw.ErrRange)
	}
	d, err := strconv.ParseUint(data, 0, 32)
	if err != nil {
		return fmt.Errorf("%s: %v", data, err)
	}
	if write {
		r.Write32(uint32(a), uint32(d))
		return nil
	}
	_, err = fmt.Fprintf(w, "%x: %x\n", a, r.Read32(uint32(a)))
	return err
}
