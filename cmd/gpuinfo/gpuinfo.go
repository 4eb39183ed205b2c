// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gpuinfo

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/gpu/hal"
	"github.com/platinasystems/gpu/internal/target"
	"github.com/platinasystems/gpu/lang"
	"github.com/platinasystems/gpu/ops"
	"github.com/platinasystems/parms"
	uuid "github.com/satori/go.uuid"
	"gopkg.in/yaml.v2"
)

type Command struct{}

func (Command) String() string { return "gpuinfo" }

func (Command) Usage() string {
	return "gpuinfo [-pci ADDR | -sim FILE] [-yaml]"
}

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "detect and describe a GPU",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Detect the chip behind the register aperture, bind its operations
	and print identity, capabilities, floorsweeping masks, device info,
	clock rates and temperature.

OPTIONS
	-pci ADDR	PCI function, e.g. 0000:01:00.0; default, first found
	-sim FILE	YAML register dump instead of hardware
	-yaml		print the report as YAML`,
	}
}

func (Command) Main(args ...string) error {
	flag, args := flags.New(args, "-yaml")
	parm, args := parms.New(args, "-pci", "-sim")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	r, closer, err := target.Open(parm.ByName["-pci"], parm.ByName["-sim"])
	if err != nil {
		return err
	}
	defer closer()
	d, err := hal.New(r)
	if err != nil {
		return err
	}
	rep := New(d)
	if flag.ByName["-yaml"] {
		return rep.WriteYaml(os.Stdout)
	}
	_, err = rep.WriteTo(os.Stdout)
	return err
}

type GPC struct {
	TPCMask uint32 `yaml:"tpc_mask"`
	PESMask uint32 `yaml:"pes_mask"`
}

// Report is what gpuinfo prints.
type Report struct {
	Chip        string            `yaml:"chip"`
	Boot0       uint32            `yaml:"boot0"`
	Integrated  bool              `yaml:"integrated"`
	UUID        string            `yaml:"uuid,omitempty"`
	Supported   []ops.Capability  `yaml:"supported"`
	Unsupported []ops.Capability  `yaml:"unsupported,omitempty"`
	GPCMask     uint32            `yaml:"gpc_mask"`
	GPCs        []GPC             `yaml:"gpcs"`
	FBPMask     uint32            `yaml:"fbp_mask"`
	LTCs        uint32            `yaml:"ltcs"`
	LCEs        uint32            `yaml:"lces"`
	Litter      map[string]uint32 `yaml:"litter"`
	Clocks      map[string]uint64 `yaml:"clocks,omitempty"`
	TempMilliC  *int32            `yaml:"temp_millic,omitempty"`
	SecDebug    bool              `yaml:"sec_debug"`
	PrivSec     bool              `yaml:"priv_sec"`
	Devices     []ops.DeviceInfo  `yaml:"devices,omitempty"`
	DevicesErr  string            `yaml:"devices_err,omitempty"`
}

// New collects the report of a bound device.
func New(d *hal.Device) *Report {
	t := &d.Ops
	rep := &Report{
		Chip:       d.Variant.String(),
		Boot0:      d.Variant.Boot0Value(),
		Integrated: d.Variant.IsIntegrated(),
		GPCMask:    t.Gr.GPCMask(),
		FBPMask:    t.Fuse.StatusOptFBP(),
		LTCs:       t.Top.NumLTCs(),
		LCEs:       t.Top.NumLCE(),
		Litter:     make(map[string]uint32),
		SecDebug:   t.Fuse.OptSecDebugEn(),
		PrivSec:    t.Fuse.OptPrivSecEn(),
	}
	if u := d.UUID(); !uuid.Equal(u, uuid.Nil) {
		rep.UUID = u.String()
	}
	rep.Supported, rep.Unsupported = t.Capabilities()
	for gpc := uint32(0); gpc < t.Top.MaxGPCCount(); gpc++ {
		rep.GPCs = append(rep.GPCs, GPC{
			TPCMask: t.Gr.GPCTPCMask(gpc),
			PESMask: t.Gr.PESMask(gpc),
		})
	}
	for _, v := range ops.LitterValues() {
		rep.Litter[v.String()] = t.Litter.Litter(v)
	}
	if domains := t.Clk.Domains(); len(domains) > 0 {
		rep.Clocks = make(map[string]uint64)
		for _, dom := range domains {
			rep.Clocks[dom.String()] = t.Clk.Rate(dom)
		}
	}
	if t.Supported(ops.CapThermTemp) {
		temp := t.Therm.CurrentTemp()
		rep.TempMilliC = &temp
	}
	devs, err := t.Top.Devices()
	if err != nil {
		rep.DevicesErr = err.Error()
	}
	rep.Devices = devs
	return rep
}

func (rep *Report) WriteYaml(w io.Writer) error {
	b, err := yaml.Marshal(rep)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (rep *Report) WriteTo(w io.Writer) (int64, error) {
	buf := new(strings.Builder)
	p := func(k string, v interface{}) {
		fmt.Fprintf(buf, "%-16s%v\n", k+":", v)
	}
	p("chip", rep.Chip)
	p("boot0", fmt.Sprintf("0x%08x", rep.Boot0))
	p("integrated", rep.Integrated)
	if len(rep.UUID) > 0 {
		p("uuid", rep.UUID)
	}
	p("supported", join(rep.Supported))
	if len(rep.Unsupported) > 0 {
		p("unsupported", join(rep.Unsupported))
	}
	p("gpc.mask", fmt.Sprintf("%#x", rep.GPCMask))
	for i, gpc := range rep.GPCs {
		p(fmt.Sprint("gpc", i, ".tpc.mask"), fmt.Sprintf("%#x", gpc.TPCMask))
		p(fmt.Sprint("gpc", i, ".pes.mask"), fmt.Sprintf("%#x", gpc.PESMask))
	}
	p("fbp.mask", fmt.Sprintf("%#x", rep.FBPMask))
	p("ltcs", rep.LTCs)
	p("lces", rep.LCEs)
	for _, v := range ops.LitterValues() {
		p(v.String(), rep.Litter[v.String()])
	}
	for _, dom := range []ops.ClkDomain{ops.ClkGPC, ops.ClkSys,
		ops.ClkXbar, ops.ClkMem} {
		if hz, found := rep.Clocks[dom.String()]; found {
			p(dom.String()+".hz", hz)
		}
	}
	if rep.TempMilliC != nil {
		p("temp.millic", *rep.TempMilliC)
	}
	p("sec.debug", rep.SecDebug)
	p("priv.sec", rep.PrivSec)
	for i, d := range rep.Devices {
		p(fmt.Sprint("device", i), d)
	}
	if len(rep.DevicesErr) > 0 {
		p("devices.err", rep.DevicesErr)
	}
	n, err := io.WriteString(w, buf.String())
	return int64(n), err
}

func join(caps []ops.Capability) string {
	s := make([]string, len(caps))
	for i, c := range caps {
		s[i] = string(c)
	}
	return strings.Join(s, " ")
}
