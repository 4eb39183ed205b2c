// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gpud

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/platinasystems/gpu/hal"
	"github.com/platinasystems/gpu/ops"
	"github.com/platinasystems/redis/rpc/args"
	"github.com/platinasystems/redis/rpc/reply"
	uuid "github.com/satori/go.uuid"
)

// Settable field groups, relative to the key prefix.
var writable = []string{"elcg.", "runlist."}

// Info is the rpc receiver of redis hset to the gpud fields.
type Info struct {
	mutex   sync.Mutex
	dev     *hal.Device
	prefix  string
	publish func(key string, value interface{})
	last    map[string]string
}

func (i *Info) init(d *hal.Device, prefix string,
	publish func(string, interface{})) {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	i.dev = d
	i.prefix = prefix
	i.publish = publish
	i.last = make(map[string]string)
}

// values samples the device.
func (i *Info) values() map[string]string {
	t := &i.dev.Ops
	v := i.dev.Variant
	m := map[string]string{
		"chip":       v.String(),
		"id":         fmt.Sprintf("0x%03x", uint32(v.ID())),
		"state":      i.dev.State().String(),
		"ptimer":     strconv.FormatUint(t.Ptimer.Read(), 10),
		"gpc.mask":   fmt.Sprintf("0x%x", t.Gr.GPCMask()),
		"fbp.mask":   fmt.Sprintf("0x%x", t.Fuse.StatusOptFBP()),
		"intr.stall": fmt.Sprintf("0x%x", t.MC.IntrStallPending()),
	}
	if u := i.dev.UUID(); !uuid.Equal(u, uuid.Nil) {
		m["uuid"] = u.String()
	}
	if t.Supported(ops.CapThermTemp) {
		m["temp.units.milliC"] = fmt.Sprint(t.Therm.CurrentTemp())
	}
	for _, d := range t.Clk.Domains() {
		m["clk."+d.String()+".hz"] = fmt.Sprint(t.Clk.Rate(d))
	}
	for n := uint32(0); n < t.Runlist.CountMax(); n++ {
		m[fmt.Sprint("runlist.", n, ".pending")] =
			fmt.Sprint(t.Runlist.Pending(n))
	}
	return m
}

// update publishes and returns the values changed since last update.
func (i *Info) update() map[string]string {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	changed := make(map[string]string)
	for k, v := range i.values() {
		k = i.prefix + k
		if s, found := i.last[k]; found && s == v {
			continue
		}
		i.last[k] = v
		changed[k] = v
	}
	for _, k := range sortedKeys(changed) {
		i.publish(k, changed[k])
	}
	return changed
}

func (i *Info) Hset(args args.Hset, reply *reply.Hset) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	if i.dev == nil {
		return fmt.Errorf("cannot hset: %s: no device", args.Field)
	}
	value := string(args.Value)
	if err := i.set(strings.TrimPrefix(args.Field, i.prefix),
		value); err != nil {
		return fmt.Errorf("cannot hset: %s: %v", args.Field, err)
	}
	i.last[args.Field] = value
	i.publish(args.Field, value)
	*reply = 1
	return nil
}

// set handles
//
//	elcg.ENGINE run|auto|stop
//	runlist.N.enable true|false
func (i *Info) set(field, value string) error {
	t := &i.dev.Ops
	switch {
	case strings.HasPrefix(field, "elcg."):
		engine, err := strconv.ParseUint(strings.TrimPrefix(field,
			"elcg."), 0, 32)
		if err != nil {
			return err
		}
		if engine >= uint64(t.Therm.ELCGEngines()) {
			return fmt.Errorf("engine %d: out of range", engine)
		}
		mode, err := ops.ParseELCGMode(value)
		if err != nil {
			return err
		}
		t.Therm.SetELCGMode(uint32(engine), mode)
	case strings.HasPrefix(field, "runlist.") &&
		strings.HasSuffix(field, ".enable"):
		s := strings.TrimSuffix(strings.TrimPrefix(field, "runlist."),
			".enable")
		n, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return err
		}
		if n >= uint64(t.Runlist.CountMax()) {
			return fmt.Errorf("runlist %d: out of range", n)
		}
		enable, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		t.Runlist.WriteState(1<<n, enable)
	default:
		return fmt.Errorf("read only")
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
