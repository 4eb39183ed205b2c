// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package pci finds NVIDIA display functions through sysfs.
package pci

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/platinasystems/gpu/hw"
)

const (
	VendorNvidia = 0x10de

	// Base class 0x03 is display controller (VGA 0x0300, 3D 0x0302).
	ClassDisplay = 0x03
)

var SysBusPciPath = "/sys/bus/pci/devices"

type Addr struct {
	Domain, Bus, Slot, Fn uint
}

func (a Addr) String() string {
	return fmt.Sprintf("%04x:%02x:%02x.%x", a.Domain, a.Bus, a.Slot, a.Fn)
}

func ParseAddr(s string) (a Addr, err error) {
	if strings.Count(s, ":") == 1 {
		s = "0000:" + s
	}
	_, err = fmt.Sscanf(s, "%x:%x:%x.%x", &a.Domain, &a.Bus, &a.Slot, &a.Fn)
	if err != nil {
		err = fmt.Errorf("%s: invalid PCI address: %v", s, err)
	}
	return
}

type Device struct {
	Addr
	Vendor, Device uint
	Class          uint
}

func (d *Device) SysfsPath(format string, args ...interface{}) string {
	return filepath.Join(SysBusPciPath, d.Addr.String(),
		fmt.Sprintf(format, args...))
}

func (d *Device) SysfsReadHexFile(format string, args ...interface{}) (v uint, err error) {
	var f *os.File
	if f, err = os.Open(d.SysfsPath(format, args...)); err != nil {
		return
	}
	defer f.Close()
	_, err = fmt.Fscanf(f, "0x%x", &v)
	return
}

// Open maps the device's register aperture.
func (d *Device) Open() (*hw.Mmio, error) {
	return hw.OpenResource(d.SysfsPath("resource0"))
}

func (d *Device) String() string {
	return fmt.Sprintf("%s %04x:%04x", d.Addr, d.Vendor, d.Device)
}

// Find returns the NVIDIA display class functions sorted by address.
func Find() (devs []Device, err error) {
	fis, err := ioutil.ReadDir(SysBusPciPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for _, fi := range fis {
		var d Device
		if d.Addr, err = ParseAddr(fi.Name()); err != nil {
			return nil, err
		}
		// skip functions removed while scanning
		if d.Vendor, err = d.SysfsReadHexFile("vendor"); err != nil {
			continue
		}
		if d.Vendor != VendorNvidia {
			continue
		}
		if d.Device, err = d.SysfsReadHexFile("device"); err != nil {
			continue
		}
		if d.Class, err = d.SysfsReadHexFile("class"); err != nil {
			continue
		}
		if d.Class>>16 != ClassDisplay {
			continue
		}
		devs = append(devs, d)
	}
	sort.Slice(devs, func(i, j int) bool {
		return devs[i].Addr.String() < devs[j].Addr.String()
	})
	return devs, nil
}
