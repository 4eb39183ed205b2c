// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// This is a goes machine to inspect and monitor NVIDIA GPUs.
package main

import (
	"github.com/platinasystems/gpu/cmd/gpud"
	"github.com/platinasystems/gpu/cmd/gpuinfo"
	"github.com/platinasystems/gpu/cmd/gpureg"
	"github.com/platinasystems/gpu/internal/goes"
)

func Goes() goes.ByName {
	g := make(goes.ByName)
	g.Plot(
		gpuinfo.Command{},
		gpureg.Command{},
		new(gpud.Command),
	)
	return g
}

func main() {
	Goes().Main()
}
