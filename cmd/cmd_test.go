// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package cmd

import (
	"strings"
	"testing"
)

func TestSwap(t *testing.T) {
	for _, x := range []struct {
		in, out string
	}{
		{"gpuinfo -help", "help gpuinfo"},
		{"gpuinfo -h", "help gpuinfo"},
		{"gpuinfo --man", "man gpuinfo"},
		{"-usage gpureg", "usage gpureg"},
		{"gpureg -w 0x100", "gpureg -w 0x100"},
		{"gpud", "gpud"},
	} {
		args := strings.Fields(x.in)
		Swap(args)
		if got := strings.Join(args, " "); got != x.out {
			t.Errorf("%q: got %q, want %q", x.in, got, x.out)
		}
	}
}

func TestKind(t *testing.T) {
	if !Daemon.IsDaemon() || Daemon.IsInteractive() {
		t.Error("daemon")
	}
	if !Kind(0).IsInteractive() {
		t.Error("zero kind")
	}
	if (Daemon | Hidden).String() != "unknown" {
		t.Error("combined kind")
	}
}
