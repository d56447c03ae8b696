// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package kernel inspects the running kernel's boot command line.
package kernel

import (
	"os"
	"strings"
)

const cmdlinePath = "/proc/cmdline"

// disableNamingArg turns systemd's predictable interface naming off; with it
// set there is no naming scheme to pin against.
const disableNamingArg = "net.ifnames=0"

// CmdlineReader supplies the kernel command line. Injected so tests can
// substitute fixed text for /proc/cmdline.
type CmdlineReader interface {
	Cmdline() (string, error)
}

// RealCmdline reads the live command line from procfs.
type RealCmdline struct{}

func (RealCmdline) Cmdline() (string, error) {
	data, err := os.ReadFile(cmdlinePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PredictableNamingDisabled reports whether predictable interface naming is
// administratively disabled. A read failure fails open to false: an
// unreadable command line never blocks a pass.
func PredictableNamingDisabled(r CmdlineReader) bool {
	cmdline, err := r.Cmdline()
	if err != nil {
		return false
	}
	return strings.Contains(cmdline, disableNamingArg)
}
