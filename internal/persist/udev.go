// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package persist

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"grimm.is/nicpin/internal/errors"
)

const (
	udevadmCmd = "udevadm"
	chrootCmd  = "chroot"
	liveRoot   = "/"
)

var udevadmArgs = []string{"test-builtin", "net_id"}

// Key priority under systemd's NamePolicy=keep kernel database onboard slot
// path: with keep, kernel and database empty, the scheme falls back to the
// onboard name, then the slot name, then the bus-path name.
var netIDKeys = []string{
	"ID_NET_NAME_ONBOARD",
	"ID_NET_NAME_SLOT",
	"ID_NET_NAME_PATH",
}

// CommandRunner abstracts external command execution so tests can substitute
// canned resolver output for a real udevadm.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands through os/exec, surfacing stderr in the error on
// a non-zero exit. No timeout wraps the call; a hanging tool hangs the pass.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %s: %w: %s",
			name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// Oracle asks the OS naming scheme what name it would assign an interface
// today, independent of any pin.
type Oracle struct {
	runner CommandRunner
}

// NewOracle returns an oracle querying through runner.
func NewOracle(runner CommandRunner) *Oracle {
	return &Oracle{runner: runner}
}

// PreferredName runs the net_id builtin for iface and returns the name the
// naming scheme would pick. A root other than "/" is entered via chroot so an
// offline image answers with its own udevadm and hardware database.
//
// Failures are KindToolInvocation (tool exited non-zero) or KindParse (no
// recognized naming key in the output). Both mean "cannot determine" and are
// distinct from a successful answer matching the pinned name.
func (o *Oracle) PreferredName(root, iface string) (string, error) {
	syspath := "/sys/class/net/" + iface

	var name string
	var args []string
	if root == liveRoot {
		name = udevadmCmd
		args = append(args, udevadmArgs...)
	} else {
		name = chrootCmd
		args = append(args, root, udevadmCmd)
		args = append(args, udevadmArgs...)
	}
	args = append(args, syspath)

	out, err := o.runner.Run(name, args...)
	if err != nil {
		return "", errors.Wrapf(err, errors.KindToolInvocation, "querying net_id for %s", iface)
	}

	values := make(map[string]string)
	for _, line := range strings.Split(string(out), "\n") {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if _, seen := values[k]; !seen {
			values[k] = v
		}
	}
	for _, key := range netIDKeys {
		if v, ok := values[key]; ok {
			return v, nil
		}
	}
	return "", errors.Errorf(errors.KindParse, "no net_id naming key in udevadm output for %s", iface)
}
