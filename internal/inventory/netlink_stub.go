// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

//go:build !linux

package inventory

import "grimm.is/nicpin/internal/errors"

// Netlink is only functional on Linux.
type Netlink struct{}

func (Netlink) Interfaces() ([]Interface, error) {
	return nil, errors.New(errors.KindInternal, "interface enumeration requires Linux")
}
