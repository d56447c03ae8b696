// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package netutil provides hardware address canonicalization. The canonical
// colon-hex form is the sole matching key between a live interface and a
// stored link artifact, so every MAC entering the system passes through here.
package netutil

import (
	"fmt"
	"net"
	"strings"
)

// FormatMAC renders a hardware address as lowercase colon-separated hex.
func FormatMAC(mac net.HardwareAddr) string {
	parts := make([]string, len(mac))
	for i, b := range mac {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, ":")
}

// CanonicalMAC parses s in any form net.ParseMAC accepts and returns the
// canonical colon-hex form.
func CanonicalMAC(s string) (string, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return "", err
	}
	return FormatMAC(hw), nil
}
