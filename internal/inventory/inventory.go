// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package inventory enumerates the host's network interfaces and their
// hardware addresses for the persistence passes.
package inventory

// TypeEthernet marks physical Ethernet interfaces, the only type the
// persistence passes consider.
const TypeEthernet = "ethernet"

// Interface is a read-only record of one live interface. MAC fields are in
// canonical colon-hex form; an absent address is the empty string.
type Interface struct {
	Name         string
	Type         string
	MAC          string
	PermanentMAC string
}

// PinMAC returns the hardware address a pin for this interface should match,
// preferring the permanent (firmware) address over the runtime one. The
// second return is false when the interface carries no address at all, in
// which case it cannot be pinned.
func (i Interface) PinMAC() (string, bool) {
	if i.PermanentMAC != "" {
		return i.PermanentMAC, true
	}
	if i.MAC != "" {
		return i.MAC, true
	}
	return "", false
}

// Inventory supplies the live interface set. The enumeration order is
// significant: it fixes the order in which interfaces are pinned.
type Inventory interface {
	Interfaces() ([]Interface, error)
}
