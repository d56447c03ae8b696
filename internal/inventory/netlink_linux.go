// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

//go:build linux
// +build linux

package inventory

import (
	"strings"

	"github.com/safchain/ethtool"
	"github.com/vishvananda/netlink"

	"grimm.is/nicpin/internal/errors"
	"grimm.is/nicpin/internal/logging"
	"grimm.is/nicpin/internal/netutil"
)

// Netlink enumerates interfaces through rtnetlink and resolves permanent
// hardware addresses through the ethtool ioctl interface.
type Netlink struct{}

// Interfaces returns physical Ethernet devices in the kernel's enumeration
// order. A missing or unreadable permanent MAC leaves the field empty; only
// the link listing itself can fail.
func (Netlink) Interfaces() ([]Interface, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "listing network links")
	}

	eth, ethErr := ethtool.NewEthtool()
	if ethErr != nil {
		logging.WithComponent("inventory").WithError(ethErr).Warn("ethtool unavailable, permanent MACs will not be resolved")
	} else {
		defer eth.Close()
	}

	var ifaces []Interface
	for _, link := range links {
		attrs := link.Attrs()
		// "device" is netlink's type for links without a specialized kind:
		// physical NICs. Bridges, bonds, vlans and the like report their own
		// kinds and are skipped, as is anything not speaking Ethernet framing.
		if link.Type() != "device" || attrs.EncapType != "ether" {
			continue
		}
		rec := Interface{Name: attrs.Name, Type: TypeEthernet}
		if len(attrs.HardwareAddr) > 0 {
			rec.MAC = netutil.FormatMAC(attrs.HardwareAddr)
		}
		if ethErr == nil {
			rec.PermanentMAC = permanentMAC(eth, attrs.Name)
		}
		ifaces = append(ifaces, rec)
	}
	return ifaces, nil
}

// permanentMAC asks ethtool for the firmware address of name. Drivers that
// do not implement the query report an empty or all-zero address; both mean
// "no permanent MAC" rather than an error.
func permanentMAC(eth *ethtool.Ethtool, name string) string {
	perm, err := eth.PermAddr(name)
	if err != nil || perm == "" || isZeroMAC(perm) {
		return ""
	}
	canon, err := netutil.CanonicalMAC(perm)
	if err != nil {
		return ""
	}
	return canon
}

func isZeroMAC(s string) bool {
	return strings.Trim(s, "0:") == ""
}
