// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPinMAC(t *testing.T) {
	cases := []struct {
		name    string
		iface   Interface
		wantMAC string
		wantOK  bool
	}{
		{
			name:    "permanent preferred over runtime",
			iface:   Interface{Name: "eth0", MAC: "aa:bb:cc:dd:ee:02", PermanentMAC: "aa:bb:cc:dd:ee:01"},
			wantMAC: "aa:bb:cc:dd:ee:01",
			wantOK:  true,
		},
		{
			name:    "runtime only",
			iface:   Interface{Name: "eth0", MAC: "aa:bb:cc:dd:ee:02"},
			wantMAC: "aa:bb:cc:dd:ee:02",
			wantOK:  true,
		},
		{
			name:   "no address is unpinnable",
			iface:  Interface{Name: "eth0"},
			wantOK: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mac, ok := tc.iface.PinMAC()
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantMAC, mac)
		})
	}
}
