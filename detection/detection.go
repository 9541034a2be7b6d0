// go-dfplayer
// Copyright (c) 2026 The go-dfplayer Authors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-dfplayer.
//
// go-dfplayer is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-dfplayer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-dfplayer; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// Package detection discovers serial ports likely to carry a DFPlayer
// module. The module itself has no USB identity; what shows up on the host
// is the USB-UART bridge wired in front of it, so detection ranks ports by
// known bridge chips.
package detection

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
)

// DeviceInfo describes one candidate serial port.
type DeviceInfo struct {
	// Path is the port path usable with transport/uart (COM3, /dev/ttyUSB0).
	Path string
	// Name is a human-readable port description if the OS provides one.
	Name string
	// VID and PID identify the USB-UART bridge, empty for non-USB ports.
	VID string
	PID string
}

// Options controls port detection.
type Options struct {
	// Blocklist lists VID:PID pairs that must never be offered, for known
	// problematic adapters.
	Blocklist []string
	// AllPorts includes ports behind unrecognized bridges and non-USB
	// ports instead of only the known USB-UART bridge chips.
	AllPorts bool
}

// DefaultOptions returns detection defaults: known bridges only, empty
// blocklist.
func DefaultOptions() Options {
	return Options{}
}

// knownBridges are the USB-UART chips commonly found on DFPlayer breakout
// and adapter boards.
var knownBridges = map[string]string{
	"1A86:7523": "CH340",
	"1A86:55D4": "CH9102",
	"10C4:EA60": "CP210x",
	"0403:6001": "FTDI FT232",
	"067B:2303": "PL2303",
}

// DetectAll enumerates serial ports and returns candidates, known bridge
// chips first.
func DetectAll(opts *Options) ([]DeviceInfo, error) {
	if opts == nil {
		defaults := DefaultOptions()
		opts = &defaults
	}

	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}

	var known, other []DeviceInfo
	for _, port := range ports {
		info := DeviceInfo{
			Path: port.Name,
			Name: port.Product,
			VID:  strings.ToUpper(port.VID),
			PID:  strings.ToUpper(port.PID),
		}

		switch {
		case !port.IsUSB:
			if opts.AllPorts {
				other = append(other, info)
			}
		case IsBlocked(info.VID+":"+info.PID, opts.Blocklist):
			continue
		case isKnownBridge(info.VID + ":" + info.PID):
			known = append(known, info)
		case opts.AllPorts:
			other = append(other, info)
		}
	}

	return append(known, other...), nil
}

// isKnownBridge reports whether vidpid belongs to a recognized USB-UART
// bridge chip.
func isKnownBridge(vidpid string) bool {
	_, ok := knownBridges[normalizeVIDPID(vidpid)]
	return ok
}

// BridgeName returns the bridge chip name for a VID:PID pair, or empty.
func BridgeName(vidpid string) string {
	return knownBridges[normalizeVIDPID(vidpid)]
}

// IsBlocked checks a VID:PID pair against a blocklist, case-insensitively.
func IsBlocked(vidpid string, blocklist []string) bool {
	vidpid = normalizeVIDPID(vidpid)
	for _, blocked := range blocklist {
		if vidpid == normalizeVIDPID(blocked) {
			return true
		}
	}
	return false
}

func normalizeVIDPID(vidpid string) string {
	return strings.ToUpper(strings.TrimSpace(vidpid))
}
