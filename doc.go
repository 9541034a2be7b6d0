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

/*
Package dfplayer provides a pure Go driver for the DFPlayer Mini MP3 playback
module and its clones, addressed over a 9600 8N1 serial link.

The module speaks a fixed 10-byte frame protocol (8 bytes on the no-checksum
clone chips). This library encodes playback and configuration commands into
frames, transmits them, and for queries decodes the matching reply frame
into a 16-bit result, detecting malformed, mismatched and missing replies.

Features:
  - Full command set: playback control, folders, volume, EQ, DAC, repeat
    modes, source selection, sleep/standby, reset
  - Status and counter queries (volume, EQ, play mode, track counts)
  - Chip variant profiles: standard, alternate checksum, no checksum
  - Asynchronous event polling (track finished, boot ready, errors)
  - Serial port auto-detection for common USB-UART bridges

Basic Usage:

	import (
	    dfplayer "github.com/tonewheel/go-dfplayer"
	    "github.com/tonewheel/go-dfplayer/transport/uart"
	)

	// Open the serial port
	transport, err := uart.New("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}
	defer transport.Close()

	// Create the device and wait out the module's boot window
	device, err := dfplayer.New(transport)
	if err != nil {
	    log.Fatal(err)
	}
	if err := device.Init(); err != nil {
	    log.Fatal(err)
	}

	// Or create with custom options
	device, err = dfplayer.New(transport,
	    dfplayer.WithVariant(dfplayer.VariantNoChecksum),
	    dfplayer.WithTimeout(200*time.Millisecond),
	)

	// Play and query
	_ = device.SetVolume(20)
	_ = device.PlayTrack(1)
	fmt.Printf("volume: %d\n", device.Volume())

Error Signaling:

Queries return 0 on any communication failure: the wire protocol gives the
host no way to tell a missing reply from a legitimate zero. After any
operation, CommandStatus reinterprets the last received frame and exposes
the module's own error detail codes:

	if st := device.CommandStatus(); st.IsError() {
	    log.Printf("module reported: %s", st)
	}

Chip Variants:

Clone boards differ in checksum arithmetic and frame size. Select the
profile once per session with WithVariant or SetVariant; every encode and
decode follows it. Known firmware quirks (the normal-mode command 0x0B is
inoperative, the folder-count query 0x4F answers wrong and stops playback)
are module behavior, not driver defects, and are left untouched.

Thread Safety:

Device operations are not thread-safe. The protocol allows one in-flight
request/response pair; wrap the Device with a mutex for concurrent use.
*/
package dfplayer
