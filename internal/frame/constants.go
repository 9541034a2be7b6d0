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

// Package frame implements the DFPlayer serial frame codec: frame
// construction with the per-chip-variant checksum, and validation and
// decoding of reply frames.
package frame

// Protocol constants, identical in both directions.
const (
	StartByte  = 0x7E // first byte of every frame
	Version    = 0xFF // protocol version
	DataLength = 0x06 // number of data bytes (command..data-low)
	EndByte    = 0xEF // last byte of every frame
)

// Frame sizes in bytes on the wire.
const (
	Size           = 10 // standard frame: checksum at bytes 7..8
	SizeNoChecksum = 8  // reduced frame: end byte directly after data
)

// Byte positions within a frame.
const (
	posStart    = 0
	posVersion  = 1
	posLength   = 2
	posCommand  = 3
	posAck      = 4
	posDataHigh = 5
	posDataLow  = 6
)
