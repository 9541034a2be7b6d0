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

package frame

import "time"

// Variant identifies the chip profile of the attached module. Clone boards
// ship with firmware that differs in checksum arithmetic and frame size, so
// the variant is selected once per session and drives both the encode and
// decode paths.
type Variant byte

const (
	// VariantStandard is the original chip: two's-complement checksum at
	// bytes 7..8, 10-byte frames.
	VariantStandard Variant = iota
	// VariantAlternateChecksum covers clones computing the checksum as
	// 0xFFFF - sum + 1. Same frame layout as the standard chip.
	VariantAlternateChecksum
	// VariantNoChecksum covers clones that omit the checksum entirely and
	// transmit 8-byte frames with the end byte at position 7.
	VariantNoChecksum
)

// Size returns the number of bytes a frame occupies on the wire for this
// variant.
func (v Variant) Size() int {
	if v == VariantNoChecksum {
		return SizeNoChecksum
	}
	return Size
}

// DefaultTimeout returns the recommended reply timeout for this variant.
// Clone firmware tends to answer more slowly than the original chip.
func (v Variant) DefaultTimeout() time.Duration {
	switch v {
	case VariantAlternateChecksum:
		return 200 * time.Millisecond
	case VariantNoChecksum:
		return 350 * time.Millisecond
	default:
		return 100 * time.Millisecond
	}
}

// Valid reports whether v is a known chip variant.
func (v Variant) Valid() bool {
	return v <= VariantNoChecksum
}

// String returns a human-readable variant name.
func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "standard"
	case VariantAlternateChecksum:
		return "alternate-checksum"
	case VariantNoChecksum:
		return "no-checksum"
	default:
		return "unknown"
	}
}
