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

import "errors"

// Decode failure reasons, one per structural check. Callers that need the
// distinction (tests, debug logging) inspect these with errors.Is; the
// public query wrappers collapse all of them to the zero sentinel.
var (
	ErrIncomplete = errors.New("frame: incomplete frame")
	ErrBadStart   = errors.New("frame: bad start byte")
	ErrBadVersion = errors.New("frame: bad version byte")
	ErrBadLength  = errors.New("frame: bad length byte")
	ErrBadEnd     = errors.New("frame: bad end byte")
	ErrMismatch   = errors.New("frame: reply does not echo requested command")
)

// Encode builds an outbound frame for the given command and data bytes.
// The returned slice is freshly allocated and exactly v.Size() bytes long.
// Encode never fails: the checksum wraps modulo 2^16 and the receiver does
// not re-validate it, only the frame shape.
func Encode(cmd, dataHigh, dataLow byte, ack bool, v Variant) []byte {
	buf := make([]byte, v.Size())
	buf[posStart] = StartByte
	buf[posVersion] = Version
	buf[posLength] = DataLength
	buf[posCommand] = cmd
	if ack {
		buf[posAck] = 1
	}
	buf[posDataHigh] = dataHigh
	buf[posDataLow] = dataLow

	switch v {
	case VariantNoChecksum:
		buf[SizeNoChecksum-1] = EndByte
	case VariantAlternateChecksum:
		sum := Checksum(buf)
		cs := uint16(0xFFFF - sum + 1)
		buf[7] = byte(cs >> 8)
		buf[8] = byte(cs)
		buf[Size-1] = EndByte
	default:
		// Standard chip: 0 minus the byte sum, computed in at least
		// 16-bit signed arithmetic so the negative intermediate survives.
		sum := Checksum(buf)
		cs := uint16(-sum)
		buf[7] = byte(cs >> 8)
		buf[8] = byte(cs)
		buf[Size-1] = EndByte
	}
	return buf
}

// Checksum returns the sum of the bytes covered by the checksum (version
// through data-low) as a plain integer. The per-variant transformation of
// this sum happens in Encode.
func Checksum(buf []byte) int {
	sum := 0
	for _, b := range buf[posVersion : posDataLow+1] {
		sum += int(b)
	}
	return sum
}

// Validate checks the fixed fields of an inbound frame: size, start byte,
// version, length and end byte, in that order. Checksum bytes are never
// re-verified; the module itself emits asynchronous status frames sharing
// the same shape and validating shape alone mirrors its behavior.
func Validate(raw []byte, v Variant) error {
	size := v.Size()
	if len(raw) != size {
		return ErrIncomplete
	}
	if raw[posStart] != StartByte {
		return ErrBadStart
	}
	if raw[posVersion] != Version {
		return ErrBadVersion
	}
	if raw[posLength] != DataLength {
		return ErrBadLength
	}
	if raw[size-1] != EndByte {
		return ErrBadEnd
	}
	return nil
}

// Decode validates an inbound frame and, if it echoes the expected command,
// returns its 16-bit payload. A well-formed frame carrying a different
// command byte (typically an asynchronous status frame that arrived instead
// of the awaited reply) yields ErrMismatch.
func Decode(raw []byte, expected byte, v Variant) (uint16, error) {
	if err := Validate(raw, v); err != nil {
		return 0, err
	}
	if raw[posCommand] != expected {
		return 0, ErrMismatch
	}
	return Payload(raw), nil
}

// Command returns the command byte of a frame, or 0 if the buffer is too
// short to carry one.
func Command(raw []byte) byte {
	if len(raw) <= posCommand {
		return 0
	}
	return raw[posCommand]
}

// Payload returns the big-endian combination of the two data bytes, or 0 if
// the buffer is too short.
func Payload(raw []byte) uint16 {
	if len(raw) <= posDataLow {
		return 0
	}
	return uint16(raw[posDataHigh])<<8 | uint16(raw[posDataLow])
}
