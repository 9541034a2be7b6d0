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

package dfplayer

import "github.com/tonewheel/go-dfplayer/internal/frame"

// CommandStatus reinterprets the command byte of the last-received frame as
// a reply status. The module reuses the command position for statuses it
// emits on its own (accepted, error, playback complete, ready after boot),
// so this works after any operation, not just after queries.
//
// CommandStatus issues no transport I/O: it reads already-buffered state and
// may be stale if nothing has been received since the last query or poll.
func (d *Device) CommandStatus() CommandStatus {
	switch frame.Command(d.lastReply) {
	case replyError:
		// The error detail rides in the low data byte.
		return CommandStatus(byte(frame.Payload(d.lastReply)))
	case replyAccepted:
		return StatusAccepted
	case replyTrackDone:
		return StatusTrackDone
	case replyReady:
		return StatusReady
	default:
		return StatusUnknown
	}
}

// String returns a human-readable command status.
func (s CommandStatus) String() string {
	switch s {
	case StatusBusy:
		return "module busy"
	case StatusSleeping:
		return "module sleeping"
	case StatusSerialError:
		return "serial receive error"
	case StatusBadChecksum:
		return "checksum rejected"
	case StatusOutOfRange:
		return "track or folder out of range"
	case StatusNotFound:
		return "track or folder not found"
	case StatusAdvertError:
		return "advert insertion error"
	case StatusCardError:
		return "card read failure"
	case StatusEnteredSleep:
		return "entered sleep mode"
	case StatusAccepted:
		return "accepted"
	case StatusTrackDone:
		return "track done"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// IsError reports whether s is one of the module's error detail codes.
func (s CommandStatus) IsError() bool {
	return s >= StatusBusy && s <= StatusEnteredSleep
}
