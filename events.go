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

import (
	"fmt"

	"github.com/tonewheel/go-dfplayer/internal/frame"
)

// EventKind tags an asynchronous frame emitted by the module on its own.
type EventKind byte

// Event kinds.
const (
	// KindUnknown is a well-formed frame carrying an unrecognized command
	// byte.
	KindUnknown EventKind = iota
	// KindAccepted acknowledges a command (ack flag was set).
	KindAccepted
	// KindTrackDone reports a finished track; Value is the track number.
	KindTrackDone
	// KindReady reports boot completion; Value carries the online source
	// bits.
	KindReady
	// KindError reports a command error; Value's low byte is the detail
	// code, convertible to CommandStatus.
	KindError
)

// String returns a human-readable event kind.
func (k EventKind) String() string {
	switch k {
	case KindAccepted:
		return "accepted"
	case KindTrackDone:
		return "track-done"
	case KindReady:
		return "ready"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one asynchronous status frame from the module.
type Event struct {
	Kind  EventKind
	Value uint16
}

// PollEvent reads one frame from the transport without sending anything,
// blocking up to the configured timeout. It returns ErrNoEvent when nothing
// arrived, which is the normal idle outcome. The received frame also feeds
// CommandStatus.
//
// PollEvent shares the transport with queries; do not interleave it with
// query calls from another goroutine.
func (d *Device) PollEvent() (Event, error) {
	size := d.config.Variant.Size()
	raw, err := d.transport.ReadFrame(size, d.config.Timeout)
	if err != nil {
		return Event{}, NewTransportError("pollEvent", "", err, ErrorTypeTransient)
	}
	if len(raw) == 0 {
		return Event{}, ErrNoEvent
	}
	debugf("RX % X", raw)
	d.lastReply = append(d.lastReply[:0], raw...)

	if err := frame.Validate(raw, d.config.Variant); err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrMalformedFrame, err)
	}

	value := frame.Payload(raw)
	switch frame.Command(raw) {
	case replyAccepted:
		return Event{Kind: KindAccepted, Value: value}, nil
	case replyTrackDone:
		return Event{Kind: KindTrackDone, Value: value}, nil
	case replyReady:
		return Event{Kind: KindReady, Value: value}, nil
	case replyError:
		return Event{Kind: KindError, Value: value}, nil
	default:
		return Event{Kind: KindUnknown, Value: value}, nil
	}
}
