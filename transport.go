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

import "time"

// Transport is the ordered byte stream carrying frames to and from the
// module. The canonical implementation is transport/uart; tests use
// MockTransport.
type Transport interface {
	// Write sends raw frame bytes and returns the count written.
	Write(p []byte) (int, error)

	// ReadFrame reads up to n bytes, blocking until n bytes have arrived or
	// timeout elapses. It returns whatever arrived; a short result is not an
	// error at this layer, the frame codec rejects it as incomplete.
	ReadFrame(n int, timeout time.Duration) ([]byte, error)

	// DiscardInput drops any buffered inbound bytes. The dispatcher calls
	// this before each query so stale bytes from a prior unacknowledged
	// frame cannot corrupt the next decode.
	DiscardInput() error

	// Close closes the transport connection.
	Close() error

	// IsConnected returns true if the transport is usable.
	IsConnected() bool

	// Type returns the transport type.
	Type() TransportType
}

// TransportType represents the type of transport.
type TransportType string

const (
	// TransportUART represents UART/serial transport.
	TransportUART TransportType = "uart"
	// TransportMock represents a mock transport for testing.
	TransportMock TransportType = "mock"
)
