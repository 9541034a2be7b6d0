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

package uart

import (
	"errors"
	"testing"

	dfplayer "github.com/tonewheel/go-dfplayer"
)

// TestTransportCreation verifies basic transport properties without opening
// a real port.
func TestTransportCreation(t *testing.T) {
	t.Parallel()

	testPortName := "/dev/ttyUSB0"
	transport := &Transport{
		portName: testPortName,
		baudRate: DefaultBaudRate,
	}

	if transport.PortName() != testPortName {
		t.Errorf("Expected port name %s, got %s", testPortName, transport.PortName())
	}

	if transport.Type() != dfplayer.TransportUART {
		t.Errorf("Expected transport type %v, got %v", dfplayer.TransportUART, transport.Type())
	}

	if transport.IsConnected() {
		t.Error("Expected IsConnected() to return false for uninitialized transport")
	}
}

func TestWithBaudRate(t *testing.T) {
	t.Parallel()

	transport := &Transport{baudRate: DefaultBaudRate}
	WithBaudRate(115200)(transport)

	if transport.baudRate != 115200 {
		t.Errorf("Expected baud rate 115200, got %d", transport.baudRate)
	}
}

// All I/O methods must fail cleanly on a transport that never opened a port.
func TestOperationsOnClosedTransport(t *testing.T) {
	t.Parallel()

	transport := &Transport{portName: "COM7"}

	if _, err := transport.Write([]byte{0x7E}); !errors.Is(err, dfplayer.ErrNotConnected) {
		t.Errorf("Write error = %v, want ErrNotConnected", err)
	}
	if _, err := transport.ReadFrame(10, 0); !errors.Is(err, dfplayer.ErrNotConnected) {
		t.Errorf("ReadFrame error = %v, want ErrNotConnected", err)
	}
	if err := transport.DiscardInput(); !errors.Is(err, dfplayer.ErrNotConnected) {
		t.Errorf("DiscardInput error = %v, want ErrNotConnected", err)
	}
	if err := transport.Close(); err != nil {
		t.Errorf("Close on unopened transport should be nil, got %v", err)
	}
}
