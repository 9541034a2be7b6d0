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

// Package uart provides the serial transport for DFPlayer modules.
package uart

import (
	"fmt"
	"time"

	dfplayer "github.com/tonewheel/go-dfplayer"
	"go.bug.st/serial"
)

// DefaultBaudRate is the fixed rate of genuine modules. Some clone boards
// are strapped to other rates, hence WithBaudRate.
const DefaultBaudRate = 9600

// Transport implements the dfplayer.Transport interface over a serial port.
type Transport struct {
	port     serial.Port
	portName string
	baudRate int
}

// Option is a functional option for configuring the transport.
type Option func(*Transport)

// WithBaudRate overrides the default 9600 baud.
func WithBaudRate(baud int) Option {
	return func(t *Transport) {
		t.baudRate = baud
	}
}

// New opens the named serial port with the module's framing (8 data bits,
// no parity, one stop bit).
func New(portName string, opts ...Option) (*Transport, error) {
	transport := &Transport{
		portName: portName,
		baudRate: DefaultBaudRate,
	}
	for _, opt := range opts {
		opt(transport)
	}

	mode := &serial.Mode{
		BaudRate: transport.baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}
	transport.port = port

	return transport, nil
}

// Write sends raw frame bytes to the module.
func (t *Transport) Write(p []byte) (int, error) {
	if t.port == nil {
		return 0, dfplayer.ErrNotConnected
	}
	n, err := t.port.Write(p)
	if err != nil {
		return n, dfplayer.NewTransportError("write", t.portName, err, dfplayer.ErrorTypeTransient)
	}
	return n, nil
}

// ReadFrame reads up to n bytes, blocking until they arrived or timeout
// elapsed. A short result is returned as-is; the frame codec decides what
// to make of it.
func (t *Transport) ReadFrame(n int, timeout time.Duration) ([]byte, error) {
	if t.port == nil {
		return nil, dfplayer.ErrNotConnected
	}

	buf := make([]byte, n)
	read := 0
	deadline := time.Now().Add(timeout)

	for read < n {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		if err := t.port.SetReadTimeout(remaining); err != nil {
			return buf[:read], dfplayer.NewTransportError("setReadTimeout", t.portName, err, dfplayer.ErrorTypePermanent)
		}

		k, err := t.port.Read(buf[read:])
		if err != nil {
			return buf[:read], dfplayer.NewTransportError("read", t.portName, err, dfplayer.ErrorTypeTransient)
		}
		if k == 0 {
			// Port-level timeout with nothing more arriving.
			break
		}
		read += k
	}

	return buf[:read], nil
}

// DiscardInput drops any bytes buffered by the OS for this port.
func (t *Transport) DiscardInput() error {
	if t.port == nil {
		return dfplayer.ErrNotConnected
	}
	if err := t.port.ResetInputBuffer(); err != nil {
		return dfplayer.NewTransportError("discardInput", t.portName, err, dfplayer.ErrorTypeTransient)
	}
	return nil
}

// Close closes the serial port.
func (t *Transport) Close() error {
	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	if err != nil {
		return fmt.Errorf("failed to close serial port %s: %w", t.portName, err)
	}
	return nil
}

// IsConnected returns true if the port is open.
func (t *Transport) IsConnected() bool {
	return t.port != nil
}

// Type returns the transport type.
func (*Transport) Type() dfplayer.TransportType {
	return dfplayer.TransportUART
}

// PortName returns the path of the underlying serial port.
func (t *Transport) PortName() string {
	return t.portName
}
