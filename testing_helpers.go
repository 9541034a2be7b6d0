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
	"sync"
	"time"
)

// MockTransport is a scripted wire-level transport for tests. Writes are
// recorded, reads pop pre-queued reply chunks. An empty queue simulates a
// module that stays silent until the timeout.
type MockTransport struct {
	writeErr error
	readErr  error
	writes   [][]byte
	queue    [][]byte
	mu       sync.Mutex
	discards int
	closed   bool
}

// NewMockTransport creates an empty mock transport.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Write records the frame bytes.
func (m *MockTransport) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrNotConnected
	}
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.writes = append(m.writes, append([]byte(nil), p...))
	return len(p), nil
}

// ReadFrame pops the next queued chunk, truncated to n bytes. With nothing
// queued it returns an empty result, mimicking a silent module.
func (m *MockTransport) ReadFrame(n int, _ time.Duration) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrNotConnected
	}
	if m.readErr != nil {
		return nil, m.readErr
	}
	if len(m.queue) == 0 {
		return nil, nil
	}
	chunk := m.queue[0]
	m.queue = m.queue[1:]
	if len(chunk) > n {
		chunk = chunk[:n]
	}
	return chunk, nil
}

// DiscardInput counts invocations; queued replies stay available so tests
// can script an exchange end to end.
func (m *MockTransport) DiscardInput() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrNotConnected
	}
	m.discards++
	return nil
}

// Close marks the transport closed.
func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// IsConnected reports whether Close has not been called.
func (m *MockTransport) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.closed
}

// Type returns TransportMock.
func (*MockTransport) Type() TransportType {
	return TransportMock
}

// QueueReply appends one inbound chunk for a future ReadFrame.
func (m *MockTransport) QueueReply(raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, append([]byte(nil), raw...))
}

// SetWriteError makes all subsequent writes fail with err.
func (m *MockTransport) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// SetReadError makes all subsequent reads fail with err.
func (m *MockTransport) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// Writes returns all recorded outbound frames.
func (m *MockTransport) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.writes))
	copy(out, m.writes)
	return out
}

// LastWrite returns the most recent outbound frame, or nil.
func (m *MockTransport) LastWrite() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return nil
	}
	return append([]byte(nil), m.writes[len(m.writes)-1]...)
}

// Discards returns how many times DiscardInput ran.
func (m *MockTransport) Discards() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.discards
}
