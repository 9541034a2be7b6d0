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

package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dfplayer "github.com/tonewheel/go-dfplayer"
	"github.com/tonewheel/go-dfplayer/internal/frame"
)

func newTestMonitor(t *testing.T) (*Monitor, *dfplayer.MockTransport) {
	t.Helper()

	mock := dfplayer.NewMockTransport()
	device, err := dfplayer.New(mock, dfplayer.WithTimeout(time.Millisecond))
	require.NoError(t, err)

	return NewMonitor(device, &Config{PollInterval: time.Millisecond}), mock
}

func moduleFrame(cmd byte, value uint16) []byte {
	return frame.Encode(cmd, byte(value>>8), byte(value), false, frame.VariantStandard)
}

func TestMonitorDispatchesTrackDone(t *testing.T) {
	t.Parallel()

	monitor, mock := newTestMonitor(t)
	mock.QueueReply(moduleFrame(0x3D, 12))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got uint16
	monitor.OnTrackDone = func(track uint16) {
		got = track
		cancel()
	}

	err := monitor.Start(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint16(12), got)
}

func TestMonitorDispatchesAllKinds(t *testing.T) {
	t.Parallel()

	monitor, mock := newTestMonitor(t)
	mock.QueueReply(moduleFrame(0x3F, 0x0003))
	mock.QueueReply(moduleFrame(0x41, 0))
	mock.QueueReply(moduleFrame(0x40, 0x0006))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var (
		sources  uint16
		accepted bool
		status   dfplayer.CommandStatus
	)
	monitor.OnReady = func(s uint16) { sources = s }
	monitor.OnAccepted = func() { accepted = true }
	monitor.OnError = func(s dfplayer.CommandStatus) {
		status = s
		cancel()
	}

	err := monitor.Start(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint16(0x0003), sources)
	assert.True(t, accepted)
	assert.Equal(t, dfplayer.StatusNotFound, status)
}

func TestMonitorIdlesUntilCancelled(t *testing.T) {
	t.Parallel()

	monitor, _ := newTestMonitor(t)

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	err := monitor.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// Garbled bytes on the line must not stop the loop; the next well-formed
// frame is still dispatched.
func TestMonitorResyncsAfterGarbage(t *testing.T) {
	t.Parallel()

	monitor, mock := newTestMonitor(t)
	mock.QueueReply([]byte{0x00, 0x01, 0x02})
	mock.QueueReply(moduleFrame(0x3D, 7))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got uint16
	monitor.OnTrackDone = func(track uint16) {
		got = track
		cancel()
	}

	err := monitor.Start(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint16(7), got)
}

// Transient read failures are resynchronization cases, not reasons to stop.
func TestMonitorSurvivesReadFailures(t *testing.T) {
	t.Parallel()

	monitor, mock := newTestMonitor(t)
	mock.SetReadError(errors.New("eio"))

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	err := monitor.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewMonitorDefaults(t *testing.T) {
	t.Parallel()

	mock := dfplayer.NewMockTransport()
	device, err := dfplayer.New(mock)
	require.NoError(t, err)

	monitor := NewMonitor(device, nil)
	assert.Equal(t, DefaultConfig().PollInterval, monitor.config.PollInterval)
	assert.Same(t, device, monitor.Device())
}
