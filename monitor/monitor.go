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

// Package monitor watches for the status frames a DFPlayer module emits on
// its own: track finished, ready after boot, and command errors.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	dfplayer "github.com/tonewheel/go-dfplayer"
)

// Config controls the monitoring loop.
type Config struct {
	// PollInterval is the pause between poll attempts. Each attempt already
	// blocks for the device's reply timeout, so this only throttles the
	// idle loop.
	PollInterval time.Duration
}

// DefaultConfig returns the default monitor configuration.
func DefaultConfig() *Config {
	return &Config{
		PollInterval: 10 * time.Millisecond,
	}
}

// Monitor runs a polling loop over a device and dispatches asynchronous
// module events to callbacks. The monitor owns the device's transport while
// running: do not issue queries from other goroutines concurrently.
type Monitor struct {
	device *dfplayer.Device
	config *Config

	// OnTrackDone fires when the module reports a finished track, with the
	// track number.
	OnTrackDone func(track uint16)
	// OnReady fires when the module reports boot completion, with the
	// online source bits.
	OnReady func(sources uint16)
	// OnError fires when the module reports a command error.
	OnError func(status dfplayer.CommandStatus)
	// OnAccepted fires for command acknowledgement frames (ack flag set).
	OnAccepted func()
}

// NewMonitor creates a monitor over the given device.
func NewMonitor(device *dfplayer.Device, config *Config) *Monitor {
	if config == nil {
		config = DefaultConfig()
	}
	return &Monitor{
		device: device,
		config: config,
	}
}

// Device returns the underlying device.
func (m *Monitor) Device() *dfplayer.Device {
	return m.device
}

// Start runs the monitoring loop until ctx is done. It returns ctx.Err()
// on cancellation and any transport failure immediately.
func (m *Monitor) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		event, err := m.device.PollEvent()
		switch {
		case err == nil:
			m.dispatch(event)
		case errors.Is(err, dfplayer.ErrNoEvent):
			// Idle; nothing arrived within the reply timeout.
		case errors.Is(err, dfplayer.ErrMalformedFrame), dfplayer.IsRetryable(err):
			// Garbled or partial frame; resynchronize on the next poll.
		default:
			return fmt.Errorf("event polling failed: %w", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.config.PollInterval):
		}
	}
}

func (m *Monitor) dispatch(event dfplayer.Event) {
	switch event.Kind {
	case dfplayer.KindTrackDone:
		if m.OnTrackDone != nil {
			m.OnTrackDone(event.Value)
		}
	case dfplayer.KindReady:
		if m.OnReady != nil {
			m.OnReady(event.Value)
		}
	case dfplayer.KindError:
		if m.OnError != nil {
			m.OnError(dfplayer.CommandStatus(byte(event.Value)))
		}
	case dfplayer.KindAccepted:
		if m.OnAccepted != nil {
			m.OnAccepted()
		}
	case dfplayer.KindUnknown:
		// Ignored; the frame stays visible through Device.CommandStatus.
	}
}
