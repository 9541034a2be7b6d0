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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDevice builds a device over a mock transport with the boot delay
// replaced by a recorder, so tests never actually sleep.
func newTestDevice(t *testing.T, opts ...Option) (*Device, *MockTransport, *[]time.Duration) {
	t.Helper()

	mock := NewMockTransport()
	device, err := New(mock, opts...)
	require.NoError(t, err)

	var slept []time.Duration
	device.sleep = func(d time.Duration) {
		slept = append(slept, d)
	}
	return device, mock, &slept
}

func TestNewRequiresTransport(t *testing.T) {
	t.Parallel()

	device, err := New(nil)
	require.ErrorIs(t, err, ErrNoTransport)
	assert.Nil(t, device)
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	device, _, _ := newTestDevice(t)

	assert.Equal(t, VariantStandard, device.Variant())
	assert.Equal(t, VariantStandard.DefaultTimeout(), device.Timeout())
	assert.False(t, device.config.Ack)
	assert.True(t, device.config.BootDelay)
	assert.Nil(t, device.LastReply())
}

func TestNewWithOptions(t *testing.T) {
	t.Parallel()

	device, _, _ := newTestDevice(t,
		WithVariant(VariantNoChecksum),
		WithTimeout(250*time.Millisecond),
		WithAck(true),
		WithBootDelay(false),
	)

	assert.Equal(t, VariantNoChecksum, device.Variant())
	assert.Equal(t, 250*time.Millisecond, device.Timeout())
	assert.True(t, device.config.Ack)
	assert.False(t, device.config.BootDelay)
}

func TestInitBootDelay(t *testing.T) {
	t.Parallel()

	device, _, slept := newTestDevice(t)
	require.NoError(t, device.Init())
	assert.Equal(t, []time.Duration{BootDelay}, *slept)

	device, _, slept = newTestDevice(t, WithBootDelay(false))
	require.NoError(t, device.Init())
	assert.Empty(t, *slept)
}

func TestSetTimeoutValidation(t *testing.T) {
	t.Parallel()

	device, _, _ := newTestDevice(t)

	require.NoError(t, device.SetTimeout(time.Second))
	assert.Equal(t, time.Second, device.Timeout())

	require.ErrorIs(t, device.SetTimeout(0), ErrInvalidParameter)
	require.ErrorIs(t, device.SetTimeout(-time.Second), ErrInvalidParameter)
	assert.Equal(t, time.Second, device.Timeout())
}

// Switching the variant adopts its default timeout unless the caller pinned
// one explicitly.
func TestSetVariantTimeoutFollowsVariant(t *testing.T) {
	t.Parallel()

	device, _, _ := newTestDevice(t)
	require.NoError(t, device.SetVariant(VariantNoChecksum))
	assert.Equal(t, VariantNoChecksum.DefaultTimeout(), device.Timeout())

	pinned, _, _ := newTestDevice(t, WithTimeout(42*time.Millisecond))
	require.NoError(t, pinned.SetVariant(VariantNoChecksum))
	assert.Equal(t, 42*time.Millisecond, pinned.Timeout())

	require.ErrorIs(t, device.SetVariant(Variant(9)), ErrInvalidParameter)
}

func TestCloseClosesTransport(t *testing.T) {
	t.Parallel()

	device, mock, _ := newTestDevice(t)
	require.NoError(t, device.Close())
	assert.False(t, mock.IsConnected())
}

func TestLastReplyIsACopy(t *testing.T) {
	t.Parallel()

	device, mock, _ := newTestDevice(t)
	mock.QueueReply([]byte{0x7E, 0xFF, 0x06, 0x43, 0x00, 0x00, 0x1E, 0xFE, 0x9A, 0xEF})
	_ = device.Volume()

	reply := device.LastReply()
	require.NotNil(t, reply)
	reply[0] = 0x00
	assert.Equal(t, byte(0x7E), device.LastReply()[0])
}
