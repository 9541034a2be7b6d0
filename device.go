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
	"io"
	"time"

	"github.com/tonewheel/go-dfplayer/internal/frame"
)

// Variant re-exports the chip variant so callers configure it without
// reaching into the internal codec package.
type Variant = frame.Variant

// Chip variants.
const (
	VariantStandard          = frame.VariantStandard
	VariantAlternateChecksum = frame.VariantAlternateChecksum
	VariantNoChecksum        = frame.VariantNoChecksum
)

// BootDelay is how long the module needs after power-on or reset before it
// accepts commands. Measured boot time runs 1.5s..3s depending on card size.
const BootDelay = 3 * time.Second

// settleSource is the pause after a source change, during which the module
// ignores further commands.
const settleSource = 200 * time.Millisecond

// DeviceConfig contains configuration options for the Device.
type DeviceConfig struct {
	// Timeout bounds the blocking read for query replies.
	Timeout time.Duration
	// Variant selects the chip profile (checksum arithmetic and frame size).
	Variant Variant
	// Ack asks the module to acknowledge every command with a 0x41 frame.
	Ack bool
	// BootDelay makes Init wait out the module's boot window.
	BootDelay bool
}

// DefaultDeviceConfig returns the default device configuration: standard
// chip, acknowledgements off, boot delay on, variant-derived timeout.
func DefaultDeviceConfig() *DeviceConfig {
	return &DeviceConfig{
		Timeout:   VariantStandard.DefaultTimeout(),
		Variant:   VariantStandard,
		Ack:       false,
		BootDelay: true,
	}
}

// Device drives a DFPlayer module over a Transport.
//
// Thread Safety: Device is NOT thread-safe. The module supports a single
// in-flight request/response pair, so all methods must be called from one
// goroutine or protected with external synchronization.
type Device struct {
	transport Transport
	config    *DeviceConfig
	sleep     func(time.Duration)
	lastReply []byte
	// timeoutSet records an explicit timeout so SetVariant does not clobber
	// a caller-chosen value with the variant default.
	timeoutSet bool
}

// New creates a new Device on the given transport. The transport is
// borrowed: Close closes it, but the caller owns its lifetime otherwise.
func New(transport Transport, opts ...Option) (*Device, error) {
	if transport == nil {
		return nil, ErrNoTransport
	}

	device := &Device{
		transport: transport,
		config:    DefaultDeviceConfig(),
		sleep:     time.Sleep,
	}

	for _, opt := range opts {
		if err := opt(device); err != nil {
			return nil, err
		}
	}

	return device, nil
}

// Init waits out the module's boot window. Call it once after power-on;
// skip the wait with WithBootDelay(false) when the module has been running.
func (d *Device) Init() error {
	if d.config.BootDelay {
		debugf("waiting %v for module boot", BootDelay)
		d.sleep(BootDelay)
	}
	return nil
}

// Transport returns the underlying transport.
func (d *Device) Transport() Transport {
	return d.transport
}

// SetTimeout sets the reply timeout for queries and event polling.
func (d *Device) SetTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return ErrInvalidParameter
	}
	d.config.Timeout = timeout
	d.timeoutSet = true
	return nil
}

// Timeout returns the active reply timeout.
func (d *Device) Timeout() time.Duration {
	return d.config.Timeout
}

// SetAck enables or disables the acknowledgement flag carried in byte 4 of
// every outbound frame. With the flag set, the module answers each accepted
// command with a 0x41 frame visible through CommandStatus.
func (d *Device) SetAck(enable bool) {
	d.config.Ack = enable
}

// SetVariant switches the active chip variant at runtime. Unless the caller
// pinned a timeout explicitly, the reply timeout follows the new variant's
// default.
func (d *Device) SetVariant(v Variant) error {
	if !v.Valid() {
		return ErrInvalidParameter
	}
	d.config.Variant = v
	if !d.timeoutSet {
		d.config.Timeout = v.DefaultTimeout()
	}
	return nil
}

// Variant returns the active chip variant.
func (d *Device) Variant() Variant {
	return d.config.Variant
}

// LastReply returns a copy of the raw bytes most recently received from the
// module, or nil if nothing has been received yet.
func (d *Device) LastReply() []byte {
	if len(d.lastReply) == 0 {
		return nil
	}
	return append([]byte(nil), d.lastReply...)
}

// Close closes the device connection.
func (d *Device) Close() error {
	if d.transport != nil {
		if err := d.transport.Close(); err != nil {
			return fmt.Errorf("failed to close transport: %w", err)
		}
	}
	return nil
}

// send encodes one command frame and writes it to the transport. Actions
// are fire-and-forget: the module sends no reply payload for them, so a
// successful write completes the operation.
func (d *Device) send(cmd, dataHigh, dataLow byte) error {
	buf := frame.Encode(cmd, dataHigh, dataLow, d.config.Ack, d.config.Variant)
	debugf("TX % X", buf)

	n, err := d.transport.Write(buf)
	if err != nil {
		return NewTransportError("write", "", err, ErrorTypeTransient)
	}
	if n != len(buf) {
		return NewTransportError("write", "", io.ErrShortWrite, ErrorTypeTransient)
	}
	return nil
}

// query sends a command and blocks for the matching reply, returning its
// 16-bit payload. Every failure mode (short read, malformed frame, wrong
// command echoed) collapses to 0 here: the wire protocol cannot distinguish
// them, and callers that need more detail inspect CommandStatus.
func (d *Device) query(cmd, dataHigh, dataLow byte) uint16 {
	// Stale bytes from an earlier unacknowledged frame would corrupt this
	// decode, so the input buffer is cleared before the exchange.
	if err := d.transport.DiscardInput(); err != nil {
		debugf("discard input: %v", err)
		return 0
	}

	if err := d.send(cmd, dataHigh, dataLow); err != nil {
		debugf("query %#02x: %v", cmd, err)
		return 0
	}

	size := d.config.Variant.Size()
	raw, err := d.transport.ReadFrame(size, d.config.Timeout)
	d.lastReply = append(d.lastReply[:0], raw...)
	if err != nil {
		debugf("query %#02x read: %v", cmd, err)
		return 0
	}
	debugf("RX % X", raw)

	value, err := frame.Decode(raw, cmd, d.config.Variant)
	if err != nil {
		debugf("query %#02x decode: %v", cmd, err)
		return 0
	}
	return value
}

// settle pauses after a mode-affecting command. The module is documented as
// unresponsive during this window; commands issued inside it are ignored or
// misinterpreted.
func (d *Device) settle(dur time.Duration) {
	d.sleep(dur)
}
