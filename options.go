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
	"time"
)

// Option is a functional option for configuring a Device.
type Option func(*Device) error

// WithTimeout sets the reply timeout, overriding the variant default.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Device) error {
		return d.SetTimeout(timeout)
	}
}

// WithAck enables command acknowledgement frames from the module.
func WithAck(enable bool) Option {
	return func(d *Device) error {
		d.SetAck(enable)
		return nil
	}
}

// WithVariant selects the chip variant of the attached module.
func WithVariant(v Variant) Option {
	return func(d *Device) error {
		return d.SetVariant(v)
	}
}

// WithBootDelay controls whether Init waits out the module's boot window.
// Disable it when attaching to a module that has been powered for a while.
func WithBootDelay(enable bool) Option {
	return func(d *Device) error {
		d.config.BootDelay = enable
		return nil
	}
}
