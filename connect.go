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
	"errors"
	"fmt"
	"time"

	"github.com/tonewheel/go-dfplayer/detection"
)

// TransportFactory creates a transport for a serial port path. The concrete
// implementation lives in transport/uart; it is injected here to keep the
// root package free of serial backend imports.
type TransportFactory func(path string) (Transport, error)

// ConnectOption is a functional option for ConnectDevice.
type ConnectOption func(*connectConfig) error

// connectConfig holds configuration options for device connection.
type connectConfig struct {
	transportFactory TransportFactory
	detectionOpts    *detection.Options
	deviceOptions    []Option
	timeout          time.Duration
	autoDetect       bool
}

// WithAutoDetection enables automatic serial port detection instead of a
// specific path.
func WithAutoDetection() ConnectOption {
	return func(c *connectConfig) error {
		c.autoDetect = true
		return nil
	}
}

// WithDetectionOptions sets the port detection options used with
// auto-detection.
func WithDetectionOptions(opts *detection.Options) ConnectOption {
	return func(c *connectConfig) error {
		c.detectionOpts = opts
		return nil
	}
}

// WithDeviceOptions adds device-level options applied after construction.
func WithDeviceOptions(opts ...Option) ConnectOption {
	return func(c *connectConfig) error {
		c.deviceOptions = append(c.deviceOptions, opts...)
		return nil
	}
}

// WithConnectTimeout sets the reply timeout applied to the connected device.
func WithConnectTimeout(timeout time.Duration) ConnectOption {
	return func(c *connectConfig) error {
		c.timeout = timeout
		return nil
	}
}

// WithTransportFactory sets the transport factory function.
func WithTransportFactory(factory TransportFactory) ConnectOption {
	return func(c *connectConfig) error {
		c.transportFactory = factory
		return nil
	}
}

// ConnectDevice creates and initializes a device from a port path or
// auto-detection. It is a convenience wrapper handling transport creation,
// boot delay, and timeout setup.
//
// Example usage:
//
//	device, err := dfplayer.ConnectDevice("/dev/ttyUSB0",
//	    dfplayer.WithTransportFactory(func(path string) (dfplayer.Transport, error) {
//	        return uart.New(path)
//	    }))
func ConnectDevice(path string, opts ...ConnectOption) (*Device, error) {
	config, err := applyConnectOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to apply connect options: %w", err)
	}

	transport, err := createTransport(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	device, err := setupDevice(transport, config)
	if err != nil {
		_ = transport.Close()
		return nil, err
	}

	return device, nil
}

func applyConnectOptions(opts []ConnectOption) (*connectConfig, error) {
	config := &connectConfig{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func createTransport(path string, config *connectConfig) (Transport, error) {
	if config.transportFactory == nil {
		return nil, errors.New("transport factory not provided")
	}

	if config.autoDetect || path == "" {
		detected, err := autoDetectPort(config.detectionOpts)
		if err != nil {
			return nil, err
		}
		path = detected
	}

	transport, err := config.transportFactory(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport for %s: %w", path, err)
	}
	return transport, nil
}

func setupDevice(transport Transport, config *connectConfig) (*Device, error) {
	device, err := New(transport, config.deviceOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	if config.timeout > 0 {
		if err := device.SetTimeout(config.timeout); err != nil {
			return nil, fmt.Errorf("failed to set timeout: %w", err)
		}
	}

	if err := device.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize device: %w", err)
	}

	return device, nil
}

func autoDetectPort(opts *detection.Options) (string, error) {
	if opts == nil {
		defaults := detection.DefaultOptions()
		opts = &defaults
	}

	devices, err := detection.DetectAll(opts)
	if err != nil {
		return "", fmt.Errorf("failed to detect serial ports: %w", err)
	}
	if len(devices) == 0 {
		return "", ErrNoDeviceFound
	}

	// Use the first detected candidate.
	return devices[0].Path, nil
}
