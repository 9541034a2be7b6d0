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
)

// Package errors. Transport failures are transient by nature (an unplugged
// adapter, a slow module) while usage errors are permanent.
var (
	// ErrNoTransport is returned by New when no transport is supplied.
	ErrNoTransport = errors.New("no transport configured")
	// ErrNotConnected is returned by transports used after Close.
	ErrNotConnected = errors.New("transport not connected")
	// ErrTransportRead indicates a failed read from the serial link.
	ErrTransportRead = errors.New("transport read failed")
	// ErrTransportWrite indicates a failed or short write to the serial link.
	ErrTransportWrite = errors.New("transport write failed")
	// ErrTransportTimeout indicates the reply window elapsed.
	ErrTransportTimeout = errors.New("transport timeout")
	// ErrInvalidParameter indicates an unusable configuration value.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNoEvent is returned by PollEvent when no frame arrived within the
	// response timeout. This is the normal idle outcome, not a failure.
	ErrNoEvent = errors.New("no event pending")
	// ErrMalformedFrame is returned by PollEvent for bytes that do not form
	// a valid frame. The caller can resynchronize by polling again.
	ErrMalformedFrame = errors.New("malformed frame")
	// ErrNoDeviceFound is returned when auto-detection finds no usable port.
	ErrNoDeviceFound = errors.New("no serial device found")
)

// ErrorType classifies an error for retry decisions.
type ErrorType int

// Error classifications.
const (
	// ErrorTypeTransient marks errors worth retrying.
	ErrorTypeTransient ErrorType = iota
	// ErrorTypePermanent marks errors that will not go away on their own.
	ErrorTypePermanent
)

// TransportError wraps a transport-level failure with the operation and port
// it occurred on.
type TransportError struct {
	Err  error
	Op   string
	Port string
	Type ErrorType
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("dfplayer: %s on %s: %v", e.Op, e.Port, e.Err)
	}
	return fmt.Sprintf("dfplayer: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a classified transport error.
func NewTransportError(op, port string, err error, errType ErrorType) *TransportError {
	return &TransportError{Op: op, Port: port, Err: err, Type: errType}
}

// NewTimeoutError creates a transient timeout error for the given operation.
func NewTimeoutError(op, port string) *TransportError {
	return &TransportError{Op: op, Port: port, Err: ErrTransportTimeout, Type: ErrorTypeTransient}
}

// IsRetryable reports whether an operation that failed with err is worth
// retrying. Structural frame errors are not listed here: the protocol has no
// retransmission, so a malformed reply surfaces as the zero sentinel instead.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var te *TransportError
	if errors.As(err, &te) {
		return te.Type == ErrorTypeTransient
	}

	switch {
	case errors.Is(err, ErrTransportTimeout),
		errors.Is(err, ErrTransportRead),
		errors.Is(err, ErrTransportWrite):
		return true
	default:
		return false
	}
}

// GetErrorType returns the classification of err.
func GetErrorType(err error) ErrorType {
	if IsRetryable(err) {
		return ErrorTypeTransient
	}
	return ErrorTypePermanent
}
