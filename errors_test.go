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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		name string
		want bool
	}{
		{nil, "nil", false},
		{ErrTransportTimeout, "timeout sentinel", true},
		{ErrTransportRead, "read sentinel", true},
		{ErrTransportWrite, "write sentinel", true},
		{ErrInvalidParameter, "invalid parameter", false},
		{ErrNoEvent, "no event", false},
		{ErrMalformedFrame, "malformed frame", false},
		{ErrNoDeviceFound, "no device found", false},
		{
			NewTransportError("read", "/dev/ttyUSB0", errors.New("eio"), ErrorTypeTransient),
			"transient transport error",
			true,
		},
		{
			NewTransportError("open", "/dev/ttyUSB0", errors.New("enoent"), ErrorTypePermanent),
			"permanent transport error",
			false,
		},
		{
			fmt.Errorf("query: %w", NewTimeoutError("readFrame", "/dev/ttyUSB0")),
			"wrapped timeout",
			true,
		},
		{errors.New("something else"), "unclassified", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	inner := errors.New("device reports readiness to read but returned no data")
	err := NewTransportError("readFrame", "/dev/ttyUSB0", inner, ErrorTypeTransient)

	assert.Equal(t, "dfplayer: readFrame on /dev/ttyUSB0: device reports readiness to read but returned no data", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := NewTransportError("write", "", inner, ErrorTypeTransient)
	assert.Equal(t, "dfplayer: write: device reports readiness to read but returned no data", bare.Error())
}

func TestNewTimeoutError(t *testing.T) {
	t.Parallel()

	err := NewTimeoutError("readFrame", "/dev/ttyACM0")
	assert.ErrorIs(t, err, ErrTransportTimeout)
	assert.Equal(t, ErrorTypeTransient, err.Type)
}

func TestGetErrorType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ErrorTypeTransient, GetErrorType(ErrTransportTimeout))
	assert.Equal(t, ErrorTypePermanent, GetErrorType(ErrInvalidParameter))
	assert.Equal(t, ErrorTypePermanent, GetErrorType(nil))
}
