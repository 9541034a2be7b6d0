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

// Query commands. Each one blocks for the matching reply frame, bounded by
// the configured timeout, and returns 0 on any communication failure. The
// zero sentinel is indistinguishable from a legitimate zero result by
// design; CommandStatus exposes what actually arrived.

package dfplayer

// Status queries the playback state. StateUnknown covers both communication
// failures and state words the module is not documented to emit.
func (d *Device) Status() PlayState {
	switch d.query(cmdGetStatus, 0, 0) {
	case 0x0200:
		return StateStopped
	case 0x0201:
		return StatePlaying
	case 0x0202:
		return StatePaused
	case 0x0001:
		return StateAsleep
	default:
		return StateUnknown
	}
}

// Volume queries the current volume (0..30).
func (d *Device) Volume() uint8 {
	return uint8(d.query(cmdGetVolume, 0, 0))
}

// CurrentEQ queries the active equalizer preset.
func (d *Device) CurrentEQ() EQ {
	return EQ(d.query(cmdGetEQ, 0, 0))
}

// CurrentPlayMode queries the active loop/shuffle mode.
func (d *Device) CurrentPlayMode() PlayMode {
	return PlayMode(d.query(cmdGetPlayMode, 0, 0))
}

// Version queries the module's firmware version.
func (d *Device) Version() uint8 {
	return uint8(d.query(cmdGetVersion, 0, 0))
}

// TotalTracksUSB queries the number of tracks on the USB disk. This query
// stops any current playback on the module.
func (d *Device) TotalTracksUSB() uint16 {
	return d.query(cmdGetTracksUSB, 0, 0)
}

// TotalTracksSD queries the number of tracks on the SD card. The module
// keeps answering with the old count after the card is removed, and the
// query stops any current playback.
func (d *Device) TotalTracksSD() uint16 {
	return d.query(cmdGetTracksSD, 0, 0)
}

// TotalTracksFlash queries the number of tracks on the NOR flash. This
// query stops any current playback on the module.
func (d *Device) TotalTracksFlash() uint16 {
	return d.query(cmdGetTracksFlash, 0, 0)
}

// TrackUSB queries the number of the track currently playing from USB.
func (d *Device) TrackUSB() uint16 {
	return d.query(cmdGetTrackUSB, 0, 0)
}

// TrackSD queries the number of the track currently playing from SD.
func (d *Device) TrackSD() uint16 {
	return d.query(cmdGetTrackSD, 0, 0)
}

// TrackFlash queries the number of the track currently playing from flash.
func (d *Device) TrackFlash() uint16 {
	return d.query(cmdGetTrackFlash, 0, 0)
}

// TotalTracksFolder queries the number of tracks in a numbered folder,
// saturated to 1..99. This query stops any current playback on the module.
func (d *Device) TotalTracksFolder(folder uint8) uint8 {
	folder = clamp8(folder, 1, 99)
	return uint8(d.query(cmdGetTracksFolder, 0, folder))
}
