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

// Action commands. All of them are fire-and-forget: arguments are saturated
// to their legal range rather than rejected, and the only possible error is
// a transport write failure. The module offers no synchronous error channel
// for malformed requests, so availability wins over strict validation.

package dfplayer

// Next plays the next track in chronological (upload) order.
func (d *Device) Next() error {
	return d.send(cmdPlayNext, 0, 0)
}

// Previous plays the previous track in chronological (upload) order.
func (d *Device) Previous() error {
	return d.send(cmdPlayPrevious, 0, 0)
}

// PlayTrack plays a track from the root of the storage medium. Files must
// be named with four leading decimal digits (0001.mp3 .. 9999.mp3); the
// track number is saturated to 1..9999.
func (d *Device) PlayTrack(track uint16) error {
	track = clamp16(track, 1, 9999)
	return d.send(cmdPlayTrack, byte(track>>8), byte(track))
}

// Pause pauses the current track.
func (d *Device) Pause() error {
	return d.send(cmdPause, 0, 0)
}

// Resume resumes the current track after Pause or Stop.
func (d *Device) Resume() error {
	return d.send(cmdResume, 0, 0)
}

// Stop stops the current track. Call Stop after Pause before starting a
// track from another folder, or the new track will not play.
func (d *Device) Stop() error {
	return d.send(cmdStop, 0, 0)
}

// PlayFolder plays a track from a numbered folder. Folders are named 01..99
// and files inside them 001..255; both arguments are saturated accordingly.
func (d *Device) PlayFolder(folder, track uint8) error {
	folder = clamp8(folder, 1, 99)
	if track == 0 {
		track = 1
	}
	return d.send(cmdPlayFolder, folder, track)
}

// PlayMP3Folder plays a track from the "mp3" folder. Files must be named
// 0001..9999; the track number is saturated to that range.
func (d *Device) PlayMP3Folder(track uint16) error {
	track = clamp16(track, 1, 9999)
	return d.send(cmdPlayMP3Folder, byte(track>>8), byte(track))
}

// PlayAdvert interrupts the current track with a track from the "advert"
// folder (files 0001..9999), then resumes the interrupted track.
func (d *Device) PlayAdvert(track uint16) error {
	track = clamp16(track, 1, 9999)
	return d.send(cmdPlayAdvert, byte(track>>8), byte(track))
}

// StopAdvert cancels an advert interruption and resumes the original track.
func (d *Device) StopAdvert() error {
	return d.send(cmdStopAdvert, 0, 0)
}

// SetVolume sets the output volume, saturated to 0..30.
func (d *Device) SetVolume(volume uint8) error {
	if volume > 30 {
		volume = 30
	}
	return d.send(cmdSetVolume, 0, volume)
}

// VolumeUp increments the volume by one step.
func (d *Device) VolumeUp() error {
	return d.send(cmdVolumeUp, 0, 0)
}

// VolumeDown decrements the volume by one step.
func (d *Device) VolumeDown() error {
	return d.send(cmdVolumeDown, 0, 0)
}

// SetEQ selects an equalizer preset, saturated to the EQOff..EQBass range.
func (d *Device) SetEQ(preset EQ) error {
	if preset > EQBass {
		preset = EQBass
	}
	return d.send(cmdSetEQ, 0, byte(preset))
}

// EnableDAC enables or disables the on-chip DAC. The wire encoding is
// inverted: 0 enables, 1 disables.
func (d *Device) EnableDAC(enable bool) error {
	return d.send(cmdSetDAC, 0, boolByte(!enable))
}

// SetDACGain sets the DAC output gain (voltage swing), saturated to 0..31.
// The high data byte switches the gain stage on or off.
func (d *Device) SetDACGain(gain uint8, enable bool) error {
	if gain > 31 {
		gain = 31
	}
	return d.send(cmdSetDACGain, boolByte(enable), gain)
}

// RepeatTrack plays and loops a track from the root of the storage medium,
// saturated to 1..9999.
func (d *Device) RepeatTrack(track uint16) error {
	track = clamp16(track, 1, 9999)
	return d.send(cmdRepeatTrack, byte(track>>8), byte(track))
}

// RepeatCurrentTrack loops the currently playing track. Any playback command
// returns the module to normal playback. The wire encoding is inverted:
// 0 repeats, 1 stops repeating.
func (d *Device) RepeatCurrentTrack(enable bool) error {
	return d.send(cmdRepeatCurrent, 0, boolByte(!enable))
}

// RepeatAll repeats all files in chronological (upload) order.
func (d *Device) RepeatAll(enable bool) error {
	return d.send(cmdRepeatAll, 0, boolByte(enable))
}

// RepeatFolder repeats all tracks of a numbered folder, saturated to 1..99.
func (d *Device) RepeatFolder(folder uint8) error {
	folder = clamp8(folder, 1, 99)
	return d.send(cmdRepeatFolder, 0, folder)
}

// RandomAll plays all tracks in random order.
func (d *Device) RandomAll() error {
	return d.send(cmdRandomAll, 0, 0)
}

// SetSource selects the playback storage medium, saturated to the
// SourceUSB..SourceFlash range. The command interrupts playback, and the
// module ignores further commands for 200ms afterwards; SetSource blocks
// for that settle window before returning.
func (d *Device) SetSource(source Source) error {
	if source < SourceUSB {
		source = SourceUSB
	} else if source > SourceFlash {
		source = SourceFlash
	}

	if err := d.send(cmdSetSource, 0, byte(source)); err != nil {
		return err
	}
	d.settle(settleSource)
	return nil
}

// Sleep puts the module into sleep mode by selecting the sleep source. In
// sleep mode the module ignores playback commands; use Wakeup to leave it.
func (d *Device) Sleep() error {
	// Sent directly: SetSource saturates its argument to real media sources
	// and would silently turn this into a NOR-flash selection.
	if err := d.send(cmdSetSource, 0, byte(SourceSleep)); err != nil {
		return err
	}
	d.settle(settleSource)
	return nil
}

// Wakeup leaves sleep mode by selecting a real playback source. Passing
// SourceSleep is a no-op.
func (d *Device) Wakeup(source Source) error {
	if source == SourceSleep {
		return nil
	}
	return d.SetSource(source)
}

// EnableStandby puts the module into standby (distinct from sleep mode) or
// wakes it to the given source. The dedicated normal-mode command 0x0B is
// inoperative on known modules, so waking goes through source selection.
func (d *Device) EnableStandby(enable bool, source Source) error {
	if !enable {
		return d.Wakeup(source)
	}
	if err := d.send(cmdStandby, 0, 0); err != nil {
		return err
	}
	d.settle(settleSource)
	return nil
}

// Reset restores all settings to factory defaults and reboots the module.
// Reset blocks for the full boot window before returning.
func (d *Device) Reset() error {
	if err := d.send(cmdReset, 0, 0); err != nil {
		return err
	}
	d.settle(BootDelay)
	return nil
}

func clamp16(v, low, high uint16) uint16 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func clamp8(v, low, high uint8) uint8 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
