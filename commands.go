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

// DFPlayer command codes. These must match the module's published command
// set bit-for-bit.
const (
	cmdPlayNext      = 0x01
	cmdPlayPrevious  = 0x02
	cmdPlayTrack     = 0x03 // track 0001..9999 in upload order
	cmdVolumeUp      = 0x04
	cmdVolumeDown    = 0x05
	cmdSetVolume     = 0x06 // volume 0..30
	cmdSetEQ         = 0x07
	cmdRepeatTrack   = 0x08 // play & loop track 0001..9999
	cmdSetSource     = 0x09
	cmdStandby       = 0x0A
	cmdNormalMode    = 0x0B // documented but inoperative on known modules
	cmdReset         = 0x0C
	cmdResume        = 0x0D
	cmdPause         = 0x0E
	cmdPlayFolder    = 0x0F // folder 01..99, track 001..255
	cmdSetDACGain    = 0x10
	cmdRepeatAll     = 0x11
	cmdPlayMP3Folder = 0x12 // track 0001..9999 from "mp3" folder
	cmdPlayAdvert    = 0x13 // interrupt with track 0001..9999 from "advert" folder
	cmdStopAdvert    = 0x15
	cmdStop          = 0x16
	cmdRepeatFolder  = 0x17
	cmdRandomAll     = 0x18
	cmdRepeatCurrent = 0x19
	cmdSetDAC        = 0x1A // data-low 0=enable, 1=disable
)

// Query command codes. The reply frame echoes the same code in byte 3.
const (
	cmdGetStatus       = 0x42
	cmdGetVolume       = 0x43
	cmdGetEQ           = 0x44
	cmdGetPlayMode     = 0x45
	cmdGetVersion      = 0x46
	cmdGetTracksUSB    = 0x47
	cmdGetTracksSD     = 0x48
	cmdGetTracksFlash  = 0x49
	cmdGetTrackUSB     = 0x4B
	cmdGetTrackSD      = 0x4C
	cmdGetTrackFlash   = 0x4D
	cmdGetTracksFolder = 0x4E
	cmdGetTotalFolders = 0x4F // unreliable: known modules answer wrong and stop playback
)

// Reply status bytes the module places in the command position of frames it
// emits on its own.
const (
	replyError     = 0x40 // error, detail in the data-low byte
	replyAccepted  = 0x41 // command accepted, sent when the ack flag is set
	replyTrackDone = 0x3D // track playback completed
	replyReady     = 0x3F // ready after boot or reset
)

// EQ identifies an equalizer preset.
type EQ byte

// Equalizer presets.
const (
	EQOff EQ = iota
	EQPop
	EQRock
	EQJazz
	EQClassic
	EQBass
)

// Source identifies a playback storage medium.
type Source byte

// Playback sources. Value 4 is undocumented and skipped by the module.
const (
	SourceUSB   Source = 1
	SourceSD    Source = 2
	SourceAux   Source = 3
	SourceFlash Source = 5
	SourceSleep Source = 6
)

// PlayMode identifies a loop/shuffle mode as reported by the module.
type PlayMode byte

// Play modes.
const (
	PlayModeLoopAll PlayMode = iota
	PlayModeLoopFolder
	PlayModeLoopTrack
	PlayModeRandom
	PlayModeDisabled
)

// PlayState is the condensed playback state reported by Status.
type PlayState byte

// Playback states.
const (
	StateStopped PlayState = iota
	StatePlaying
	StatePaused
	StateAsleep
	StateUnknown // no valid reply or unrecognized state word
)

// String returns a human-readable play state.
func (s PlayState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateAsleep:
		return "asleep"
	default:
		return "unknown"
	}
}

// CommandStatus is the interpretation of the last frame received from the
// module, as exposed by Device.CommandStatus. Values 0x01..0x0A mirror the
// module's own error detail codes; the remaining values tag the non-error
// statuses.
type CommandStatus byte

// Command statuses.
const (
	StatusUnknown      CommandStatus = 0x00 // no frame yet, or unrecognized
	StatusBusy         CommandStatus = 0x01 // module still initializing
	StatusSleeping     CommandStatus = 0x02 // module in sleep mode
	StatusSerialError  CommandStatus = 0x03 // request not fully received
	StatusBadChecksum  CommandStatus = 0x04 // request checksum rejected
	StatusOutOfRange   CommandStatus = 0x05 // track or folder out of range
	StatusNotFound     CommandStatus = 0x06 // track or folder not found
	StatusAdvertError  CommandStatus = 0x07 // advert insertion needs active playback
	StatusCardError    CommandStatus = 0x08 // SD card removed or damaged
	StatusEnteredSleep CommandStatus = 0x0A // module entered sleep mode
	StatusAccepted     CommandStatus = 0x0B // command accepted (ack flag set)
	StatusTrackDone    CommandStatus = 0x0C // track playback completed
	StatusReady        CommandStatus = 0x0D // ready after boot or reset
)
