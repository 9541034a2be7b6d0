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

// Command dfplay is a small utility for exercising a DFPlayer module: play
// a track, set the volume, query status, or watch the module's asynchronous
// event frames.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	dfplayer "github.com/tonewheel/go-dfplayer"
	"github.com/tonewheel/go-dfplayer/detection"
	"github.com/tonewheel/go-dfplayer/monitor"
	"github.com/tonewheel/go-dfplayer/transport/uart"
)

type config struct {
	devicePath *string
	variant    *string
	timeout    *time.Duration
	volume     *int
	track      *int
	folder     *int
	noBoot     *bool
	watch      *bool
	debug      *bool
}

func parseFlags() *config {
	cfg := &config{
		devicePath: flag.String("device", "",
			"Serial device path (e.g. /dev/ttyUSB0 or COM3). Leave empty for auto-detection."),
		variant: flag.String("variant", "standard",
			"Chip variant: standard, alternate, nochecksum"),
		timeout: flag.Duration("timeout", 0, "Reply timeout (default: variant-specific)"),
		volume:  flag.Int("volume", -1, "Volume to set (0..30, -1 leaves it unchanged)"),
		track:   flag.Int("track", 0, "Track number to play (1..9999, 0 plays nothing)"),
		folder:  flag.Int("folder", 0, "Folder for -track (1..99, 0 plays from the root)"),
		noBoot:  flag.Bool("no-boot-delay", false, "Skip the 3s module boot wait"),
		watch:   flag.Bool("watch", false, "Watch asynchronous module events until interrupted"),
		debug:   flag.Bool("debug", false, "Enable frame-level debug output"),
	}
	flag.Parse()

	if *cfg.debug {
		dfplayer.SetDebugEnabled(true)
	}

	return cfg
}

func parseVariant(name string) (dfplayer.Variant, error) {
	switch name {
	case "standard":
		return dfplayer.VariantStandard, nil
	case "alternate":
		return dfplayer.VariantAlternateChecksum, nil
	case "nochecksum":
		return dfplayer.VariantNoChecksum, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", name)
	}
}

func connect(cfg *config) (*dfplayer.Device, error) {
	variant, err := parseVariant(*cfg.variant)
	if err != nil {
		return nil, err
	}

	deviceOpts := []dfplayer.Option{
		dfplayer.WithVariant(variant),
		dfplayer.WithBootDelay(!*cfg.noBoot),
	}
	if *cfg.timeout > 0 {
		deviceOpts = append(deviceOpts, dfplayer.WithTimeout(*cfg.timeout))
	}

	opts := []dfplayer.ConnectOption{
		dfplayer.WithTransportFactory(func(path string) (dfplayer.Transport, error) {
			return uart.New(path)
		}),
		dfplayer.WithDeviceOptions(deviceOpts...),
	}
	if *cfg.devicePath == "" {
		opts = append(opts, dfplayer.WithAutoDetection())
		printCandidates()
	}

	return dfplayer.ConnectDevice(*cfg.devicePath, opts...)
}

func printCandidates() {
	devices, err := detection.DetectAll(nil)
	if err != nil || len(devices) == 0 {
		return
	}
	fmt.Println("Candidate serial ports:")
	for _, d := range devices {
		bridge := detection.BridgeName(d.VID + ":" + d.PID)
		if bridge == "" {
			bridge = "unknown bridge"
		}
		fmt.Printf("  %s (%s)\n", d.Path, bridge)
	}
}

func run(cfg *config) error {
	device, err := connect(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = device.Close() }()

	if *cfg.volume >= 0 {
		if err := device.SetVolume(uint8(min(*cfg.volume, 30))); err != nil {
			return fmt.Errorf("set volume: %w", err)
		}
	}

	if *cfg.track > 0 {
		if err := play(device, *cfg.folder, *cfg.track); err != nil {
			return err
		}
	}

	fmt.Printf("status: %s, volume: %d, firmware: %d\n",
		device.Status(), device.Volume(), device.Version())
	if st := device.CommandStatus(); st.IsError() {
		fmt.Printf("module reported: %s\n", st)
	}

	if *cfg.watch {
		return watch(device)
	}
	return nil
}

func play(device *dfplayer.Device, folder, track int) error {
	if folder > 0 {
		fmt.Printf("playing folder %02d track %03d\n", folder, track)
		return device.PlayFolder(uint8(folder), uint8(track))
	}
	fmt.Printf("playing track %04d\n", track)
	return device.PlayTrack(uint16(track))
}

func watch(device *dfplayer.Device) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := monitor.NewMonitor(device, nil)
	m.OnTrackDone = func(track uint16) {
		fmt.Printf("track %d finished\n", track)
	}
	m.OnReady = func(sources uint16) {
		fmt.Printf("module ready (source bits %#04x)\n", sources)
	}
	m.OnError = func(status dfplayer.CommandStatus) {
		fmt.Printf("module error: %s\n", status)
	}

	fmt.Println("watching module events, Ctrl-C to stop")
	if err := m.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "dfplay: %v\n", err)
		os.Exit(1)
	}
}
