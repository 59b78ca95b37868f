// Copyright (c) 2026 The Hantek2D72 developers. All rights reserved.
// Project site: https://github.com/pablogventura/Hantek2D72
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package main

import (
	"log"

	"github.com/pablogventura/Hantek2D72/hantek2d72"
)

const (
	canvasWidth  = 600.0
	canvasHeight = 200.0
)

func main() {

	// Initialize the USB context
	ctx, err := hantek2d72.Init()
	if err != nil {
		log.Fatal("Couldn't create USB context. Ending now.")
	}
	defer ctx.Close()

	// Get the first Hantek 2D72 on the bus
	dso, err := hantek2d72.GetFirstDevice(ctx)
	if err != nil {
		log.Fatalf("Couldn't open the instrument: %s", err)
	}
	defer dso.Close()
	log.Printf("Vendor ID = 0x%x / Product ID = 0x%x\n",
		dso.DeviceDescriptor.VendorID, dso.DeviceDescriptor.ProductID)

	// Load the persisted configuration
	path, err := hantek2d72.DefaultConfigPath()
	if err != nil {
		log.Fatalf("Couldn't determine config path: %s", err)
	}
	cfg, err := hantek2d72.LoadConfig(path)
	if err != nil {
		log.Fatalf("Couldn't load config: %s", err)
	}

	session := hantek2d72.NewSession(dso, cfg)

	// Run one acquisition and demux it per channel
	capture, err := session.Capture()
	if err != nil {
		log.Fatalf("Capture failed: %s", err)
	}
	log.Printf("Captured %d bytes (%d samples per enabled channel)",
		capture.Len(), capture.NumSamples())

	vertical, horizontal := hantek2d72.GridDivisions(capture.NumSamples())
	log.Printf("Grid: %d vertical x %d horizontal divisions", vertical, horizontal)

	for ch := 0; ch < 2; ch++ {
		if !capture.ChannelEnabled(ch) {
			continue
		}
		points, err := capture.Points(ch, canvasWidth, canvasHeight)
		if err != nil {
			log.Fatalf("Demux failed for channel %d: %s", ch+1, err)
		}
		log.Printf("CH%d: %d points, first at (%.1f, %.1f), last at (%.1f, %.1f)",
			ch+1, len(points),
			points[0].X, points[0].Y,
			points[len(points)-1].X, points[len(points)-1].Y)
	}
}
