// Copyright (c) 2026 The Hantek2D72 developers. All rights reserved.
// Project site: https://github.com/pablogventura/Hantek2D72
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package main

import (
	"flag"
	"log"
	"time"

	"github.com/pablogventura/Hantek2D72/hantek2d72"
)

func main() {
	frequency := flag.Uint("freq", 1000, "tone frequency in Hz")
	amplitude := flag.Float64("amp", 0.1, "amplitude in volts (max 0.255)")
	duration := flag.Duration("for", 5*time.Second, "how long to play the tone")
	flag.Parse()

	ctx, err := hantek2d72.Init()
	if err != nil {
		log.Fatal("Couldn't create USB context. Ending now.")
	}
	defer ctx.Close()

	dso, err := hantek2d72.GetFirstDevice(ctx)
	if err != nil {
		log.Fatalf("Couldn't open the instrument: %s", err)
	}
	defer dso.Close()

	session := hantek2d72.NewSession(dso, hantek2d72.DefaultConfig())

	if err := session.SelectScreen(hantek2d72.ScreenAWG); err != nil {
		log.Fatalf("Couldn't switch to the AWG screen: %s", err)
	}
	if err := session.SetAWGFrequency(uint32(*frequency)); err != nil {
		log.Fatalf("Couldn't set frequency: %s", err)
	}
	if err := session.SetAWGAmplitude(*amplitude); err != nil {
		log.Fatalf("Couldn't set amplitude: %s", err)
	}
	if err := session.StartAWG(); err != nil {
		log.Fatalf("Couldn't start the generator: %s", err)
	}
	log.Printf("Playing %d Hz at %g V for %s", *frequency, *amplitude, *duration)
	time.Sleep(*duration)
	if err := session.StopAWG(); err != nil {
		log.Fatalf("Couldn't stop the generator: %s", err)
	}
}
