// Copyright (c) 2026 The Hantek2D72 developers. All rights reserved.
// Project site: https://github.com/pablogventura/Hantek2D72
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hantek2d72

import "fmt"

// Instrument calibration constants for mapping raw sample bytes onto the
// display. 29 is the vertical center offset and 202 the full-scale span;
// neither is tunable.
const (
	verticalCenterOffset = 29
	verticalSpan         = 202

	horizontalDivisions = 8
	samplesPerDivision  = 100
)

// Point is the display coordinate of one sample.
type Point struct {
	X float64
	Y float64
}

// ChannelSeries returns a fresh copy of the raw sample bytes for the given
// channel, demultiplexed from the interleaved capture buffer. The byte for
// enabled-channel slot ch of sample x lives at offset x*numChannels+ch;
// disabled channels contribute no bytes and produce no series.
func (c *Capture) ChannelSeries(ch int) ([]byte, error) {
	if ch < 0 || ch >= len(c.channels) {
		return nil, fmt.Errorf("channel %d outside valid range", ch)
	}
	if !c.channels[ch] {
		return nil, fmt.Errorf("channel %d was not enabled for the capture", ch)
	}
	slot := 0
	for i := 0; i < ch; i++ {
		if c.channels[i] {
			slot++
		}
	}
	series := make([]byte, c.numSamples)
	for x := 0; x < c.numSamples; x++ {
		series[x] = c.data[x*c.numChannels+slot]
	}
	return series, nil
}

// Points returns the display coordinates for the given channel on a canvas
// of the given width and height, one point per sample in increasing sample
// order. The capture buffer is not modified.
func (c *Capture) Points(ch int, width, height float64) ([]Point, error) {
	series, err := c.ChannelSeries(ch)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(series))
	for x, v := range series {
		points[x] = Point{
			X: PixelX(x, c.numSamples, width),
			Y: PixelY(v, height),
		}
	}
	return points, nil
}

// PixelY maps a raw sample byte onto the vertical pixel coordinate for a
// canvas of the given height. The mapping is linear and decreasing in v.
func PixelY(v byte, height float64) float64 {
	return height - float64(int(v)-verticalCenterOffset)*height/verticalSpan
}

// PixelX maps a sample index onto the horizontal pixel coordinate for a
// canvas of the given width.
func PixelX(x, numSamples int, width float64) float64 {
	return float64(x) * width / float64(numSamples)
}

// GridDivisions returns the number of vertical and horizontal grid
// divisions drawn behind a capture of numSamples samples per channel.
func GridDivisions(numSamples int) (vertical, horizontal int) {
	return numSamples / samplesPerDivision, horizontalDivisions
}
