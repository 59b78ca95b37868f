// Copyright (c) 2026 The Hantek2D72 developers. All rights reserved.
// Project site: https://github.com/pablogventura/Hantek2D72
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hantek2d72

import "fmt"

const (
	// CaptureBufferSize is the capacity of the instrument's capture
	// response in bytes.
	CaptureBufferSize = 6000

	// maxChunkSize is the largest bulk read issued per transfer.
	maxChunkSize = 64

	defaultZeroReadLimit = 50
)

// CapacityError reports a capture request whose total byte count cannot
// fit the capture buffer, either by exceeding it or by being negative. It
// is returned before any I/O is issued.
type CapacityError struct {
	Requested int
	Capacity  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capture of %d bytes exceeds the %d byte buffer", e.Requested, e.Capacity)
}

// TimeoutError reports a capture that stalled: the device stopped
// producing data before the expected byte count arrived.
type TimeoutError struct {
	Received int
	Expected int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("capture stalled after %d of %d bytes", e.Received, e.Expected)
}

// Capture holds one completed acquisition. The raw buffer stores the
// enabled channels' samples interleaved per sample index, in ascending
// channel order; disabled channels contribute no bytes.
type Capture struct {
	data        []byte
	numSamples  int
	channels    [2]bool
	numChannels int
}

// Len returns the number of raw bytes received.
func (c *Capture) Len() int {
	return len(c.data)
}

// NumSamples returns the number of samples captured per enabled channel.
func (c *Capture) NumSamples() int {
	return c.numSamples
}

// ChannelEnabled reports whether the given channel took part in the
// capture.
func (c *Capture) ChannelEnabled(ch int) bool {
	return ch >= 0 && ch < len(c.channels) && c.channels[ch]
}

// Capture runs one acquisition to completion: it sends the capture-start
// command with the per-channel sample counts, then reads the interleaved
// response from the bulk data endpoint in chunks of at most 64 bytes until
// the expected byte count has arrived. Short reads are retried with the
// reduced remainder; consecutive zero-byte reads beyond ZeroReadLimit fail
// the capture with a TimeoutError. There is no partial success: a failed
// capture must be restarted from the command step.
//
// The capture buffer is owned by the session and reused across captures,
// so the returned Capture is only valid until the next call.
func (s *Session) Capture() (*Capture, error) {
	numSamples := s.Config.NumSamples
	var counts [2]uint16
	numChannels := 0
	for ch, enabled := range s.Config.ChannelEnable {
		if enabled {
			counts[ch] = uint16(numSamples)
			numChannels++
		}
	}
	total := numSamples * numChannels
	if total < 0 || total > len(s.buffer) {
		return nil, &CapacityError{Requested: total, Capacity: len(s.buffer)}
	}

	if _, err := s.SendCommandToDevice(Command{
		Func: FuncScopeCapture,
		Cmd:  ScopeStartRecv,
		Vals: EncodeSampleCounts(counts[0], counts[1]),
	}); err != nil {
		return nil, err
	}

	count := 0
	zeroReads := 0
	for count < total {
		chunk := total - count
		if chunk > maxChunkSize {
			chunk = maxChunkSize
		}
		n, err := s.Read(s.buffer[count : count+chunk])
		if err != nil {
			return nil, fmt.Errorf("error reading capture data after %d of %d bytes: %s", count, total, err)
		}
		if n == 0 {
			zeroReads++
			if zeroReads > s.ZeroReadLimit {
				return nil, &TimeoutError{Received: count, Expected: total}
			}
			continue
		}
		zeroReads = 0
		count += n
	}

	return &Capture{
		data:        s.buffer[:total],
		numSamples:  numSamples,
		channels:    s.Config.ChannelEnable,
		numChannels: numChannels,
	}, nil
}
