// Copyright (c) 2026 The Hantek2D72 developers. All rights reserved.
// Project site: https://github.com/pablogventura/Hantek2D72
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hantek2d72

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	frameLength     = 10
	frameMarker     = 0x00
	frameLengthByte = 0x0a

	millivoltScale = 1000
)

// RangeError reports a payload value that does not fit one of the frame's
// single-byte fields.
type RangeError struct {
	Field string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value %d outside the range 0 to 255", e.Field, e.Value)
}

// Command is one instrument directive before wire encoding. Vals carries up
// to four bytes of parameter payload and defaults to all zero.
type Command struct {
	Func FunctionCode
	Cmd  byte
	Vals [4]int
}

func (c Command) String() string {
	return fmt.Sprintf("%s 0x%02x %v", c.Func, c.Cmd, c.Vals)
}

// MarshalBinary encodes the command in the 10-byte format used on the USB
// wire: a zero marker, the fixed length byte 0x0A, the function code as a
// little-endian uint16, the sub-command, the four payload bytes, and a zero
// terminator. Any payload value outside a single byte fails with a
// RangeError and produces no frame.
func (c Command) MarshalBinary() ([]byte, error) {
	for i, v := range c.Vals {
		if v < 0 || v > 255 {
			return nil, &RangeError{Field: fmt.Sprintf("vals[%d]", i), Value: v}
		}
	}
	frame := make([]byte, frameLength)
	frame[0] = frameMarker
	frame[1] = frameLengthByte
	binary.LittleEndian.PutUint16(frame[2:4], uint16(c.Func))
	frame[4] = c.Cmd
	for i, v := range c.Vals {
		frame[5+i] = byte(v)
	}
	frame[9] = 0x00
	return frame, nil
}

// DecodeFrame decodes a 10-byte wire frame back into the command it
// encodes. The marker, length byte, and terminator are validated.
func DecodeFrame(frame []byte) (Command, error) {
	var c Command
	if len(frame) != frameLength {
		return c, fmt.Errorf("frame must be %d bytes, got %d", frameLength, len(frame))
	}
	if frame[0] != frameMarker || frame[1] != frameLengthByte {
		return c, fmt.Errorf("bad frame header 0x%02x 0x%02x", frame[0], frame[1])
	}
	if frame[9] != 0x00 {
		return c, fmt.Errorf("bad frame terminator 0x%02x", frame[9])
	}
	c.Func = FunctionCode(binary.LittleEndian.Uint16(frame[2:4]))
	c.Cmd = frame[4]
	for i := range c.Vals {
		c.Vals[i] = int(frame[5+i])
	}
	return c, nil
}

// EncodeU32 packs a single 32-bit quantity into the payload as a
// little-endian uint32, replacing the four independent byte fields. Used
// for the AWG frequency in Hz.
func EncodeU32(value uint32) [4]int {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return [4]int{int(b[0]), int(b[1]), int(b[2]), int(b[3])}
}

// EncodeSampleCounts packs the per-channel sample counts for the
// capture-start command as two little-endian uint16 values.
func EncodeSampleCounts(ch1, ch2 uint16) [4]int {
	var b [4]byte
	binary.LittleEndian.PutUint16(b[0:2], ch1)
	binary.LittleEndian.PutUint16(b[2:4], ch2)
	return [4]int{int(b[0]), int(b[1]), int(b[2]), int(b[3])}
}

// EncodeMillivolts converts a voltage into the scaled magnitude/sign
// payload used by the AWG amplitude and offset commands. The magnitude
// field on the wire is one byte, so any voltage whose millivolt magnitude
// exceeds 255 cannot be represented and fails with a RangeError rather
// than truncating.
func EncodeMillivolts(volts float64) ([4]int, error) {
	magnitude := int(math.Round(math.Abs(volts) * millivoltScale))
	if magnitude > 255 {
		return [4]int{}, &RangeError{Field: "millivolts", Value: magnitude}
	}
	sign := 0
	if volts < 0 {
		sign = 1
	}
	return [4]int{magnitude, sign, 0, 0}, nil
}
