// Copyright (c) 2026 The Hantek2D72 developers. All rights reserved.
// Project site: https://github.com/pablogventura/Hantek2D72
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hantek2d72

import (
	"errors"
	"fmt"
	"testing"

	c "github.com/smartystreets/goconvey/convey"
)

func TestMarshalFrame(t *testing.T) {
	testCases := []struct {
		cmd   Command
		frame []byte
	}{
		{
			Command{Func: FuncScopeSetting, Cmd: ScopeEnableCH1, Vals: [4]int{1, 0, 0, 0}},
			[]byte{0x00, 0x0a, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00},
		},
		{
			Command{Func: FuncScopeSetting, Cmd: ScopeScaleTime, Vals: [4]int{7, 0, 0, 0}},
			[]byte{0x00, 0x0a, 0x00, 0x00, 0x0e, 0x07, 0x00, 0x00, 0x00, 0x00},
		},
		{
			Command{Func: FuncScopeCapture, Cmd: ScopeStartRecv, Vals: EncodeSampleCounts(1200, 1200)},
			[]byte{0x00, 0x0a, 0x00, 0x01, 0x16, 0xb0, 0x04, 0xb0, 0x04, 0x00},
		},
		{
			Command{Func: FuncAWGSetting, Cmd: AWGFrequency, Vals: EncodeU32(1000)},
			[]byte{0x00, 0x0a, 0x02, 0x00, 0x01, 0xe8, 0x03, 0x00, 0x00, 0x00},
		},
		{
			Command{Func: FuncScreenSetting, Cmd: ScreenSelect, Vals: [4]int{int(ScreenDMM), 0, 0, 0}},
			[]byte{0x00, 0x0a, 0x03, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00},
		},
	}
	c.Convey("Given the need to encode commands into wire frames", t, func() {
		for _, testCase := range testCases {
			conveyance := fmt.Sprintf("When encoding %s", testCase.cmd)
			c.Convey(conveyance, func() {
				conveyance := fmt.Sprintf("Then the frame should be %X", testCase.frame)
				c.Convey(conveyance, func() {
					computedValue, err := testCase.cmd.MarshalBinary()
					c.So(err, c.ShouldBeNil)
					c.So(computedValue, c.ShouldResemble, testCase.frame)
				})
			})
		}
	})
}

func TestMarshalFrameRangeRejection(t *testing.T) {
	testCases := []struct {
		vals [4]int
	}{
		{[4]int{256, 0, 0, 0}},
		{[4]int{0, -1, 0, 0}},
		{[4]int{0, 0, 1000, 0}},
		{[4]int{0, 0, 0, 99999}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("vals %v", tc.vals), func(t *testing.T) {
			cmd := Command{Func: FuncScopeSetting, Cmd: ScopeEnableCH1, Vals: tc.vals}
			frame, err := cmd.MarshalBinary()
			if frame != nil {
				t.Errorf("Expected no partial frame, got %X", frame)
			}
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Errorf("Expected a RangeError, got %v", err)
			}
		})
	}
}

func TestFrameRoundTrip(t *testing.T) {
	testCases := []Command{
		{Func: FuncScopeSetting, Cmd: ScopeEnableCH2, Vals: [4]int{1, 0, 0, 0}},
		{Func: FuncScopeSetting, Cmd: ScopeTriggerLevel, Vals: [4]int{200, 0, 0, 0}},
		{Func: FuncScopeCapture, Cmd: ScopeStartRecv, Vals: EncodeSampleCounts(600, 0)},
		{Func: FuncAWGSetting, Cmd: AWGFrequency, Vals: EncodeU32(0xdeadbeef)},
		{Func: FuncAWGSetting, Cmd: AWGAmplitude, Vals: [4]int{255, 1, 0, 0}},
		{Func: FuncScreenSetting, Cmd: ScreenSelect, Vals: [4]int{int(ScreenAWG), 0, 0, 0}},
	}
	for _, given := range testCases {
		t.Run(given.String(), func(t *testing.T) {
			frame, err := given.MarshalBinary()
			if err != nil {
				t.Fatalf("Error encoding command: %v", err)
			}
			if len(frame) != frameLength {
				t.Fatalf("Expected %d byte frame, got %d", frameLength, len(frame))
			}
			decoded, err := DecodeFrame(frame)
			if err != nil {
				t.Fatalf("Error decoding frame: %v", err)
			}
			if decoded != given {
				t.Errorf("Expected %v, got %v", given, decoded)
			}
		})
	}
}

func TestDecodeFrameErrors(t *testing.T) {
	testCases := []struct {
		name  string
		frame []byte
	}{
		{"too short", []byte{0x00, 0x0a, 0x00}},
		{"too long", make([]byte, 11)},
		{"bad marker", []byte{0x01, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"bad length byte", []byte{0x00, 0x0b, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"bad terminator", []byte{0x00, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeFrame(tc.frame); err == nil {
				t.Errorf("Expected an error decoding %X", tc.frame)
			}
		})
	}
}

func TestEncodeU32(t *testing.T) {
	testCases := []struct {
		value uint32
		vals  [4]int
	}{
		{0, [4]int{0x00, 0x00, 0x00, 0x00}},
		{1000, [4]int{0xe8, 0x03, 0x00, 0x00}},
		{100000, [4]int{0xa0, 0x86, 0x01, 0x00}},
		{0xffffffff, [4]int{0xff, 0xff, 0xff, 0xff}},
	}
	c.Convey("Given the need to pack a 32-bit payload", t, func() {
		for _, testCase := range testCases {
			conveyance := fmt.Sprintf("When packing %d", testCase.value)
			c.Convey(conveyance, func() {
				conveyance := fmt.Sprintf("Then the payload should be %v", testCase.vals)
				c.Convey(conveyance, func() {
					computedValue := EncodeU32(testCase.value)
					c.So(computedValue, c.ShouldResemble, testCase.vals)
				})
			})
		}
	})
}

func TestEncodeSampleCounts(t *testing.T) {
	testCases := []struct {
		ch1  uint16
		ch2  uint16
		vals [4]int
	}{
		{1200, 1200, [4]int{0xb0, 0x04, 0xb0, 0x04}},
		{1200, 0, [4]int{0xb0, 0x04, 0x00, 0x00}},
		{0, 600, [4]int{0x00, 0x00, 0x58, 0x02}},
		{1, 2, [4]int{0x01, 0x00, 0x02, 0x00}},
	}
	c.Convey("Given the need to pack per-channel sample counts", t, func() {
		for _, testCase := range testCases {
			conveyance := fmt.Sprintf(
				"When requesting %d samples on CH1 and %d on CH2",
				testCase.ch1,
				testCase.ch2,
			)
			c.Convey(conveyance, func() {
				conveyance := fmt.Sprintf("Then the payload should be %v", testCase.vals)
				c.Convey(conveyance, func() {
					computedValue := EncodeSampleCounts(testCase.ch1, testCase.ch2)
					c.So(computedValue, c.ShouldResemble, testCase.vals)
				})
			})
		}
	})
}

func TestEncodeMillivolts(t *testing.T) {
	testCases := []struct {
		volts float64
		vals  [4]int
	}{
		{0.0, [4]int{0, 0, 0, 0}},
		{0.1, [4]int{100, 0, 0, 0}},
		{-0.25, [4]int{250, 1, 0, 0}},
		{0.255, [4]int{255, 0, 0, 0}},
		{-0.255, [4]int{255, 1, 0, 0}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%g V", tc.volts), func(t *testing.T) {
			computed, err := EncodeMillivolts(tc.volts)
			if err != nil {
				t.Fatalf("Error encoding %g V: %v", tc.volts, err)
			}
			if computed != tc.vals {
				t.Errorf("Expected %v, got %v", tc.vals, computed)
			}
		})
	}
}

func TestEncodeMillivoltsOutOfRange(t *testing.T) {
	// Magnitudes above 255 mV cannot be represented in the single-byte
	// field; notably the instrument's 2.5 V default amplitude.
	testCases := []float64{0.3, -0.3, 2.5, -5.0}
	for _, volts := range testCases {
		t.Run(fmt.Sprintf("%g V", volts), func(t *testing.T) {
			_, err := EncodeMillivolts(volts)
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Errorf("Expected a RangeError for %g V, got %v", volts, err)
			}
		})
	}
}
