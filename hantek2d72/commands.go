// Copyright (c) 2026 The Hantek2D72 developers. All rights reserved.
// Project site: https://github.com/pablogventura/Hantek2D72
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hantek2d72

// FunctionCode selects the instrument subsystem a command frame is
// addressed to. The codes are part of the device's wire contract.
type FunctionCode uint16

const (
	FuncScopeSetting  FunctionCode = 0x0000
	FuncScopeCapture  FunctionCode = 0x0100
	FuncAWGSetting    FunctionCode = 0x0002
	FuncScreenSetting FunctionCode = 0x0003
)

var functions = map[FunctionCode]string{
	FuncScopeSetting:  "Scope setting",
	FuncScopeCapture:  "Scope capture",
	FuncAWGSetting:    "AWG setting",
	FuncScreenSetting: "Screen setting",
}

func (f FunctionCode) String() string {
	return functions[f]
}

// Scope sub-commands
const (
	ScopeEnableCH1     byte = 0x00
	ScopeEnableCH2     byte = 0x06
	ScopeScaleTime     byte = 0x0e
	ScopeOffsetTime    byte = 0x0f
	ScopeTriggerSource byte = 0x10
	ScopeTriggerLevel  byte = 0x14
	ScopeStartRecv     byte = 0x16
)

// AWG sub-commands
const (
	AWGFrequency byte = 0x01
	AWGAmplitude byte = 0x02
	AWGOffset    byte = 0x03
	AWGStart     byte = 0x08
)

// Screen sub-commands
const (
	ScreenSelect byte = 0x00
)

// Screen selects which front panel mode the instrument displays.
type Screen byte

const (
	ScreenScope Screen = 0x00
	ScreenDMM   Screen = 0x01
	ScreenAWG   Screen = 0x02
)

var screens = map[Screen]string{
	ScreenScope: "Oscilloscope",
	ScreenDMM:   "Multimeter",
	ScreenAWG:   "Waveform generator",
}

func (s Screen) String() string {
	return screens[s]
}
