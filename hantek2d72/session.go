// Copyright (c) 2026 The Hantek2D72 developers. All rights reserved.
// Project site: https://github.com/pablogventura/Hantek2D72
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hantek2d72

import "fmt"

// Session owns the transport handle, the current instrument configuration,
// and the capture buffer. Every setting change flows through it so there is
// no ambient device state; a setting method only updates the configuration
// after the command reached the device. A session supports at most one
// capture in flight.
type Session struct {
	Transport
	Config Config

	// ZeroReadLimit is the number of consecutive zero-byte reads a capture
	// tolerates before failing with a TimeoutError.
	ZeroReadLimit int

	buffer []byte
}

// NewSession creates a session for the given transport starting from the
// given configuration.
func NewSession(t Transport, cfg Config) *Session {
	return &Session{
		Transport:     t,
		Config:        cfg,
		ZeroReadLimit: defaultZeroReadLimit,
		buffer:        make([]byte, CaptureBufferSize),
	}
}

// EnableChannel turns the given scope channel (0 or 1) on or off.
func (s *Session) EnableChannel(ch int, enabled bool) error {
	if ch < 0 || ch >= len(s.Config.ChannelEnable) {
		return fmt.Errorf("channel %d outside valid range", ch)
	}
	cmd := ScopeEnableCH1
	if ch == 1 {
		cmd = ScopeEnableCH2
	}
	val := 0
	if enabled {
		val = 1
	}
	if _, err := s.SendCommandToDevice(Command{
		Func: FuncScopeSetting, Cmd: cmd, Vals: [4]int{val, 0, 0, 0},
	}); err != nil {
		return err
	}
	s.Config.ChannelEnable[ch] = enabled
	return nil
}

// SetTimeScale selects the horizontal scale by its index in the
// instrument's time base table.
func (s *Session) SetTimeScale(index int) error {
	if _, err := s.SendCommandToDevice(Command{
		Func: FuncScopeSetting, Cmd: ScopeScaleTime, Vals: [4]int{index, 0, 0, 0},
	}); err != nil {
		return err
	}
	s.Config.TimeScale = index
	return nil
}

// SetTimeOffset sets the horizontal offset.
func (s *Session) SetTimeOffset(offset float64) error {
	if _, err := s.SendCommandToDevice(Command{
		Func: FuncScopeSetting, Cmd: ScopeOffsetTime, Vals: [4]int{int(offset), 0, 0, 0},
	}); err != nil {
		return err
	}
	s.Config.TimeOffset = offset
	return nil
}

// SetTriggerSource selects which channel the trigger watches.
func (s *Session) SetTriggerSource(source int) error {
	if _, err := s.SendCommandToDevice(Command{
		Func: FuncScopeSetting, Cmd: ScopeTriggerSource, Vals: [4]int{source, 0, 0, 0},
	}); err != nil {
		return err
	}
	s.Config.TriggerSource = source
	return nil
}

// SetTriggerLevel sets the trigger threshold.
func (s *Session) SetTriggerLevel(level float64) error {
	if _, err := s.SendCommandToDevice(Command{
		Func: FuncScopeSetting, Cmd: ScopeTriggerLevel, Vals: [4]int{int(level), 0, 0, 0},
	}); err != nil {
		return err
	}
	s.Config.TriggerLevel = level
	return nil
}

// SetAWGFrequency sets the waveform generator frequency in Hz. The payload
// is a single little-endian uint32 rather than four independent bytes.
func (s *Session) SetAWGFrequency(hz uint32) error {
	if _, err := s.SendCommandToDevice(Command{
		Func: FuncAWGSetting, Cmd: AWGFrequency, Vals: EncodeU32(hz),
	}); err != nil {
		return err
	}
	s.Config.AWGFrequency = float64(hz)
	return nil
}

// SetAWGAmplitude sets the waveform generator amplitude in volts. The wire
// format carries the magnitude in millivolts in a single byte, so
// amplitudes above 0.255 V fail with a RangeError.
func (s *Session) SetAWGAmplitude(volts float64) error {
	vals, err := EncodeMillivolts(volts)
	if err != nil {
		return err
	}
	if _, err := s.SendCommandToDevice(Command{
		Func: FuncAWGSetting, Cmd: AWGAmplitude, Vals: vals,
	}); err != nil {
		return err
	}
	s.Config.AWGAmplitude = volts
	return nil
}

// SetAWGOffset sets the waveform generator DC offset in volts, subject to
// the same millivolt range limit as the amplitude.
func (s *Session) SetAWGOffset(volts float64) error {
	vals, err := EncodeMillivolts(volts)
	if err != nil {
		return err
	}
	if _, err := s.SendCommandToDevice(Command{
		Func: FuncAWGSetting, Cmd: AWGOffset, Vals: vals,
	}); err != nil {
		return err
	}
	s.Config.AWGOffset = volts
	return nil
}

// StartAWG turns the waveform generator output on.
func (s *Session) StartAWG() error {
	_, err := s.SendCommandToDevice(Command{
		Func: FuncAWGSetting, Cmd: AWGStart, Vals: [4]int{1, 0, 0, 0},
	})
	return err
}

// StopAWG turns the waveform generator output off.
func (s *Session) StopAWG() error {
	_, err := s.SendCommandToDevice(Command{
		Func: FuncAWGSetting, Cmd: AWGStart, Vals: [4]int{0, 0, 0, 0},
	})
	return err
}

// SelectScreen switches the instrument's front panel between the scope,
// multimeter, and waveform generator modes.
func (s *Session) SelectScreen(screen Screen) error {
	_, err := s.SendCommandToDevice(Command{
		Func: FuncScreenSetting, Cmd: ScreenSelect, Vals: [4]int{int(screen), 0, 0, 0},
	})
	return err
}
