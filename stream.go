package ov64a40

import (
	"fmt"
	"time"
)

// StreamState is the state of the streaming sequencer
type StreamState int

const (
	Idle StreamState = iota
	Starting
	Streaming
	Stopping
)

// String implement Stringer interface for StreamState
func (st StreamState) String() string {
	switch st {
	case Idle:
		return "idle"
	case Starting:
		return "starting"
	case Streaming:
		return "streaming"
	case Stopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// State returns the streaming state
func (s *Sensor) State() StreamState {

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Start powers the sensor, programs the active mode and controls and starts
// streaming. It blocks until the output reflects the programmed configuration.
// On failure the sensor is released and stays idle.
func (s *Sensor) Start() error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Idle {
		return fmt.Errorf("%w: sensor is %s", ErrBusy, s.state)
	}

	s.log.Print("Start streaming")

	s.state = Starting

	delay, err := s.startStreaming()

	if err != nil {
		s.state = Idle
		return err
	}

	s.sleep(delay)

	s.state = Streaming

	return nil
}

// startStreaming runs the stream on sequence and returns the settle delay
func (s *Sensor) startStreaming() (time.Duration, error) {

	if err := s.power.get(); err != nil {
		return 0, err
	}

	delay, err := s.programStream()

	if err != nil {
		s.releasePower()
		s.log.Printf("Start streaming failed: %v", err)
		return 0, err
	}

	return delay, nil
}

// programStream writes the full register configuration and sets the
// streaming bit. The sensor must be powered.
func (s *Sensor) programStream() (time.Duration, error) {

	t, err := s.timing()

	if err != nil {
		return 0, err
	}

	programs := []struct {
		name string
		ops  []RegOp
	}{
		{"global init", globalInit},
		{"mode", s.mode.program},
		{"geometry", GeometryProgram(s.mode, t)},
		{"subsampling", SubsamplingProgram(s.mode)},
	}

	for _, p := range programs {
		if err := applyProgram(s.rio, p.ops); err != nil {
			return 0, fmt.Errorf("%s program: %w", p.name, err)
		}
	}

	if err := s.setupControls(); err != nil {
		return 0, err
	}

	if err := s.rio.WriteRegister(REG_SMIA, REG_SMIA_STREAMING); err != nil {
		return 0, fmt.Errorf("%w: stream on: %w", ErrIO, err)
	}

	// link frequency and flips cannot change while streaming
	s.controls.grab(true)

	return settleDelay(t, s.controls.Value(CtrlExposure)), nil
}

// Stop stops streaming and releases the sensor. Power is released even when
// clearing the streaming bit fails, that failure is still returned.
func (s *Sensor) Stop() error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Streaming {
		return nil
	}

	s.log.Print("Stop streaming")

	s.state = Stopping

	var result error

	if err := updateBits(s.rio, REG_SMIA, REG_SMIA_STREAMING, 0); err != nil {
		s.log.Printf("Failed to clear streaming bit: %v", err)
		result = fmt.Errorf("%w: stream off: %w", ErrIO, err)
	}

	s.releasePower()

	s.controls.grab(false)
	s.state = Idle

	return result
}
