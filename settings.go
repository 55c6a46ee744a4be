package ov64a40

import "fmt"

// SetControl writes a control value. The value is stored even when the sensor
// is powered down, it is then programmed at the next stream start.
func (s *Sensor) SetControl(id ControlID, val int64) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.controls.validate(id, val); err != nil {
		return err
	}

	return s.setControl(id, val)
}

// Control returns the current state of a control
func (s *Sensor) Control(id ControlID) (Control, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.controls.Get(id)
}

// ControlRange returns the current limits of a control
func (s *Sensor) ControlRange(id ControlID) (Range, error) {

	c, err := s.Control(id)

	if err != nil {
		return Range{}, err
	}

	return c.Range, nil
}

// Controls returns all controls in id order
func (s *Sensor) Controls() []Control {

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.controls.All()
}

// setControl applies an already validated control value together with its
// dependent controls
func (s *Sensor) setControl(id ControlID, val int64) error {

	// a new blanking shrinks or grows the exposure limit before the blanking
	// itself is accepted, exposure is restored if either write fails
	exposure := s.controls.ctrls[CtrlExposure]
	exposureWritten := false

	if id == CtrlVBlank && s.controls.applyVBlank(s.mode.Height, val) {
		if err := s.writeControl(CtrlExposure, s.controls.Value(CtrlExposure)); err != nil {
			s.controls.restore(exposure)
			return err
		}

		exposureWritten = true
	}

	if err := s.writeControl(id, val); err != nil {
		if id == CtrlVBlank {
			s.controls.restore(exposure)
		}

		if exposureWritten {
			if rerr := s.writeControl(CtrlExposure, exposure.Value); rerr != nil {
				s.log.Printf("Failed to restore exposure: %v", rerr)
			}
		}

		return err
	}

	s.controls.setValue(id, val)

	s.log.Printf("Control %s set to %d", id, val)

	if id == CtrlLinkFreq {
		return s.updateTiming()
	}

	return nil
}

// writeControl programs the control register if the sensor is powered
func (s *Sensor) writeControl(id ControlID, val int64) error {

	if !s.power.active() {
		return nil
	}

	ops, err := controlProgram(id, val, s.mode, s.linkFrequencies)

	if err != nil {
		return err
	}

	if err := applyProgram(s.rio, ops); err != nil {
		return fmt.Errorf("set %s: %w", id, err)
	}

	return nil
}

// setupControls programs every writable control with its current value
func (s *Sensor) setupControls() error {

	for _, id := range setupOrder {
		if err := s.writeControl(id, s.controls.Value(id)); err != nil {
			return err
		}
	}

	return nil
}

// timing returns the timing of the active mode at the selected link frequency
func (s *Sensor) timing() (Timing, error) {

	id, err := s.controls.linkFreqID()

	if err != nil {
		return Timing{}, err
	}

	return s.mode.Timing(id), nil
}

// updateTiming recomputes the timing dependent controls after a mode or link
// frequency change
func (s *Sensor) updateTiming() error {

	t, err := s.timing()

	if err != nil {
		return err
	}

	for _, id := range s.controls.applyTiming(s.mode, t) {
		if err := s.writeControl(id, s.controls.Value(id)); err != nil {
			return err
		}
	}

	s.log.Printf("Timing updated to %d lines x %d", t.TotalLines, t.LineLength)

	return nil
}
