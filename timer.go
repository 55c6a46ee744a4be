package ov64a40

import "time"

// minWarmUp is the lower bound of the sensor warm up time
const minWarmUp = 150 // microseconds

// warmUpClocks is the number of xclk pulses the sensor needs after stream on
const warmUpClocks = 4096

// settleDelay returns how long the sensor needs after stream on before the
// first frame reflects the programmed configuration: the warm up time plus one
// full exposure at the internally multiplied line length.
func settleDelay(t Timing, exposure int64) time.Duration {

	delay := ceilDiv(warmUpClocks, XclkFrequency/1000/1000)

	if delay < minWarmUp {
		delay = minWarmUp
	}

	delay += ceilDiv(int64(t.LineLength)*LineLengthMultiplier*exposure, PixelRate/1000/1000)

	return time.Duration(delay) * time.Microsecond
}

// SettleDelay returns the wait applied after stream on for the current mode,
// link frequency and exposure
func (s *Sensor) SettleDelay() (time.Duration, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.timing()

	if err != nil {
		return 0, err
	}

	return settleDelay(t, s.controls.Value(CtrlExposure)), nil
}

// SetSleep replaces the function used to wait for the settle delay
func (s *Sensor) SetSleep(sleep func(time.Duration)) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if sleep == nil {
		sleep = time.Sleep
	}

	s.sleep = sleep
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
