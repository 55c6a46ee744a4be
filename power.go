package ov64a40

import "fmt"

// Power sequences the sensor clock, supplies and reset line.
type Power interface {
	PowerOn() error
	PowerOff() error
}

// AlwaysOn is a Power for sensors on fixed supplies with no reset line
type AlwaysOn struct{}

// PowerOn implements Power
func (AlwaysOn) PowerOn() error { return nil }

// PowerOff implements Power
func (AlwaysOn) PowerOff() error { return nil }

// powerRef counts users of the power resource. The first user powers the
// sensor on and the last one powers it off.
type powerRef struct {
	power Power
	users int
}

// get takes a reference, powering the sensor on if it was off
func (p *powerRef) get() error {

	if p.users == 0 {
		if err := p.power.PowerOn(); err != nil {
			return fmt.Errorf("%w: power on: %w", ErrNotReady, err)
		}
	}

	p.users++

	return nil
}

// put drops a reference, powering the sensor off with the last one
func (p *powerRef) put() error {

	if p.users == 0 {
		return nil
	}

	p.users--

	if p.users == 0 {
		return p.power.PowerOff()
	}

	return nil
}

// active reports whether the sensor is currently powered
func (p *powerRef) active() bool {
	return p.users > 0
}
