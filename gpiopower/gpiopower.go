// Package gpiopower sequences sensor power through its active low reset line.
package gpiopower

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Pin is the output side of a GPIO pin
type Pin interface {
	Out(l gpio.Level) error
}

// Reset powers the sensor by releasing its reset line. Clock and supplies are
// expected to be always on.
type Reset struct {
	pin    Pin
	settle time.Duration
	sleep  func(time.Duration)
}

// New opens the named GPIO pin, e.g. "GPIO17", and holds the sensor in reset
func New(pinName string, settle time.Duration) (*Reset, error) {

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio: host init failed: %w", err)
	}

	p := gpioreg.ByName(pinName)

	if p == nil {
		return nil, fmt.Errorf("gpio: failed to open %s", pinName)
	}

	return NewWithPin(p, settle)
}

// NewWithPin returns a Reset driving pin and holds the sensor in reset
func NewWithPin(pin Pin, settle time.Duration) (*Reset, error) {

	r := &Reset{pin: pin, settle: settle, sleep: time.Sleep}

	if err := r.PowerOff(); err != nil {
		return nil, err
	}

	return r, nil
}

// PowerOn releases reset and waits for the sensor to boot
func (r *Reset) PowerOn() error {

	if err := r.pin.Out(gpio.High); err != nil {
		return fmt.Errorf("gpio: failed to release reset: %w", err)
	}

	r.sleep(r.settle)

	return nil
}

// PowerOff asserts reset
func (r *Reset) PowerOff() error {

	if err := r.pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("gpio: failed to assert reset: %w", err)
	}

	return nil
}
