package ov64a40

import (
	"fmt"
	"log"

	"github.com/swdee/go-i2c"
)

// NewI2C returns a new Sensor on an opened I2C connection
func NewI2C(bus *i2c.Options, power Power, ep Endpoint) (*Sensor, error) {
	return NewI2CWithLog(bus, power, ep, nil)
}

// NewI2CWithLog returns a new Sensor on an opened I2C connection with logger
// to be used for debugging
func NewI2CWithLog(bus *i2c.Options, power Power, ep Endpoint,
	logger *log.Logger) (*Sensor, error) {

	if bus == nil || bus.GetAddr() == 0 {
		return nil, fmt.Errorf("%w: I2C device is not initiated", ErrConfig)
	}

	return NewWithLog(NewCCI(bus), power, ep, logger)
}

// OpenI2C opens the I2C device at path for the sensor at addr
func OpenI2C(addr uint8, path string) (*i2c.Options, error) {

	if addr == 0 {
		addr = Address
	}

	bus, err := i2c.New(addr, path)

	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return bus, nil
}
