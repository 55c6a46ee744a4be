// go-ov64a40 is a register level control driver for the OmniVision OV64A40
// image sensor.
package ov64a40

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"
)

const (
	// Address is the default address of the sensor on I2C bus
	Address uint8 = 0x36

	// ChipID is the value of REG_CHIP_ID on a genuine OV64A40
	ChipID uint64 = 0x566441

	// XclkFrequency is the only supported input clock frequency in Hz
	XclkFrequency int64 = 24000000
	// PixelRate is the fixed pixel rate in Hz
	PixelRate int64 = 300000000

	// LinkFreq456M is the fast MIPI link frequency in Hz
	LinkFreq456M int64 = 456000000
	// LinkFreq360M is the reduced MIPI link frequency in Hz
	LinkFreq360M int64 = 360000000

	// DataLanes is the only supported number of CSI-2 data lanes
	DataLanes = 2

	ExposureMin    = 16
	ExposureMargin = 32

	VBlankMin = 32
	VTSMax    = 0xffffff

	AnalogueGainMin     = 128
	AnalogueGainMax     = 2047
	AnalogueGainDefault = AnalogueGainMin

	// LineLengthMultiplier is the internal multiplier the sensor applies on
	// the programmed line length
	LineLengthMultiplier = 4

	NativeWidth  = 9286
	NativeHeight = 6976

	PixelArrayLeft   = 0
	PixelArrayTop    = 0
	PixelArrayWidth  = 9248
	PixelArrayHeight = 6944
)

var (
	// ErrIO is returned when a register read or write fails
	ErrIO = errors.New("register i/o failed")
	// ErrConfig is returned for unsupported link parameters
	ErrConfig = errors.New("invalid configuration")
	// ErrControl is returned when a control write is rejected
	ErrControl = errors.New("control rejected")
	// ErrBusy is returned when the operation is not allowed while streaming
	ErrBusy = errors.New("device busy")
	// ErrNotReady is returned when the device could not be powered
	ErrNotReady = errors.New("device not ready")
	// ErrNotFound is returned when the chip does not identify as an OV64A40
	ErrNotFound = errors.New("device not found")
)

// Endpoint describes the CSI-2 link negotiated with the receiver
type Endpoint struct {
	DataLanes       int
	LinkFrequencies []int64
	XclkFrequency   int64
}

// Validate checks the endpoint against what the sensor supports
func (e Endpoint) Validate() error {

	if e.XclkFrequency != XclkFrequency {
		return fmt.Errorf("%w: unsupported xclk frequency %d", ErrConfig, e.XclkFrequency)
	}

	if e.DataLanes != DataLanes {
		return fmt.Errorf("%w: unsupported number of data lanes: %d", ErrConfig, e.DataLanes)
	}

	if len(e.LinkFrequencies) == 0 {
		return fmt.Errorf("%w: no link frequencies defined", ErrConfig)
	}

	if len(e.LinkFrequencies) > 2 {
		return fmt.Errorf("%w: unsupported number of link frequencies", ErrConfig)
	}

	for _, f := range e.LinkFrequencies {
		if f != LinkFreq360M && f != LinkFreq456M {
			return fmt.Errorf("%w: unsupported link frequency %d", ErrConfig, f)
		}
	}

	return nil
}

// Sensor represents a single OV64A40 sensor instance.
type Sensor struct {
	// mu serializes format negotiation, control writes and streaming
	mu sync.Mutex

	rio   RegisterIO
	power *powerRef

	linkFrequencies []int64

	mode *Mode
	crop Rect

	controls *ControlSet

	state StreamState

	// sleep blocks for the settle delay after stream start
	sleep func(time.Duration)

	// log logger for debugging
	log *log.Logger
}

// New returns a new Sensor driven through rio and powered by power. The
// chip is powered up for identification and released again before returning.
func New(rio RegisterIO, power Power, ep Endpoint) (*Sensor, error) {
	return NewWithLog(rio, power, ep, log.New(io.Discard, "", log.LstdFlags))
}

// NewWithLog creates sensor instance with logger to be used for debugging
func NewWithLog(rio RegisterIO, power Power, ep Endpoint,
	logger *log.Logger) (*Sensor, error) {

	s, err := newSensor(rio, power, ep)

	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.New(io.Discard, "", log.LstdFlags)
	}

	s.log = logger

	if err := s.setup(); err != nil {
		return nil, err
	}

	return s, nil
}

// newSensor validates the endpoint and returns an unconfigured sensor
func newSensor(rio RegisterIO, power Power, ep Endpoint) (*Sensor, error) {

	if rio == nil {
		return nil, fmt.Errorf("%w: register transport is not set", ErrConfig)
	}

	if power == nil {
		power = AlwaysOn{}
	}

	if err := ep.Validate(); err != nil {
		return nil, err
	}

	s := &Sensor{
		rio:             rio,
		power:           &powerRef{power: power},
		linkFrequencies: append([]int64(nil), ep.LinkFrequencies...),
		mode:            &modes[0],
		state:           Idle,
		sleep:           time.Sleep,
	}

	s.crop = s.CropDefault()

	return s, nil
}

// setup completes New instance creation and is a common function for New() and
// NewWithLog()
func (s *Sensor) setup() error {

	s.log.Printf("Starting setup()")

	if err := s.power.get(); err != nil {
		return err
	}

	defer s.releasePower()

	if err := s.identify(); err != nil {
		return err
	}

	cs, err := newControlSet(s.mode, s.linkFrequencies)

	if err != nil {
		return err
	}

	s.controls = cs

	s.log.Printf("Device identified, %d link frequencies", len(s.linkFrequencies))

	return nil
}

// Identify reads the chip id and compares it with ChipID
func (s *Sensor) Identify() error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.power.get(); err != nil {
		return err
	}

	defer s.releasePower()

	return s.identify()
}

// identify checks the chip id, the device must be powered
func (s *Sensor) identify() error {

	id, err := s.rio.ReadRegister(REG_CHIP_ID)

	if err != nil {
		return fmt.Errorf("%w: failed to read chip id: %w", ErrIO, err)
	}

	if id != ChipID {
		return fmt.Errorf("%w: chip id mismatch: 0x%X", ErrNotFound, id)
	}

	s.log.Printf("OV64A40 chip identified: 0x%X", id)

	return nil
}

// LinkFrequencies returns the link frequencies negotiated at initialization
func (s *Sensor) LinkFrequencies() []int64 {
	return append([]int64(nil), s.linkFrequencies...)
}

// releasePower drops a power reference, a failure to power off is logged
func (s *Sensor) releasePower() {

	if err := s.power.put(); err != nil {
		s.log.Printf("Failed to power off: %v", err)
	}
}
