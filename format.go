package ov64a40

import "fmt"

// BusCode is a media bus format code
type BusCode uint32

const (
	BusFmtSBGGR10 BusCode = 0x3007
	BusFmtSGBRG10 BusCode = 0x300E
	BusFmtSGRBG10 BusCode = 0x300A
	BusFmtSRGGB10 BusCode = 0x300F
)

// busCodes is indexed by hflip<<1 | vflip
var busCodes = [4]BusCode{
	BusFmtSBGGR10,
	BusFmtSGRBG10,
	BusFmtSGBRG10,
	BusFmtSRGGB10,
}

// String implement Stringer interface for BusCode
func (c BusCode) String() string {
	switch c {
	case BusFmtSBGGR10:
		return "SBGGR10_1X10"
	case BusFmtSGBRG10:
		return "SGBRG10_1X10"
	case BusFmtSGRBG10:
		return "SGRBG10_1X10"
	case BusFmtSRGGB10:
		return "SRGGB10_1X10"
	default:
		return fmt.Sprintf("0x%04X", uint32(c))
	}
}

// EnumerateModes returns the sizes of the supported modes
func (s *Sensor) EnumerateModes() []Size {
	return Modes()
}

// BusCode returns the media bus code produced with the current flips
func (s *Sensor) BusCode() BusCode {

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.controls.busCode()
}

// TryFormat returns the mode that would be selected for the requested size
// without changing the sensor state
func (s *Sensor) TryFormat(width, height int) (*Mode, BusCode) {

	s.mu.Lock()
	defer s.mu.Unlock()

	return FindNearest(width, height), s.controls.busCode()
}

// NegotiateFormat selects the mode nearest to the requested size, makes it
// active and updates the timing dependent controls
func (s *Sensor) NegotiateFormat(width, height int) (*Mode, BusCode, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	mode := FindNearest(width, height)
	code := s.controls.busCode()

	if mode == s.mode {
		return mode, code, nil
	}

	if s.state != Idle {
		return nil, 0, fmt.Errorf("%w: cannot change format while %s", ErrBusy, s.state)
	}

	s.mode = mode
	s.crop = mode.AnalogueCrop

	s.log.Printf("Mode set to %dx%d", mode.Width, mode.Height)

	if err := s.updateTiming(); err != nil {
		return nil, 0, err
	}

	return mode, code, nil
}

// Mode returns the active mode
func (s *Sensor) Mode() *Mode {

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode
}

// Crop returns the active analogue crop rectangle
func (s *Sensor) Crop() Rect {

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.crop
}

// NativeSize returns the full size of the pixel array including inactive
// pixels
func (s *Sensor) NativeSize() Rect {
	return Rect{Left: 0, Top: 0, Width: NativeWidth, Height: NativeHeight}
}

// CropBounds returns the area of active pixels
func (s *Sensor) CropBounds() Rect {
	return Rect{
		Left:   PixelArrayLeft,
		Top:    PixelArrayTop,
		Width:  PixelArrayWidth,
		Height: PixelArrayHeight,
	}
}

// CropDefault returns the default crop rectangle, equal to CropBounds
func (s *Sensor) CropDefault() Rect {
	return s.CropBounds()
}
