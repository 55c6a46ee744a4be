package ov64a40

import "fmt"

// ControlID identifies an adjustable sensor control
type ControlID int

const (
	CtrlPixelRate ControlID = iota
	CtrlLinkFreq
	CtrlTestPattern
	CtrlExposure
	CtrlHBlank
	CtrlVBlank
	CtrlAnalogueGain
	CtrlHFlip
	CtrlVFlip

	numControls
)

// String implement Stringer interface for ControlID
func (id ControlID) String() string {
	switch id {
	case CtrlPixelRate:
		return "pixel_rate"
	case CtrlLinkFreq:
		return "link_frequency"
	case CtrlTestPattern:
		return "test_pattern"
	case CtrlExposure:
		return "exposure"
	case CtrlHBlank:
		return "horizontal_blank"
	case CtrlVBlank:
		return "vertical_blank"
	case CtrlAnalogueGain:
		return "analogue_gain"
	case CtrlHFlip:
		return "horizontal_flip"
	case CtrlVFlip:
		return "vertical_flip"
	default:
		return fmt.Sprintf("control(%d)", int(id))
	}
}

// ParseControlID returns the control with the given name
func ParseControlID(name string) (ControlID, error) {

	for id := ControlID(0); id < numControls; id++ {
		if id.String() == name {
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown control %q", ErrControl, name)
}

// TestPatternMenu lists the names of the test pattern menu entries
var TestPatternMenu = []string{
	"Disabled",
	"Type1",
	"Type2",
	"Type3",
	"Type4",
}

var testPatternVal = []uint32{
	TEST_PATTERN_DISABLED,
	TEST_PATTERN_TYPE1,
	TEST_PATTERN_TYPE2,
	TEST_PATTERN_TYPE3,
	TEST_PATTERN_TYPE4,
}

// Range holds the limits of a control
type Range struct {
	Min     int64
	Max     int64
	Default int64
	Step    int64
}

// Control is the state of a single control
type Control struct {
	ID    ControlID
	Range Range
	Value int64

	// ReadOnly controls are never writable
	ReadOnly bool
	// Grabbed controls are frozen while the sensor streams
	Grabbed bool

	// Menu holds the integer menu items of menu controls
	Menu []int64
}

// ControlSet owns the values and ranges of all sensor controls and the
// dependencies between them. It performs no register I/O.
type ControlSet struct {
	ctrls [numControls]Control
	freqs []int64
}

// newControlSet builds the controls for mode at the first link frequency
func newControlSet(mode *Mode, freqs []int64) (*ControlSet, error) {

	t, err := Resolve(mode, freqs, 0)

	if err != nil {
		return nil, err
	}

	lim := limitsFor(mode, t)

	cs := &ControlSet{freqs: append([]int64(nil), freqs...)}

	cs.ctrls[CtrlPixelRate] = Control{
		Range:    Range{Min: PixelRate, Max: PixelRate, Default: PixelRate, Step: 1},
		Value:    PixelRate,
		ReadOnly: true,
	}

	cs.ctrls[CtrlLinkFreq] = Control{
		Range: Range{Min: 0, Max: int64(len(freqs) - 1), Default: 0, Step: 1},
		Menu:  cs.freqs,
	}

	cs.ctrls[CtrlTestPattern] = Control{
		Range: Range{Min: 0, Max: int64(len(TestPatternMenu) - 1), Default: 0, Step: 1},
	}

	cs.ctrls[CtrlExposure] = Control{
		Range: Range{Min: ExposureMin, Max: lim.exposureMax, Default: ExposureMin, Step: 1},
		Value: ExposureMin,
	}

	cs.ctrls[CtrlHBlank] = Control{
		Range:    Range{Min: lim.hblank, Max: lim.hblank, Default: lim.hblank, Step: 1},
		Value:    lim.hblank,
		ReadOnly: true,
	}

	cs.ctrls[CtrlVBlank] = Control{
		Range: Range{Min: lim.vblankMin, Max: lim.vblankMax, Default: lim.vblankDef, Step: 1},
		Value: lim.vblankDef,
	}

	cs.ctrls[CtrlAnalogueGain] = Control{
		Range: Range{Min: AnalogueGainMin, Max: AnalogueGainMax, Default: AnalogueGainDefault, Step: 1},
		Value: AnalogueGainDefault,
	}

	cs.ctrls[CtrlHFlip] = Control{Range: Range{Min: 0, Max: 1, Default: 0, Step: 1}}
	cs.ctrls[CtrlVFlip] = Control{Range: Range{Min: 0, Max: 1, Default: 0, Step: 1}}

	for id := range cs.ctrls {
		cs.ctrls[id].ID = ControlID(id)
	}

	return cs, nil
}

// Get returns a copy of the control
func (cs *ControlSet) Get(id ControlID) (Control, error) {

	if id < 0 || id >= numControls {
		return Control{}, fmt.Errorf("%w: unknown control %d", ErrControl, int(id))
	}

	c := cs.ctrls[id]
	c.Menu = append([]int64(nil), c.Menu...)

	return c, nil
}

// Value returns the current value of the control
func (cs *ControlSet) Value(id ControlID) int64 {
	return cs.ctrls[id].Value
}

// Range returns the limits of the control
func (cs *ControlSet) Range(id ControlID) Range {
	return cs.ctrls[id].Range
}

// All returns copies of all controls in id order
func (cs *ControlSet) All() []Control {

	all := make([]Control, 0, numControls)

	for id := ControlID(0); id < numControls; id++ {
		c, _ := cs.Get(id)
		all = append(all, c)
	}

	return all
}

// validate checks a user write of val to the control without changing state
func (cs *ControlSet) validate(id ControlID, val int64) error {

	if id < 0 || id >= numControls {
		return fmt.Errorf("%w: unknown control %d", ErrControl, int(id))
	}

	c := &cs.ctrls[id]

	if c.ReadOnly {
		return fmt.Errorf("%w: %s is read-only", ErrControl, id)
	}

	if c.Grabbed {
		return fmt.Errorf("%w: %s cannot change while streaming", ErrControl, id)
	}

	r := c.Range

	if val < r.Min || val > r.Max {
		return fmt.Errorf("%w: %s value %d out of range [%d, %d]", ErrControl, id, val, r.Min, r.Max)
	}

	if r.Step > 1 && (val-r.Min)%r.Step != 0 {
		return fmt.Errorf("%w: %s value %d not a multiple of step %d", ErrControl, id, val, r.Step)
	}

	return nil
}

// setValue stores the value without any dependency handling
func (cs *ControlSet) setValue(id ControlID, val int64) {
	cs.ctrls[id].Value = val
}

// restore puts back a saved control state
func (cs *ControlSet) restore(c Control) {
	cs.ctrls[c.ID] = c
}

// modifyRange replaces the limits of the control and clamps its value into
// the new range. It reports whether the value changed.
func (cs *ControlSet) modifyRange(id ControlID, r Range) bool {

	c := &cs.ctrls[id]
	c.Range = r

	old := c.Value

	if c.Value > r.Max {
		c.Value = r.Max
	}

	if c.Value < r.Min {
		c.Value = r.Min
	}

	return c.Value != old
}

// applyTiming recomputes the controls that depend on the active mode and
// timing. Vertical blanking snaps to its new default, exposure is clamped
// down to the new limit and horizontal blanking takes its new fixed value.
// It returns the controls whose register value must be rewritten.
func (cs *ControlSet) applyTiming(mode *Mode, t Timing) []ControlID {

	lim := limitsFor(mode, t)

	cs.modifyRange(CtrlVBlank, Range{Min: lim.vblankMin, Max: lim.vblankMax, Default: lim.vblankDef, Step: 1})
	cs.setValue(CtrlVBlank, lim.vblankDef)

	changed := []ControlID{}

	if cs.modifyRange(CtrlExposure, Range{Min: ExposureMin, Max: lim.exposureMax, Default: ExposureMin, Step: 1}) {
		changed = append(changed, CtrlExposure)
	}

	cs.modifyRange(CtrlHBlank, Range{Min: lim.hblank, Max: lim.hblank, Default: lim.hblank, Step: 1})
	cs.setValue(CtrlHBlank, lim.hblank)

	return append(changed, CtrlVBlank)
}

// applyVBlank recomputes the exposure limit for a new vertical blanking value
// and clamps exposure down when needed. Exposure is never raised. It reports
// whether the exposure value changed.
func (cs *ControlSet) applyVBlank(height int, vblank int64) bool {

	expMax := int64(height) + vblank - ExposureMargin
	exp := cs.ctrls[CtrlExposure].Range

	return cs.modifyRange(CtrlExposure, Range{Min: exp.Min, Max: expMax, Default: exp.Default, Step: 1})
}

// grab freezes or releases the controls that are latched at stream start
func (cs *ControlSet) grab(grabbed bool) {
	for _, id := range []ControlID{CtrlLinkFreq, CtrlVFlip, CtrlHFlip} {
		cs.ctrls[id].Grabbed = grabbed
	}
}

// linkFreqID returns the timing variant of the selected link frequency
func (cs *ControlSet) linkFreqID() (LinkFreqID, error) {
	return linkFreqID(cs.freqs, int(cs.ctrls[CtrlLinkFreq].Value))
}

// busCode returns the Bayer order produced with the current flips
func (cs *ControlSet) busCode() BusCode {
	index := cs.ctrls[CtrlHFlip].Value<<1 | cs.ctrls[CtrlVFlip].Value
	return busCodes[index]
}

// setupOrder is the order controls are replayed in at stream start. Read-only
// controls have no register and are skipped.
var setupOrder = []ControlID{
	CtrlLinkFreq,
	CtrlTestPattern,
	CtrlExposure,
	CtrlVBlank,
	CtrlAnalogueGain,
	CtrlHFlip,
	CtrlVFlip,
}

// controlProgram maps a control value to the register ops realizing it
func controlProgram(id ControlID, val int64, mode *Mode, freqs []int64) ([]RegOp, error) {

	switch id {
	case CtrlExposure:
		return []RegOp{write(REG_MEC_LONG_EXPO, uint32(val))}, nil

	case CtrlAnalogueGain:
		return []RegOp{write(REG_MEC_LONG_GAIN, uint32(val)<<1)}, nil

	case CtrlVBlank:
		vts := uint32(val) + uint32(mode.Height)

		return []RegOp{
			write(REG_TIMINGS_VTS_LOW, vts&0xff),
			write(REG_TIMINGS_VTS_MID, (vts>>8)&0xff),
			write(REG_TIMINGS_VTS_HIGH, (vts>>16)&0xff),
		}, nil

	case CtrlVFlip:
		return []RegOp{update(REG_TIMING_CTRL_20, TIMING_CTRL_20_VFLIP, uint32(val)<<2)}, nil

	case CtrlHFlip:
		// the readout is mirrored with the bit cleared
		var bit uint32

		if val == 0 {
			bit = TIMING_CTRL_21_HFLIP
		}

		return []RegOp{update(REG_TIMING_CTRL_21, TIMING_CTRL_21_HFLIP, bit)}, nil

	case CtrlTestPattern:
		if val < 0 || int(val) >= len(testPatternVal) {
			return nil, fmt.Errorf("%w: test pattern %d out of range", ErrControl, val)
		}

		return []RegOp{write(REG_TEST_PATTERN, testPatternVal[val])}, nil

	case CtrlLinkFreq:
		lf, err := linkFreqID(freqs, int(val))

		if err != nil {
			return nil, err
		}

		return linkFreqProgram(lf), nil

	case CtrlPixelRate, CtrlHBlank:
		return nil, nil
	}

	return nil, fmt.Errorf("%w: unhandled control %s", ErrControl, id)
}
