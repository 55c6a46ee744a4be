package ov64a40

import (
	"errors"
	"testing"
	"time"
)

var errFakeBus = errors.New("fake bus failure")

type regWrite struct {
	reg   Register
	value uint32
}

// fakeRegs is an in memory register file recording every write
type fakeRegs struct {
	regs   map[uint16]uint64
	writes []regWrite

	// failAddr fails every write to the address when failWrite is set
	failWrite bool
	failAddr  uint16

	// failAt fails the nth write (1 based) when non zero
	failAt int

	readErr error
}

func newFakeRegs() *fakeRegs {
	return &fakeRegs{
		regs: map[uint16]uint64{REG_CHIP_ID.Addr: ChipID},
	}
}

func (f *fakeRegs) WriteRegister(reg Register, value uint32) error {

	if f.failWrite && reg.Addr == f.failAddr {
		return errFakeBus
	}

	if f.failAt > 0 && len(f.writes)+1 == f.failAt {
		return errFakeBus
	}

	f.writes = append(f.writes, regWrite{reg: reg, value: value})
	f.regs[reg.Addr] = uint64(value)

	return nil
}

func (f *fakeRegs) ReadRegister(reg Register) (uint64, error) {

	if f.readErr != nil {
		return 0, f.readErr
	}

	return f.regs[reg.Addr], nil
}

// reset forgets the recorded writes
func (f *fakeRegs) reset() {
	f.writes = nil
}

// lastIndex returns the position of the last write to addr or -1
func (f *fakeRegs) lastIndex(addr uint16) int {

	idx := -1

	for i, w := range f.writes {
		if w.reg.Addr == addr {
			idx = i
		}
	}

	return idx
}

// fakePower counts power transitions
type fakePower struct {
	on     int
	off    int
	err    error
	offErr error
}

func (p *fakePower) PowerOn() error {

	if p.err != nil {
		return p.err
	}

	p.on++

	return nil
}

func (p *fakePower) PowerOff() error {
	p.off++
	return p.offErr
}

func testEndpoint(freqs ...int64) Endpoint {

	if len(freqs) == 0 {
		freqs = []int64{LinkFreq456M}
	}

	return Endpoint{
		DataLanes:       DataLanes,
		LinkFrequencies: freqs,
		XclkFrequency:   XclkFrequency,
	}
}

// newTestSensor returns an identified sensor on a fake register file. The
// settle sleep is recorded instead of performed.
func newTestSensor(t *testing.T, freqs ...int64) (*Sensor, *fakeRegs, *fakePower, *time.Duration) {

	t.Helper()

	rio := newFakeRegs()
	power := &fakePower{}

	s, err := New(rio, power, testEndpoint(freqs...))

	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	slept := new(time.Duration)
	s.SetSleep(func(d time.Duration) { *slept = d })

	rio.reset()

	return s, rio, power, slept
}
