package ov64a40

import (
	"errors"
	"testing"
	"time"
)

func TestStartProgramsSensor(t *testing.T) {
	s, rio, power, slept := newTestSensor(t)

	if _, _, err := s.NegotiateFormat(3840, 2160); err != nil {
		t.Fatalf("NegotiateFormat() error = %v", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if s.State() != Streaming {
		t.Errorf("State() = %s, want streaming", s.State())
	}

	if !s.power.active() || power.on != 2 {
		t.Errorf("power on calls = %d, active = %v", power.on, s.power.active())
	}

	if first := rio.writes[0]; first != (regWrite{reg8(0x0103), 0x01}) {
		t.Errorf("first write = %+v, want software reset", first)
	}

	last := rio.writes[len(rio.writes)-1]

	if last != (regWrite{REG_SMIA, REG_SMIA_STREAMING}) {
		t.Errorf("last write = %+v, want stream on", last)
	}

	// geometry before subsampling, controls in replay order, stream on last
	order := []uint16{
		REG_TIMING_CTRLC.Addr,
		REG_TIMING_CTRL14.Addr,
		PLL1_MULTIPLIER.Addr,
		REG_TEST_PATTERN.Addr,
		REG_MEC_LONG_EXPO.Addr,
		REG_TIMINGS_VTS_LOW.Addr,
		REG_MEC_LONG_GAIN.Addr,
		REG_SMIA.Addr,
	}

	prev := -1

	for _, addr := range order {
		idx := rio.lastIndex(addr)

		if idx <= prev {
			t.Errorf("write to 0x%04X at %d, want after %d", addr, idx, prev)
		}

		prev = idx
	}

	if *slept != 532*time.Microsecond {
		t.Errorf("settle sleep = %s, want 532us", *slept)
	}

	for _, id := range []ControlID{CtrlLinkFreq, CtrlHFlip, CtrlVFlip} {
		if c, _ := s.Control(id); !c.Grabbed {
			t.Errorf("%s not grabbed while streaming", id)
		}
	}
}

func TestStartReplaysControls(t *testing.T) {
	s, rio, _, _ := newTestSensor(t)

	if err := s.SetControl(CtrlAnalogueGain, 300); err != nil {
		t.Fatalf("SetControl() error = %v", err)
	}

	if err := s.SetControl(CtrlTestPattern, 1); err != nil {
		t.Fatalf("SetControl() error = %v", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if got := rio.regs[REG_MEC_LONG_GAIN.Addr]; got != 600 {
		t.Errorf("gain register = %d, want 600", got)
	}

	if got := rio.regs[REG_TEST_PATTERN.Addr]; got != uint64(TEST_PATTERN_TYPE1) {
		t.Errorf("test pattern register = 0x%X, want 0x%X", got, TEST_PATTERN_TYPE1)
	}
}

func TestStartStop(t *testing.T) {
	s, rio, power, _ := newTestSensor(t)

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := s.Start(); !errors.Is(err, ErrBusy) {
		t.Errorf("second Start() error = %v, want ErrBusy", err)
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	if s.State() != Idle {
		t.Errorf("State() = %s, want idle", s.State())
	}

	if rio.regs[REG_SMIA.Addr]&uint64(REG_SMIA_STREAMING) != 0 {
		t.Error("streaming bit still set")
	}

	if s.power.active() || power.on != power.off {
		t.Errorf("power on/off = %d/%d after Stop()", power.on, power.off)
	}

	for _, c := range s.Controls() {
		if c.Grabbed {
			t.Errorf("%s still grabbed after Stop()", c.ID)
		}
	}

	rio.reset()

	if err := s.Stop(); err != nil {
		t.Errorf("Stop() while idle error = %v", err)
	}

	if len(rio.writes) != 0 {
		t.Errorf("Stop() while idle wrote %d registers", len(rio.writes))
	}
}

func TestStartFailureReleasesPower(t *testing.T) {
	s, rio, power, slept := newTestSensor(t)

	// fail inside the mode table
	rio.failAt = len(globalInit) + 1

	err := s.Start()

	if !errors.Is(err, ErrIO) {
		t.Fatalf("Start() error = %v, want ErrIO", err)
	}

	if s.State() != Idle {
		t.Errorf("State() = %s, want idle", s.State())
	}

	if s.power.active() || power.on != power.off {
		t.Errorf("power on/off = %d/%d after failed Start()", power.on, power.off)
	}

	if *slept != 0 {
		t.Errorf("settle sleep = %s after failed Start()", *slept)
	}

	if rio.lastIndex(REG_SMIA.Addr) >= 0 {
		t.Error("stream on written after failure")
	}

	rio.failAt = 0

	if err := s.Start(); err != nil {
		t.Errorf("Start() after failure error = %v", err)
	}
}

func TestStartPowerFailure(t *testing.T) {
	s, _, power, _ := newTestSensor(t)

	power.err = errFakeBus

	if err := s.Start(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Start() error = %v, want ErrNotReady", err)
	}

	if s.State() != Idle {
		t.Errorf("State() = %s, want idle", s.State())
	}
}

func TestStopFailureStillReleases(t *testing.T) {
	s, rio, power, _ := newTestSensor(t)

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	rio.failWrite = true
	rio.failAddr = REG_SMIA.Addr

	if err := s.Stop(); !errors.Is(err, ErrIO) {
		t.Fatalf("Stop() error = %v, want ErrIO", err)
	}

	if s.State() != Idle {
		t.Errorf("State() = %s, want idle", s.State())
	}

	if s.power.active() || power.on != power.off {
		t.Errorf("power on/off = %d/%d after failed Stop()", power.on, power.off)
	}
}

func TestNegotiateFormatWhileStreaming(t *testing.T) {
	s, _, _, _ := newTestSensor(t)

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if _, _, err := s.NegotiateFormat(1920, 1080); !errors.Is(err, ErrBusy) {
		t.Errorf("NegotiateFormat() error = %v, want ErrBusy", err)
	}

	// the active mode is accepted without change
	m, code, err := s.NegotiateFormat(9248, 6944)

	if err != nil {
		t.Fatalf("NegotiateFormat(active) error = %v", err)
	}

	if m != s.Mode() || code != BusFmtSBGGR10 {
		t.Errorf("NegotiateFormat(active) = %dx%d %s", m.Width, m.Height, code)
	}

	if m, _ := s.TryFormat(1920, 1080); m.Width != 1920 {
		t.Errorf("TryFormat() = %dx%d, want 1920x1080", m.Width, m.Height)
	}

	if s.Mode().Width != 9248 {
		t.Errorf("TryFormat() changed the active mode")
	}
}

func TestBusCodeWithFlips(t *testing.T) {
	s, _, _, _ := newTestSensor(t)

	if err := s.SetControl(CtrlHFlip, 1); err != nil {
		t.Fatalf("SetControl() error = %v", err)
	}

	if got := s.BusCode(); got != BusFmtSGBRG10 {
		t.Errorf("BusCode() = %s, want %s", got, BusFmtSGBRG10)
	}

	if _, code, _ := s.NegotiateFormat(1920, 1080); code != BusFmtSGBRG10 {
		t.Errorf("NegotiateFormat() code = %s, want %s", code, BusFmtSGBRG10)
	}
}

func TestSnapshot(t *testing.T) {
	s, _, _, _ := newTestSensor(t, LinkFreq456M, LinkFreq360M)

	if err := s.SetControl(CtrlLinkFreq, 1); err != nil {
		t.Fatalf("SetControl() error = %v", err)
	}

	snap := s.Snapshot()

	if snap.Width != 9248 || snap.Height != 6944 {
		t.Errorf("size = %dx%d", snap.Width, snap.Height)
	}

	if snap.State != "idle" || snap.BusCode != "SBGGR10_1X10" {
		t.Errorf("state = %q, bus code = %q", snap.State, snap.BusCode)
	}

	if snap.LinkFrequency != LinkFreq360M {
		t.Errorf("link frequency = %d, want %d", snap.LinkFrequency, LinkFreq360M)
	}

	if snap.Controls["exposure"] != ExposureMin || len(snap.Controls) != int(numControls) {
		t.Errorf("controls = %v", snap.Controls)
	}
}

func TestStreamStateString(t *testing.T) {
	tests := map[StreamState]string{
		Idle:           "idle",
		Starting:       "starting",
		Streaming:      "streaming",
		Stopping:       "stopping",
		StreamState(9): "unknown",
	}

	for st, want := range tests {
		if got := st.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
