package ov64a40

import (
	"errors"
	"testing"
)

func TestNewControlSetDefaults(t *testing.T) {
	cs, err := newControlSet(&modes[0], []int64{LinkFreq456M})

	if err != nil {
		t.Fatalf("newControlSet() error = %v", err)
	}

	tests := []struct {
		id        ControlID
		wantValue int64
		wantRange Range
	}{
		{CtrlPixelRate, PixelRate, Range{PixelRate, PixelRate, PixelRate, 1}},
		{CtrlLinkFreq, 0, Range{0, 0, 0, 1}},
		{CtrlTestPattern, 0, Range{0, 4, 0, 1}},
		{CtrlExposure, ExposureMin, Range{ExposureMin, 7040, ExposureMin, 1}},
		{CtrlHBlank, 7040, Range{7040, 7040, 7040, 1}},
		{CtrlVBlank, 128, Range{VBlankMin, VTSMax - 6944, 128, 1}},
		{CtrlAnalogueGain, 128, Range{128, 2047, 128, 1}},
		{CtrlHFlip, 0, Range{0, 1, 0, 1}},
		{CtrlVFlip, 0, Range{0, 1, 0, 1}},
	}

	for _, tt := range tests {
		c, err := cs.Get(tt.id)

		if err != nil {
			t.Fatalf("Get(%s) error = %v", tt.id, err)
		}

		if c.ID != tt.id {
			t.Errorf("Get(%s).ID = %s", tt.id, c.ID)
		}

		if c.Value != tt.wantValue {
			t.Errorf("%s value = %d, want %d", tt.id, c.Value, tt.wantValue)
		}

		if c.Range != tt.wantRange {
			t.Errorf("%s range = %+v, want %+v", tt.id, c.Range, tt.wantRange)
		}
	}

	if len(cs.All()) != int(numControls) {
		t.Errorf("len(All()) = %d, want %d", len(cs.All()), numControls)
	}
}

func TestControlSetValidate(t *testing.T) {
	cs, _ := newControlSet(&modes[0], []int64{LinkFreq456M, LinkFreq360M})
	cs.ctrls[CtrlVFlip].Grabbed = true

	tests := []struct {
		name    string
		id      ControlID
		val     int64
		wantErr bool
	}{
		{"gain in range", CtrlAnalogueGain, 2047, false},
		{"gain above max", CtrlAnalogueGain, 2048, true},
		{"exposure below min", CtrlExposure, 15, true},
		{"link freq second", CtrlLinkFreq, 1, false},
		{"link freq out of menu", CtrlLinkFreq, 2, true},
		{"hblank read only", CtrlHBlank, 7040, true},
		{"pixel rate read only", CtrlPixelRate, PixelRate, true},
		{"vflip grabbed", CtrlVFlip, 1, true},
		{"hflip free", CtrlHFlip, 1, false},
		{"unknown", numControls, 0, true},
		{"negative", ControlID(-1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cs.validate(tt.id, tt.val)

			if tt.wantErr && !errors.Is(err, ErrControl) {
				t.Errorf("validate() error = %v, want ErrControl", err)
			}

			if !tt.wantErr && err != nil {
				t.Errorf("validate() error = %v, want nil", err)
			}
		})
	}
}

func TestApplyVBlankNeverRaisesExposure(t *testing.T) {
	m := FindNearest(3840, 2160)
	cs, _ := newControlSet(m, []int64{LinkFreq456M})

	cs.setValue(CtrlExposure, 2186)

	if !cs.applyVBlank(m.Height, 40) {
		t.Error("applyVBlank(40) did not report an exposure change")
	}

	if got := cs.Value(CtrlExposure); got != 2168 {
		t.Errorf("exposure = %d, want 2168", got)
	}

	if cs.applyVBlank(m.Height, 58) {
		t.Error("applyVBlank(58) reported an exposure change")
	}

	if got := cs.Value(CtrlExposure); got != 2168 {
		t.Errorf("exposure = %d, want 2168", got)
	}

	if got := cs.Range(CtrlExposure).Max; got != 2186 {
		t.Errorf("exposure max = %d, want 2186", got)
	}
}

func TestBusCodeFollowsFlips(t *testing.T) {
	cs, _ := newControlSet(&modes[0], []int64{LinkFreq456M})

	tests := []struct {
		hflip, vflip int64
		want         BusCode
	}{
		{0, 0, BusFmtSBGGR10},
		{0, 1, BusFmtSGRBG10},
		{1, 0, BusFmtSGBRG10},
		{1, 1, BusFmtSRGGB10},
	}

	for _, tt := range tests {
		cs.setValue(CtrlHFlip, tt.hflip)
		cs.setValue(CtrlVFlip, tt.vflip)

		if got := cs.busCode(); got != tt.want {
			t.Errorf("busCode(h=%d, v=%d) = %s, want %s", tt.hflip, tt.vflip, got, tt.want)
		}
	}
}

func TestParseControlID(t *testing.T) {
	for id := ControlID(0); id < numControls; id++ {
		got, err := ParseControlID(id.String())

		if err != nil || got != id {
			t.Errorf("ParseControlID(%q) = %v, %v", id.String(), got, err)
		}
	}

	if _, err := ParseControlID("brightness"); !errors.Is(err, ErrControl) {
		t.Errorf("ParseControlID(brightness) error = %v, want ErrControl", err)
	}
}

func TestControlProgram(t *testing.T) {
	m := FindNearest(3840, 2160)
	freqs := []int64{LinkFreq456M}

	tests := []struct {
		name string
		id   ControlID
		val  int64
		want []RegOp
	}{
		{"exposure", CtrlExposure, 1000, []RegOp{write(REG_MEC_LONG_EXPO, 1000)}},
		{"gain", CtrlAnalogueGain, 256, []RegOp{write(REG_MEC_LONG_GAIN, 512)}},
		{"vblank", CtrlVBlank, 0x10000, []RegOp{
			write(REG_TIMINGS_VTS_LOW, 0x70),
			write(REG_TIMINGS_VTS_MID, 0x08),
			write(REG_TIMINGS_VTS_HIGH, 0x01),
		}},
		{"vflip on", CtrlVFlip, 1, []RegOp{update(REG_TIMING_CTRL_20, TIMING_CTRL_20_VFLIP, TIMING_CTRL_20_VFLIP)}},
		{"hflip off sets bit", CtrlHFlip, 0, []RegOp{update(REG_TIMING_CTRL_21, TIMING_CTRL_21_HFLIP, TIMING_CTRL_21_HFLIP)}},
		{"hflip on clears bit", CtrlHFlip, 1, []RegOp{update(REG_TIMING_CTRL_21, TIMING_CTRL_21_HFLIP, 0)}},
		{"test pattern", CtrlTestPattern, 3, []RegOp{write(REG_TEST_PATTERN, TEST_PATTERN_TYPE3)}},
		{"hblank", CtrlHBlank, 2920, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := controlProgram(tt.id, tt.val, m, freqs)

			if err != nil {
				t.Fatalf("controlProgram() error = %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("controlProgram() = %v, want %v", got, tt.want)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("op %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
