package ov64a40

import "testing"

func TestFindNearestExact(t *testing.T) {
	for _, size := range Modes() {
		m := FindNearest(size.Width, size.Height)

		if m.Width != size.Width || m.Height != size.Height {
			t.Errorf("FindNearest(%d, %d) = %dx%d", size.Width, size.Height, m.Width, m.Height)
		}
	}
}

func TestFindNearest(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"near 4k", 4000, 2000, 3840, 2160},
		{"tiny", 1, 1, 1920, 1080},
		{"huge", 10000, 10000, 9248, 6944},
		{"near 8000", 7900, 6100, 8000, 6000},
		// equally far from 2312x1736 and 1920x1080
		{"tie", 2116, 1408, 2312, 1736},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FindNearest(tt.width, tt.height)

			if m.Width != tt.wantW || m.Height != tt.wantH {
				t.Errorf("FindNearest(%d, %d) = %dx%d, want %dx%d",
					tt.width, tt.height, m.Width, m.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestModesOrder(t *testing.T) {
	sizes := Modes()

	if len(sizes) != 6 {
		t.Fatalf("len(Modes()) = %d, want 6", len(sizes))
	}

	if sizes[0] != (Size{9248, 6944}) || sizes[5] != (Size{1920, 1080}) {
		t.Errorf("Modes() = %v", sizes)
	}
}

func TestModeCropFitsAnalogueCrop(t *testing.T) {
	for i := range modes {
		m := &modes[i]
		x, y := m.Scale()

		if m.AnalogueCrop.Width/x < m.DigitalCrop.Left+m.DigitalCrop.Width {
			t.Errorf("%dx%d: digital crop exceeds scaled analogue width", m.Width, m.Height)
		}

		if m.AnalogueCrop.Height/y < m.DigitalCrop.Top+m.DigitalCrop.Height {
			t.Errorf("%dx%d: digital crop exceeds scaled analogue height", m.Width, m.Height)
		}

		if m.DigitalCrop.Width != m.Width || m.DigitalCrop.Height != m.Height {
			t.Errorf("%dx%d: digital crop size %dx%d", m.Width, m.Height, m.DigitalCrop.Width, m.DigitalCrop.Height)
		}
	}
}

func TestModeScale(t *testing.T) {
	tests := []struct {
		width, height int
		wantX, wantY  int
	}{
		{9248, 6944, 1, 1},
		{4624, 3472, 2, 2},
		{2312, 1736, 4, 4},
	}

	for _, tt := range tests {
		m := FindNearest(tt.width, tt.height)

		if x, y := m.Scale(); x != tt.wantX || y != tt.wantY {
			t.Errorf("%dx%d Scale() = %d, %d, want %d, %d", tt.width, tt.height, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestModeProgramCopy(t *testing.T) {
	m := &modes[0]

	p := m.Program()
	p[0].Value = 0xdead

	if m.program[0].Value == 0xdead {
		t.Error("Program() returned the catalogue table")
	}
}
