package ov64a40

// LinkFreqID selects one of the per mode timing variants
type LinkFreqID int

const (
	// LinkFreq456MID is the timing variant for the fast link frequency
	LinkFreq456MID LinkFreqID = iota
	// LinkFreq360MID is the timing variant for the reduced link frequency
	LinkFreq360MID

	numLinkFreq
)

// Rect is a rectangle on the pixel array
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Timing holds the frame length in lines and the line length in units of
// LineLengthMultiplier pixels
type Timing struct {
	TotalLines int
	LineLength int
}

// Subsampling describes the skipping and binning configuration of a mode
type Subsampling struct {
	XOddInc  int
	XEvenInc int
	YOddInc  int
	YEvenInc int
	VBin     bool
	HBin     bool
}

// Mode is an entry of the sensor mode catalogue
type Mode struct {
	Width  int
	Height int

	timings [numLinkFreq]Timing

	program []RegOp

	AnalogueCrop Rect
	DigitalCrop  Rect

	Subsampling Subsampling
}

// Timing returns the default timing of the mode for the link frequency id
func (m *Mode) Timing(id LinkFreqID) Timing {
	return m.timings[id]
}

// Program returns a copy of the mode specific register table
func (m *Mode) Program() []RegOp {
	return append([]RegOp(nil), m.program...)
}

// Scale returns the horizontal and vertical downscale factors of the mode
func (m *Mode) Scale() (x, y int) {

	ss := m.Subsampling

	x = (ss.XOddInc + ss.XEvenInc) / 2
	y = (ss.YOddInc + ss.YEvenInc) / 2

	if ss.HBin {
		x *= 2
	}

	if ss.VBin {
		y *= 2
	}

	return x, y
}

// Size is an output resolution
type Size struct {
	Width  int
	Height int
}

var modes = [...]Mode{
	// Full resolution
	{
		Width:  9248,
		Height: 6944,
		timings: [numLinkFreq]Timing{
			// 2.6 FPS
			LinkFreq456MID: {TotalLines: 7072, LineLength: 4072},
			// 2 FPS
			LinkFreq360MID: {TotalLines: 7072, LineLength: 5248},
		},
		program:      mode9248x6944,
		AnalogueCrop: Rect{Left: 0, Top: 0, Width: 9280, Height: 6976},
		DigitalCrop:  Rect{Left: 17, Top: 16, Width: 9248, Height: 6944},
		Subsampling: Subsampling{
			XOddInc: 1, XEvenInc: 1, YOddInc: 1, YEvenInc: 1,
		},
	},
	// Analogue crop + digital crop
	{
		Width:  8000,
		Height: 6000,
		timings: [numLinkFreq]Timing{
			// 3.0 FPS
			LinkFreq456MID: {TotalLines: 6400, LineLength: 3848},
			// 2.5 FPS
			LinkFreq360MID: {TotalLines: 6304, LineLength: 4736},
		},
		program:      mode8000x6000,
		AnalogueCrop: Rect{Left: 624, Top: 472, Width: 8048, Height: 6032},
		DigitalCrop:  Rect{Left: 17, Top: 16, Width: 8000, Height: 6000},
		Subsampling: Subsampling{
			XOddInc: 1, XEvenInc: 1, YOddInc: 1, YEvenInc: 1,
		},
	},
	// 2x2 downscaled
	{
		Width:  4624,
		Height: 3472,
		timings: [numLinkFreq]Timing{
			// 10 FPS
			LinkFreq456MID: {TotalLines: 3533, LineLength: 2112},
			// 7 FPS
			LinkFreq360MID: {TotalLines: 3939, LineLength: 2720},
		},
		program:      mode4624x3472,
		AnalogueCrop: Rect{Left: 0, Top: 0, Width: 9280, Height: 6976},
		DigitalCrop:  Rect{Left: 9, Top: 8, Width: 4624, Height: 3472},
		Subsampling: Subsampling{
			XOddInc: 3, XEvenInc: 1, YOddInc: 1, YEvenInc: 1,
			VBin: true,
		},
	},
	// Analogue crop + 2x2 downscale + digital crop
	{
		Width:  3840,
		Height: 2160,
		timings: [numLinkFreq]Timing{
			// 20 FPS
			LinkFreq456MID: {TotalLines: 2218, LineLength: 1690},
			// 15 FPS
			LinkFreq360MID: {TotalLines: 2270, LineLength: 2202},
		},
		program:      mode3840x2160,
		AnalogueCrop: Rect{Left: 784, Top: 1312, Width: 7712, Height: 4352},
		DigitalCrop:  Rect{Left: 9, Top: 8, Width: 3840, Height: 2160},
		Subsampling: Subsampling{
			XOddInc: 3, XEvenInc: 1, YOddInc: 1, YEvenInc: 1,
			VBin: true,
		},
	},
	// 4x4 downscaled
	{
		Width:  2312,
		Height: 1736,
		timings: [numLinkFreq]Timing{
			// 30 FPS
			LinkFreq456MID: {TotalLines: 1998, LineLength: 1248},
			// 25 FPS
			LinkFreq360MID: {TotalLines: 1994, LineLength: 1504},
		},
		program:      mode2312x1736,
		AnalogueCrop: Rect{Left: 0, Top: 0, Width: 9280, Height: 6976},
		DigitalCrop:  Rect{Left: 5, Top: 4, Width: 2312, Height: 1736},
		Subsampling: Subsampling{
			XOddInc: 3, XEvenInc: 1, YOddInc: 3, YEvenInc: 1,
			VBin: true, HBin: true,
		},
	},
	// Analogue crop + 4x4 downscale + digital crop
	{
		Width:  1920,
		Height: 1080,
		timings: [numLinkFreq]Timing{
			// 60 FPS
			LinkFreq456MID: {TotalLines: 1397, LineLength: 880},
			// 45 FPS
			LinkFreq360MID: {TotalLines: 1216, LineLength: 1360},
		},
		program:      mode1920x1080,
		AnalogueCrop: Rect{Left: 784, Top: 1312, Width: 7712, Height: 4352},
		DigitalCrop:  Rect{Left: 7, Top: 6, Width: 1920, Height: 1080},
		Subsampling: Subsampling{
			XOddInc: 3, XEvenInc: 1, YOddInc: 3, YEvenInc: 1,
			VBin: true, HBin: true,
		},
	},
}

// FindNearest returns the catalogue mode closest to the requested size. The
// distance is the sum of the absolute width and height differences, ties go
// to the earlier catalogue entry.
func FindNearest(width, height int) *Mode {

	best := &modes[0]
	bestDist := -1

	for i := range modes {

		m := &modes[i]
		dist := absInt(m.Width-width) + absInt(m.Height-height)

		if bestDist < 0 || dist < bestDist {
			best = m
			bestDist = dist
		}

		if dist == 0 {
			break
		}
	}

	return best
}

// Modes returns the sizes of all catalogue modes in catalogue order
func Modes() []Size {

	sizes := make([]Size, 0, len(modes))

	for i := range modes {
		sizes = append(sizes, Size{Width: modes[i].Width, Height: modes[i].Height})
	}

	return sizes
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
