package ov64a40

import "fmt"

// Resolve returns the timing of mode for the link frequency at index in the
// negotiated list. The reduced timing variant is used when that frequency is
// LinkFreq360M, the fast one otherwise.
func Resolve(mode *Mode, freqs []int64, index int) (Timing, error) {

	id, err := linkFreqID(freqs, index)

	if err != nil {
		return Timing{}, err
	}

	return mode.Timing(id), nil
}

// linkFreqID maps a menu index of the negotiated frequencies to the timing
// variant id
func linkFreqID(freqs []int64, index int) (LinkFreqID, error) {

	if index < 0 || index >= len(freqs) {
		return 0, fmt.Errorf("%w: link frequency index %d out of range", ErrConfig, index)
	}

	if freqs[index] == LinkFreq360M {
		return LinkFreq360MID, nil
	}

	return LinkFreq456MID, nil
}

// blankingLimits holds the control ranges that derive from a resolved timing
type blankingLimits struct {
	vblankMin int64
	vblankMax int64
	vblankDef int64

	exposureMax int64

	hblank int64
}

// limitsFor derives the blanking and exposure limits of mode at timing t
func limitsFor(mode *Mode, t Timing) blankingLimits {
	return blankingLimits{
		vblankMin:   VBlankMin,
		vblankMax:   int64(VTSMax - mode.Height),
		vblankDef:   int64(t.TotalLines - mode.Height),
		exposureMax: int64(t.TotalLines - ExposureMargin),
		hblank:      int64(t.LineLength*LineLengthMultiplier - mode.Width),
	}
}
