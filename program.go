package ov64a40

// GeometryProgram returns the register writes realizing the crop windows and
// total timings of mode. The crop registers must reach the sensor before the
// subsampling program, geometry is latched on the skip and binning writes.
func GeometryProgram(mode *Mode, t Timing) []RegOp {

	ana := mode.AnalogueCrop
	dig := mode.DigitalCrop

	return []RegOp{
		// analogue crop
		write(REG_TIMING_CTRL0, uint32(ana.Left)),
		write(REG_TIMING_CTRL2, uint32(ana.Top)),
		write(REG_TIMING_CTRL4, uint32(ana.Left+ana.Width-1)),
		write(REG_TIMING_CTRL6, uint32(ana.Top+ana.Height-1)),

		// ISP windowing
		write(REG_TIMING_CTRL10, uint32(dig.Left)),
		write(REG_TIMING_CTRL12, uint32(dig.Top)),
		write(REG_TIMING_CTRL8, uint32(dig.Width)),
		write(REG_TIMING_CTRLA, uint32(dig.Height)),

		// total timings
		write(REG_TIMING_CTRLC, uint32(t.LineLength)),
		write(REG_TIMING_CTRLE, uint32(t.TotalLines)),
	}
}

// SubsamplingProgram returns the skipping writes followed by the binning
// read-modify-writes of mode
func SubsamplingProgram(mode *Mode) []RegOp {

	ss := mode.Subsampling

	var vbin, hbin uint32

	if ss.VBin {
		vbin = TIMING_CTRL_20_VBIN
	}

	if ss.HBin {
		hbin = TIMING_CTRL_21_HBIN_CONF
	}

	return []RegOp{
		write(REG_TIMING_CTRL14, skippingConfig(uint32(ss.XOddInc), uint32(ss.XEvenInc))),
		write(REG_TIMING_CTRL15, skippingConfig(uint32(ss.YOddInc), uint32(ss.YEvenInc))),
		update(REG_TIMING_CTRL_20, TIMING_CTRL_20_VBIN, vbin),
		update(REG_TIMING_CTRL_21, TIMING_CTRL_21_HBIN_CONF, hbin),
	}
}

// linkFreqProgram returns the PLL configuration for the link frequency id.
// The default table targets the fast frequency, the reduced one lowers the
// PLL1 multiplier on top of it.
func linkFreqProgram(id LinkFreqID) []RegOp {

	ops := append([]RegOp(nil), pllConfig...)

	if id == LinkFreq360MID {
		ops = append(ops, write(PLL1_MULTIPLIER, pll1Multiplier360M))
	}

	return ops
}
