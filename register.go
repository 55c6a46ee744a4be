package ov64a40

import "fmt"

// Register is a sensor register address together with its width in bytes.
// Multi byte registers are transferred most significant byte first.
type Register struct {
	Addr  uint16
	Width uint8
}

func reg8(addr uint16) Register  { return Register{Addr: addr, Width: 1} }
func reg16(addr uint16) Register { return Register{Addr: addr, Width: 2} }
func reg24(addr uint16) Register { return Register{Addr: addr, Width: 3} }

// String implements Stringer interface for Register
func (r Register) String() string {
	return fmt.Sprintf("0x%04X/%d", r.Addr, r.Width*8)
}

var (
	// Streaming control
	REG_SMIA = reg8(0x0100)

	// PLL configuration
	PLL1_MULTIPLIER = reg16(0x0302)

	// Identification
	REG_CHIP_ID = reg24(0x300A)

	// Exposure and gain
	REG_MEC_LONG_EXPO = reg24(0x3500)
	REG_MEC_LONG_GAIN = reg16(0x3508)

	// Analogue crop
	REG_TIMING_CTRL0 = reg16(0x3800)
	REG_TIMING_CTRL2 = reg16(0x3802)
	REG_TIMING_CTRL4 = reg16(0x3804)
	REG_TIMING_CTRL6 = reg16(0x3806)

	// ISP output size
	REG_TIMING_CTRL8 = reg16(0x3808)
	REG_TIMING_CTRLA = reg16(0x380A)

	// Total line length and frame length
	REG_TIMING_CTRLC = reg16(0x380C)
	REG_TIMING_CTRLE = reg16(0x380E)

	// ISP windowing offsets
	REG_TIMING_CTRL10 = reg16(0x3810)
	REG_TIMING_CTRL12 = reg16(0x3812)

	// Horizontal and vertical skipping
	REG_TIMING_CTRL14 = reg8(0x3814)
	REG_TIMING_CTRL15 = reg8(0x3815)

	// Flip and binning
	REG_TIMING_CTRL_20 = reg8(0x3820)
	REG_TIMING_CTRL_21 = reg8(0x3821)

	// Frame length split over three 8 bit registers
	REG_TIMINGS_VTS_HIGH = reg8(0x3840)
	REG_TIMINGS_VTS_MID  = reg8(0x380E)
	REG_TIMINGS_VTS_LOW  = reg8(0x380F)

	// Test pattern generator
	REG_TEST_PATTERN = reg8(0x50C1)
)

const (
	REG_SMIA_STREAMING uint32 = 1 << 0

	TIMING_CTRL_20_VFLIP uint32 = 1 << 2
	TIMING_CTRL_20_VBIN  uint32 = 1 << 1

	TIMING_CTRL_21_HBIN_CONF uint32 = 1<<5 | 1<<4
	TIMING_CTRL_21_HFLIP     uint32 = 1 << 2

	// ODD_INC_SHIFT positions the odd increment in the skipping registers
	ODD_INC_SHIFT = 4

	TEST_PATTERN_DISABLED uint32 = 0x00
	TEST_PATTERN_TYPE1    uint32 = 1 << 0
	TEST_PATTERN_TYPE2    uint32 = 1<<1 | 1<<0
	TEST_PATTERN_TYPE3    uint32 = 1<<5 | 1<<0
	TEST_PATTERN_TYPE4    uint32 = 1<<5 | 1<<1 | 1<<0
)

// skippingConfig packs an odd/even increment pair into one skip register value
func skippingConfig(odd, even uint32) uint32 {
	return odd<<ODD_INC_SHIFT | even
}

// RegisterIO is the register level transport the sensor is driven through.
type RegisterIO interface {
	WriteRegister(reg Register, value uint32) error
	ReadRegister(reg Register) (uint64, error)
}

// Bus is a byte oriented connection to the sensor. *i2c.Options from
// github.com/swdee/go-i2c satisfies it.
type Bus interface {
	WriteBytes(buf []byte) (int, error)
	ReadBytes(buf []byte) (int, error)
}

// CCI implements RegisterIO over a Bus using 16 bit register addressing.
type CCI struct {
	bus Bus
}

// NewCCI returns a register transport over the given bus
func NewCCI(bus Bus) *CCI {
	return &CCI{bus: bus}
}

// WriteRegister writes value to the register, truncated to the register width
func (c *CCI) WriteRegister(reg Register, value uint32) error {

	if reg.Width == 0 || reg.Width > 4 {
		return fmt.Errorf("register %s: unsupported width", reg)
	}

	buf := make([]byte, 2, 2+reg.Width)
	buf[0] = byte(reg.Addr >> 8)
	buf[1] = byte(reg.Addr)

	for i := int(reg.Width) - 1; i >= 0; i-- {
		buf = append(buf, byte(value>>(8*i)))
	}

	if _, err := c.bus.WriteBytes(buf); err != nil {
		return fmt.Errorf("write %s: %w", reg, err)
	}

	return nil
}

// ReadRegister reads a register of up to 8 bytes
func (c *CCI) ReadRegister(reg Register) (uint64, error) {

	if reg.Width == 0 || reg.Width > 8 {
		return 0, fmt.Errorf("register %s: unsupported width", reg)
	}

	// write the register address
	addr := []byte{byte(reg.Addr >> 8), byte(reg.Addr)}

	if _, err := c.bus.WriteBytes(addr); err != nil {
		return 0, fmt.Errorf("read %s: %w", reg, err)
	}

	buf := make([]byte, reg.Width)
	n, err := c.bus.ReadBytes(buf)

	if err != nil {
		return 0, fmt.Errorf("read %s: %w", reg, err)
	}

	if n < len(buf) {
		return 0, fmt.Errorf("read %s: insufficient data", reg)
	}

	var val uint64

	for _, b := range buf {
		val = val<<8 | uint64(b)
	}

	return val, nil
}

// RegOp is a single step of a register program. A zero Mask is a plain write,
// otherwise only the masked bits are updated by read-modify-write.
type RegOp struct {
	Reg   Register
	Value uint32
	Mask  uint32
}

// write returns a plain register write step
func write(reg Register, value uint32) RegOp {
	return RegOp{Reg: reg, Value: value}
}

// update returns a read-modify-write step on the masked bits
func update(reg Register, mask, value uint32) RegOp {
	return RegOp{Reg: reg, Value: value, Mask: mask}
}

// updateBits performs a read-modify-write of the masked bits of a register
func updateBits(rio RegisterIO, reg Register, mask, value uint32) error {

	cur, err := rio.ReadRegister(reg)

	if err != nil {
		return err
	}

	val := (uint32(cur) &^ mask) | (value & mask)

	return rio.WriteRegister(reg, val)
}

// applyProgram executes the ops in order and stops at the first failure. No
// rollback is attempted, the sensor is left wherever the failed op left it.
func applyProgram(rio RegisterIO, ops []RegOp) error {

	for _, op := range ops {

		var err error

		if op.Mask != 0 {
			err = updateBits(rio, op.Reg, op.Mask, op.Value)
		} else {
			err = rio.WriteRegister(op.Reg, op.Value)
		}

		if err != nil {
			return fmt.Errorf("%w: register %s: %w", ErrIO, op.Reg, err)
		}
	}

	return nil
}
