package ov64a40

// PLL configuration for 456MHz link frequency with 24MHz input clock
var pllConfig = []RegOp{
	write(reg8(0x0300), 0x09),
	write(reg8(0x0301), 0x04),
	write(PLL1_MULTIPLIER, 0x0098),
	write(reg8(0x0304), 0x01),
	write(reg8(0x0305), 0x01),
	write(reg8(0x0306), 0x04),
	write(reg8(0x0307), 0x00),
	write(reg8(0x0308), 0x04),
	write(reg8(0x0309), 0x03),
	write(reg8(0x030C), 0x01),
	write(reg8(0x0320), 0x02),
	write(reg8(0x0322), 0x01),
	write(reg16(0x0323), 0x00A0),
	write(reg8(0x0325), 0x00),
	write(reg8(0x0326), 0x00),
	write(reg8(0x0327), 0x07),
	write(reg8(0x0328), 0x01),
	write(reg8(0x0329), 0x05),
}

// pll1Multiplier360M lowers the PLL1 multiplier to obtain a 360MHz link
const pll1Multiplier360M uint32 = 0x0078

// Common configuration, applied on every stream start before the mode table
var globalInit = []RegOp{
	write(reg8(0x0103), 0x01),
	write(reg8(0x3002), 0x00),
	write(reg8(0x3005), 0x80),
	write(reg8(0x3008), 0x40),
	write(reg8(0x3010), 0x00),
	write(reg8(0x3011), 0x1A),
	write(reg8(0x3012), 0x21),
	write(reg8(0x3016), 0xF0),
	write(reg8(0x3018), 0x32),
	write(reg8(0x3019), 0xC2),
	write(reg8(0x301E), 0xB8),
	write(reg8(0x3031), 0x0A),
	write(reg8(0x3400), 0x04),
	write(reg8(0x3421), 0x09),
	write(reg8(0x3501), 0x01),
	write(reg8(0x3502), 0x10),
	write(reg8(0x3504), 0x28),
	write(reg8(0x3541), 0x00),
	write(reg8(0x3542), 0x40),
	write(reg8(0x3548), 0x01),
	write(reg8(0x3600), 0xAA),
	write(reg8(0x3601), 0x00),
	write(reg8(0x3605), 0x50),
	write(reg8(0x3609), 0xB5),
	write(reg8(0x3610), 0x39),
	write(reg8(0x360C), 0x01),
	write(reg8(0x3628), 0xA4),
	write(reg8(0x362D), 0x10),
	write(reg8(0x3660), 0x43),
	write(reg8(0x3661), 0x06),
	write(reg8(0x3662), 0x00),
	write(reg8(0x3663), 0x28),
	write(reg8(0x3664), 0x0D),
	write(reg8(0x366A), 0x38),
	write(reg8(0x366B), 0xA0),
	write(reg8(0x366D), 0x00),
	write(reg8(0x366E), 0x00),
	write(reg8(0x3680), 0x00),
	write(reg8(0x36C0), 0x00),
	write(reg8(0x3701), 0x02),
	write(reg8(0x373B), 0x02),
	write(reg8(0x373C), 0x02),
	write(reg8(0x3736), 0x02),
	write(reg8(0x3737), 0x02),
	write(reg8(0x3705), 0x00),
	write(reg8(0x3706), 0x35),
	write(reg8(0x370A), 0x00),
	write(reg8(0x370B), 0x98),
	write(reg8(0x3709), 0x49),
	write(reg8(0x3714), 0x21),
	write(reg8(0x371C), 0x00),
	write(reg8(0x371D), 0x08),
	write(reg8(0x375E), 0x0E),
	write(reg8(0x3760), 0x13),
	write(reg8(0x3776), 0x10),
	write(reg8(0x3781), 0x02),
	write(reg8(0x3782), 0x04),
	write(reg8(0x3783), 0x02),
	write(reg8(0x3784), 0x08),
	write(reg8(0x3785), 0x08),
	write(reg8(0x3788), 0x01),
	write(reg8(0x3789), 0x01),
	write(reg8(0x3797), 0x04),
	write(reg8(0x3837), 0x10),
	write(reg8(0x3839), 0x00),
	write(reg8(0x383C), 0x00),
	write(reg8(0x383D), 0x10),
	write(reg8(0x3880), 0x00),
	write(reg8(0x3881), 0x00),
	write(reg8(0x3885), 0x01),
	write(reg8(0x3888), 0x00),
	write(reg8(0x3889), 0x04),
	write(reg8(0x388A), 0x00),
	write(reg8(0x388B), 0x04),
	write(reg8(0x3907), 0x0F),
	write(reg8(0x3908), 0x40),
	write(reg8(0x390A), 0x28),
	write(reg8(0x3D85), 0x0B),
	write(reg8(0x3D8C), 0x70),
	write(reg8(0x3D8D), 0x26),
	write(reg8(0x3DA5), 0x0F),
	write(reg8(0x3DA6), 0x00),
	write(reg8(0x3DA7), 0x01),
	write(reg8(0x4000), 0xF7),
	write(reg8(0x4001), 0xEF),
	write(reg8(0x4004), 0x00),
	write(reg8(0x4005), 0x40),
	write(reg8(0x400A), 0x01),
	write(reg8(0x4011), 0x00),
	write(reg8(0x4014), 0x04),
	write(reg8(0x4016), 0x0F),
	write(reg8(0x4018), 0x03),
	write(reg8(0x4023), 0x22),
	write(reg8(0x4033), 0x00),
	write(reg8(0x4050), 0x00),
	write(reg8(0x4051), 0x05),
	write(reg8(0x4288), 0xCF),
	write(reg8(0x4289), 0x03),
	write(reg8(0x4300), 0xFF),
	write(reg8(0x4301), 0x00),
	write(reg8(0x4302), 0x0F),
	write(reg8(0x4303), 0x01),
	write(reg8(0x4304), 0xFF),
	write(reg8(0x4305), 0x00),
	write(reg8(0x4400), 0x20),
	write(reg8(0x4407), 0x04),
	write(reg8(0x4500), 0x00),
	write(reg8(0x4501), 0x10),
	write(reg8(0x4503), 0x00),
	write(reg8(0x4504), 0x80),
	write(reg8(0x4580), 0x00),
	write(reg8(0x4581), 0x00),
	write(reg8(0x4602), 0x01),
	write(reg8(0x4603), 0x01),
	write(reg8(0x4800), 0x64),
	write(reg8(0x4801), 0x04),
	write(reg8(0x4813), 0x10),
	write(reg8(0x4814), 0x2A),
	write(reg8(0x4837), 0x0B),
	write(reg8(0x484B), 0x27),
	write(reg8(0x4850), 0x47),
	write(reg8(0x4860), 0x00),
	write(reg8(0x4861), 0xEC),
	write(reg8(0x4862), 0x04),
	write(reg8(0x4883), 0x00),
	write(reg8(0x4888), 0x90),
	write(reg8(0x4889), 0x00),
	write(reg8(0x4911), 0x00),
	write(reg8(0x5000), 0xF9),
	write(reg8(0x5001), 0x00),
	write(reg8(0x5002), 0x00),
	write(reg8(0x5003), 0x38),
	write(reg8(0x5005), 0x00),
	write(reg8(0x5006), 0x00),
	write(reg8(0x5008), 0x00),
	write(reg8(0x500C), 0x00),
	write(reg8(0x500D), 0x00),
	write(reg8(0x500E), 0x00),
	write(reg8(0x500F), 0x00),
	write(reg8(0x5010), 0x00),
	write(reg8(0x5011), 0x00),
	write(reg8(0x5012), 0x00),
	write(reg8(0x5013), 0x00),
	write(reg8(0x5094), 0x00),
	write(reg8(0x5184), 0x00),
	write(reg8(0x5185), 0x00),
	write(reg8(0x5186), 0x00),
	write(reg8(0x5187), 0x00),
	write(reg8(0x5188), 0x00),
	write(reg8(0x5189), 0x00),
	write(reg8(0x518A), 0x00),
	write(reg8(0x518B), 0x00),
	write(reg8(0x518C), 0x00),
}

var mode9248x6944 = []RegOp{
	write(reg8(0x3016), 0xF0),
	write(reg8(0x3400), 0x04),
	write(reg8(0x3650), 0x00),
	write(reg8(0x3651), 0x50),
	write(reg8(0x3663), 0x28),
	write(reg8(0x3750), 0x2A),
	write(reg8(0x3751), 0x00),
	write(reg8(0x3816), 0x00),
	write(reg8(0x3817), 0x01),
	write(reg8(0x3822), 0x06),
	write(reg8(0x3823), 0x18),
	write(reg8(0x3890), 0x01),
	write(reg8(0x4008), 0x02),
	write(reg8(0x4009), 0x11),
	write(reg8(0x4010), 0xF0),
	write(reg8(0x4507), 0x04),
	write(reg8(0x4580), 0x00),
	write(reg8(0x4600), 0x00),
	write(reg8(0x4601), 0x10),
	write(reg8(0x5004), 0x00),
	write(reg8(0x5184), 0x00),
}

var mode8000x6000 = []RegOp{
	write(reg8(0x3016), 0xF0),
	write(reg8(0x3400), 0x04),
	write(reg8(0x3650), 0x00),
	write(reg8(0x3651), 0x50),
	write(reg8(0x3663), 0x28),
	write(reg8(0x3750), 0x2A),
	write(reg8(0x3751), 0x00),
	write(reg8(0x3816), 0x00),
	write(reg8(0x3817), 0x01),
	write(reg8(0x3822), 0x06),
	write(reg8(0x3823), 0x18),
	write(reg8(0x3890), 0x01),
	write(reg8(0x4008), 0x02),
	write(reg8(0x4009), 0x11),
	write(reg8(0x4010), 0xF0),
	write(reg8(0x4507), 0x04),
	write(reg8(0x4580), 0x00),
	write(reg8(0x4600), 0x00),
	write(reg8(0x4601), 0x0F),
	write(reg8(0x5004), 0x00),
	write(reg8(0x5184), 0x00),
}

var mode4624x3472 = []RegOp{
	write(reg8(0x3016), 0xF0),
	write(reg8(0x3400), 0x04),
	write(reg8(0x3650), 0x04),
	write(reg8(0x3651), 0x44),
	write(reg8(0x3663), 0x2A),
	write(reg8(0x3750), 0x2A),
	write(reg8(0x3751), 0x01),
	write(reg8(0x3816), 0x00),
	write(reg8(0x3817), 0x09),
	write(reg8(0x3822), 0x82),
	write(reg8(0x3823), 0x18),
	write(reg8(0x3890), 0x05),
	write(reg8(0x4008), 0x01),
	write(reg8(0x4009), 0x06),
	write(reg8(0x4010), 0xE0),
	write(reg8(0x4507), 0x03),
	write(reg8(0x4580), 0x08),
	write(reg8(0x4600), 0x00),
	write(reg8(0x4601), 0x08),
	write(reg8(0x5004), 0x08),
	write(reg8(0x5184), 0x04),
}

var mode3840x2160 = []RegOp{
	write(reg8(0x3016), 0xF0),
	write(reg8(0x3400), 0x04),
	write(reg8(0x3650), 0x04),
	write(reg8(0x3651), 0x44),
	write(reg8(0x3663), 0x2A),
	write(reg8(0x3750), 0x2A),
	write(reg8(0x3751), 0x01),
	write(reg8(0x3816), 0x00),
	write(reg8(0x3817), 0x09),
	write(reg8(0x3822), 0x82),
	write(reg8(0x3823), 0x18),
	write(reg8(0x3890), 0x05),
	write(reg8(0x4008), 0x01),
	write(reg8(0x4009), 0x06),
	write(reg8(0x4010), 0xE0),
	write(reg8(0x4507), 0x03),
	write(reg8(0x4580), 0x08),
	write(reg8(0x4600), 0x00),
	write(reg8(0x4601), 0x07),
	write(reg8(0x5004), 0x08),
	write(reg8(0x5184), 0x04),
}

var mode2312x1736 = []RegOp{
	write(reg8(0x3016), 0xF0),
	write(reg8(0x3400), 0x04),
	write(reg8(0x3650), 0x04),
	write(reg8(0x3651), 0x44),
	write(reg8(0x3663), 0x2B),
	write(reg8(0x3750), 0x2B),
	write(reg8(0x3751), 0x03),
	write(reg8(0x3816), 0x00),
	write(reg8(0x3817), 0x13),
	write(reg8(0x3822), 0x82),
	write(reg8(0x3823), 0x19),
	write(reg8(0x3890), 0x07),
	write(reg8(0x4008), 0x00),
	write(reg8(0x4009), 0x02),
	write(reg8(0x4010), 0xD0),
	write(reg8(0x4507), 0x02),
	write(reg8(0x4580), 0x09),
	write(reg8(0x4600), 0x00),
	write(reg8(0x4601), 0x04),
	write(reg8(0x5004), 0x0C),
	write(reg8(0x5184), 0x06),
}

var mode1920x1080 = []RegOp{
	write(reg8(0x3016), 0xF0),
	write(reg8(0x3400), 0x04),
	write(reg8(0x3650), 0x04),
	write(reg8(0x3651), 0x44),
	write(reg8(0x3663), 0x2B),
	write(reg8(0x3750), 0x2B),
	write(reg8(0x3751), 0x03),
	write(reg8(0x3816), 0x00),
	write(reg8(0x3817), 0x13),
	write(reg8(0x3822), 0x82),
	write(reg8(0x3823), 0x19),
	write(reg8(0x3890), 0x07),
	write(reg8(0x4008), 0x00),
	write(reg8(0x4009), 0x02),
	write(reg8(0x4010), 0xD0),
	write(reg8(0x4507), 0x02),
	write(reg8(0x4580), 0x09),
	write(reg8(0x4600), 0x00),
	write(reg8(0x4601), 0x03),
	write(reg8(0x5004), 0x0C),
	write(reg8(0x5184), 0x06),
}
