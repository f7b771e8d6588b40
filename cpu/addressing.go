package cpu

// Addressing mode functions compute addrAbs (or addrRel, or leave the
// operand implicit) and report whether they are willing to contribute a
// page-cross bonus cycle. Only ABX, ABY and IZY ever return 1.

// ACC: operate directly on the accumulator.
func (c *CPU) amACC() byte {
	c.fetched = c.A
	return 0
}

// IMP: no operand. Treated identically to ACC for fetch purposes.
func (c *CPU) amIMP() byte {
	c.fetched = c.A
	return 0
}

// IMM: the operand is the byte immediately following the opcode.
func (c *CPU) amIMM() byte {
	c.addrAbs = c.PC
	c.PC++
	return 0
}

// ZP0: zero-page addressing.
func (c *CPU) amZP0() byte {
	c.addrAbs = uint16(c.read(c.PC))
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// ZPX: zero-page indexed by X, wrapping within the zero page.
func (c *CPU) amZPX() byte {
	c.addrAbs = uint16(c.read(c.PC) + c.X)
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// ZPY: zero-page indexed by Y, wrapping within the zero page.
func (c *CPU) amZPY() byte {
	c.addrAbs = uint16(c.read(c.PC) + c.Y)
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// ABS: full 16-bit absolute address, little-endian.
func (c *CPU) amABS() byte {
	lo := uint16(c.read(c.PC))
	c.PC++
	hi := uint16(c.read(c.PC))
	c.PC++
	c.addrAbs = hi<<8 | lo
	return 0
}

// ABX: absolute indexed by X; contributes a page-cross bonus candidate.
func (c *CPU) amABX() byte {
	lo := uint16(c.read(c.PC))
	c.PC++
	hi := uint16(c.read(c.PC))
	c.PC++
	c.addrAbs = (hi<<8 | lo) + uint16(c.X)
	if c.addrAbs&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}

// ABY: absolute indexed by Y; contributes a page-cross bonus candidate.
func (c *CPU) amABY() byte {
	lo := uint16(c.read(c.PC))
	c.PC++
	hi := uint16(c.read(c.PC))
	c.PC++
	c.addrAbs = (hi<<8 | lo) + uint16(c.Y)
	if c.addrAbs&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}

// REL: signed 8-bit branch offset, sign-extended into addrRel.
func (c *CPU) amREL() byte {
	c.addrRel = uint16(c.read(c.PC))
	c.PC++
	if c.addrRel&0x80 != 0 {
		c.addrRel |= 0xFF00
	}
	return 0
}

// IND: indirect JMP target, bug-accurate for the NMOS page-wrap defect —
// when the low byte of the pointer is 0xFF, the high byte of the target
// wraps back to the start of the same page instead of crossing into the
// next one.
func (c *CPU) amIND() byte {
	ptrLo := uint16(c.read(c.PC))
	c.PC++
	ptrHi := uint16(c.read(c.PC))
	c.PC++
	ptr := ptrHi<<8 | ptrLo

	var hi uint16
	if ptrLo == 0x00FF {
		hi = uint16(c.read(ptr & 0xFF00))
	} else {
		hi = uint16(c.read(ptr + 1))
	}
	lo := uint16(c.read(ptr))
	c.addrAbs = hi<<8 | lo
	return 0
}

// IZX: zero-page indirect indexed by X.
func (c *CPU) amIZX() byte {
	t := uint16(c.read(c.PC))
	c.PC++
	lo := uint16(c.read((t + uint16(c.X)) & 0x00FF))
	hi := uint16(c.read((t + uint16(c.X) + 1) & 0x00FF))
	c.addrAbs = hi<<8 | lo
	return 0
}

// IZY: zero-page indirect indexed by Y; contributes a page-cross bonus
// candidate.
func (c *CPU) amIZY() byte {
	t := uint16(c.read(c.PC))
	c.PC++
	lo := uint16(c.read(t & 0x00FF))
	hi := uint16(c.read((t + 1) & 0x00FF))
	c.addrAbs = (hi<<8 | lo) + uint16(c.Y)
	if c.addrAbs&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}

// fetch loads the operand byte for the current addressing mode, unless
// the mode is implicit/accumulator (in which case fetched already holds
// A from the addressing-mode function).
func (c *CPU) fetch() byte {
	if c.curAddrModeName != "IMP" && c.curAddrModeName != "ACC" {
		c.fetched = c.read(c.addrAbs)
	}
	return c.fetched
}
