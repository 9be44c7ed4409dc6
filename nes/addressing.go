package nes

// addressingMode names one of the thirteen ways a 6502 instruction can
// name its operand. See spec.md §4.4 for the authoritative semantics;
// this type and decodeAddress are the table-driven decoder the design
// notes ask for (spec.md §9): the interpreter never hand-rolls operand
// fetching per opcode.
type addressingMode byte

const (
	modeImplied addressingMode = iota
	modeAccumulator
	modeImmediate
	modeRelative
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
)

// decodeAddress materializes the effective address for mode, advancing
// the program counter past however many operand bytes the mode
// consumes (0, 1 or 2) and reporting whether an indexed read crossed a
// page boundary. Implied/Accumulator/Immediate/Relative modes report
// addr as either unused or the address of the operand itself; callers
// that need the operand byte for those modes read it from that
// address.
func (c *cpu) decodeAddress(b *bus, mode addressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case modeImplied, modeAccumulator:
		return 0, false

	case modeImmediate, modeRelative:
		addr = c.pc
		c.pc++
		return addr, false

	case modeZeroPage:
		addr = uint16(b.read(c.pc))
		c.pc++
		return addr, false

	case modeZeroPageX:
		base := b.read(c.pc)
		c.pc++
		return uint16(base + c.x), false

	case modeZeroPageY:
		base := b.read(c.pc)
		c.pc++
		return uint16(base + c.y), false

	case modeAbsolute:
		addr = b.readAddress(c.pc)
		c.pc += 2
		return addr, false

	case modeAbsoluteX:
		base := b.readAddress(c.pc)
		c.pc += 2
		addr = base + uint16(c.x)
		return addr, pageDiffers(base, addr)

	case modeAbsoluteY:
		base := b.readAddress(c.pc)
		c.pc += 2
		addr = base + uint16(c.y)
		return addr, pageDiffers(base, addr)

	case modeIndirect:
		ptr := b.readAddress(c.pc)
		c.pc += 2
		// hardware quirk: if the pointer's low byte is 0xFF, the high
		// byte of the target wraps within the same page instead of
		// crossing into the next one.
		lo := b.read(ptr)
		hi := b.read((ptr & 0xFF00) | uint16(byte(ptr)+1))
		return uint16(hi)<<8 | uint16(lo), false

	case modeIndirectX:
		operand := b.read(c.pc)
		c.pc++
		ptr := operand + c.x // zero-page wrap
		lo := b.read(uint16(ptr))
		hi := b.read(uint16(ptr + 1)) // zero-page wrap
		return uint16(hi)<<8 | uint16(lo), false

	case modeIndirectY:
		operand := b.read(c.pc)
		c.pc++
		lo := b.read(uint16(operand))
		hi := b.read(uint16(operand + 1)) // zero-page wrap
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.y)
		return addr, pageDiffers(base, addr)
	}

	return 0, false
}

func pageDiffers(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
