package nes

// instructionKind distinguishes how an instruction touches memory,
// which governs the page-crossing cycle penalty (spec.md §4.5): reads
// gain +1 cycle on a page cross, writes and read-modify-writes always
// pay their fixed table cost.
type instructionKind byte

const (
	kindNone instructionKind = iota
	kindRead
	kindWrite
	kindReadModWrite
)

// opcodeInfo is one row of the 256-entry dispatch table: the mnemonic
// (for tracing), the addressing mode, how it touches memory, its base
// cycle cost, the extra cycles added to that cost when the decoder
// reports a page crossing, and whether it is one of the official 151 or an
// undocumented combo. Instruction length isn't tracked here: mode
// alone determines how many operand bytes decodeAddress consumes, so
// a separate size field would just be a second, driftable encoding of
// the same fact.
type opcodeInfo struct {
	name       string
	mode       addressingMode
	kind       instructionKind
	cycles     byte
	pageCycles byte
	illegal    bool
}

// opcodeTable is the canonical 6502 opcode mapping, including the
// undocumented combo opcodes (LAX, SAX, DCP, ISB, RLA, RRA, SLO, SRE),
// the alternate SBC at 0xEB, and the unofficial NOP forms. A zero
// value (name == "") marks a byte with no defined instruction; the
// interpreter reports InvalidOpcode for those.
var opcodeTable = [256]opcodeInfo{
	0x00: {name: "BRK", mode: modeImplied, kind: kindNone, cycles: 7, pageCycles: 0, illegal: false},
	0x01: {name: "ORA", mode: modeIndirectX, kind: kindRead, cycles: 6, pageCycles: 0, illegal: false},
	0x02: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x03: {name: "SLO", mode: modeIndirectX, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0x04: {name: "NOP", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: true},
	0x05: {name: "ORA", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: false},
	0x06: {name: "ASL", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: false},
	0x07: {name: "SLO", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: true},
	0x08: {name: "PHP", mode: modeImplied, kind: kindNone, cycles: 3, pageCycles: 0, illegal: false},
	0x09: {name: "ORA", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: false},
	0x0A: {name: "ASL", mode: modeAccumulator, kind: kindReadModWrite, cycles: 2, pageCycles: 0, illegal: false},
	0x0B: {name: "ANC", mode: modeImmediate, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x0C: {name: "NOP", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: true},
	0x0D: {name: "ORA", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0x0E: {name: "ASL", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0x0F: {name: "SLO", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0x10: {name: "BPL", mode: modeRelative, kind: kindNone, cycles: 2, pageCycles: 1, illegal: false},
	0x11: {name: "ORA", mode: modeIndirectY, kind: kindRead, cycles: 5, pageCycles: 1, illegal: false},
	0x12: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x13: {name: "SLO", mode: modeIndirectY, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0x14: {name: "NOP", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: true},
	0x15: {name: "ORA", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0x16: {name: "ASL", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0x17: {name: "SLO", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0x18: {name: "CLC", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0x19: {name: "ORA", mode: modeAbsoluteY, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0x1A: {name: "NOP", mode: modeImplied, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0x1B: {name: "SLO", mode: modeAbsoluteY, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
	0x1C: {name: "NOP", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: true},
	0x1D: {name: "ORA", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0x1E: {name: "ASL", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: false},
	0x1F: {name: "SLO", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
	0x20: {name: "JSR", mode: modeAbsolute, kind: kindNone, cycles: 6, pageCycles: 0, illegal: false},
	0x21: {name: "AND", mode: modeIndirectX, kind: kindRead, cycles: 6, pageCycles: 0, illegal: false},
	0x22: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x23: {name: "RLA", mode: modeIndirectX, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0x24: {name: "BIT", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: false},
	0x25: {name: "AND", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: false},
	0x26: {name: "ROL", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: false},
	0x27: {name: "RLA", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: true},
	0x28: {name: "PLP", mode: modeImplied, kind: kindNone, cycles: 4, pageCycles: 0, illegal: false},
	0x29: {name: "AND", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: false},
	0x2A: {name: "ROL", mode: modeAccumulator, kind: kindReadModWrite, cycles: 2, pageCycles: 0, illegal: false},
	0x2B: {name: "ANC", mode: modeImmediate, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x2C: {name: "BIT", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0x2D: {name: "AND", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0x2E: {name: "ROL", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0x2F: {name: "RLA", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0x30: {name: "BMI", mode: modeRelative, kind: kindNone, cycles: 2, pageCycles: 1, illegal: false},
	0x31: {name: "AND", mode: modeIndirectY, kind: kindRead, cycles: 5, pageCycles: 1, illegal: false},
	0x32: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x33: {name: "RLA", mode: modeIndirectY, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0x34: {name: "NOP", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: true},
	0x35: {name: "AND", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0x36: {name: "ROL", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0x37: {name: "RLA", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0x38: {name: "SEC", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0x39: {name: "AND", mode: modeAbsoluteY, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0x3A: {name: "NOP", mode: modeImplied, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0x3B: {name: "RLA", mode: modeAbsoluteY, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
	0x3C: {name: "NOP", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: true},
	0x3D: {name: "AND", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0x3E: {name: "ROL", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: false},
	0x3F: {name: "RLA", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
	0x40: {name: "RTI", mode: modeImplied, kind: kindNone, cycles: 6, pageCycles: 0, illegal: false},
	0x41: {name: "EOR", mode: modeIndirectX, kind: kindRead, cycles: 6, pageCycles: 0, illegal: false},
	0x42: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x43: {name: "SRE", mode: modeIndirectX, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0x44: {name: "NOP", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: true},
	0x45: {name: "EOR", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: false},
	0x46: {name: "LSR", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: false},
	0x47: {name: "SRE", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: true},
	0x48: {name: "PHA", mode: modeImplied, kind: kindNone, cycles: 3, pageCycles: 0, illegal: false},
	0x49: {name: "EOR", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: false},
	0x4A: {name: "LSR", mode: modeAccumulator, kind: kindReadModWrite, cycles: 2, pageCycles: 0, illegal: false},
	0x4B: {name: "ALR", mode: modeImmediate, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x4C: {name: "JMP", mode: modeAbsolute, kind: kindNone, cycles: 3, pageCycles: 0, illegal: false},
	0x4D: {name: "EOR", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0x4E: {name: "LSR", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0x4F: {name: "SRE", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0x50: {name: "BVC", mode: modeRelative, kind: kindNone, cycles: 2, pageCycles: 1, illegal: false},
	0x51: {name: "EOR", mode: modeIndirectY, kind: kindRead, cycles: 5, pageCycles: 1, illegal: false},
	0x52: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x53: {name: "SRE", mode: modeIndirectY, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0x54: {name: "NOP", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: true},
	0x55: {name: "EOR", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0x56: {name: "LSR", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0x57: {name: "SRE", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0x58: {name: "CLI", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0x59: {name: "EOR", mode: modeAbsoluteY, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0x5A: {name: "NOP", mode: modeImplied, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0x5B: {name: "SRE", mode: modeAbsoluteY, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
	0x5C: {name: "NOP", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: true},
	0x5D: {name: "EOR", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0x5E: {name: "LSR", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: false},
	0x5F: {name: "SRE", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
	0x60: {name: "RTS", mode: modeImplied, kind: kindNone, cycles: 6, pageCycles: 0, illegal: false},
	0x61: {name: "ADC", mode: modeIndirectX, kind: kindRead, cycles: 6, pageCycles: 0, illegal: false},
	0x62: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x63: {name: "RRA", mode: modeIndirectX, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0x64: {name: "NOP", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: true},
	0x65: {name: "ADC", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: false},
	0x66: {name: "ROR", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: false},
	0x67: {name: "RRA", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: true},
	0x68: {name: "PLA", mode: modeImplied, kind: kindNone, cycles: 4, pageCycles: 0, illegal: false},
	0x69: {name: "ADC", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: false},
	0x6A: {name: "ROR", mode: modeAccumulator, kind: kindReadModWrite, cycles: 2, pageCycles: 0, illegal: false},
	0x6B: {name: "ARR", mode: modeImmediate, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x6C: {name: "JMP", mode: modeIndirect, kind: kindNone, cycles: 5, pageCycles: 0, illegal: false},
	0x6D: {name: "ADC", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0x6E: {name: "ROR", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0x6F: {name: "RRA", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0x70: {name: "BVS", mode: modeRelative, kind: kindNone, cycles: 2, pageCycles: 1, illegal: false},
	0x71: {name: "ADC", mode: modeIndirectY, kind: kindRead, cycles: 5, pageCycles: 1, illegal: false},
	0x72: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x73: {name: "RRA", mode: modeIndirectY, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0x74: {name: "NOP", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: true},
	0x75: {name: "ADC", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0x76: {name: "ROR", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0x77: {name: "RRA", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0x78: {name: "SEI", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0x79: {name: "ADC", mode: modeAbsoluteY, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0x7A: {name: "NOP", mode: modeImplied, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0x7B: {name: "RRA", mode: modeAbsoluteY, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
	0x7C: {name: "NOP", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: true},
	0x7D: {name: "ADC", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0x7E: {name: "ROR", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: false},
	0x7F: {name: "RRA", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
	0x80: {name: "NOP", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0x81: {name: "STA", mode: modeIndirectX, kind: kindWrite, cycles: 6, pageCycles: 0, illegal: false},
	0x82: {name: "NOP", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0x83: {name: "SAX", mode: modeIndirectX, kind: kindWrite, cycles: 6, pageCycles: 0, illegal: true},
	0x84: {name: "STY", mode: modeZeroPage, kind: kindWrite, cycles: 3, pageCycles: 0, illegal: false},
	0x85: {name: "STA", mode: modeZeroPage, kind: kindWrite, cycles: 3, pageCycles: 0, illegal: false},
	0x86: {name: "STX", mode: modeZeroPage, kind: kindWrite, cycles: 3, pageCycles: 0, illegal: false},
	0x87: {name: "SAX", mode: modeZeroPage, kind: kindWrite, cycles: 3, pageCycles: 0, illegal: true},
	0x88: {name: "DEY", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0x89: {name: "NOP", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0x8A: {name: "TXA", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0x8B: {name: "XAA", mode: modeImmediate, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x8C: {name: "STY", mode: modeAbsolute, kind: kindWrite, cycles: 4, pageCycles: 0, illegal: false},
	0x8D: {name: "STA", mode: modeAbsolute, kind: kindWrite, cycles: 4, pageCycles: 0, illegal: false},
	0x8E: {name: "STX", mode: modeAbsolute, kind: kindWrite, cycles: 4, pageCycles: 0, illegal: false},
	0x8F: {name: "SAX", mode: modeAbsolute, kind: kindWrite, cycles: 4, pageCycles: 0, illegal: true},
	0x90: {name: "BCC", mode: modeRelative, kind: kindNone, cycles: 2, pageCycles: 1, illegal: false},
	0x91: {name: "STA", mode: modeIndirectY, kind: kindWrite, cycles: 6, pageCycles: 0, illegal: false},
	0x92: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0x93: {name: "AHX", mode: modeIndirectY, kind: kindNone, cycles: 6, pageCycles: 0, illegal: true},
	0x94: {name: "STY", mode: modeZeroPageX, kind: kindWrite, cycles: 4, pageCycles: 0, illegal: false},
	0x95: {name: "STA", mode: modeZeroPageX, kind: kindWrite, cycles: 4, pageCycles: 0, illegal: false},
	0x96: {name: "STX", mode: modeZeroPageY, kind: kindWrite, cycles: 4, pageCycles: 0, illegal: false},
	0x97: {name: "SAX", mode: modeZeroPageY, kind: kindWrite, cycles: 4, pageCycles: 0, illegal: true},
	0x98: {name: "TYA", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0x99: {name: "STA", mode: modeAbsoluteY, kind: kindWrite, cycles: 5, pageCycles: 0, illegal: false},
	0x9A: {name: "TXS", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0x9B: {name: "TAS", mode: modeAbsoluteY, kind: kindNone, cycles: 5, pageCycles: 0, illegal: true},
	0x9C: {name: "SHY", mode: modeAbsoluteX, kind: kindWrite, cycles: 5, pageCycles: 0, illegal: true},
	0x9D: {name: "STA", mode: modeAbsoluteX, kind: kindWrite, cycles: 5, pageCycles: 0, illegal: false},
	0x9E: {name: "SHX", mode: modeAbsoluteY, kind: kindWrite, cycles: 5, pageCycles: 0, illegal: true},
	0x9F: {name: "AHX", mode: modeAbsoluteY, kind: kindNone, cycles: 5, pageCycles: 0, illegal: true},
	0xA0: {name: "LDY", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: false},
	0xA1: {name: "LDA", mode: modeIndirectX, kind: kindRead, cycles: 6, pageCycles: 0, illegal: false},
	0xA2: {name: "LDX", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: false},
	0xA3: {name: "LAX", mode: modeIndirectX, kind: kindRead, cycles: 6, pageCycles: 0, illegal: true},
	0xA4: {name: "LDY", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: false},
	0xA5: {name: "LDA", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: false},
	0xA6: {name: "LDX", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: false},
	0xA7: {name: "LAX", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: true},
	0xA8: {name: "TAY", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0xA9: {name: "LDA", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: false},
	0xAA: {name: "TAX", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0xAB: {name: "LAX", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0xAC: {name: "LDY", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0xAD: {name: "LDA", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0xAE: {name: "LDX", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0xAF: {name: "LAX", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: true},
	0xB0: {name: "BCS", mode: modeRelative, kind: kindNone, cycles: 2, pageCycles: 1, illegal: false},
	0xB1: {name: "LDA", mode: modeIndirectY, kind: kindRead, cycles: 5, pageCycles: 1, illegal: false},
	0xB2: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0xB3: {name: "LAX", mode: modeIndirectY, kind: kindRead, cycles: 5, pageCycles: 1, illegal: true},
	0xB4: {name: "LDY", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0xB5: {name: "LDA", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0xB6: {name: "LDX", mode: modeZeroPageY, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0xB7: {name: "LAX", mode: modeZeroPageY, kind: kindRead, cycles: 4, pageCycles: 0, illegal: true},
	0xB8: {name: "CLV", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0xB9: {name: "LDA", mode: modeAbsoluteY, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0xBA: {name: "TSX", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0xBB: {name: "LAS", mode: modeAbsoluteY, kind: kindNone, cycles: 4, pageCycles: 1, illegal: true},
	0xBC: {name: "LDY", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0xBD: {name: "LDA", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0xBE: {name: "LDX", mode: modeAbsoluteY, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0xBF: {name: "LAX", mode: modeAbsoluteY, kind: kindRead, cycles: 4, pageCycles: 1, illegal: true},
	0xC0: {name: "CPY", mode: modeImmediate, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0xC1: {name: "CMP", mode: modeIndirectX, kind: kindRead, cycles: 6, pageCycles: 0, illegal: false},
	0xC2: {name: "NOP", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0xC3: {name: "DCP", mode: modeIndirectX, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0xC4: {name: "CPY", mode: modeZeroPage, kind: kindNone, cycles: 3, pageCycles: 0, illegal: false},
	0xC5: {name: "CMP", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: false},
	0xC6: {name: "DEC", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: false},
	0xC7: {name: "DCP", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: true},
	0xC8: {name: "INY", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0xC9: {name: "CMP", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: false},
	0xCA: {name: "DEX", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0xCB: {name: "AXS", mode: modeImmediate, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0xCC: {name: "CPY", mode: modeAbsolute, kind: kindNone, cycles: 4, pageCycles: 0, illegal: false},
	0xCD: {name: "CMP", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0xCE: {name: "DEC", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0xCF: {name: "DCP", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0xD0: {name: "BNE", mode: modeRelative, kind: kindNone, cycles: 2, pageCycles: 1, illegal: false},
	0xD1: {name: "CMP", mode: modeIndirectY, kind: kindRead, cycles: 5, pageCycles: 1, illegal: false},
	0xD2: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0xD3: {name: "DCP", mode: modeIndirectY, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0xD4: {name: "NOP", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: true},
	0xD5: {name: "CMP", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0xD6: {name: "DEC", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0xD7: {name: "DCP", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0xD8: {name: "CLD", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0xD9: {name: "CMP", mode: modeAbsoluteY, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0xDA: {name: "NOP", mode: modeImplied, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0xDB: {name: "DCP", mode: modeAbsoluteY, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
	0xDC: {name: "NOP", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: true},
	0xDD: {name: "CMP", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0xDE: {name: "DEC", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: false},
	0xDF: {name: "DCP", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
	0xE0: {name: "CPX", mode: modeImmediate, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0xE1: {name: "SBC", mode: modeIndirectX, kind: kindRead, cycles: 6, pageCycles: 0, illegal: false},
	0xE2: {name: "NOP", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0xE3: {name: "ISB", mode: modeIndirectX, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0xE4: {name: "CPX", mode: modeZeroPage, kind: kindNone, cycles: 3, pageCycles: 0, illegal: false},
	0xE5: {name: "SBC", mode: modeZeroPage, kind: kindRead, cycles: 3, pageCycles: 0, illegal: false},
	0xE6: {name: "INC", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: false},
	0xE7: {name: "ISB", mode: modeZeroPage, kind: kindReadModWrite, cycles: 5, pageCycles: 0, illegal: true},
	0xE8: {name: "INX", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0xE9: {name: "SBC", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: false},
	0xEA: {name: "NOP", mode: modeImplied, kind: kindRead, cycles: 2, pageCycles: 0, illegal: false},
	0xEB: {name: "SBC", mode: modeImmediate, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0xEC: {name: "CPX", mode: modeAbsolute, kind: kindNone, cycles: 4, pageCycles: 0, illegal: false},
	0xED: {name: "SBC", mode: modeAbsolute, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0xEE: {name: "INC", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0xEF: {name: "ISB", mode: modeAbsolute, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0xF0: {name: "BEQ", mode: modeRelative, kind: kindNone, cycles: 2, pageCycles: 1, illegal: false},
	0xF1: {name: "SBC", mode: modeIndirectY, kind: kindRead, cycles: 5, pageCycles: 1, illegal: false},
	0xF2: {name: "KIL", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: true},
	0xF3: {name: "ISB", mode: modeIndirectY, kind: kindReadModWrite, cycles: 8, pageCycles: 0, illegal: true},
	0xF4: {name: "NOP", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: true},
	0xF5: {name: "SBC", mode: modeZeroPageX, kind: kindRead, cycles: 4, pageCycles: 0, illegal: false},
	0xF6: {name: "INC", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: false},
	0xF7: {name: "ISB", mode: modeZeroPageX, kind: kindReadModWrite, cycles: 6, pageCycles: 0, illegal: true},
	0xF8: {name: "SED", mode: modeImplied, kind: kindNone, cycles: 2, pageCycles: 0, illegal: false},
	0xF9: {name: "SBC", mode: modeAbsoluteY, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0xFA: {name: "NOP", mode: modeImplied, kind: kindRead, cycles: 2, pageCycles: 0, illegal: true},
	0xFB: {name: "ISB", mode: modeAbsoluteY, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
	0xFC: {name: "NOP", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: true},
	0xFD: {name: "SBC", mode: modeAbsoluteX, kind: kindRead, cycles: 4, pageCycles: 1, illegal: false},
	0xFE: {name: "INC", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: false},
	0xFF: {name: "ISB", mode: modeAbsoluteX, kind: kindReadModWrite, cycles: 7, pageCycles: 0, illegal: true},
}
