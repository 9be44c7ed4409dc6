package nes

import (
	"fmt"
	"io"
)

// writeTraceLine formats one nestest-style conformance line (spec.md
// §6) for the instruction about to execute and writes it to w. It
// peeks the opcode byte at PC without consuming it or otherwise
// touching CPU state, mirroring the read-only disassembly flga-vnes's
// disasembler.go performs before dispatch.
func writeTraceLine(w io.Writer, c *Console) {
	pc := c.cpu.pc
	opcode := c.bus.read(pc)
	info := opcodeTable[opcode]

	name := info.name
	if name == "" {
		name = "???"
	}

	fmt.Fprintf(w, "%04X  %02X  %s A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d\n",
		pc, opcode, name,
		c.cpu.a, c.cpu.x, c.cpu.y, byte(c.cpu.p), c.cpu.sp,
		c.ppu.scanline, c.ppu.linePosition, c.cpu.cycles)
}
