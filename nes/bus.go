package nes

// ╔═════════════════╤═══════╤═════════════════════════╗
// ║ Address Range    │ Size  │ Purpose                 ║
// ╠═════════════════╪═══════╪═════════════════════════╣
// ║ 0x0000 - 0x1FFF │ 8192  │ Work RAM, mirrored every 0x0800 ║
// ║ 0x2002          │ 1     │ PPU status (read, clears vblank) ║
// ║ 0x2000 - 0x3FFF │       │ other PPU ports: stub, reads 0  ║
// ║ 0x4016 - 0x4017 │ 2     │ controller ports: stub, reads 0 ║
// ║ 0x4020 - 0x5FFF │       │ expansion area: stub, reads 0    ║
// ║ 0x6000 - 0x7FFF │ 8192  │ save RAM                ║
// ║ 0x8000 - 0xFFFF │ 32768 │ PRG-ROM                 ║
// ╚═════════════════╧═══════╧═════════════════════════╝
//
// This is deliberately narrower than the real NES memory map: sound,
// controller input, and PPU rendering registers beyond the one status
// port the CPU test programs observe are out of scope (spec.md §1),
// so their address ranges are stubs that read zero and discard
// writes.

const (
	ppuStatusAddr = 0x2002
	oamDMAAddr    = 0x4014
)

type bus struct {
	ram *workRAM
	sram *saveRAM
	prg  *programMemory
	ppu  *ppu
}

func (b *bus) read(addr uint16) byte {
	switch {
	case addr < 0x2000:
		return b.ram.read(addr % workRAMSize)

	case addr == ppuStatusAddr:
		return b.ppu.readStatus()

	case addr < 0x4000:
		return 0 // other PPU registers: not exercised by the core

	case addr == 0x4016, addr == 0x4017:
		return 0 // controller registers: stub

	case addr < 0x6000:
		return 0 // expansion area: stub

	case addr < 0x8000:
		return b.sram.read(addr)

	default:
		return b.prg.read(addr - 0x8000)
	}
}

func (b *bus) readAddress(addr uint16) uint16 {
	lo := uint16(b.read(addr))
	hi := uint16(b.read(addr + 1))
	return hi<<8 | lo
}

func (b *bus) write(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		b.ram.write(addr%workRAMSize, value)

	case addr == oamDMAAddr:
		// OAM-DMA: acknowledged, no effect (sprite rendering is out of scope).

	case addr < 0x4000:
		// other PPU registers: writable stub

	case addr < 0x4020:
		// APU/IO registers: writable stub

	case addr < 0x6000:
		// expansion area: writable stub

	case addr < 0x8000:
		b.sram.write(addr, value)

	default:
		b.prg.write(addr-0x8000, value)
	}
}
