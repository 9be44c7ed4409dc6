package nes

import (
	"fmt"
	"io"
)

// Console wires the loaded cartridge's memory, the CPU, the PPU and
// the bus connecting them into a runnable machine, and drives the
// scheduler described in spec.md §4.7: one CPU step, then three PPU
// ticks per cycle that step charged, then a poll of the host.
type Console struct {
	cartridge *Cartridge

	prg  *programMemory
	ram  *workRAM
	sram *saveRAM

	cpu *cpu
	ppu *ppu
	bus *bus

	host  Host
	trace io.Writer
}

// NewConsole builds a Console around an already-loaded cartridge. host
// may be nil, in which case frames are discarded and the run loop
// never quits on its own (see NoopHost).
func NewConsole(cart *Cartridge, host Host) *Console {
	if host == nil {
		host = NoopHost{}
	}

	prg := newProgramMemory(cart.PRG)
	ram := newWorkRAM()
	sram := newSaveRAM()
	ppu := newPPU(host)

	b := &bus{ram: ram, sram: sram, prg: prg, ppu: ppu}

	c := &Console{
		cartridge: cart,
		prg:       prg,
		ram:       ram,
		sram:      sram,
		cpu:       newCPU(),
		ppu:       ppu,
		bus:       b,
		host:      host,
	}
	c.Reset()
	return c
}

// SetTrace directs a nestest-format trace line (spec.md §6) to w for
// every instruction boundary, or disables tracing when w is nil.
func (c *Console) SetTrace(w io.Writer) {
	c.trace = w
}

// Reset reinitializes CPU and PPU state per spec.md §4.9: work RAM is
// zeroed, save RAM is filled with 0xFF, and PC is loaded from the
// reset vector.
func (c *Console) Reset() {
	c.ram.reset()
	c.sram.reset()
	c.ppu.reset()
	c.cpu.reset(c.bus)
}

// Step executes exactly one CPU instruction (or services a pending
// NMI in its place), advances the PPU by three ticks per cycle
// charged, and polls the host for a quit request. It returns the
// number of cycles the CPU step charged and whether the caller should
// stop the run loop.
func (c *Console) Step() (cycles byte, quit bool, err error) {
	if c.trace != nil {
		writeTraceLine(c.trace, c)
	}

	cycles, err = c.cpu.step(c.bus)
	if err != nil {
		return cycles, true, err
	}

	for i := 0; i < int(cycles)*3; i++ {
		c.ppu.tick()
	}

	if c.ppu.takeNMI() {
		c.cpu.triggerNMI()
	}

	return cycles, c.host.TickHost(), nil
}

// Run drives the scheduler until the host requests a quit or the CPU
// halts on an unrecoverable error.
func (c *Console) Run() error {
	for {
		_, quit, err := c.Step()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// StepFrame runs the scheduler until the PPU completes one more frame
// than it had when this call started, or the host requests a quit.
func (c *Console) StepFrame() error {
	frame := c.ppu.frame
	for c.ppu.frame == frame {
		_, quit, err := c.Step()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return nil
}

func (c *Console) Read(addr uint16) byte {
	return c.bus.read(addr)
}

func (c *Console) Write(addr uint16, v byte) {
	c.bus.write(addr, v)
}

// String reports the machine's current register file, useful in tests
// that assert against spec.md §8's concrete scenarios.
func (c *Console) String() string {
	return fmt.Sprintf("PC:%04X A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.cpu.pc, c.cpu.a, c.cpu.x, c.cpu.y, byte(c.cpu.p), c.cpu.sp, c.cpu.cycles)
}
