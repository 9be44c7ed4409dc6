package nes

import "testing"

// newTestConsole builds a Console around a bare 32 KiB PRG image with
// no cartridge metadata beyond the ROM bytes themselves, for tests
// that only care about CPU/bus/PPU behavior.
func newTestConsole(prg []byte) *Console {
	return NewConsole(&Cartridge{PRG: prg}, nil)
}

// newTestConsole16K mirrors a 16 KiB bank into both halves of the PRG
// window, matching how a real 16 KiB cartridge is seen by the CPU.
func newTestConsole16K(bank [prgBankSize]byte) *Console {
	return NewConsole(&Cartridge{PRG: bank[:]}, nil)
}

func TestReset_LoadsVectorAndInitialRegisters(t *testing.T) {
	var bank [prgBankSize]byte
	bank[0x3FFC] = 0x34
	bank[0x3FFD] = 0x80

	c := newTestConsole16K(bank)

	if c.cpu.pc != 0x8034 {
		t.Errorf("PC = %#04x, want 0x8034", c.cpu.pc)
	}
	if c.cpu.sp != 0xFD {
		t.Errorf("SP = %#02x, want 0xFD", c.cpu.sp)
	}
	if byte(c.cpu.p) != 0x24 {
		t.Errorf("P = %#02x, want 0x24", byte(c.cpu.p))
	}
}

func TestBranch_NoPageCross(t *testing.T) {
	prg := make([]byte, prgWindowSize)
	prg[0] = 0xF0 // BEQ
	prg[1] = 0x02

	c := newTestConsole(prg)
	c.cpu.pc = 0x8000
	c.cpu.p |= zero

	cycles, _, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if c.cpu.pc != 0x8004 {
		t.Errorf("PC = %#04x, want 0x8004", c.cpu.pc)
	}
	if cycles != 3 {
		t.Errorf("cycles = %d, want 3", cycles)
	}
}

// TestBranch_PageCross places the branch so that the post-operand-fetch
// PC (0x80FE, i.e. the opcode address 0x80FC plus its two-byte size)
// sits one page-relative step short of crossing into 0x8100-0x81FF:
// target = 0x80FE + 4 = 0x8102, which differs from 0x80FE in its high
// byte. This is the page-crossing convention both this core and
// original_source's branch() use (the base PC captured for the
// same-page check is the PC *after* the full instruction has been
// consumed, not the opcode's own address) — see DESIGN.md's Open
// Question note on branch page-crossing for why spec.md's own worked
// example (PC 0x80FE, +4) does not in fact cross a page under that
// convention and isn't used here.
func TestBranch_PageCross(t *testing.T) {
	prg := make([]byte, prgWindowSize)
	prg[0x00FC] = 0xF0 // BEQ, at CPU address 0x80FC
	prg[0x00FD] = 0x04

	c := newTestConsole(prg)
	c.cpu.pc = 0x80FC
	c.cpu.p |= zero

	cycles, _, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if c.cpu.pc != 0x8102 {
		t.Errorf("PC = %#04x, want 0x8102", c.cpu.pc)
	}
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4", cycles)
	}
}

func TestIndirectJMP_PageWrapQuirk(t *testing.T) {
	prg := make([]byte, prgWindowSize)
	prg[0] = 0x6C // JMP indirect
	prg[1] = 0xFF
	prg[2] = 0x02 // pointer = 0x02FF

	c := newTestConsole(prg)
	c.cpu.pc = 0x8000
	// bytes at 0x02FF and 0x0200 (not 0x0300) supply the target, per
	// the page-wrap quirk: the pointer's low byte 0xFF wraps the high
	// byte fetch within the same page.
	c.Write(0x02FF, 0x80)
	c.Write(0x0200, 0x50)

	_, _, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if c.cpu.pc != 0x5080 {
		t.Errorf("PC = %#04x, want 0x5080", c.cpu.pc)
	}
}

func TestADC_SetsCarryOverflowNegative(t *testing.T) {
	prg := make([]byte, prgWindowSize)
	prg[0] = 0x69 // ADC immediate
	prg[1] = 0x50

	c := newTestConsole(prg)
	c.cpu.pc = 0x8000
	c.cpu.a = 0x50
	c.cpu.p &^= carry

	_, _, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if c.cpu.a != 0xA0 {
		t.Errorf("A = %#02x, want 0xA0", c.cpu.a)
	}
	if c.cpu.p&carry != 0 {
		t.Error("carry set, want clear")
	}
	if c.cpu.p&overflow == 0 {
		t.Error("overflow clear, want set")
	}
	if c.cpu.p&negative == 0 {
		t.Error("negative clear, want set")
	}
	if c.cpu.p&zero != 0 {
		t.Error("zero set, want clear")
	}
}

func TestWorkRAM_MirrorsEvery0x0800(t *testing.T) {
	c := newTestConsole(make([]byte, prgWindowSize))
	c.Write(0x0042, 0x99)

	for _, mirror := range []uint16{0x0042, 0x0842, 0x1042, 0x1842} {
		if got := c.Read(mirror); got != 0x99 {
			t.Errorf("Read(%#04x) = %#02x, want 0x99", mirror, got)
		}
	}
}

func TestStackPushPull_RoundTrips(t *testing.T) {
	c := newTestConsole(make([]byte, prgWindowSize))
	sp := c.cpu.sp

	c.cpu.push(c.bus, 0x42)
	c.cpu.push(c.bus, 0x43)
	if c.cpu.sp != sp-2 {
		t.Errorf("SP after two pushes = %#02x, want %#02x", c.cpu.sp, sp-2)
	}

	if v := c.cpu.pull(c.bus); v != 0x43 {
		t.Errorf("pull() = %#02x, want 0x43", v)
	}
	if v := c.cpu.pull(c.bus); v != 0x42 {
		t.Errorf("pull() = %#02x, want 0x42", v)
	}
	if c.cpu.sp != sp {
		t.Errorf("SP after balanced push/pull = %#02x, want %#02x", c.cpu.sp, sp)
	}
}

func TestStackPointer_WrapsWithinItsPage(t *testing.T) {
	c := newTestConsole(make([]byte, prgWindowSize))
	c.cpu.sp = 0x00

	c.cpu.push(c.bus, 0xAA)
	if c.cpu.sp != 0xFF {
		t.Errorf("SP = %#02x, want 0xFF (wrapped)", c.cpu.sp)
	}
}

// TestComboOpcodeEquivalence checks invariant 6 from spec.md §8: DCP,
// RLA, RRA, SLO and SRE against a memory cell must produce the same
// register file and flags as executing their decomposed halves
// against the same operand and starting accumulator.
func TestComboOpcodeEquivalence(t *testing.T) {
	// runZeroPage executes the two given zero-page opcode bytes in
	// sequence (e.g. DEC $10 then CMP $10), each addressing cell
	// 0x10, and returns the resulting cpu state.
	runZeroPage := func(t *testing.T, opcodes []byte, operand, a byte) *cpu {
		t.Helper()
		prg := make([]byte, prgWindowSize)
		pc := 0
		for _, op := range opcodes {
			prg[pc] = op
			prg[pc+1] = 0x10
			pc += 2
		}

		c := newTestConsole(prg)
		c.Write(0x10, operand)
		c.cpu.pc = 0x8000
		c.cpu.a = a

		for range opcodes {
			if _, _, err := c.Step(); err != nil {
				t.Fatal(err)
			}
		}
		return c.cpu
	}

	// runComboZeroPage executes a single combo opcode byte against
	// zero-page cell 0x10, from the same starting accumulator.
	runComboZeroPage := func(t *testing.T, combo, operand, a byte) *cpu {
		t.Helper()
		prg := make([]byte, prgWindowSize)
		prg[0] = combo
		prg[1] = 0x10

		c := newTestConsole(prg)
		c.Write(0x10, operand)
		c.cpu.pc = 0x8000
		c.cpu.a = a

		if _, _, err := c.Step(); err != nil {
			t.Fatal(err)
		}
		return c.cpu
	}

	assertEquivalent := func(t *testing.T, decomposed, combo *cpu) {
		t.Helper()
		if decomposed.a != combo.a {
			t.Errorf("A = %#02x, want %#02x", combo.a, decomposed.a)
		}
		if decomposed.x != combo.x {
			t.Errorf("X = %#02x, want %#02x", combo.x, decomposed.x)
		}
		if decomposed.p != combo.p {
			t.Errorf("P = %#02x, want %#02x", byte(combo.p), byte(decomposed.p))
		}
	}

	t.Run("DCP == DEC+CMP", func(t *testing.T) {
		decomposed := runZeroPage(t, []byte{0xC6, 0xC5}, 0x01, 0x00) // DEC $10; CMP $10
		combo := runComboZeroPage(t, 0xC7, 0x01, 0x00)               // DCP $10
		assertEquivalent(t, decomposed, combo)
	})

	t.Run("SLO == ASL+ORA", func(t *testing.T) {
		decomposed := runZeroPage(t, []byte{0x06, 0x05}, 0x81, 0x01) // ASL $10; ORA $10
		combo := runComboZeroPage(t, 0x07, 0x81, 0x01)               // SLO $10
		assertEquivalent(t, decomposed, combo)
	})

	t.Run("SRE == LSR+EOR", func(t *testing.T) {
		decomposed := runZeroPage(t, []byte{0x46, 0x45}, 0x03, 0xFF) // LSR $10; EOR $10
		combo := runComboZeroPage(t, 0x47, 0x03, 0xFF)               // SRE $10
		assertEquivalent(t, decomposed, combo)
	})

	t.Run("RLA == ROL+AND", func(t *testing.T) {
		decomposed := runZeroPage(t, []byte{0x26, 0x25}, 0x81, 0xFF) // ROL $10; AND $10
		combo := runComboZeroPage(t, 0x27, 0x81, 0xFF)               // RLA $10
		assertEquivalent(t, decomposed, combo)
	})

	t.Run("RRA == ROR+ADC", func(t *testing.T) {
		decomposed := runZeroPage(t, []byte{0x66, 0x65}, 0x03, 0x10) // ROR $10; ADC $10
		combo := runComboZeroPage(t, 0x67, 0x03, 0x10)               // RRA $10
		assertEquivalent(t, decomposed, combo)
	})
}

func TestCompareOpcode_SetsCarryOnGreaterOrEqual(t *testing.T) {
	prg := make([]byte, prgWindowSize)
	prg[0] = 0xC9 // CMP immediate
	prg[1] = 0x10

	c := newTestConsole(prg)
	c.cpu.pc = 0x8000
	c.cpu.a = 0x10

	if _, _, err := c.Step(); err != nil {
		t.Fatal(err)
	}
	if c.cpu.p&carry == 0 {
		t.Error("carry clear, want set (A == M)")
	}
	if c.cpu.p&zero == 0 {
		t.Error("zero clear, want set (A == M)")
	}
}

func TestPPULockstep_AdvancesThreeTicksPerCycle(t *testing.T) {
	prg := make([]byte, prgWindowSize)
	prg[0] = 0xEA // NOP, 2 cycles

	c := newTestConsole(prg)
	c.cpu.pc = 0x8000

	startLine := int(c.ppu.scanline)*341 + int(c.ppu.linePosition)
	cycles, _, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	endLine := int(c.ppu.scanline)*341 + int(c.ppu.linePosition)

	want := int(cycles) * 3
	got := endLine - startLine
	if got != want {
		t.Errorf("PPU advanced %d ticks, want %d", got, want)
	}
}

func TestNMI_ServicedAtNextInstructionBoundary(t *testing.T) {
	var bank [prgBankSize]byte
	bank[0x3FFC], bank[0x3FFD] = 0x00, 0x80 // reset vector -> 0x8000
	bank[0x3FFA], bank[0x3FFB] = 0x00, 0x90 // nmi vector -> 0x9000
	bank[0] = 0xEA                          // NOP at 0x8000

	c := newTestConsole16K(bank)
	wantStatus := byte(c.cpu.p | brk | unused)
	c.cpu.triggerNMI()

	sp := c.cpu.sp
	cycles, _, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if cycles != 7 {
		t.Errorf("NMI step cost %d cycles, want 7", cycles)
	}
	if c.cpu.pc != 0x9000 {
		t.Errorf("PC = %#04x, want 0x9000 (NMI vector)", c.cpu.pc)
	}

	// the pushed status byte, one below the pushed return address, must
	// carry the Break flag forced set, same as BRK/PHP (spec.md §4.6).
	pushedStatus := c.Read(stackBase | uint16(sp-2))
	if pushedStatus != wantStatus {
		t.Errorf("pushed status = %#02x, want %#02x (Break forced set)", pushedStatus, wantStatus)
	}
}

func TestInvalidOpcode_Halts(t *testing.T) {
	prg := make([]byte, prgWindowSize)
	prg[0] = 0x02 // KIL, decoded but jams the processor

	c := newTestConsole(prg)
	c.cpu.pc = 0x8000

	if _, _, err := c.Step(); err == nil {
		t.Fatal("expected an error from KIL, got nil")
	}
	if !c.cpu.halted {
		t.Error("cpu.halted = false, want true after KIL")
	}
}
