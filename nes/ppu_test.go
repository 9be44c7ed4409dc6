package nes

import "testing"

func TestPPU_AdvancesLinePositionThenScanline(t *testing.T) {
	p := newPPU(nil)
	p.reset()
	p.linePosition = ppuLastLinePos

	p.tick()

	if p.linePosition != 0 {
		t.Errorf("linePosition = %d, want 0", p.linePosition)
	}
	if p.scanline != 1 {
		t.Errorf("scanline = %d, want 1", p.scanline)
	}
}

func TestPPU_RaisesVBlankAndNMIAtScanline241(t *testing.T) {
	p := newPPU(nil)
	p.reset()
	p.scanline = ppuVBlankScanline
	p.linePosition = 0

	p.tick()

	if p.scanline != ppuVBlankScanline || p.linePosition != 1 {
		t.Fatalf("scan position = (%d,%d), want (%d,1)", p.scanline, p.linePosition, ppuVBlankScanline)
	}
	if !p.inVBlank {
		t.Error("inVBlank = false, want true")
	}
	if !p.takeNMI() {
		t.Error("takeNMI() = false, want true")
	}
	if p.takeNMI() {
		t.Error("takeNMI() is not one-shot: returned true twice")
	}
}

func TestPPU_WrapsScanlineAfter261(t *testing.T) {
	p := newPPU(nil)
	p.reset()
	p.scanline = ppuLastScanline
	p.linePosition = ppuLastLinePos

	p.tick()

	if p.scanline != 0 {
		t.Errorf("scanline = %d, want 0 (wrapped)", p.scanline)
	}
}

func TestPPU_StatusReadClearsVBlank(t *testing.T) {
	p := newPPU(nil)
	p.reset()
	p.inVBlank = true

	if status := p.readStatus(); status&0x80 == 0 {
		t.Error("readStatus() bit 7 clear, want set")
	}
	if p.inVBlank {
		t.Error("inVBlank still true after readStatus()")
	}
	if status := p.readStatus(); status&0x80 != 0 {
		t.Error("readStatus() bit 7 set on second read, want clear (sticky-until-read)")
	}
}

type recordingHost struct {
	frames int
	quit   bool
}

func (h *recordingHost) TickHost() bool      { return h.quit }
func (h *recordingHost) Present(frame []byte) { h.frames++ }

func TestPPU_PresentsOncePerFrame(t *testing.T) {
	host := &recordingHost{}
	p := newPPU(host)
	p.reset()
	p.scanline = ppuVisibleScanline
	p.linePosition = ppuVisibleLinePos

	p.tick()
	if host.frames != 1 {
		t.Errorf("frames presented = %d, want 1", host.frames)
	}
	if p.frame != 1 {
		t.Errorf("frame counter = %d, want 1", p.frame)
	}
}
