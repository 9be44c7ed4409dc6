package nes

const (
	ppuLastScanline    = 261
	ppuVBlankScanline  = 241
	ppuLastLinePos     = 340
	ppuVisibleScanline = 240
	ppuVisibleLinePos  = 256

	frameWidth  = 256
	frameHeight = 240
)

// ppu is the minimal Picture Processing Unit state the CPU test
// programs observe: a scan-position counter, vertical-blank and NMI
// signalling, and a placeholder picture generator. Pattern tables,
// sprites, palettes and scrolling are out of scope; see
// SPEC_FULL.md §4.11 for why this generator exists at all.
type ppu struct {
	frame         uint32
	scanline      uint16
	linePosition  uint16
	inVBlank      bool
	nmiPending    bool

	framebuffer [frameWidth * frameHeight * 4]byte
	host        Host
}

func newPPU(host Host) *ppu {
	if host == nil {
		host = NoopHost{}
	}
	return &ppu{host: host}
}

func (p *ppu) reset() {
	p.scanline = 0
	p.linePosition = 0
	p.inVBlank = false
	p.nmiPending = false
}

// tick advances the scan position by one dot, per spec.md §4.8:
//  1. increment line position
//  2. wrap line position at 340, incrementing scanline
//  3. at (scanline 241, linePosition 1) raise vblank/NMI
//  4. wrap scanline at 261 back to 0
//
// It also drives the placeholder picture generator: pixels in the
// visible area are painted with a travelling greyscale gradient, and
// the completed frame is handed to the host on the tick that draws the
// last visible pixel (scanline 240, line position 256).
func (p *ppu) tick() {
	if p.inVisibleArea() {
		x := p.linePosition - 1
		y := p.scanline - 1
		p.drawPlaceholderPixel(x, y)
	}

	if p.scanline == ppuVisibleScanline && p.linePosition == ppuVisibleLinePos {
		p.host.Present(p.framebuffer[:])
		p.frame++
	}

	p.linePosition++
	if p.linePosition > ppuLastLinePos {
		p.linePosition = 0
		p.scanline++
	}

	if p.scanline == ppuVBlankScanline && p.linePosition == 1 {
		p.inVBlank = true
		p.nmiPending = true
	} else if p.scanline > ppuLastScanline {
		p.scanline = 0
	}
}

func (p *ppu) inVisibleArea() bool {
	return p.scanline > 0 && p.scanline <= ppuVisibleScanline &&
		p.linePosition > 0 && p.linePosition <= ppuVisibleLinePos
}

func (p *ppu) drawPlaceholderPixel(x, y uint16) {
	c := int32(p.frame+uint32(x)+uint32(y)) % 510
	c -= 255
	if c < 0 {
		c = -c
	}
	grey := byte(c)

	i := (int(y)*frameWidth + int(x)) * 4
	p.framebuffer[i+0] = grey
	p.framebuffer[i+1] = grey
	p.framebuffer[i+2] = grey
	p.framebuffer[i+3] = 0xFF
}

// readStatus returns the PPU status byte with bit 7 holding the
// vblank flag, then clears it: the vblank bit is sticky until read.
func (p *ppu) readStatus() byte {
	var status byte
	if p.inVBlank {
		status = 0x80
	}
	p.inVBlank = false
	return status
}

// takeNMI reports and clears the one-shot NMI-pending flag.
func (p *ppu) takeNMI() bool {
	pending := p.nmiPending
	p.nmiPending = false
	return pending
}
