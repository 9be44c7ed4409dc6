package nes

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	trainerLen  = 512
	prgBankSize = 1024 * 16
	chrBankSize = 1024 * 8
)

const (
	flags6Vertical = 1 << iota // mirroring: 0 horizontal, 1 vertical
	flags6Battery              // battery-backed PRG RAM present
	flags6Trainer              // 512-byte trainer before PRG data
	flags6FourScreen
)

const flags7VSUnisystem = 1 << 0

var inesMagic = [4]byte{'N', 'E', 'S', 0x1A}

// ErrBadMagic is returned when a file does not start with the iNES
// magic sequence.
var ErrBadMagic = errors.New("nes: not an iNES file")

// UnsupportedMapperError is returned when a cartridge declares a
// mapper number other than 0, the only mapper this core implements.
type UnsupportedMapperError struct {
	Mapper byte
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("nes: unsupported mapper %d", e.Mapper)
}

// MirrorMode describes how the cartridge wants its nametables
// mirrored. Nothing in this package's PPU consults it; it is kept on
// Cartridge because a complete iNES reader parses the whole header,
// and a host's informational display may want to show it.
type MirrorMode int

const (
	MirrorHorizontal MirrorMode = iota
	MirrorVertical
	MirrorFourScreen
)

// Cartridge is the parsed contents of an iNES file: the PRG/CHR blobs
// and the header-derived metadata. It is immutable after load.
type Cartridge struct {
	Mapper      byte
	MirrorMode  MirrorMode
	BatteryRAM  bool
	VSUnisystem bool
	PAL         bool
	PRGRAMBanks byte

	PRG []byte // raw PRG-ROM payload, as read from the file
	CHR []byte // raw CHR-ROM payload, as read from the file
}

type inesHeader struct {
	Magic      [4]byte
	PRGBanks   byte
	CHRBanks   byte
	Flags6     byte
	Flags7     byte
	PRGRAMSize byte
	Flags9     byte
	_          [6]byte
}

// LoadCartridge reads an iNES-format cartridge image from r. It
// rejects anything that doesn't start with the iNES magic, and any
// mapper other than the trivial mapper 0.
func LoadCartridge(r io.Reader) (*Cartridge, error) {
	var h inesHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("nes: reading header: %w", err)
	}

	if !bytes.Equal(h.Magic[:], inesMagic[:]) {
		return nil, ErrBadMagic
	}

	mapper := (h.Flags6 >> 4) | (h.Flags7 & 0xF0)
	if mapper != 0 {
		return nil, &UnsupportedMapperError{Mapper: mapper}
	}

	if h.Flags6&flags6Trainer != 0 {
		if _, err := io.CopyN(io.Discard, r, trainerLen); err != nil {
			return nil, fmt.Errorf("nes: reading trainer: %w", err)
		}
	}

	prg := make([]byte, int(h.PRGBanks)*prgBankSize)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("nes: reading PRG-ROM: %w", err)
	}

	chr := make([]byte, int(h.CHRBanks)*chrBankSize)
	if _, err := io.ReadFull(r, chr); err != nil {
		return nil, fmt.Errorf("nes: reading CHR-ROM: %w", err)
	}

	mirror := MirrorHorizontal
	if h.Flags6&flags6FourScreen != 0 {
		mirror = MirrorFourScreen
	} else if h.Flags6&flags6Vertical != 0 {
		mirror = MirrorVertical
	}

	return &Cartridge{
		Mapper:      mapper,
		MirrorMode:  mirror,
		BatteryRAM:  h.Flags6&flags6Battery != 0,
		VSUnisystem: h.Flags7&flags7VSUnisystem != 0,
		PAL:         h.Flags9&1 != 0,
		PRGRAMBanks: h.PRGRAMSize,
		PRG:         prg,
		CHR:         chr,
	}, nil
}

// LoadCartridgeFile opens path and loads a cartridge from it.
func LoadCartridgeFile(path string) (*Cartridge, error) {
	f, err := openROM(path)
	if err != nil {
		return nil, fmt.Errorf("nes: opening rom: %w", err)
	}
	defer f.Close()

	return LoadCartridge(f)
}
