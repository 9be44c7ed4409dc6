package main

const prgBankSize = 16 * 1024

// defaultROM builds a minimal one-bank iNES image in memory: mapper
// 0, no CHR, reset vector pointing at 0x8000, which is filled with
// NOPs. It's what acidnes runs when invoked with no ROM path, so the
// CLI always has something to step through.
func defaultROM() []byte {
	header := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	bank := make([]byte, prgBankSize)
	bank[0x3FFC], bank[0x3FFD] = 0x00, 0x80
	for i := range bank[:0x100] {
		bank[i] = 0xEA
	}
	return append(header, bank...)
}
