package nes

import "os"

func openROM(path string) (*os.File, error) {
	return os.Open(path)
}
