// Package host provides the concrete implementations of nes.Host: a
// headless harness for tests and non-interactive runs, and a terminal
// harness built on bubbletea/lipgloss.
package host

// Headless never requests quit and discards every frame. Unlike
// nes.NoopHost (which exists inside package nes purely so a Console
// has a sane zero-value default), Headless is the implementation the
// CLI actually wires up for --headless runs (with or without --trace): same
// behavior, but it belongs to the harness layer rather than the core.
type Headless struct{}

func (Headless) TickHost() (quit bool) { return false }
func (Headless) Present(frame []byte)  {}
