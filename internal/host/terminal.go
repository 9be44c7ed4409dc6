package host

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlemay/acidnes/internal/meter"
)

// frameWidth/frameHeight mirror the packed RGBA framebuffer shape
// nes.Host.Present is documented to deliver; the host package doesn't
// import nes, so these are restated rather than shared.
const (
	frameWidth  = 256
	frameHeight = 240

	cellWidth  = 4
	cellHeight = 8
)

var ramp = []byte(" .:-=+*#%@")

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Padding(0, 1)

type frameMsg struct {
	grid string
	fps  int
}

type model struct {
	grid string
	fps  int
	quit *atomic.Bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit.Store(true)
			return m, tea.Quit
		}
	case frameMsg:
		m.grid = msg.grid
		m.fps = msg.fps
	}
	return m, nil
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.grid,
		statusStyle.Render(fmt.Sprintf("%d fps — q to quit", m.fps)),
	)
}

// Terminal renders the PPU's placeholder frame as a block-character
// grid via bubbletea/lipgloss, grounded on hejops-gone's cpu/debugger.go
// TUI. It is cosmetic: see SPEC_FULL.md §4.10.
type Terminal struct {
	program *tea.Program
	quit    *atomic.Bool
	meter   *meter.Meter
	last    time.Time
}

func NewTerminal() *Terminal {
	quit := new(atomic.Bool)
	return &Terminal{
		program: tea.NewProgram(model{quit: quit}),
		quit:    quit,
		meter:   meter.New(meter.DefaultBufferLen),
	}
}

// Run starts the bubbletea program and blocks until the user quits
// (via q/esc/ctrl+c) or Stop is called from elsewhere.
func (t *Terminal) Run() error {
	_, err := t.program.Run()
	return err
}

// Stop ends the program from outside the UI, e.g. once the emulation
// loop itself has finished driving frames.
func (t *Terminal) Stop() {
	t.program.Quit()
}

func (t *Terminal) TickHost() (quit bool) {
	return t.quit.Load()
}

func (t *Terminal) Present(frame []byte) {
	now := time.Now()
	if !t.last.IsZero() {
		t.meter.Record(now.Sub(t.last))
	}
	t.last = now

	t.program.Send(frameMsg{
		grid: downsample(frame),
		fps:  t.meter.FPS(),
	})
}

// downsample averages each cellWidth x cellHeight block of the packed
// RGBA frame into a single greyscale ramp character, turning the
// 256x240 placeholder picture into a terminal-sized grid.
func downsample(frame []byte) string {
	var sb strings.Builder
	for by := 0; by < frameHeight; by += cellHeight {
		for bx := 0; bx < frameWidth; bx += cellWidth {
			var sum, n int
			for y := by; y < by+cellHeight && y < frameHeight; y++ {
				for x := bx; x < bx+cellWidth && x < frameWidth; x++ {
					i := (y*frameWidth + x) * 4
					sum += int(frame[i])
					n++
				}
			}
			avg := sum / n
			idx := avg * (len(ramp) - 1) / 255
			sb.WriteByte(ramp[idx])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
