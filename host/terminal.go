package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/tmbytecode/tmvm/cpu"
)

// Terminal I/O register offsets within the IO region (spec.md §3.2's
// I/O window). DataPort: guest reads pop the next buffered input byte (0
// when empty) and writes print a byte to stdout. StatusPort: bit 0 is
// set while buffered input is available.
const (
	portTermData   = cpu.IOBegin + 0x00
	portTermStatus = cpu.IOBegin + 0x01
)

const statusDataReady = 0x01

// TerminalDevice puts the host terminal into raw mode and relays
// keystrokes to the guest one byte at a time through an MMIO register
// window, raising an interrupt on arrival. It is grounded on the
// reference engine's raw-mode console device, simplified to a blocking
// background reader instead of a nonblocking poll loop since this host
// has no other per-tick work competing for the terminal fd.
type TerminalDevice struct {
	mu     sync.Mutex
	inbuf  []byte
	fd     int
	state  *term.State
	reader *bufio.Reader
	out    io.Writer

	cpuRef *cpu.CPU
	irqBit uint8

	stopCh chan struct{}
	done   chan struct{}
}

// NewTerminalDevice constructs a terminal device that raises irqBit on
// c whenever a keystroke arrives. Call Start to enter raw mode and begin
// relaying input; call Register to wire its ports into a Machine.
func NewTerminalDevice(c *cpu.CPU, irqBit uint8) *TerminalDevice {
	return &TerminalDevice{
		fd:     int(os.Stdin.Fd()),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		cpuRef: c,
		irqBit: irqBit,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Register wires the device's data and status registers into m's port
// table (spec.md §3.2).
func (t *TerminalDevice) Register(m *Machine) {
	m.RegisterPort(portTermData, t.readData, t.writeData)
	m.RegisterPort(portTermStatus, t.readStatus, nil)
}

// Start puts the terminal into raw mode and launches the background
// reader goroutine. The returned error is from term.MakeRaw; Start is a
// no-op error-wise if stdin isn't a real terminal, since headless runs
// (tests, piped input) shouldn't fail just because there's no tty to
// raw-mode.
func (t *TerminalDevice) Start() error {
	if !term.IsTerminal(t.fd) {
		go t.pump()
		return nil
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("host: entering raw mode: %w", err)
	}
	t.state = state
	go t.pump()
	return nil
}

// Stop restores the terminal's prior mode and halts the reader.
func (t *TerminalDevice) Stop() {
	close(t.stopCh)
	if t.state != nil {
		_ = term.Restore(t.fd, t.state)
	}
	<-t.done
}

func (t *TerminalDevice) pump() {
	defer close(t.done)
	for {
		select {
		case <-t.stopCh:
			return
		default:
		}
		b, err := t.reader.ReadByte()
		if err != nil {
			return
		}
		switch b {
		case '\r':
			b = '\n'
		}
		t.mu.Lock()
		t.inbuf = append(t.inbuf, b)
		t.mu.Unlock()
		if t.cpuRef != nil {
			t.cpuRef.RequestInterrupt(t.irqBit)
		}
	}
}

func (t *TerminalDevice) readData() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.inbuf) == 0 {
		return 0
	}
	b := t.inbuf[0]
	t.inbuf = t.inbuf[1:]
	return b
}

func (t *TerminalDevice) writeData(v uint8) {
	fmt.Fprintf(t.out, "%c", v)
}

func (t *TerminalDevice) readStatus() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.inbuf) > 0 {
		return statusDataReady
	}
	return 0
}
