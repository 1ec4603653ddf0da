package gpio

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/rileyhilliard/rmon/internal/errors"
	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var (
	// ErrReserved is returned for lines kept for another bus function.
	ErrReserved = stderrors.New("reserved")
	// ErrNotConfigured is returned for lines the bank never set up.
	ErrNotConfigured = stderrors.New("not configured")
	// ErrClosed is returned after the bank has been released.
	ErrClosed = stderrors.New("pin bank closed")
)

// Reader reads the level of one GPIO line.
type Reader interface {
	Read(line int) (Level, error)
}

// Bank is a Reader that holds hardware handles until Close.
type Bank interface {
	Reader
	Close() error
}

// PeriphBank reads pins through periph.io. Lines that fail setup stay in
// the bank as failures so that reading them reports why.
type PeriphBank struct {
	mu     sync.Mutex
	pins   map[int]pgpio.PinIO
	failed map[int]error
	closed bool
}

// initHost is swapped in tests that must not touch real hardware.
var initHost = func() error {
	_, err := host.Init()
	return err
}

// Open initialises the GPIO host drivers and configures lines as inputs.
// A failure of the driver layer itself is fatal; a failure of one line is
// recorded and reported on Read.
func Open(lines []int, reserved []int) (*PeriphBank, error) {
	if err := initHost(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrHardware,
			"Couldn't initialise GPIO drivers",
			"Check that /dev/gpiomem exists and is readable by this user.")
	}

	skip := make(map[int]bool, len(reserved))
	for _, r := range reserved {
		skip[r] = true
	}

	b := &PeriphBank{
		pins:   make(map[int]pgpio.PinIO),
		failed: make(map[int]error),
	}
	for _, line := range lines {
		if skip[line] {
			b.failed[line] = ErrReserved
			continue
		}
		p := gpioreg.ByName(fmt.Sprintf("GPIO%d", line))
		if p == nil {
			b.failed[line] = ErrNotConfigured
			continue
		}
		if err := p.In(pgpio.PullNoChange, pgpio.NoEdge); err != nil {
			b.failed[line] = fmt.Errorf("configure input: %w", err)
			continue
		}
		b.pins[line] = p
	}
	return b, nil
}

// Read returns the current level of line.
func (b *PeriphBank) Read(line int) (Level, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return Low, ErrClosed
	}
	if err, ok := b.failed[line]; ok {
		return Low, err
	}
	p, ok := b.pins[line]
	if !ok {
		return Low, ErrNotConfigured
	}
	if p.Read() == pgpio.High {
		return High, nil
	}
	return Low, nil
}

// Configured returns how many lines were set up successfully.
func (b *PeriphBank) Configured() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pins)
}

// Close halts every configured line. Calling it more than once is a no-op.
func (b *PeriphBank) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	var errs []error
	for line, p := range b.pins {
		if err := p.Halt(); err != nil {
			errs = append(errs, fmt.Errorf("GPIO%d: %w", line, err))
		}
	}
	b.pins = nil
	return stderrors.Join(errs...)
}
