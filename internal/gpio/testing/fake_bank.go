// Package testing provides test doubles for the gpio package.
package testing

import (
	"sync"

	"github.com/rileyhilliard/rmon/internal/gpio"
)

// FakeBank is an in-memory gpio.Bank. Lines missing from both Levels and
// Errors read as gpio.ErrNotConfigured.
type FakeBank struct {
	mu         sync.Mutex
	Levels     map[int]gpio.Level
	Errors     map[int]error
	Reads      map[int]int
	CloseCalls int
	closed     bool
}

// NewFakeBank creates a bank with the given line levels.
func NewFakeBank(levels map[int]gpio.Level) *FakeBank {
	if levels == nil {
		levels = make(map[int]gpio.Level)
	}
	return &FakeBank{
		Levels: levels,
		Errors: make(map[int]error),
		Reads:  make(map[int]int),
	}
}

// Fail makes every read of line return err.
func (b *FakeBank) Fail(line int, err error) *FakeBank {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Errors[line] = err
	return b
}

// Read implements gpio.Reader.
func (b *FakeBank) Read(line int) (gpio.Level, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.Reads[line]++
	if b.closed {
		return gpio.Low, gpio.ErrClosed
	}
	if err, ok := b.Errors[line]; ok {
		return gpio.Low, err
	}
	lvl, ok := b.Levels[line]
	if !ok {
		return gpio.Low, gpio.ErrNotConfigured
	}
	return lvl, nil
}

// Close implements gpio.Bank.
func (b *FakeBank) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.CloseCalls++
	b.closed = true
	return nil
}

// Configured returns how many lines have a level or an injected error.
func (b *FakeBank) Configured() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.Levels) + len(b.Errors)
}

// Closed reports whether Close has been called.
func (b *FakeBank) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// ReadCount returns how many times line was read.
func (b *FakeBank) ReadCount(line int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Reads[line]
}
