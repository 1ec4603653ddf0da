package monitor

import (
	"context"
	"io"
	"net"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rmon/internal/config"
	"github.com/rileyhilliard/rmon/internal/errors"
	"github.com/rileyhilliard/rmon/internal/exec"
	"github.com/rileyhilliard/rmon/internal/gpio"
	"github.com/rileyhilliard/rmon/internal/layout"
	"github.com/rileyhilliard/rmon/internal/logger"
	"github.com/rileyhilliard/rmon/internal/sampler"
	"github.com/rileyhilliard/rmon/internal/source"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// BankOpener acquires the GPIO pin bank for the given lines.
type BankOpener func(lines, reserved []int) (gpio.Bank, error)

// OpenPeriphBank opens the real pin bank through periph.io.
func OpenPeriphBank(lines, reserved []int) (gpio.Bank, error) {
	bank, err := gpio.Open(lines, reserved)
	if err != nil {
		return nil, err
	}
	return bank, nil
}

// configuredBank is a bank that can report how many lines it set up.
// *gpio.PeriphBank and the test fake implement it.
type configuredBank interface {
	Configured() int
}

var _ configuredBank = (*gpio.PeriphBank)(nil)

// RunOption customises Run.
type RunOption func(*runOptions)

type runOptions struct {
	openBank  BankOpener
	input     io.Reader
	output    io.Writer
	size      SizeFunc
	log       logger.Logger
	system    []func(*source.System)
	altScreen bool
}

// WithBankOpener replaces how the pin bank is acquired.
func WithBankOpener(open BankOpener) RunOption {
	return func(o *runOptions) { o.openBank = open }
}

// WithIO sets the program's input and output instead of the terminal.
func WithIO(in io.Reader, out io.Writer) RunOption {
	return func(o *runOptions) {
		o.input = in
		o.output = out
		o.altScreen = false
	}
}

// WithSize replaces how the terminal size is read.
func WithSize(size SizeFunc) RunOption {
	return func(o *runOptions) { o.size = size }
}

// WithLogger sets the logger for the loop and sampler.
func WithLogger(log logger.Logger) RunOption {
	return func(o *runOptions) { o.log = log }
}

// WithSystem adjusts the handles passed to the source readers.
func WithSystem(fn func(*source.System)) RunOption {
	return func(o *runOptions) { o.system = append(o.system, fn) }
}

// TerminalSize reads the size of the terminal on f.
func TerminalSize(f *os.File) SizeFunc {
	return func() (layout.Bounds, error) {
		cols, rows, err := term.GetSize(int(f.Fd()))
		if err != nil {
			return layout.Bounds{}, err
		}
		return layout.Bounds{Rows: rows, Cols: cols}, nil
	}
}

// Run opens the pin bank, runs the dashboard until the user quits and
// releases the bank on every return path.
func Run(ctx context.Context, cfg *config.Config, opts ...RunOption) (err error) {
	o := runOptions{
		openBank:  OpenPeriphBank,
		input:     os.Stdin,
		output:    os.Stdout,
		size:      TerminalSize(os.Stdout),
		log:       logger.NewEnvLogger("[rmon]"),
		altScreen: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	lines := gpio.Header40.Lines()
	bank, err := o.openBank(lines, gpio.ReservedLines)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := bank.Close(); cerr != nil {
			o.log.Warn("releasing GPIO lines: %v", cerr)
		}
	}()
	if c, ok := bank.(configuredBank); ok {
		o.log.Debug("GPIO: %d of %d lines configured", c.Configured(), len(lines))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	smp := sampler.New(cfg.ReaderTimeout, o.log)
	sys := source.System{
		Fs:            afero.NewOsFs(),
		Runner:        exec.NewLocalRunner(cfg.CommandTimeout),
		Pins:          bank,
		Lines:         lines,
		Interfaces:    source.SystemInterfaces,
		Hostname:      os.Hostname,
		Resolver:      net.DefaultResolver,
		Now:           time.Now,
		ThermalPath:   cfg.ThermalPath,
		FrequencyPath: cfg.FrequencyPath,
		DiskPath:      cfg.DiskPath,
		MeshInterface: cfg.MeshInterface,
		I2CBus:        cfg.I2CBus,
	}
	for _, fn := range o.system {
		fn(&sys)
	}
	source.RegisterAll(smp, sys)
	o.log.Debug("registered readers: %v", smp.Names())

	model := NewModel(ctx, smp, o.size, cfg.Interval, o.log)
	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(o.input),
		tea.WithOutput(o.output),
	}
	if o.altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Dashboard stopped unexpectedly",
			"Make sure rmon is running in an interactive terminal.")
	}
	return nil
}
