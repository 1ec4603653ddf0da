package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rmon/internal/config"
	"github.com/rileyhilliard/rmon/internal/errors"
	"github.com/rileyhilliard/rmon/internal/monitor"
	"github.com/rileyhilliard/rmon/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd starts the dashboard.
var rootCmd = &cobra.Command{
	Use:   "rmon",
	Short: "Raspberry Pi system monitor for the terminal",
	Long: `Show a live dashboard of a Raspberry Pi's health in the terminal.

The dashboard refreshes once a second and shows CPU, memory, disk and
network usage, board sensors (temperature, clock, core voltage), mesh
membership, I2C devices on the bus and the level of every GPIO pin on
the 40-pin header.

Press q or Ctrl+C to quit.

Settings are read from the environment:
  RMON_INTERVAL          refresh interval (default 1s)
  RMON_COMMAND_TIMEOUT   timeout for vcgencmd and i2cdetect (default 2s)
  RMON_READER_TIMEOUT    deadline for each reading (default 3s)
  RMON_I2C_BUS           bus passed to i2cdetect (default 1)
  RMON_MESH_INTERFACE    mesh interface name (default bat0)
  RMON_DEBUG_LOG         write debug output to this file`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd.Context())
	},
}

// isTerminal reports whether f is attached to a terminal.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// runDashboard is replaced in tests.
var runDashboard = func(ctx context.Context, cfg *config.Config) error {
	return monitor.Run(ctx, cfg)
}

// dashboardCommand checks the terminal, loads settings and runs the
// dashboard until the user quits.
func dashboardCommand(ctx context.Context) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New(errors.ErrTerminal,
			"rmon needs an interactive terminal",
			"Run rmon directly in a terminal rather than through a pipe or redirect.")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	restore, err := redirectLog(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer restore()

	return runDashboard(ctx, cfg)
}

// redirectLog keeps the std logger off the screen while the dashboard owns
// it. Output goes to path when set and is discarded otherwise. The returned
// func puts stderr back.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := tea.LogToFile(path, "rmon")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Couldn't open debug log %s", path),
			"Point RMON_DEBUG_LOG at a writable file, or unset it.")
	}
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

// formatError renders err for the terminal. Structured errors get the
// failure line highlighted and the suggestion muted.
func formatError(err error) string {
	var rmErr *errors.Error
	if !stderrors.As(err, &rmErr) {
		return ui.ErrorStyle().Render(ui.SymbolFail+" "+err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(ui.ErrorStyle().Render(ui.SymbolFail+" "+rmErr.Message) + "\n")
	if rmErr.Cause != nil {
		b.WriteString("\n  " + rmErr.Cause.Error() + "\n")
	}
	if rmErr.Suggestion != "" {
		b.WriteString("\n  " + ui.MutedStyle().Render(rmErr.Suggestion) + "\n")
	}
	return b.String()
}

// Execute runs the root command and exits with the code for its error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(errors.ExitCode(err))
	}
}
