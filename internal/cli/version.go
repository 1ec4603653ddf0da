package cli

import (
	"fmt"
	"runtime"

	"github.com/rileyhilliard/rmon/internal/ui"
	"github.com/spf13/cobra"
)

// Version information set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// versionShort controls whether to show short or full version output
var versionShort bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of rmon.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd, versionShort)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

func printVersion(cmd *cobra.Command, short bool) {
	if short {
		cmd.Println(version)
		return
	}

	muted := ui.MutedStyle()
	cmd.Printf("rmon %s\n", formatVersion(version))
	cmd.Println(muted.Render(fmt.Sprintf("commit: %s", commit)))
	cmd.Println(muted.Render(fmt.Sprintf("built: %s", date)))
	cmd.Println(muted.Render(fmt.Sprintf("go: %s", runtime.Version())))
	cmd.Println(muted.Render(fmt.Sprintf("os/arch: %s/%s", runtime.GOOS, runtime.GOARCH)))
}

// formatVersion ensures version has a 'v' prefix for display
func formatVersion(v string) string {
	if v == "" || v == "dev" {
		return v
	}
	if v[0] != 'v' {
		return "v" + v
	}
	return v
}

// SetVersionInfo sets the version information (called from main).
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
