// Package cli implements the rmon command-line interface.
//
// The root command takes no flags or arguments: it checks that stdin and
// stdout are a terminal, loads settings from RMON_* environment variables,
// points the std logger away from the screen and hands over to
// monitor.Run until the user quits.
//
//	rmon           - run the dashboard
//	rmon version   - print build information
//
// Execute prints any error returned by a command and exits with the code
// for its category (see errors.ExitCode).
package cli
