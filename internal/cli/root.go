// Package cli implements the quantum command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quantum/pkg/quantum"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2

	// exitInterrupted follows the shell convention of 128+SIGINT.
	exitInterrupted = 130
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	verbose   bool

	seed     int64
	idScheme string
	idPrefix string
	journal  string
}

var flags rootFlags

// Session flag names. configFlags maps each to its config key.
const (
	flagSeed     = "seed"
	flagIDScheme = "id-scheme"
	flagIDPrefix = "id-prefix"
	flagJournal  = "journal"
)

// NewRootCmd creates the top-level "quantum" command with global flags
// and all subcommands registered. Running it without a subcommand starts
// an interactive session.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "quantum",
		Short:   "Omega Sector quantum vault terminal",
		Long:    "quantum is an interactive containment-vault simulator: add quantum objects,\nanalyze them, and cool them down before their stability collapses.",
		Version: quantum.Version,
		Args:    cobra.NoArgs,
		RunE:    runPlay,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/quantum)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "write diagnostic logs to stderr")
	pf.Int64Var(&flags.seed, flagSeed, 0, "random seed (0 seeds from the clock)")
	pf.StringVar(&flags.idScheme, flagIDScheme, "", "object id scheme: random or uuid")
	pf.StringVar(&flags.idPrefix, flagIDPrefix, "", "prefix for generated object ids")
	pf.StringVar(&flags.journal, flagJournal, "", "SQLite data source for the session journal")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code. An
// interrupt cancels the command context so a running session can close
// its journal and print its summary.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := ExecuteContext(ctx, NewRootCmd(), os.Stderr)
	stop()
	os.Exit(code)
}

// ExecuteContext runs root with ctx, prints any error to stderr, and
// returns the exit code.
func ExecuteContext(ctx context.Context, root *cobra.Command, stderr io.Writer) int {
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return exitCode(err)
	}
	return exitSuccess
}

// sysError marks failures of the environment rather than of user input.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemError(format string, args ...any) error {
	return &sysError{err: fmt.Errorf(format, args...)}
}

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
