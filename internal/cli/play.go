package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quantum/internal/journal"
	"github.com/mesh-intelligence/quantum/internal/logger"
	"github.com/mesh-intelligence/quantum/internal/paths"
	"github.com/mesh-intelligence/quantum/internal/session"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive vault session",
		Long:  "Start the vault control panel. The session ends on exit (5), end of input,\nor when an object's stability collapses.",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return systemError("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}

	log := logger.Discard()
	if flags.verbose {
		log = logger.New(cmd.ErrOrStderr())
	}

	src := session.NewSource(cfg.Seed)
	ids, err := session.NewIDGenerator(cfg, src)
	if err != nil {
		return err
	}

	j := journal.New()
	if err := j.Attach(cfg.JournalDSN); err != nil {
		return systemError("attach journal: %w", err)
	}
	log.Info(fmt.Sprintf("session %s started (config dir %s)", j.SessionID(), configDir))

	s := session.New(session.Options{
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
		Source:  src,
		IDs:     ids,
		Journal: j,
		Logger:  log,
	})

	res, runErr := s.Run(cmd.Context())

	if summary, err := j.Summary(); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSession %s: %s, %d objects, ended by %s.\n",
			j.SessionID(), summary, res.Objects, res.Outcome)
	} else {
		log.Warn(fmt.Sprintf("journal summary: %v", err))
	}

	if err := j.Detach(string(res.Outcome)); err != nil {
		log.Warn(fmt.Sprintf("detach journal: %v", err))
	}
	return runErr
}
