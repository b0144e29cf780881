package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/quantum/internal/paths"
	"github.com/mesh-intelligence/quantum/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Seed       int64  `yaml:"seed"`
	IDScheme   string `yaml:"id_scheme"`
	IDPrefix   string `yaml:"id_prefix"`
	JournalDSN string `yaml:"journal_dsn"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration",
		Long:  "Create the configuration directory and write config.yaml with default values.\nAn existing config.yaml is left untouched.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return systemError("resolve config dir: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return systemError("create config directory: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	written, err := writeConfigIfMissing(path, types.DefaultConfig())
	if err != nil {
		return systemError("write config: %w", err)
	}

	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. It reports whether a file was written.
func writeConfigIfMissing(path string, cfg types.Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		Seed:       cfg.Seed,
		IDScheme:   cfg.IDScheme,
		IDPrefix:   cfg.IDPrefix,
		JournalDSN: cfg.JournalDSN,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	header := []byte("# quantum vault configuration\n")
	return true, os.WriteFile(path, append(header, data...), 0o644)
}
