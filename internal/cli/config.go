package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/quantum/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Environment variables are QUANTUM_<KEY>, e.g. QUANTUM_ID_SCHEME.
	envPrefix = "QUANTUM"

	cfgKeySeed       = "seed"
	cfgKeyIDScheme   = "id_scheme"
	cfgKeyIDPrefix   = "id_prefix"
	cfgKeyJournalDSN = "journal_dsn"
)

// configFlags maps session flags to the config keys they override.
var configFlags = map[string]string{
	flagSeed:     cfgKeySeed,
	flagIDScheme: cfgKeyIDScheme,
	flagIDPrefix: cfgKeyIDPrefix,
	flagJournal:  cfgKeyJournalDSN,
}

// loadConfig reads config.yaml from configDir using Viper and layers
// QUANTUM_* environment variables and changed flags on top. A missing
// config.yaml is not an error.
func loadConfig(configDir string, fs *pflag.FlagSet) (types.Config, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeySeed, def.Seed)
	v.SetDefault(cfgKeyIDScheme, def.IDScheme)
	v.SetDefault(cfgKeyIDPrefix, def.IDPrefix)
	v.SetDefault(cfgKeyJournalDSN, def.JournalDSN)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for name, key := range configFlags {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return types.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Seed:       v.GetInt64(cfgKeySeed),
		IDScheme:   v.GetString(cfgKeyIDScheme),
		IDPrefix:   v.GetString(cfgKeyIDPrefix),
		JournalDSN: v.GetString(cfgKeyJournalDSN),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
