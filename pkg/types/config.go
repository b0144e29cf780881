package types

import "errors"

// Config holds the parameters of a vault session.
type Config struct {
	// Seed seeds the random source. Zero means seed from the clock.
	Seed int64 `json:"seed" yaml:"seed"`

	// IDScheme selects how object ids are generated (IDSchemeRandom or
	// IDSchemeUUID).
	IDScheme string `json:"id_scheme" yaml:"id_scheme"`

	// IDPrefix is prepended to every generated id.
	IDPrefix string `json:"id_prefix" yaml:"id_prefix"`

	// JournalDSN is the SQLite data source of the session journal.
	JournalDSN string `json:"journal_dsn" yaml:"journal_dsn"`
}

// Supported id schemes.
const (
	IDSchemeRandom = "random"
	IDSchemeUUID   = "uuid"
)

// Config defaults.
const (
	DefaultIDPrefix   = "Q-OBJ"
	DefaultJournalDSN = ":memory:"
)

// Config validation errors.
var (
	ErrIDSchemeUnknown = errors.New("unknown id scheme")
	ErrIDPrefixEmpty   = errors.New("id prefix must not be empty")
)

// knownIDSchemes lists the schemes that Validate accepts.
var knownIDSchemes = map[string]bool{
	IDSchemeRandom: true,
	IDSchemeUUID:   true,
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		IDScheme:   IDSchemeRandom,
		IDPrefix:   DefaultIDPrefix,
		JournalDSN: DefaultJournalDSN,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure. An empty IDScheme or JournalDSN is
// valid and means the default.
func (c Config) Validate() error {
	if c.IDScheme != "" && !knownIDSchemes[c.IDScheme] {
		return ErrIDSchemeUnknown
	}
	if c.IDPrefix == "" {
		return ErrIDPrefixEmpty
	}
	return nil
}
