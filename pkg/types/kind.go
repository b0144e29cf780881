package types

// Kind identifies one of the built-in quantum object variants.
type Kind string

// Object kinds. A kind fixes the danger level and the stability deltas an
// object receives from its actions.
const (
	KindDataPacket Kind = "data_packet"
	KindDarkMatter Kind = "dark_matter"
	KindAntiMatter Kind = "anti_matter"
)

// Kinds lists every kind in a fixed order. Random selection indexes into
// this slice.
var Kinds = []Kind{
	KindDataPacket,
	KindDarkMatter,
	KindAntiMatter,
}

// KindSpec holds the per-kind constants.
type KindSpec struct {
	Name        string // Display name.
	DangerLevel int    // Descriptive only; never used in computation.

	AnalyzeDelta   float64 // Applied to stability by Analyze.
	AnalyzeMessage string  // Printed after a successful analysis.

	// CanCooldown reports whether the kind exposes the cooldown capability.
	// When false, CooldownDelta and CooldownMessage are unused.
	CanCooldown     bool
	CooldownDelta   float64
	CooldownMessage string
}

// kindSpecs is the registry of all known kinds.
var kindSpecs = map[Kind]KindSpec{
	KindDataPacket: {
		Name:           "Data Packet",
		DangerLevel:    1,
		AnalyzeDelta:   -5,
		AnalyzeMessage: "Data contents read. Everything is in order.",
	},
	KindDarkMatter: {
		Name:            "Dark Matter",
		DangerLevel:     5,
		AnalyzeDelta:    -15,
		AnalyzeMessage:  "Analyzing dark matter... Energy is fluctuating!",
		CanCooldown:     true,
		CooldownDelta:   50,
		CooldownMessage: "Cooldown successful. Stability restored.",
	},
	KindAntiMatter: {
		Name:            "Anti Matter",
		DangerLevel:     10,
		AnalyzeDelta:    -25,
		AnalyzeMessage:  "WARNING: The fabric of the universe is trembling...",
		CanCooldown:     true,
		CooldownDelta:   50,
		CooldownMessage: "Anti matter neutralized. Take a deep breath.",
	},
}

// Spec returns the constants for k.
// Returns ErrUnknownKind if k is not a built-in kind.
func (k Kind) Spec() (KindSpec, error) {
	spec, ok := kindSpecs[k]
	if !ok {
		return KindSpec{}, ErrUnknownKind
	}
	return spec, nil
}

// Valid reports whether k is one of the built-in kinds.
func (k Kind) Valid() bool {
	_, ok := kindSpecs[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}
