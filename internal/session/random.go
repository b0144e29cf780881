package session

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/quantum/pkg/types"
)

// Source is the randomness used to pick object kinds and ids.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed seeds from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))
}

// PickKind chooses one of types.Kinds uniformly.
func PickKind(src Source) types.Kind {
	return types.Kinds[src.IntN(len(types.Kinds))]
}

// IDGenerator produces object ids. Uniqueness is not guaranteed.
type IDGenerator interface {
	NextID() string
}

// Bounds of the numeric suffix of random ids.
const (
	randomIDMin  = 100
	randomIDSpan = 900
)

// RandomIDs generates "<prefix>-<100..999>" ids from a Source.
type RandomIDs struct {
	Prefix string
	Source Source
}

// NextID returns the next id.
func (g RandomIDs) NextID() string {
	return fmt.Sprintf("%s-%d", g.Prefix, randomIDMin+g.Source.IntN(randomIDSpan))
}

// UUIDs generates "<prefix>-<uuid v7>" ids.
type UUIDs struct {
	Prefix string
}

// NextID returns the next id.
func (g UUIDs) NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return g.Prefix + "-" + id.String()
}

// NewIDGenerator returns the generator for the scheme named in cfg.
func NewIDGenerator(cfg types.Config, src Source) (IDGenerator, error) {
	switch cfg.IDScheme {
	case types.IDSchemeRandom, "":
		return RandomIDs{Prefix: cfg.IDPrefix, Source: src}, nil
	case types.IDSchemeUUID:
		return UUIDs{Prefix: cfg.IDPrefix}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrIDSchemeUnknown, cfg.IDScheme)
	}
}
