package types

import "fmt"

// Stability bounds. Writes are clamped to MaxStability; a stored value at or
// below CollapseThreshold is a collapse.
const (
	MaxStability      = 100.0
	CollapseThreshold = 0.0
)

// Entity is a quantum object held in the vault inventory.
type Entity struct {
	ID          string // Free-form id; uniqueness is not enforced.
	Kind        Kind   // One of the Kind constants.
	DangerLevel int    // Fixed by Kind at construction.

	stability float64
}

// Cooler is the cooldown capability. Only kinds with a cooldown delta
// provide one; see Entity.Cooler.
type Cooler interface {
	// Cooldown raises stability by the kind's cooldown delta and returns the
	// informational message. It returns a *StabilityCollapseError if the
	// resulting value is at or below zero.
	Cooldown() (string, error)
}

// NewEntity creates an entity of the given kind at full stability.
// Returns ErrEmptyID or ErrUnknownKind on invalid input.
func NewEntity(id string, kind Kind) (*Entity, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	spec, err := kind.Spec()
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, kind)
	}
	return &Entity{
		ID:          id,
		Kind:        kind,
		DangerLevel: spec.DangerLevel,
		stability:   MaxStability,
	}, nil
}

// ApplyDelta computes the stability that results from adding delta to
// current. Values above MaxStability are clamped. There is no floor clamp:
// a result at or below CollapseThreshold is returned as a
// *StabilityCollapseError carrying entityID, and the returned value is then
// meaningless to callers.
func ApplyDelta(entityID string, current, delta float64) (float64, error) {
	v := current + delta
	if v > MaxStability {
		v = MaxStability
	}
	if v <= CollapseThreshold {
		return v, &StabilityCollapseError{EntityID: entityID, Value: v}
	}
	return v, nil
}

// Stability returns the current stored stability.
func (e *Entity) Stability() float64 {
	return e.stability
}

// adjust applies delta through ApplyDelta and stores the result only when
// it did not collapse.
func (e *Entity) adjust(delta float64) error {
	v, err := ApplyDelta(e.ID, e.stability, delta)
	if err != nil {
		return err
	}
	e.stability = v
	return nil
}

// Analyze runs the kind's analysis: stability drops by the kind's analyze
// delta. It returns the informational message, or a *StabilityCollapseError
// when the object collapses.
func (e *Entity) Analyze() (string, error) {
	spec, err := e.Kind.Spec()
	if err != nil {
		return "", err
	}
	if err := e.adjust(spec.AnalyzeDelta); err != nil {
		return "", err
	}
	return e.message(spec.AnalyzeMessage), nil
}

// Cooler returns the cooldown capability of e. The second result is false
// for kinds without one, in which case the Cooler is nil.
func (e *Entity) Cooler() (Cooler, bool) {
	spec, err := e.Kind.Spec()
	if err != nil || !spec.CanCooldown {
		return nil, false
	}
	return coolant{entity: e, delta: spec.CooldownDelta, msg: spec.CooldownMessage}, true
}

// Describe returns the one-line status of e.
func (e *Entity) Describe() string {
	return fmt.Sprintf("ID: %s | Stability: %%%.2f | Danger: %d", e.ID, e.stability, e.DangerLevel)
}

func (e *Entity) message(text string) string {
	return fmt.Sprintf("[%s] %s", e.ID, text)
}

// coolant binds a cooldown delta to an entity.
type coolant struct {
	entity *Entity
	delta  float64
	msg    string
}

func (c coolant) Cooldown() (string, error) {
	if err := c.entity.adjust(c.delta); err != nil {
		return "", err
	}
	return c.entity.message(c.msg), nil
}
