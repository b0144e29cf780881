package types

import (
	"errors"
	"fmt"
)

// Entity errors.
var (
	ErrUnknownKind = errors.New("unknown object kind")
	ErrEmptyID     = errors.New("object id must not be empty")

	// ErrStabilityCollapse is matched by every StabilityCollapseError
	// through errors.Is.
	ErrStabilityCollapse = errors.New("stability collapse")
)

// StabilityCollapseError reports that a stability write reached zero or
// below. It is the only fatal condition of a session.
type StabilityCollapseError struct {
	EntityID string
	// Value is the computed stability that triggered the collapse. It is
	// never stored on the entity.
	Value float64
}

func (e *StabilityCollapseError) Error() string {
	return fmt.Sprintf("CRITICAL ERROR! Stability collapsed because of object %s!", e.EntityID)
}

// Is makes errors.Is(err, ErrStabilityCollapse) true for any collapse.
func (e *StabilityCollapseError) Is(target error) bool {
	return target == ErrStabilityCollapse
}

// CollapsedEntity returns the id carried by a collapse error anywhere in
// err's chain, and false if err is not a collapse.
func CollapsedEntity(err error) (string, bool) {
	var collapse *StabilityCollapseError
	if errors.As(err, &collapse) {
		return collapse.EntityID, true
	}
	return "", false
}
