package session

import "github.com/mesh-intelligence/quantum/pkg/types"

// Inventory is the ordered collection of objects created in a session.
// Insertion order is display order. Objects are never removed.
type Inventory struct {
	entities []*types.Entity
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends e.
func (inv *Inventory) Add(e *types.Entity) {
	inv.entities = append(inv.entities, e)
}

// Find returns the first object with the given id in insertion order.
// Ids are not unique; later duplicates are unreachable by Find.
func (inv *Inventory) Find(id string) (*types.Entity, bool) {
	for _, e := range inv.entities {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// All returns the objects in insertion order. The slice is a copy; the
// objects are shared.
func (inv *Inventory) All() []*types.Entity {
	out := make([]*types.Entity, len(inv.entities))
	copy(out, inv.entities)
	return out
}

// Len returns the number of objects.
func (inv *Inventory) Len() int {
	return len(inv.entities)
}
