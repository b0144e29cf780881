// Package types defines the quantum object model: the three object kinds,
// the Entity type with its clamped stability, the cooldown capability, the
// session Config, and the standard errors for the quantum simulator.
package types
