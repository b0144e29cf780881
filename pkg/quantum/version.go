// Package quantum holds module-wide identifiers for the quantum vault
// simulator.
package quantum

// Version is the release version of the quantum CLI.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/quantum"
