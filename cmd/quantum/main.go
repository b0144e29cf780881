// Package main provides the quantum CLI, an Omega Sector containment-vault
// simulator.
package main

import "github.com/mesh-intelligence/quantum/internal/cli"

func main() {
	cli.Execute()
}
