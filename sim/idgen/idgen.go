// Package idgen provides sequential ID generators for the simulation kernel.
package idgen

import "sync/atomic"

// ID is a unique identifier represented as a uint64.
type ID uint64

// Generator produces unique identifiers.
type Generator interface {
	Generate() ID
}

// New returns a sequential generator whose first emitted ID is 1. It is safe
// to call Generate from multiple goroutines.
func New() Generator {
	return &sequentialGenerator{}
}

type sequentialGenerator struct {
	next uint64
}

func (g *sequentialGenerator) Generate() ID {
	return ID(atomic.AddUint64(&g.next, 1))
}

// NewLocal returns a sequential generator without atomic overhead. It is
// meant for IDs that never leave the owning structure, such as queue IDs
// inside a single state.
func NewLocal() Generator {
	return &localGenerator{}
}

type localGenerator struct {
	next uint64
}

func (g *localGenerator) Generate() ID {
	g.next++
	return ID(g.next)
}

var global = New()

// Global returns the process-wide generator used for component and value
// IDs. Handles minted from it stay unique even when multiple simulations
// live in the same process.
func Global() Generator {
	return global
}
