// Package random abstracts the randomness used for suggestion draws
// and synthetic severity scores so tests can inject a seeded source.
package random

import "math/rand"

// Rand is the subset of math/rand both the matcher and the prediction
// engine draw from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Perm(n int) []int
}

// Locked draws from the package-level math/rand source, which is
// already safe for concurrent handlers.
type Locked struct{}

func (Locked) Intn(n int) int   { return rand.Intn(n) }
func (Locked) Float64() float64 { return rand.Float64() }
func (Locked) Perm(n int) []int { return rand.Perm(n) }

// Default returns the production source.
func Default() Rand { return Locked{} }
