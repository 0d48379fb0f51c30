package identity

import "math/rand/v2"

// RandSource fuente de aleatoriedad inyectable. *rand.Rand la satisface.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand usa el generador global de math/rand/v2.
func DefaultRand() RandSource { return globalRand{} }
