package recipe

import (
	"math/rand/v2"
	"time"
)

// Rand is the source of every random draw the generator makes. Tests can
// supply a scripted implementation for fully deterministic catalogs.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n > 0.
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand. A zero seed picks one from the clock.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pick[T any](rnd Rand, list []T) T {
	return list[rnd.IntN(len(list))]
}

// between returns an int in [lo, hi].
func between(rnd Rand, lo, hi int) int {
	return rnd.IntN(hi-lo+1) + lo
}
