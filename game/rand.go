package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewRand returns a seeded random source. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
