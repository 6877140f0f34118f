package bots

import (
	"encoding/binary"
	"sync"

	"lukechampine.com/frand"
)

// Rand is the randomness the easy and medium tiers draw from.
type Rand interface {
	Intn(n int) int
}

type cryptoRand struct{}

func (cryptoRand) Intn(n int) int { return frand.Intn(n) }

// NewRand returns the process-wide generator. Safe for concurrent use.
func NewRand() Rand { return cryptoRand{} }

type seededRand struct {
	mu  sync.Mutex
	rng *frand.RNG
}

// NewSeededRand returns a reproducible generator, mostly for tests and
// replays.
func NewSeededRand(seed uint64) Rand {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return &seededRand{rng: frand.NewCustom(key, 1024, 12)}
}

func (r *seededRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// chance reports true pct percent of the time.
func chance(r Rand, pct int) bool {
	return r.Intn(100) < pct
}
