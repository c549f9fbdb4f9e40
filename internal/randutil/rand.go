package randutil

import (
	"io"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Every random decision in a game (shuffle, heuristic players, determinization
// and rollouts) draws from sources built here so a seed replays a whole game.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns an independent source seeded from the next value of rng.
func Derive(rng *rand.Rand) *rand.Rand {
	return New(rng.Int64())
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

type reader struct {
	rng *rand.Rand
}

// Reader returns an io.Reader producing bytes from rng, for APIs that take an
// entropy source.
func Reader(rng *rand.Rand) io.Reader {
	return reader{rng: rng}
}

func (r reader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.rng.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}
