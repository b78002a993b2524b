package board

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// NewRNG returns a generator for Random. A zero seed means the generator is
// seeded from system entropy; any other seed always yields the same boards.
func NewRNG(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.BigEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// Random makes an n×n board of uniformly chosen letters A-Z.
func Random(n int, rng *frand.RNG) (*Board, error) {
	return RandomFromDistribution(n, rng, UniformDistribution())
}
