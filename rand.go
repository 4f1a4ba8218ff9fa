package orderedset

import (
	"math/bits"
	"time"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// levelSampler draws node heights from a geometric distribution with
// success probability P. Each set owns one sampler; its state moves with
// the set on Take and survives Clear.
type levelSampler struct {
	seed uint64
}

func newSampler() *levelSampler {
	return newSamplerWithSeed(newRandomSeed())
}

func newSamplerWithSeed(seed uint64) *levelSampler {
	if seed == 0 {
		seed = defaultSeed
	}
	return &levelSampler{seed: seed}
}

// next64 is an xorshift64* step. The state is never zero.
func (s *levelSampler) next64() uint64 {
	x := s.seed
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	s.seed = x
	return x * 2685821657736338717
}

// randomHeight returns a height in [0, MaxLevel]. Each level costs two
// consecutive zero bits, so promotion past each level happens with
// probability 1/4, matching P.
func (s *levelSampler) randomHeight() int {
	height := bits.TrailingZeros64(s.next64()) / 2
	if height > MaxLevel {
		return MaxLevel
	}
	return height
}

// reseed gives the sampler a fresh clock-derived state. Used for the
// source set after a Take, which hands its previous state to the receiver.
func (s *levelSampler) reseed() {
	s.seed = newRandomSeed()
}
