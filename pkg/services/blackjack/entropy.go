package blackjack

import "math/rand/v2"

// MaxShuffleCount bounds the random overhand and Mongean counts drawn each round
const MaxShuffleCount = 6

// Entropy supplies the random shuffle counts for each round
type Entropy interface {
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// NewSeededEntropy returns a PCG source; the same seed replays the same games
func NewSeededEntropy(seed uint64) Entropy {
	return rand.New(rand.NewPCG(seed, seed))
}

// EntropyFunc adapts a function to the Entropy interface
type EntropyFunc func(n int) int

// IntN calls f(n)
func (f EntropyFunc) IntN(n int) int {
	return f(n)
}

// ZeroEntropy never shuffles. Useful for replaying a known deck order.
var ZeroEntropy Entropy = EntropyFunc(func(int) int { return 0 })
