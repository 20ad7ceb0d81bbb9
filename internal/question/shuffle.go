package question

import "math/rand/v2"

// ShuffledQuestion pairs a question with an independently shuffled copy of
// its choices. The question itself is left untouched.
type ShuffledQuestion struct {
	Question
	Choices []string
}

// Shuffle returns a uniformly random permutation of choices using the
// Fisher-Yates algorithm. The input slice is not modified. A nil rng uses
// the package-level source.
func Shuffle(choices []string, rng *rand.Rand) []string {
	shuffled := make([]string, len(choices))
	copy(shuffled, choices)
	for i := len(shuffled) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Randomizer produces shuffled presentations of questions.
type Randomizer struct {
	rng  *rand.Rand
	seed uint64
}

// NewRandomizer returns a randomizer seeded with seed, or with a random
// seed when seed is zero.
func NewRandomizer(seed uint64) *Randomizer {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Randomizer{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the seed in use so a run can be reproduced.
func (r *Randomizer) Seed() uint64 {
	return r.seed
}

// Shuffle returns q with its display choices shuffled.
func (r *Randomizer) Shuffle(q Question) ShuffledQuestion {
	return ShuffledQuestion{Question: q, Choices: Shuffle(q.Choices, r.rng)}
}
