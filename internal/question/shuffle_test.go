package question

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

// TestShuffleIsPermutation verifies shuffling keeps the same multiset.
func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	inputs := [][]string{
		nil,
		{"only"},
		{"a", "b"},
		{"a", "b", "c", "d", "e"},
		{"dup", "dup", "x", "y"},
	}
	for _, choices := range inputs {
		for trial := 0; trial < 20; trial++ {
			shuffled := Shuffle(choices, rng)
			if len(shuffled) != len(choices) {
				t.Fatalf("length changed: %v -> %v", choices, shuffled)
			}
			want := slices.Clone(choices)
			got := slices.Clone(shuffled)
			slices.Sort(want)
			slices.Sort(got)
			if !slices.Equal(want, got) {
				t.Fatalf("not a permutation: %v -> %v", choices, shuffled)
			}
		}
	}
}

// TestShuffleLeavesInputUntouched verifies the original order survives.
func TestShuffleLeavesInputUntouched(t *testing.T) {
	choices := []string{"a", "b", "c", "d"}
	original := slices.Clone(choices)
	for trial := 0; trial < 20; trial++ {
		Shuffle(choices, nil)
	}
	if !slices.Equal(choices, original) {
		t.Fatalf("input mutated: %v", choices)
	}
}

// TestShuffleDistribution verifies every ordering of three choices appears
// with roughly equal frequency.
func TestShuffleDistribution(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 99))
	choices := []string{"a", "b", "c"}
	const trials = 60000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		counts[strings.Join(Shuffle(choices, rng), "")]++
	}
	if len(counts) != 6 {
		t.Fatalf("expected 6 orderings, got %d: %v", len(counts), counts)
	}
	expected := trials / 6
	for ordering, count := range counts {
		if count < expected*9/10 || count > expected*11/10 {
			t.Fatalf("ordering %s appeared %d times, expected about %d", ordering, count, expected)
		}
	}
}

// TestShuffleVariesAcrossCalls verifies repeated calls are not all identical.
func TestShuffleVariesAcrossCalls(t *testing.T) {
	choices := []string{"a", "b", "c", "d", "e", "f"}
	first := strings.Join(Shuffle(choices, nil), ",")
	for trial := 0; trial < 100; trial++ {
		if strings.Join(Shuffle(choices, nil), ",") != first {
			return
		}
	}
	t.Fatalf("100 shuffles all produced %s", first)
}

// TestRandomizerSeedIsReproducible verifies equal seeds give equal orderings.
func TestRandomizerSeedIsReproducible(t *testing.T) {
	q, err := New("q", "Pick", []string{"a", "b", "c", "d", "e"}, TextMarker("a"))
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	left := NewRandomizer(1234)
	right := NewRandomizer(1234)
	for trial := 0; trial < 10; trial++ {
		l := left.Shuffle(q)
		r := right.Shuffle(q)
		if !slices.Equal(l.Choices, r.Choices) {
			t.Fatalf("seeded shuffles diverged: %v vs %v", l.Choices, r.Choices)
		}
		if !slices.Equal(l.Question.Choices, q.Choices) {
			t.Fatalf("underlying choices changed: %v", l.Question.Choices)
		}
	}
	if left.Seed() != 1234 {
		t.Fatalf("expected seed 1234, got %d", left.Seed())
	}
	if NewRandomizer(0).Seed() == 0 {
		t.Fatalf("expected a generated seed")
	}
}
