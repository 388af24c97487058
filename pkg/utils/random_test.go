package utils

import (
	"math/rand"
	"testing"
)

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if len(a) != 16 {
		t.Errorf("Expected 16 hex chars, got %d (%s)", len(a), a)
	}
	if a == b {
		t.Error("Two generated IDs should not collide")
	}
}

func TestWeightedIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	weights := []int{1000, 500, 250, 100, 25, 5}

	counts := make([]int, len(weights))
	const draws = 100000
	for i := 0; i < draws; i++ {
		counts[WeightedIndex(rng, weights)]++
	}

	// Common должен выпадать примерно в половине случаев (53%),
	// Mythic - почти никогда (0.27%). Допуск широкий, тест не про RNG.
	if counts[0] < draws/3 {
		t.Errorf("Heaviest weight drawn only %d times of %d", counts[0], draws)
	}
	if counts[5] > draws/50 {
		t.Errorf("Rarest weight drawn too often: %d of %d", counts[5], draws)
	}
}

func TestWeightedIndexSkipsZeroWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	weights := []int{0, 10, 0}

	for i := 0; i < 1000; i++ {
		if got := WeightedIndex(rng, weights); got != 1 {
			t.Fatalf("Zero weight drawn: index %d", got)
		}
	}
}
