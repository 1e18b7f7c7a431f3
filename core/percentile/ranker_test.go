package percentile

import (
	"math/rand"
	"testing"
)

func TestRankEmptyInput(t *testing.T) {
	got := Rank(nil, func(f float64) float64 { return f })
	if got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestRankSingleItemIsHundred(t *testing.T) {
	got := Rank([]float64{42}, func(f float64) float64 { return f })
	if len(got) != 1 || got[0] != 100 {
		t.Fatalf("single item must be percentile 100, got %v", got)
	}
}

func TestRankDistinctValues(t *testing.T) {
	values := []float64{10, 30, 20, 40}
	got := Rank(values, func(f float64) float64 { return f })

	want := []float64{0, 200.0 / 3, 100.0 / 3, 100}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("item %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRankMaxIsHundred(t *testing.T) {
	values := []float64{5, 1, 9, 3, 7}
	got := Rank(values, func(f float64) float64 { return f })
	if got[2] != 100 {
		t.Errorf("max value must be percentile 100, got %v", got[2])
	}
}

func TestRankTiesShareMidpoint(t *testing.T) {
	// Ranks 0..3; the two tied 20s occupy ranks 1 and 2, midpoint 1.5.
	values := []float64{10, 20, 20, 30}
	got := Rank(values, func(f float64) float64 { return f })

	if got[1] != got[2] {
		t.Fatalf("tied values must share a percentile: %v vs %v", got[1], got[2])
	}
	want := 1.5 / 3 * 100
	if got[1] != want {
		t.Errorf("tied midpoint percentile: got %v, want %v", got[1], want)
	}
}

func TestRankStableUnderReordering(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5}
	base := Rank(values, func(f float64) float64 { return f })

	byValue := make(map[float64]float64)
	for i, v := range values {
		byValue[v] = base[i]
	}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]float64, len(values))
		copy(shuffled, values)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := Rank(shuffled, func(f float64) float64 { return f })
		for i, v := range shuffled {
			if got[i] != byValue[v] {
				t.Fatalf("trial %d: value %v got %v, want %v", trial, v, got[i], byValue[v])
			}
		}
	}
}

func TestRankBounds(t *testing.T) {
	values := []float64{0, 0, 1, 2, 2, 2, 100, -5}
	got := Rank(values, func(f float64) float64 { return f })
	for i, p := range got {
		if p < 0 || p > 100 {
			t.Errorf("percentile out of [0,100] at %d: %v", i, p)
		}
	}
}
