package aggregate_test

import (
	"math/rand"
	"testing"

	"sales-insights-service/internal/charts/core/aggregate"
)

func TestNiceCeil_Values(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{1.2, 2},
		{2, 2},
		{3, 5},
		{5, 5},
		{7, 10},
		{10, 10},
		{11, 20},
		{42, 50},
		{99, 100},
		{100, 100},
		{101, 200},
		{4999, 5000},
		{0.3, 0.5},
	}

	for _, tc := range cases {
		if got := aggregate.NiceCeil(tc.in); got != tc.want {
			t.Fatalf("NiceCeil(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNiceCeil_Monotone(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		v := rng.Float64() * 1e6
		got := aggregate.NiceCeil(v)
		if got < v {
			t.Fatalf("NiceCeil(%v) = %v below input", v, got)
		}

		w := v + rng.Float64()*1e4
		if aggregate.NiceCeil(w) < got {
			t.Fatalf("NiceCeil not non-decreasing: f(%v)=%v > f(%v)=%v",
				v, got, w, aggregate.NiceCeil(w))
		}
	}
}
