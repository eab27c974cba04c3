package daily

import "testing"

func TestSeed(t *testing.T) {
	tests := []struct {
		date string
		want int64
	}{
		{"1970-01-01", 0},
		{"1970-01-02", 1},
		{"2026-01-25", 20478},
		{"not-a-date", 0},
	}
	for _, tt := range tests {
		if got := Seed(tt.date); got != tt.want {
			t.Errorf("Seed(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestSeedStableWithinDay(t *testing.T) {
	if Seed("2026-03-10") != Seed("2026-03-10") {
		t.Fatal("same date must yield the same seed")
	}
	if Seed("2026-03-10") == Seed("2026-03-11") {
		t.Fatal("consecutive dates must yield different seeds")
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		seed     int64
		slot     int
		poolSize int
		want     int
	}{
		{0, 0, 10, 0},
		{20478, 0, 10, 8},
		{20478, 1, 10, 9},
		{20478, 2, 10, 0}, // wraps around the pool
		{9, 0, 10, 9},
		{0, 0, 0, 0}, // empty pool guarded
		{-5, 0, 10, 5},
	}
	for _, tt := range tests {
		if got := Index(tt.seed, tt.slot, tt.poolSize); got != tt.want {
			t.Errorf("Index(%d, %d, %d) = %d, want %d",
				tt.seed, tt.slot, tt.poolSize, got, tt.want)
		}
	}
}

func TestIndexInRange(t *testing.T) {
	for slot := 0; slot < 8; slot++ {
		for size := 1; size <= 23; size++ {
			got := Index(20478, slot, size)
			if got < 0 || got >= size {
				t.Fatalf("Index(20478, %d, %d) = %d out of range", slot, size, got)
			}
		}
	}
}
