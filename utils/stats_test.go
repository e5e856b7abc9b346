package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	stats := NewStats()

	stats.Update(1, 100, time.Second)
	if stats.TotalGenerations != 1 {
		t.Errorf("TotalGenerations = %d, want 1", stats.TotalGenerations)
	}
	if stats.GenerationsPerSecond != 1.0 {
		t.Errorf("GenerationsPerSecond = %v, want 1.0", stats.GenerationsPerSecond)
	}
	if stats.AveragePopulation != 100 {
		t.Errorf("first AveragePopulation = %v, want 100", stats.AveragePopulation)
	}

	// Moving average blends 90% old with 10% new.
	stats.Update(2, 50, time.Second)
	if stats.AveragePopulation != 95 {
		t.Errorf("AveragePopulation = %v, want 95", stats.AveragePopulation)
	}
}

func TestStatsUpdateZeroDuration(t *testing.T) {
	stats := NewStats()
	stats.Update(1, 10, 0)

	if stats.GenerationsPerSecond != 0 {
		t.Errorf("GenerationsPerSecond = %v, want 0 for zero duration", stats.GenerationsPerSecond)
	}
}
