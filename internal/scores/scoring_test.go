package scores_test

import (
	"math"
	"testing"

	"github.com/CircuitStats/CS-Backend/internal/scores"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestWeightedScore_AggregatedSheet verifies the degenerate single-judge
// case produced by the ingest pipeline: one caption score per caption,
// weighted sum of the (comp+perf)/2 averages.
func TestWeightedScore_AggregatedSheet(t *testing.T) {
	css := []scores.CaptionScore{
		{Caption: "Music", CompScore: 12.5, PerfScore: 11.0, Weight: 30},
		{Caption: "Visual", CompScore: 14.0, PerfScore: 13.0, Weight: 20},
	}

	// Music:  (12.5+11.0)/2 * 0.30 = 3.525
	// Visual: (14.0+13.0)/2 * 0.20 = 2.700
	want := 6.225
	got := scores.WeightedScore(css)
	if !almostEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestWeightedScore_MultipleJudges verifies that each caption's weighted
// values are summed across judges and divided by that caption's judge
// count, with per-row weights applied before the division.
func TestWeightedScore_MultipleJudges(t *testing.T) {
	css := []scores.CaptionScore{
		{Caption: "Music", CompScore: 10, PerfScore: 10, Weight: 30},
		{Caption: "Music", CompScore: 20, PerfScore: 20, Weight: 10},
	}

	// Judge 1: 10 * 0.30 = 3.0, Judge 2: 20 * 0.10 = 2.0 -> (3+2)/2 = 2.5
	want := 2.5
	got := scores.WeightedScore(css)
	if !almostEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Weighting after averaging instead would give a different answer;
	// guard against that reordering.
	wrong := (10.0+20.0)/2*0.30 + 0
	if almostEqual(got, wrong) {
		t.Errorf("weighted-after-average reordering detected: %v", got)
	}
}

func TestWeightedScore_Empty(t *testing.T) {
	if got := scores.WeightedScore(nil); got != 0 {
		t.Errorf("expected 0 for no caption scores, got %v", got)
	}
}

// TestWeightedScore_UnlistedCaptionWeight verifies that captions whose
// season has no weight entry (snapshot weight 0) contribute nothing.
func TestWeightedScore_UnlistedCaptionWeight(t *testing.T) {
	css := []scores.CaptionScore{
		{Caption: "Music", CompScore: 15, PerfScore: 15, Weight: 0},
		{Caption: "Visual", CompScore: 10, PerfScore: 10, Weight: 50},
	}
	if got := scores.WeightedScore(css); !almostEqual(got, 5.0) {
		t.Errorf("expected 5.0, got %v", got)
	}
}
