package adaptive

import (
	"errors"
	"testing"
)

func TestScoreAttempt(t *testing.T) {
	testCases := []struct {
		name           string
		attempt        Attempt
		expectedPoints int
		expectedRating Rating
	}{
		{"incorrect earns nothing", Attempt{BasePoints: 100, IsCorrect: false, ElapsedMs: 5_000}, 0, RatingPoor},
		{"skipped treated as incorrect", Attempt{BasePoints: 100, IsCorrect: true, Skipped: true, ElapsedMs: 5_000}, 0, RatingPoor},
		{"fast correct gets time bonus", Attempt{BasePoints: 100, IsCorrect: true, ElapsedMs: 10_000}, 120, RatingExcellent},
		{"fast bonus floors fractional points", Attempt{BasePoints: 25, IsCorrect: true, ElapsedMs: 1_000}, 30, RatingExcellent},
		{"boundary 30s is not fast", Attempt{BasePoints: 100, IsCorrect: true, ElapsedMs: 30_000}, 100, RatingGood},
		{"steady correct no bonus", Attempt{BasePoints: 100, IsCorrect: true, ElapsedMs: 45_000}, 100, RatingGood},
		{"boundary 60s is average", Attempt{BasePoints: 100, IsCorrect: true, ElapsedMs: 60_000}, 100, RatingAverage},
		{"slow correct no bonus", Attempt{BasePoints: 100, IsCorrect: true, ElapsedMs: 90_000}, 100, RatingAverage},
		{"zero elapsed is valid", Attempt{BasePoints: 10, IsCorrect: true, ElapsedMs: 0}, 12, RatingExcellent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ScoreAttempt(tc.attempt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.EarnedPoints != tc.expectedPoints {
				t.Errorf("expected %d points, got %d", tc.expectedPoints, result.EarnedPoints)
			}
			if result.Rating != tc.expectedRating {
				t.Errorf("expected rating %q, got %q", tc.expectedRating, result.Rating)
			}
		})
	}
}

func TestScoreAttemptRejectsInvalidInput(t *testing.T) {
	invalid := []Attempt{
		{BasePoints: 0, IsCorrect: true, ElapsedMs: 1_000},
		{BasePoints: -10, IsCorrect: true, ElapsedMs: 1_000},
		{BasePoints: 100, IsCorrect: true, ElapsedMs: -1},
	}

	for _, a := range invalid {
		if _, err := ScoreAttempt(a); !errors.Is(err, ErrInvalidAttempt) {
			t.Errorf("attempt %+v: expected ErrInvalidAttempt, got %v", a, err)
		}
	}
}
