package adaptive

import (
	"math"
	"testing"
)

func TestAccumulate(t *testing.T) {
	var stats SessionStats

	attempts := []Attempt{
		{BasePoints: 100, IsCorrect: true, ElapsedMs: 10_000},  // 120 分, excellent
		{BasePoints: 100, IsCorrect: false, ElapsedMs: 40_000}, // 0 分
		{BasePoints: 50, IsCorrect: true, ElapsedMs: 70_000},   // 50 分, average
		{BasePoints: 50, IsCorrect: true, Skipped: true, ElapsedMs: 4_000},
	}

	for _, a := range attempts {
		result, err := ScoreAttempt(a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stats = Accumulate(stats, a, result)
	}

	if stats.TotalQuestions != 4 {
		t.Errorf("expected 4 questions, got %d", stats.TotalQuestions)
	}
	if stats.CorrectAnswers != 2 {
		t.Errorf("expected 2 correct, got %d", stats.CorrectAnswers)
	}
	if stats.TotalPoints != 170 {
		t.Errorf("expected 170 points, got %d", stats.TotalPoints)
	}

	expectedAvg := float64(10_000+40_000+70_000+4_000) / 4
	if math.Abs(stats.AverageTimeMs-expectedAvg) > 0.001 {
		t.Errorf("expected average %.1fms, got %.1fms", expectedAvg, stats.AverageTimeMs)
	}
	if stats.Accuracy() != 50 {
		t.Errorf("expected 50%% accuracy, got %.1f", stats.Accuracy())
	}
}

func TestAccuracyEmptySession(t *testing.T) {
	var stats SessionStats
	if stats.Accuracy() != 0 {
		t.Errorf("empty session must report 0 accuracy, got %.1f", stats.Accuracy())
	}
}

// 逐次折叠后的正确率必须与对整个作答列表重新统计的结果一致。
func TestAccumulateMatchesRecomputedAccuracy(t *testing.T) {
	attempts := []Attempt{
		{BasePoints: 10, IsCorrect: true, ElapsedMs: 5_000},
		{BasePoints: 20, IsCorrect: true, ElapsedMs: 35_000},
		{BasePoints: 30, IsCorrect: false, ElapsedMs: 61_000},
		{BasePoints: 10, IsCorrect: true, Skipped: true, ElapsedMs: 500},
		{BasePoints: 40, IsCorrect: true, ElapsedMs: 29_999},
		{BasePoints: 15, IsCorrect: false, ElapsedMs: 90_000},
		{BasePoints: 25, IsCorrect: true, ElapsedMs: 12_345},
	}

	var stats SessionStats
	for _, a := range attempts {
		result, err := ScoreAttempt(a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stats = Accumulate(stats, a, result)
	}

	correct := 0
	var totalMs int64
	for _, a := range attempts {
		if a.Answered() {
			correct++
		}
		totalMs += a.ElapsedMs
	}
	recomputed := float64(correct) / float64(len(attempts)) * 100

	if math.Abs(stats.Accuracy()-recomputed) > 1e-9 {
		t.Errorf("rolling accuracy %.6f differs from recomputed %.6f", stats.Accuracy(), recomputed)
	}
	if math.Abs(stats.AverageTimeMs-float64(totalMs)/float64(len(attempts))) > 1e-6 {
		t.Errorf("rolling average %.6f differs from simple mean", stats.AverageTimeMs)
	}
}
