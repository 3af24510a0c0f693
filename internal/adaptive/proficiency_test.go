package adaptive

import "testing"

func TestNextLevel(t *testing.T) {
	testCases := []struct {
		name               string
		level              ProficiencyLevel
		accuracy           float64
		consecutiveCorrect int
		expected           ProficiencyLevel
	}{
		{"basic promotes", LevelBasic, 90, 3, LevelIntermediate},
		{"intermediate promotes", LevelIntermediate, 86, 5, LevelAdvanced},
		{"advanced stays at top", LevelAdvanced, 90, 5, LevelAdvanced},
		{"accuracy at threshold does not promote", LevelBasic, 85, 3, LevelBasic},
		{"short streak blocks promotion", LevelBasic, 95, 2, LevelBasic},
		{"intermediate demotes", LevelIntermediate, 40, 0, LevelBasic},
		{"advanced demotes one step only", LevelAdvanced, 20, 0, LevelIntermediate},
		{"basic stays at bottom", LevelBasic, 10, 0, LevelBasic},
		{"accuracy at demote threshold holds", LevelIntermediate, 50, 0, LevelIntermediate},
		{"middle band holds", LevelIntermediate, 70, 4, LevelIntermediate},
		{"zero accuracy demotes", LevelIntermediate, 0, 0, LevelBasic},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextLevel(tc.level, tc.accuracy, tc.consecutiveCorrect)
			if got != tc.expected {
				t.Errorf("NextLevel(%s, %.0f, %d) = %s, expected %s",
					tc.level, tc.accuracy, tc.consecutiveCorrect, got, tc.expected)
			}
		})
	}
}

// 升降级每次只移动一级，任意输入下不允许跨级。
func TestNextLevelNeverSkipsTier(t *testing.T) {
	order := map[ProficiencyLevel]int{LevelBasic: 0, LevelIntermediate: 1, LevelAdvanced: 2}

	for _, level := range []ProficiencyLevel{LevelBasic, LevelIntermediate, LevelAdvanced} {
		for _, accuracy := range []float64{0, 49.9, 50, 85, 85.1, 100} {
			for _, streak := range []int{0, 3, 10} {
				next := NextLevel(level, accuracy, streak)
				diff := order[next] - order[level]
				if diff < -1 || diff > 1 {
					t.Errorf("NextLevel(%s, %.1f, %d) skipped a tier: %s", level, accuracy, streak, next)
				}
			}
		}
	}
}
