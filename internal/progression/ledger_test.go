package progression

import (
	"errors"
	"testing"
)

func TestCalculateLevel(t *testing.T) {
	testCases := []struct {
		experience int
		expected   int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2500, 3},
		{10_000, 11},
	}

	for _, tc := range testCases {
		if got := CalculateLevel(tc.experience); got != tc.expected {
			t.Errorf("CalculateLevel(%d) = %d, expected %d", tc.experience, got, tc.expected)
		}
	}

	// 等级随经验单调不减
	prev := 0
	for xp := 0; xp <= 5000; xp += 50 {
		level := CalculateLevel(xp)
		if level < prev {
			t.Fatalf("level decreased from %d to %d at xp=%d", prev, level, xp)
		}
		prev = level
	}
}

func TestExperienceForNextLevel(t *testing.T) {
	if got := ExperienceForNextLevel(1); got != 1000 {
		t.Errorf("level 1 threshold = %d, expected 1000", got)
	}
	if got := ExperienceForNextLevel(7); got != 7000 {
		t.Errorf("level 7 threshold = %d, expected 7000", got)
	}
}

func TestAddPoints(t *testing.T) {
	state := State{Experience: 950, TotalPoints: 950, Level: 1}

	next, event, err := AddPoints(state, 100, "Quiz completed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Experience != 1050 || next.TotalPoints != 1050 {
		t.Errorf("expected experience/points 1050, got %d/%d", next.Experience, next.TotalPoints)
	}
	if next.Level != 2 {
		t.Errorf("expected level 2, got %d", next.Level)
	}
	if event == nil {
		t.Fatal("expected a level-up event")
	}
	if event.OldLevel != 1 || event.NewLevel != 2 || event.PointsGained != 100 {
		t.Errorf("unexpected event %+v", event)
	}
	if event.Reason != "Quiz completed" {
		t.Errorf("unexpected reason %q", event.Reason)
	}

	// 原状态不被修改
	if state.Experience != 950 || state.Level != 1 {
		t.Errorf("input state mutated: %+v", state)
	}
}

func TestAddPointsNoLevelUp(t *testing.T) {
	state := State{Experience: 100, TotalPoints: 100, Level: 1}

	next, event, err := AddPoints(state, 50, "Lesson completed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event != nil {
		t.Errorf("unexpected level-up event: %+v", event)
	}
	if next.Experience != 150 || next.Level != 1 {
		t.Errorf("unexpected state %+v", next)
	}
}

func TestAddPointsRejectsNegativeAmount(t *testing.T) {
	state := State{Experience: 500, TotalPoints: 500, Level: 1}

	next, event, err := AddPoints(state, -10, "bad")
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if event != nil {
		t.Error("no event expected on rejection")
	}
	if next != state {
		t.Errorf("state must be unchanged on rejection, got %+v", next)
	}
}

// 重新同步冗余等级字段：每次变更后 Level == Experience/1000 + 1 恒成立
func TestAddPointsKeepsLevelInSync(t *testing.T) {
	state := State{}
	amounts := []int{25, 50, 100, 80, 50, 500, 30, 1000, 5, 260}

	for _, amount := range amounts {
		var err error
		state, _, err = AddPoints(state, amount, "award")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Level != CalculateLevel(state.Experience) {
			t.Fatalf("level %d out of sync with experience %d", state.Level, state.Experience)
		}
	}
}

func TestQuizPoints(t *testing.T) {
	testCases := []struct {
		name            string
		score, total    int
		expectedPoints  int
		expectedPerfect bool
	}{
		{"perfect five of five", 5, 5, 80, true},
		{"three of five", 3, 5, 60, false},
		{"zero of five", 0, 5, 30, false},
		{"bonus floors", 2, 3, 63, false}, // 30 + floor(2/3*50)
		{"single question perfect", 1, 1, 80, true},
		{"empty quiz", 0, 0, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			points, perfect := QuizPoints(tc.score, tc.total)
			if points != tc.expectedPoints {
				t.Errorf("expected %d points, got %d", tc.expectedPoints, points)
			}
			if perfect != tc.expectedPerfect {
				t.Errorf("expected perfect=%v, got %v", tc.expectedPerfect, perfect)
			}
		})
	}
}

func TestCompleteLesson(t *testing.T) {
	state := State{Experience: 980, TotalPoints: 980, Level: 1}

	next, event, err := CompleteLesson(state, "Closures and Prototypes", "hard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Experience != 1080 {
		t.Errorf("expected experience 1080, got %d", next.Experience)
	}
	if event == nil {
		t.Fatal("expected a level-up event")
	}
	if event.Reason != "Completed lesson: Closures and Prototypes" {
		t.Errorf("unexpected reason %q", event.Reason)
	}
}

func TestCompleteQuizPerfectAwardsTwice(t *testing.T) {
	// 满分测验两笔加分各自判级：80 分跨过一级，50 分奖励再跨一级
	state := State{Experience: 950, TotalPoints: 950, Level: 1}

	next, events, earned, err := CompleteQuiz(state, 5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if earned != 130 {
		t.Errorf("expected 130 earned, got %d", earned)
	}
	if next.Experience != 1080 {
		t.Errorf("expected experience 1080, got %d", next.Experience)
	}
	if len(events) != 1 {
		t.Fatalf("expected exactly one level-up event, got %d", len(events))
	}
	if events[0].PointsGained != 80 {
		t.Errorf("level-up should come from the fixed award, got %+v", events[0])
	}
}

func TestCompleteQuizImperfect(t *testing.T) {
	state := State{}

	next, events, earned, err := CompleteQuiz(state, 3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if earned != 60 || next.Experience != 60 {
		t.Errorf("expected 60 earned, got earned=%d experience=%d", earned, next.Experience)
	}
	if len(events) != 0 {
		t.Errorf("no level-up expected, got %+v", events)
	}
}

func TestLessonPoints(t *testing.T) {
	testCases := []struct {
		difficulty string
		expected   int
	}{
		{"easy", 25},
		{"medium", 50},
		{"hard", 100},
		{"", 50},
		{"expert", 50}, // 未识别按 medium
	}

	for _, tc := range testCases {
		if got := LessonPoints(tc.difficulty); got != tc.expected {
			t.Errorf("LessonPoints(%q) = %d, expected %d", tc.difficulty, got, tc.expected)
		}
	}
}
