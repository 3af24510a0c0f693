package progression

import (
	"errors"
	"testing"
	"time"
)

func day(s string) Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return DateOf(t)
}

func TestUpdateStreakFirstActivity(t *testing.T) {
	state := State{}

	next, streak, event, err := UpdateStreak(state, day("2026-03-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak != 1 {
		t.Errorf("expected streak 1, got %d", streak)
	}
	if event != nil {
		t.Error("first day must not award a bonus")
	}
	if next.Experience != 0 {
		t.Errorf("no points expected, got %d", next.Experience)
	}
	if !DateOf(next.LastActiveDate).Equal(day("2026-03-01")) {
		t.Errorf("last active date not updated: %v", next.LastActiveDate)
	}
}

func TestUpdateStreakSameDayIdempotent(t *testing.T) {
	state := State{}
	today := day("2026-03-01")

	state, _, _, _ = UpdateStreak(state, today)
	next, streak, event, err := UpdateStreak(state, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak != 1 {
		t.Errorf("second call on same day must not increment, got %d", streak)
	}
	if event != nil {
		t.Error("no bonus on repeated call")
	}
	if next != state {
		t.Errorf("state changed on repeated call: %+v", next)
	}
}

func TestUpdateStreakConsecutiveDays(t *testing.T) {
	state := State{}

	days := []string{"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04"}
	var streak int
	for _, d := range days {
		var err error
		state, streak, _, err = UpdateStreak(state, day(d))
		if err != nil {
			t.Fatalf("unexpected error on %s: %v", d, err)
		}
	}

	if streak != 4 {
		t.Errorf("expected streak 4, got %d", streak)
	}
	// 奖励 10 + 15 + 20 分（首日无奖励）
	if state.Experience != 45 {
		t.Errorf("expected 45 bonus points, got %d", state.Experience)
	}
}

func TestUpdateStreakGapResets(t *testing.T) {
	state := State{}

	state, _, _, _ = UpdateStreak(state, day("2026-03-01"))
	state, streak, event, err := UpdateStreak(state, day("2026-03-05"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak != 1 {
		t.Errorf("gap must reset streak to 1, got %d", streak)
	}
	if event != nil {
		t.Error("no bonus after reset")
	}
	if state.Experience != 0 {
		t.Errorf("no points expected after reset, got %d", state.Experience)
	}
}

func TestUpdateStreakBonusCapped(t *testing.T) {
	state := State{CurrentStreak: 14, LastActiveDate: day("2026-03-14").Time()}

	state, streak, _, err := UpdateStreak(state, day("2026-03-15"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak != 15 {
		t.Errorf("expected streak 15, got %d", streak)
	}
	// 15 * 5 = 75,封顶 50
	if state.Experience != 50 {
		t.Errorf("expected capped bonus 50, got %d", state.Experience)
	}
}

func TestUpdateStreakRejectsBackwardsDate(t *testing.T) {
	state := State{CurrentStreak: 3, LastActiveDate: day("2026-03-10").Time()}

	next, streak, event, err := UpdateStreak(state, day("2026-03-08"))
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if streak != 3 || event != nil || next != state {
		t.Errorf("state must be unchanged on rejection: %+v", next)
	}
}

func TestStreakBonus(t *testing.T) {
	testCases := []struct {
		streak, expected int
	}{
		{2, 10},
		{5, 25},
		{10, 50},
		{11, 50},
		{100, 50},
	}

	for _, tc := range testCases {
		if got := StreakBonus(tc.streak); got != tc.expected {
			t.Errorf("StreakBonus(%d) = %d, expected %d", tc.streak, got, tc.expected)
		}
	}
}

func TestStreakBonusCanLevelUp(t *testing.T) {
	state := State{Experience: 990, TotalPoints: 990, Level: 1, CurrentStreak: 1, LastActiveDate: day("2026-03-01").Time()}

	state, _, event, err := UpdateStreak(state, day("2026-03-02"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event == nil {
		t.Fatal("expected a level-up event from the streak bonus")
	}
	if event.NewLevel != 2 || event.PointsGained != 10 {
		t.Errorf("unexpected event %+v", event)
	}
	if event.Reason != "2 day streak!" {
		t.Errorf("unexpected reason %q", event.Reason)
	}
	if state.Level != 2 {
		t.Errorf("expected level 2, got %d", state.Level)
	}
}
