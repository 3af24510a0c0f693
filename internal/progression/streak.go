package progression

import "fmt"

const (
	streakBonusPerDay = 5
	streakBonusCap    = 50
)

// StreakBonus 连续签到奖励：每天 5 分，封顶 50 分
func StreakBonus(streak int) int {
	bonus := streak * streakBonusPerDay
	if bonus > streakBonusCap {
		return streakBonusCap
	}
	return bonus
}

// UpdateStreak 按日历日推进连续活跃天数。
// 同一天重复调用不重复累计（按日期比较，不比较时间戳）；
// 昨天活跃过则 streak+1，否则重置为 1；
// streak > 1 时经 AddPoints 发放封顶奖励。
// today 早于上次活跃日期返回 ErrInvalidDate。
func UpdateStreak(state State, today Date) (State, int, *LevelUpEvent, error) {
	if !state.LastActiveDate.IsZero() {
		last := DateOf(state.LastActiveDate)
		if today.Equal(last) {
			return state, state.CurrentStreak, nil, nil
		}
		if today.Before(last) {
			return state, state.CurrentStreak, nil, ErrInvalidDate
		}
		if today.Equal(last.Next()) {
			state.CurrentStreak++
		} else {
			state.CurrentStreak = 1
		}
	} else {
		state.CurrentStreak = 1
	}

	state.LastActiveDate = today.Time()

	var event *LevelUpEvent
	if state.CurrentStreak > 1 {
		bonus := StreakBonus(state.CurrentStreak)
		reason := fmt.Sprintf("%d day streak!", state.CurrentStreak)
		// 奖励数额非负，AddPoints 不会失败
		state, event, _ = AddPoints(state, bonus, reason)
	}

	return state, state.CurrentStreak, event, nil
}
