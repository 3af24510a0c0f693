package adaptive

const (
	// 单题计时档位（毫秒）
	fastAnswerMs   = 30_000
	steadyAnswerMs = 60_000

	// 快速答对奖励 basePoints 的 20%
	timeBonusNumerator   = 2
	timeBonusDenominator = 10
)

// ScoreAttempt 将一次作答转换为得分与评价，纯函数。
// 答错或跳过得 0 分、评价 poor；答对得基础分，
// 30 秒内追加 20% 时间奖励并评为 excellent，60 秒内评为 good，其余为 average。
func ScoreAttempt(a Attempt) (ScoringResult, error) {
	if a.BasePoints <= 0 || a.ElapsedMs < 0 {
		return ScoringResult{}, ErrInvalidAttempt
	}

	if !a.Answered() {
		return ScoringResult{EarnedPoints: 0, Rating: RatingPoor}, nil
	}

	result := ScoringResult{EarnedPoints: a.BasePoints}
	switch {
	case a.ElapsedMs < fastAnswerMs:
		result.EarnedPoints += a.BasePoints * timeBonusNumerator / timeBonusDenominator
		result.Rating = RatingExcellent
	case a.ElapsedMs < steadyAnswerMs:
		result.Rating = RatingGood
	default:
		result.Rating = RatingAverage
	}
	return result, nil
}
