package adaptive

// Accumulate 将一次作答的评分结果折叠进会话统计，纯函数。
// 每次作答必须且只能调用一次，按到达顺序调用；
// 平均用时采用滚动均值公式，数学上与整体均值一致。
func Accumulate(stats SessionStats, a Attempt, result ScoringResult) SessionStats {
	next := stats
	next.TotalQuestions = stats.TotalQuestions + 1
	if a.Answered() {
		next.CorrectAnswers = stats.CorrectAnswers + 1
	}
	next.TotalPoints = stats.TotalPoints + result.EarnedPoints
	next.AverageTimeMs = (stats.AverageTimeMs*float64(stats.TotalQuestions) + float64(a.ElapsedMs)) /
		float64(next.TotalQuestions)
	return next
}
