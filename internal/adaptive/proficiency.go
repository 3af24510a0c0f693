package adaptive

const (
	promoteAccuracy = 85.0
	promoteStreak   = 3
	demoteAccuracy  = 50.0
)

// NextLevel 根据会话正确率与连对次数决定层级迁移，每次最多移动一级。
// 正确率 > 85 且连对 >= 3 时升一级（advanced 封顶）；
// 否则正确率 < 50 时降一级（basic 兜底）；其余保持不变。
// 两个阈值区间不相交，降级只在升级条件不成立时评估。
func NextLevel(level ProficiencyLevel, accuracyPercent float64, consecutiveCorrect int) ProficiencyLevel {
	if accuracyPercent > promoteAccuracy && consecutiveCorrect >= promoteStreak {
		return promote(level)
	}
	if accuracyPercent < demoteAccuracy {
		return demote(level)
	}
	return level
}

func promote(level ProficiencyLevel) ProficiencyLevel {
	switch level {
	case LevelBasic:
		return LevelIntermediate
	case LevelIntermediate:
		return LevelAdvanced
	}
	return level
}

func demote(level ProficiencyLevel) ProficiencyLevel {
	switch level {
	case LevelAdvanced:
		return LevelIntermediate
	case LevelIntermediate:
		return LevelBasic
	}
	return level
}
