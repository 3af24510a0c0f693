package model

import (
	"reflect"
	"strings"
	"testing"
)

// 这些表靠复合唯一索引保证"只计一次"，并发下第二次插入必须撞键回滚。
// 校验字段标签，防止改模型时把约束弄丢。
func TestPointEventLeveledUp(t *testing.T) {
	if (PointEvent{LevelBefore: 2, LevelAfter: 2}).LeveledUp() {
		t.Error("same level is not a level-up")
	}
	if !(PointEvent{LevelBefore: 2, LevelAfter: 3}).LeveledUp() {
		t.Error("level 2 -> 3 should be a level-up")
	}
}

func TestUniquePairIndexes(t *testing.T) {
	testCases := []struct {
		name   string
		model  interface{}
		index  string
		fields []string
	}{
		{"quiz result once per user+quiz", QuizResult{}, "idx_user_quiz", []string{"UserID", "QuizID"}},
		{"lesson completion once per user+lesson", LessonCompletion{}, "idx_user_lesson", []string{"UserID", "LessonID"}},
		{"checkin once per user+day", Checkin{}, "idx_user_checkin_date", []string{"UserID", "CheckinAt"}},
		{"badge once per user+code", Badge{}, "idx_user_badge", []string{"UserID", "Code"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			typ := reflect.TypeOf(tc.model)
			for _, fieldName := range tc.fields {
				field, ok := typ.FieldByName(fieldName)
				if !ok {
					t.Fatalf("field %s missing on %s", fieldName, typ.Name())
				}
				tag := field.Tag.Get("gorm")
				want := "index:" + tc.index + ",unique"
				if !strings.Contains(tag, want) {
					t.Errorf("%s.%s gorm tag %q lacks %q", typ.Name(), fieldName, tag, want)
				}
			}
		})
	}
}
