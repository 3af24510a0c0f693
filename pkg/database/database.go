package database

import (
	"fmt"
	"log"

	"learnplay_backend/internal/config"
	"learnplay_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式下默认跳过迁移，由 --migrate / --migrate-only 显式触发
	if cfg.Server.Mode == "release" && !cfg.ForceMigrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Checkin{},
		&model.PointEvent{},
		&model.SubjectProgress{},
		&model.Badge{},
		&model.Lesson{},
		&model.LessonCompletion{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizResult{},
		&model.PracticeSession{},
		&model.PracticeAttempt{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedLessons(db)
	seedQuizzes(db)

	return db, nil
}

// 默认课程（前端教程目录的起始内容）
func seedLessons(db *gorm.DB) {
	var count int64
	db.Model(&model.Lesson{}).Count(&count)
	if count > 0 {
		return
	}

	defaultLessons := []model.Lesson{
		{Subject: "javascript", Title: "Variables and Types", Difficulty: "easy", Order: 1},
		{Subject: "javascript", Title: "Functions and Scope", Difficulty: "medium", Order: 2},
		{Subject: "javascript", Title: "Closures and Prototypes", Difficulty: "hard", Order: 3},
		{Subject: "python", Title: "Getting Started with Python", Difficulty: "easy", Order: 1},
		{Subject: "python", Title: "Lists and Dictionaries", Difficulty: "medium", Order: 2},
		{Subject: "math", Title: "Fractions Refresher", Difficulty: "easy", Order: 1},
	}
	for _, l := range defaultLessons {
		db.Create(&l)
	}
}

// 默认诊断测验（每科一份，表为空时插入）
func seedQuizzes(db *gorm.DB) {
	var count int64
	db.Model(&model.Quiz{}).Count(&count)
	if count > 0 {
		return
	}

	quiz := model.Quiz{
		Subject: "javascript",
		Title:   "JavaScript Diagnostic",
		Questions: []model.QuizQuestion{
			{
				Text:     "Which keyword declares a block-scoped variable?",
				Options:  []string{"var", "let", "function", "static"},
				Answer:   1,
				Points:   10,
				Position: 1,
			},
			{
				Text:     "What does `typeof null` evaluate to?",
				Options:  []string{"\"null\"", "\"undefined\"", "\"object\"", "\"number\""},
				Answer:   2,
				Points:   20,
				Position: 2,
			},
			{
				Text:     "Which method adds an element to the end of an array?",
				Options:  []string{"push", "pop", "shift", "concat"},
				Answer:   0,
				Points:   10,
				Position: 3,
			},
		},
	}
	db.Create(&quiz)
}
