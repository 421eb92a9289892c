package database

import (
	"fmt"
	"log"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/config"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.CounselorProfile{},
		&model.Appointment{},
		&model.Plan{},
		&model.Subscription{},
		&model.Payment{},
		&model.AssessmentQuestion{},
		&model.AssessmentSession{},
		&model.Conversation{},
		&model.ChatMessage{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Default subscription plans so a fresh install is bookable.
	var planCount int64
	db.Model(&model.Plan{}).Count(&planCount)
	if planCount == 0 {
		defaultPlans := []model.Plan{
			{Name: "Basic", Description: "2 sessions per month, chat support", Price: 499, DurationDays: 30, Features: []string{"2 sessions", "chat support"}, Active: true},
			{Name: "Standard", Description: "4 sessions per month, chat and video", Price: 899, DurationDays: 30, Features: []string{"4 sessions", "chat support", "video sessions"}, Active: true},
			{Name: "Premium", Description: "Unlimited sessions, priority matching", Price: 1499, DurationDays: 30, Features: []string{"unlimited sessions", "priority matching", "video sessions"}, Active: true},
		}
		for _, p := range defaultPlans {
			db.Create(&p)
		}
	}

	return db, nil
}
