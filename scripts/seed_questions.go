// Seeds the default self-assessment question bank.
//
// Run once against a fresh database, or after wiping the question table.
// Questions already present are left untouched.
//
// Usage: go run scripts/seed_questions.go

package main

import (
	"log"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/config"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/repository"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/database"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	repo := repository.NewQuestionRepository(db)

	existing, err := repo.ListAll()
	if err != nil {
		log.Fatalf("Failed to read question bank: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Question bank already has %d questions, nothing to do", len(existing))
		return
	}

	agree := []model.QuestionOption{
		{Value: 0, Label: "Not at all"},
		{Value: 1, Label: "Several days"},
		{Value: 2, Label: "More than half the days"},
		{Value: 3, Label: "Nearly every day"},
	}

	questions := []model.AssessmentQuestion{
		{
			Text:      "How would you rate your overall mood over the last two weeks?",
			Type:      model.QuestionScale,
			MinValue:  0,
			MaxValue:  10,
			MinLabel:  "Very low",
			MaxLabel:  "Very good",
			IsInitial: true,
			Weight:    1,
			ConditionMapping: map[string]float64{
				"depression": 0.5,
				"anxiety":    0.3,
			},
			Active: true,
		},
		{
			Text:    "How often have you felt nervous, anxious or on edge?",
			Type:    model.QuestionRadio,
			Options: agree,
			Weight:  1.5,
			ConditionMapping: map[string]float64{
				"anxiety": 1,
			},
			Active: true,
		},
		{
			Text:    "How often have you had little interest or pleasure in doing things?",
			Type:    model.QuestionRadio,
			Options: agree,
			Weight:  1.5,
			ConditionMapping: map[string]float64{
				"depression": 1,
			},
			Active: true,
		},
		{
			Text:    "How often have you had trouble falling or staying asleep?",
			Type:    model.QuestionRadio,
			Options: agree,
			Weight:  1,
			ConditionMapping: map[string]float64{
				"insomnia":   1,
				"stress":     0.4,
				"depression": 0.3,
			},
			Active: true,
		},
		{
			Text:        "Which of the following have you experienced recently?",
			Description: "Select all that apply.",
			Type:        model.QuestionCheckbox,
			Options: []model.QuestionOption{
				{Value: 1, Label: "Racing thoughts"},
				{Value: 2, Label: "Flashbacks to a distressing event"},
				{Value: 3, Label: "Compulsive checking or counting"},
				{Value: 4, Label: "Feeling detached from your surroundings"},
			},
			Weight: 1,
			ConditionMapping: map[string]float64{
				"ptsd": 0.6,
				"ocd":  0.6,
			},
			Active: true,
		},
		{
			Text:     "How much pressure do you feel from work or studies?",
			Type:     model.QuestionScale,
			MinValue: 0,
			MaxValue: 10,
			MinLabel: "None",
			MaxLabel: "Overwhelming",
			AgeMin:   18,
			Weight:   1,
			ConditionMapping: map[string]float64{
				"stress":  1,
				"anxiety": 0.4,
			},
			Active: true,
		},
		{
			Text:    "Is there anything else you would like us to know?",
			Type:    model.QuestionText,
			IsFinal: true,
			Weight:  1,
			Active:  true,
		},
	}

	for i := range questions {
		if err := repo.Create(&questions[i]); err != nil {
			log.Fatalf("Failed to seed question %d: %v", i+1, err)
		}
	}
	log.Printf("Seeded %d questions", len(questions))
}
