package service

import (
	"reflect"
	"testing"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
)

func TestValidQuestionType(t *testing.T) {
	valid := []model.QuestionType{
		model.QuestionText, model.QuestionNumber, model.QuestionSelect,
		model.QuestionRadio, model.QuestionCheckbox, model.QuestionScale,
	}
	for _, qt := range valid {
		if !validQuestionType(qt) {
			t.Fatalf("%q should be valid", qt)
		}
	}
	for _, qt := range []model.QuestionType{"", "slider", "TEXT"} {
		if validQuestionType(qt) {
			t.Fatalf("%q should be invalid", qt)
		}
	}
}

func TestPruneMapping(t *testing.T) {
	pruned := pruneMapping(map[string]float64{
		"anxiety":    1,
		"stress":     0,
		"depression": -0.5,
		"insomnia":   0.25,
	})
	if len(pruned) != 2 {
		t.Fatalf("expected 2 surviving conditions, got %v", pruned)
	}
	if pruned["anxiety"] != 1 || pruned["insomnia"] != 0.25 {
		t.Fatalf("unexpected pruned mapping: %v", pruned)
	}
}

func TestFinalizeSessionCouplesResultAndStatus(t *testing.T) {
	bank := map[uint]*model.AssessmentQuestion{
		1: {Type: model.QuestionRadio, Weight: 1, ConditionMapping: map[string]float64{"anxiety": 1}},
	}
	bank[1].ID = 1

	session := &model.AssessmentSession{
		Status:    model.SessionInProgress,
		Responses: []model.AssessmentResponse{{QuestionID: 1, Score: 2}},
	}
	if session.Result != nil {
		t.Fatal("in-progress session must not carry a result")
	}

	finalizeSession(session, bank)
	if session.Status != model.SessionCompleted {
		t.Fatalf("status = %q, want completed", session.Status)
	}
	if session.Result == nil {
		t.Fatal("completed session must carry a result")
	}
}

func TestFinalizeSessionNeutralResultWhenNothingScorable(t *testing.T) {
	session := &model.AssessmentSession{Status: model.SessionInProgress}

	finalizeSession(session, map[uint]*model.AssessmentQuestion{})
	if session.Status != model.SessionCompleted {
		t.Fatalf("status = %q, want completed", session.Status)
	}
	if session.Result == nil || session.Result.Condition != "none" {
		t.Fatalf("expected neutral result, got %+v", session.Result)
	}
	if session.Result.SeverityTier != SeverityMild {
		t.Fatalf("neutral result tier = %q, want mild", session.Result.SeverityTier)
	}
}

func TestFinalizeSessionIdempotent(t *testing.T) {
	bank := map[uint]*model.AssessmentQuestion{
		1: {Type: model.QuestionRadio, Weight: 1, ConditionMapping: map[string]float64{"anxiety": 1}},
	}
	bank[1].ID = 1

	session := &model.AssessmentSession{
		Status:    model.SessionInProgress,
		Responses: []model.AssessmentResponse{{QuestionID: 1, Score: 2}},
	}

	finalizeSession(session, bank)
	first := session.Result

	finalizeSession(session, bank)
	if session.Status != model.SessionCompleted {
		t.Fatalf("status = %q after replay, want completed", session.Status)
	}
	if !reflect.DeepEqual(first, session.Result) {
		t.Fatalf("replay changed the result:\n%+v\n%+v", first, session.Result)
	}
}

func TestHasAnswered(t *testing.T) {
	session := &model.AssessmentSession{
		Responses: []model.AssessmentResponse{{QuestionID: 3}, {QuestionID: 7}},
	}
	if !session.HasAnswered(3) || !session.HasAnswered(7) {
		t.Fatal("answered questions not detected")
	}
	if session.HasAnswered(5) {
		t.Fatal("unanswered question reported as answered")
	}
}
