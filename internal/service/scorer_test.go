package service

import (
	"reflect"
	"testing"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
)

func fp(v float64) *float64 { return &v }

func TestSeverityTier(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{0, SeverityMild},
		{2, SeverityMild},
		{3, SeverityModerate},
		{5, SeverityModerate},
		{6, SeveritySevere},
		{10, SeveritySevere},
	}
	for _, c := range cases {
		if got := SeverityTier(c.level); got != c.want {
			t.Fatalf("SeverityTier(%d)=%q, want %q", c.level, got, c.want)
		}
	}
}

func TestResponseScore(t *testing.T) {
	scale := &model.AssessmentQuestion{Type: model.QuestionScale, MinValue: 1, MaxValue: 10}
	cases := []struct {
		name string
		q    *model.AssessmentQuestion
		resp *model.AssessmentResponse
		want float64
	}{
		{"radio picks option value", &model.AssessmentQuestion{Type: model.QuestionRadio}, &model.AssessmentResponse{SelectedOption: fp(3)}, 3},
		{"radio without selection", &model.AssessmentQuestion{Type: model.QuestionRadio}, &model.AssessmentResponse{}, 0},
		{"checkbox counts selections", &model.AssessmentQuestion{Type: model.QuestionCheckbox}, &model.AssessmentResponse{SelectedValues: []float64{1, 3, 4}}, 3},
		{"scale offsets from min", scale, &model.AssessmentResponse{SelectedOption: fp(7)}, 6},
		{"scale clamps above max", scale, &model.AssessmentResponse{SelectedOption: fp(42)}, 9},
		{"scale clamps below min", scale, &model.AssessmentResponse{SelectedOption: fp(-5)}, 0},
		{"number passes through", &model.AssessmentQuestion{Type: model.QuestionNumber}, &model.AssessmentResponse{SelectedOption: fp(4)}, 4},
		{"text never scores", &model.AssessmentQuestion{Type: model.QuestionText}, &model.AssessmentResponse{Answer: "hello"}, 0},
	}
	for _, c := range cases {
		if got := ResponseScore(c.q, c.resp); got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestScoreSessionDominantCondition(t *testing.T) {
	bank := map[uint]*model.AssessmentQuestion{
		1: {Type: model.QuestionRadio, Weight: 2, ConditionMapping: map[string]float64{"anxiety": 1, "stress": 0.5}},
		2: {Type: model.QuestionRadio, Weight: 1, ConditionMapping: map[string]float64{"depression": 1}},
	}
	bank[1].ID = 1
	bank[2].ID = 2

	responses := []model.AssessmentResponse{
		{QuestionID: 1, Score: 3},
		{QuestionID: 2, Score: 2},
	}

	result := ScoreSession(bank, responses)
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Condition != "anxiety" {
		t.Fatalf("dominant condition = %q, want anxiety", result.Condition)
	}
	// anxiety: 2 * 1 * 3 = 6
	if result.SeverityLevel != 6 {
		t.Fatalf("severity level = %d, want 6", result.SeverityLevel)
	}
	if result.SeverityTier != SeveritySevere {
		t.Fatalf("severity tier = %q, want severe", result.SeverityTier)
	}
	if result.ConditionScores["stress"] != 3 {
		t.Fatalf("stress total = %v, want 3", result.ConditionScores["stress"])
	}
	if result.ConditionScores["depression"] != 2 {
		t.Fatalf("depression total = %v, want 2", result.ConditionScores["depression"])
	}
}

func TestScoreSessionTieBreaksLexicographically(t *testing.T) {
	bank := map[uint]*model.AssessmentQuestion{
		1: {Type: model.QuestionRadio, Weight: 1, ConditionMapping: map[string]float64{"stress": 1, "anxiety": 1, "depression": 1}},
	}
	bank[1].ID = 1

	responses := []model.AssessmentResponse{{QuestionID: 1, Score: 4}}

	// Run repeatedly; map iteration order must never change the winner.
	for i := 0; i < 50; i++ {
		result := ScoreSession(bank, responses)
		if result == nil || result.Condition != "anxiety" {
			t.Fatalf("run %d: dominant condition = %v, want anxiety", i, result)
		}
	}
}

func TestScoreSessionDeterministic(t *testing.T) {
	bank := map[uint]*model.AssessmentQuestion{
		1: {Type: model.QuestionRadio, Weight: 1, ConditionMapping: map[string]float64{"anxiety": 1}},
		2: {Type: model.QuestionScale, MinValue: 0, MaxValue: 10, Weight: 1, ConditionMapping: map[string]float64{"stress": 0.5}},
	}
	bank[1].ID = 1
	bank[2].ID = 2

	responses := []model.AssessmentResponse{
		{QuestionID: 1, Score: 2},
		{QuestionID: 2, Score: 7},
	}

	first := ScoreSession(bank, responses)
	second := ScoreSession(bank, responses)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs gave different results:\n%+v\n%+v", first, second)
	}
}

func TestScoreSessionSkipsMissingQuestions(t *testing.T) {
	bank := map[uint]*model.AssessmentQuestion{
		1: {Type: model.QuestionRadio, Weight: 1, ConditionMapping: map[string]float64{"anxiety": 1}},
	}
	bank[1].ID = 1

	responses := []model.AssessmentResponse{
		{QuestionID: 1, Score: 2},
		{QuestionID: 99, Score: 100}, // deleted question, must not count
	}

	result := ScoreSession(bank, responses)
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.ConditionScores["anxiety"] != 2 {
		t.Fatalf("anxiety total = %v, want 2", result.ConditionScores["anxiety"])
	}
}

func TestScoreSessionNilWhenNothingScorable(t *testing.T) {
	bank := map[uint]*model.AssessmentQuestion{
		1: {Type: model.QuestionText, Weight: 1},
	}
	bank[1].ID = 1

	if result := ScoreSession(bank, []model.AssessmentResponse{{QuestionID: 1}}); result != nil {
		t.Fatalf("expected nil result, got %+v", result)
	}
	if result := ScoreSession(bank, nil); result != nil {
		t.Fatalf("expected nil result for empty responses, got %+v", result)
	}
}

func TestScoreSessionClampsSeverityLevel(t *testing.T) {
	bank := map[uint]*model.AssessmentQuestion{
		1: {Type: model.QuestionNumber, Weight: 5, ConditionMapping: map[string]float64{"stress": 1}},
	}
	bank[1].ID = 1

	result := ScoreSession(bank, []model.AssessmentResponse{{QuestionID: 1, Score: 100}})
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.SeverityLevel != 10 {
		t.Fatalf("severity level = %d, want clamp at 10", result.SeverityLevel)
	}
	// Raw totals stay unclamped for analytics.
	if result.ConditionScores["stress"] != 500 {
		t.Fatalf("stress total = %v, want 500", result.ConditionScores["stress"])
	}
}
