package service

import (
	"testing"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
)

func question(id uint, opts func(*model.AssessmentQuestion)) model.AssessmentQuestion {
	q := model.AssessmentQuestion{Type: model.QuestionRadio, Weight: 1, Active: true}
	q.ID = id
	if opts != nil {
		opts(&q)
	}
	return q
}

func TestQuestionEligible(t *testing.T) {
	cases := []struct {
		name string
		q    model.AssessmentQuestion
		demo Demographics
		want bool
	}{
		{"no restrictions match anyone", question(1, nil), Demographics{}, true},
		{"inactive never matches", question(1, func(q *model.AssessmentQuestion) { q.Active = false }), Demographics{Age: 30}, false},
		{"age below minimum", question(1, func(q *model.AssessmentQuestion) { q.AgeMin = 18 }), Demographics{Age: 15}, false},
		{"age at minimum", question(1, func(q *model.AssessmentQuestion) { q.AgeMin = 18 }), Demographics{Age: 18}, true},
		{"age above maximum", question(1, func(q *model.AssessmentQuestion) { q.AgeMax = 60 }), Demographics{Age: 61}, false},
		{"zero age range means everyone", question(1, nil), Demographics{Age: 99}, true},
		{"gender listed", question(1, func(q *model.AssessmentQuestion) { q.ForGender = []string{"female"} }), Demographics{Gender: model.GenderFemale}, true},
		{"gender not listed", question(1, func(q *model.AssessmentQuestion) { q.ForGender = []string{"female"} }), Demographics{Gender: model.GenderMale}, false},
		{"profession listed", question(1, func(q *model.AssessmentQuestion) { q.ForProfessions = []string{"student"} }), Demographics{Profession: "student"}, true},
		{"profession not listed", question(1, func(q *model.AssessmentQuestion) { q.ForProfessions = []string{"student"} }), Demographics{Profession: "nurse"}, false},
	}
	for _, c := range cases {
		if got := QuestionEligible(&c.q, c.demo); got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestNextQuestionsInitialFirst(t *testing.T) {
	bank := []model.AssessmentQuestion{
		question(1, nil),
		question(2, func(q *model.AssessmentQuestion) { q.IsInitial = true }),
		question(3, func(q *model.AssessmentQuestion) { q.IsFinal = true }),
	}
	session := &model.AssessmentSession{}

	batch := NextQuestions(bank, session, Demographics{}, 5)
	if len(batch) != 1 || batch[0].ID != 2 {
		t.Fatalf("expected only the initial question, got %v", ids(batch))
	}
}

func TestNextQuestionsRegularBatchAfterInitial(t *testing.T) {
	bank := []model.AssessmentQuestion{
		question(1, func(q *model.AssessmentQuestion) { q.IsInitial = true }),
	}
	for id := uint(2); id <= 9; id++ {
		bank = append(bank, question(id, nil))
	}
	bank = append(bank, question(10, func(q *model.AssessmentQuestion) { q.IsFinal = true }))

	session := &model.AssessmentSession{
		Responses: []model.AssessmentResponse{{QuestionID: 1}},
	}

	batch := NextQuestions(bank, session, Demographics{}, 5)
	if len(batch) != 5 {
		t.Fatalf("expected a batch of 5, got %d: %v", len(batch), ids(batch))
	}
	for _, q := range batch {
		if q.IsInitial || q.IsFinal {
			t.Fatalf("batch should hold only regular questions, got %v", ids(batch))
		}
	}
}

func TestNextQuestionsFinalLast(t *testing.T) {
	bank := []model.AssessmentQuestion{
		question(1, nil),
		question(2, func(q *model.AssessmentQuestion) { q.IsFinal = true }),
	}
	session := &model.AssessmentSession{
		Responses: []model.AssessmentResponse{{QuestionID: 1}},
	}

	batch := NextQuestions(bank, session, Demographics{}, 5)
	if len(batch) != 1 || !batch[0].IsFinal {
		t.Fatalf("expected the final question, got %v", ids(batch))
	}
}

func TestNextQuestionsStopAfterFinalAnswered(t *testing.T) {
	bank := []model.AssessmentQuestion{
		question(1, nil),
		question(2, func(q *model.AssessmentQuestion) { q.IsFinal = true }),
		question(3, nil), // still unanswered, must not resurface
	}
	session := &model.AssessmentSession{
		Responses: []model.AssessmentResponse{{QuestionID: 2}},
	}

	if batch := NextQuestions(bank, session, Demographics{}, 5); batch != nil {
		t.Fatalf("expected nil after final answered, got %v", ids(batch))
	}
}

func TestNextQuestionsSkipsAnsweredAndIneligible(t *testing.T) {
	bank := []model.AssessmentQuestion{
		question(1, nil),
		question(2, func(q *model.AssessmentQuestion) { q.AgeMin = 65 }),
		question(3, nil),
	}
	session := &model.AssessmentSession{
		Responses: []model.AssessmentResponse{{QuestionID: 1}},
	}

	batch := NextQuestions(bank, session, Demographics{Age: 30}, 5)
	if len(batch) != 1 || batch[0].ID != 3 {
		t.Fatalf("expected only question 3, got %v", ids(batch))
	}
}

func TestNextQuestionsEmptyBank(t *testing.T) {
	if batch := NextQuestions(nil, &model.AssessmentSession{}, Demographics{}, 5); len(batch) != 0 {
		t.Fatalf("expected empty batch, got %v", ids(batch))
	}
}

func ids(qs []model.AssessmentQuestion) []uint {
	out := make([]uint, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}
