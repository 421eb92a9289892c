package service

import (
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
)

// Demographics is the user attribute subset questions target against.
type Demographics struct {
	Age        int
	Gender     model.Gender
	Profession string
}

// QuestionEligible reports whether a question applies to the given user.
// Permissive defaults match everyone: a zero age range, an empty gender list
// and an empty profession list place no restriction.
func QuestionEligible(q *model.AssessmentQuestion, demo Demographics) bool {
	if !q.Active {
		return false
	}

	if q.AgeMin > 0 && demo.Age < q.AgeMin {
		return false
	}
	if q.AgeMax > 0 && demo.Age > q.AgeMax {
		return false
	}

	if len(q.ForGender) > 0 {
		found := false
		for _, g := range q.ForGender {
			if g == string(demo.Gender) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(q.ForProfessions) > 0 {
		found := false
		for _, p := range q.ForProfessions {
			if p == demo.Profession {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// NextQuestions picks the session's next batch from the bank.
//
// Ordering: unanswered initial questions are surfaced first (all of them),
// then ordinary questions in bank order up to batchSize, and final questions
// only once nothing else remains. Answering any final question terminates
// the flow. An empty result means the flow is over or nothing applies to
// this user; callers treat it as an empty batch, not an error.
func NextQuestions(bank []model.AssessmentQuestion, session *model.AssessmentSession, demo Demographics, batchSize int) []model.AssessmentQuestion {
	byID := make(map[uint]*model.AssessmentQuestion, len(bank))
	for i := range bank {
		byID[bank[i].ID] = &bank[i]
	}
	for _, r := range session.Responses {
		if q, ok := byID[r.QuestionID]; ok && q.IsFinal {
			return nil
		}
	}

	var initial, regular, final []model.AssessmentQuestion
	for _, q := range bank {
		if session.HasAnswered(q.ID) || !QuestionEligible(&q, demo) {
			continue
		}
		switch {
		case q.IsInitial:
			initial = append(initial, q)
		case q.IsFinal:
			final = append(final, q)
		default:
			regular = append(regular, q)
		}
	}

	if len(initial) > 0 {
		return initial
	}
	if len(regular) > 0 {
		if batchSize > 0 && len(regular) > batchSize {
			return regular[:batchSize]
		}
		return regular
	}
	return final
}
