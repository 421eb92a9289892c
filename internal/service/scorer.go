package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
)

const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// ResponseScore derives the normalized numeric contribution of one response
// from its question type: selected-option value for select/radio, count of
// checked options for checkbox, position above the minimum for scale, the raw
// number for number questions. Free text carries no numeric signal.
func ResponseScore(q *model.AssessmentQuestion, resp *model.AssessmentResponse) float64 {
	switch q.Type {
	case model.QuestionSelect, model.QuestionRadio:
		if resp.SelectedOption != nil {
			return *resp.SelectedOption
		}
		return 0
	case model.QuestionCheckbox:
		return float64(len(resp.SelectedValues))
	case model.QuestionScale:
		if resp.SelectedOption == nil {
			return 0
		}
		v := *resp.SelectedOption
		if q.MaxValue > q.MinValue {
			if v < q.MinValue {
				v = q.MinValue
			}
			if v > q.MaxValue {
				v = q.MaxValue
			}
		}
		return v - q.MinValue
	case model.QuestionNumber:
		if resp.SelectedOption != nil {
			return *resp.SelectedOption
		}
		return 0
	default: // text
		return 0
	}
}

// SeverityTier maps a severity level to its tier. Pure in the level:
// mild below 3, moderate from 3 through 5, severe at 6 and above.
func SeverityTier(level int) string {
	switch {
	case level < 3:
		return SeverityMild
	case level < 6:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

// ScoreSession aggregates weighted responses into per-condition totals and
// produces the diagnostic result.
//
// Each response contributes weight * mapping value * stored response score to
// every condition its question maps to. Responses referencing questions
// missing from the bank snapshot contribute zero and are skipped, so results
// survive question deletion. The dominant condition is the highest total;
// ties break on the lexicographically smallest condition name, independent of
// map iteration order. Returns nil when no condition accumulates anything.
func ScoreSession(bank map[uint]*model.AssessmentQuestion, responses []model.AssessmentResponse) *model.AssessmentResult {
	totals := make(map[string]float64)
	for i := range responses {
		q, ok := bank[responses[i].QuestionID]
		if !ok {
			continue
		}
		for condition, mapping := range q.ConditionMapping {
			if mapping <= 0 {
				continue
			}
			totals[condition] += q.Weight * mapping * responses[i].Score
		}
	}

	if len(totals) == 0 {
		return nil
	}

	conditions := make([]string, 0, len(totals))
	for c := range totals {
		conditions = append(conditions, c)
	}
	sort.Strings(conditions)

	dominant := conditions[0]
	for _, c := range conditions[1:] {
		if totals[c] > totals[dominant] {
			dominant = c
		}
	}

	level := int(math.Round(totals[dominant]))
	if level < 0 {
		level = 0
	}
	if level > 10 {
		level = 10
	}
	tier := SeverityTier(level)

	return &model.AssessmentResult{
		Condition:       dominant,
		Description:     conditionDescription(dominant, tier),
		SeverityLevel:   level,
		SeverityTier:    tier,
		Recommendations: recommendations(dominant, tier),
		ConditionScores: totals,
	}
}

var conditionBlurbs = map[string]string{
	"anxiety":    "Your responses indicate symptoms associated with anxiety, such as persistent worry, restlessness or tension.",
	"depression": "Your responses indicate symptoms associated with depression, such as low mood, loss of interest or fatigue.",
	"stress":     "Your responses indicate elevated stress levels that may be affecting your daily life.",
	"ptsd":       "Your responses indicate symptoms that can follow a distressing or traumatic experience.",
	"ocd":        "Your responses indicate patterns of intrusive thoughts or repetitive behaviors.",
	"insomnia":   "Your responses indicate difficulties with sleep quality or duration.",
}

func conditionDescription(condition, tier string) string {
	blurb, ok := conditionBlurbs[condition]
	if !ok {
		blurb = fmt.Sprintf("Your responses indicate symptoms most associated with %s.", condition)
	}
	switch tier {
	case SeverityMild:
		return blurb + " The indicated severity is mild."
	case SeverityModerate:
		return blurb + " The indicated severity is moderate."
	default:
		return blurb + " The indicated severity is high; please consider reaching out to a professional soon."
	}
}

func recommendations(condition, tier string) []string {
	recs := []string{
		"Maintain a regular sleep schedule and daily routine.",
		"Practice breathing or mindfulness exercises for a few minutes each day.",
	}
	switch condition {
	case "anxiety":
		recs = append(recs, "Try grounding techniques when worry spikes.")
	case "depression":
		recs = append(recs, "Schedule one small enjoyable activity every day.")
	case "stress":
		recs = append(recs, "Identify your main stressors and plan one change this week.")
	case "insomnia":
		recs = append(recs, "Avoid screens for an hour before bed.")
	}
	switch tier {
	case SeverityModerate:
		recs = append(recs, "Consider booking a session with one of our counselors.")
	case SeveritySevere:
		recs = append(recs, "We strongly recommend booking a counseling session.",
			"If you are in crisis, contact a local helpline immediately.")
	}
	return recs
}
