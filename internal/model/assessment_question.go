package model

type QuestionType string

const (
	QuestionText     QuestionType = "text"
	QuestionNumber   QuestionType = "number"
	QuestionSelect   QuestionType = "select"
	QuestionRadio    QuestionType = "radio"
	QuestionCheckbox QuestionType = "checkbox"
	QuestionScale    QuestionType = "scale"
)

// QuestionOption is one selectable choice of a select/radio/checkbox question.
// Value carries the numeric contribution used by the scorer.
type QuestionOption struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// AssessmentQuestion is a question-bank entry. Targeting fields restrict which
// users the question applies to; permissive defaults (zero range, empty lists)
// match everyone. ConditionMapping holds per-condition weight contributions;
// zero-weight entries are dropped on write.
// swagger:model AssessmentQuestion
type AssessmentQuestion struct {
	BaseModel
	Text             string             `gorm:"type:text;not null" json:"text"`
	Description      string             `gorm:"type:text" json:"description,omitempty"`
	Type             QuestionType       `gorm:"size:20;not null" json:"type"`
	Options          []QuestionOption   `gorm:"serializer:json;type:json" json:"options,omitempty"`
	MinValue         float64            `gorm:"default:0" json:"minValue"`
	MaxValue         float64            `gorm:"default:0" json:"maxValue"`
	MinLabel         string             `gorm:"size:100" json:"minLabel,omitempty"`
	MaxLabel         string             `gorm:"size:100" json:"maxLabel,omitempty"`
	AgeMin           int                `gorm:"default:0" json:"ageMin"`
	AgeMax           int                `gorm:"default:0" json:"ageMax"`
	ForGender        []string           `gorm:"serializer:json;type:json" json:"forGender,omitempty"`
	ForProfessions   []string           `gorm:"serializer:json;type:json" json:"forProfessions,omitempty"`
	IsInitial        bool               `gorm:"default:false" json:"isInitial"`
	IsFinal          bool               `gorm:"default:false" json:"isFinal"`
	Weight           float64            `gorm:"default:1" json:"weight"`
	ConditionMapping map[string]float64 `gorm:"serializer:json;type:json" json:"conditionMapping"`
	Active           bool               `gorm:"default:true;index" json:"active"`
}

func (AssessmentQuestion) TableName() string {
	return "assessment_questions"
}
