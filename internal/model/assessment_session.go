package model

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionAbandoned  SessionStatus = "abandoned"
)

// AssessmentResponse is one answered question, embedded in the session
// document. At most one entry per question; re-answering overwrites.
type AssessmentResponse struct {
	QuestionID     uint      `json:"questionId"`
	SelectedOption *float64  `json:"selectedOption,omitempty"`
	SelectedValues []float64 `json:"selectedValues,omitempty"`
	Answer         string    `json:"answer,omitempty"`
	Score          float64   `json:"score"`
}

// AssessmentResult is the computed diagnostic outcome. Present iff the
// session is completed.
type AssessmentResult struct {
	Condition       string             `json:"condition"`
	Description     string             `json:"description"`
	SeverityLevel   int                `json:"severityLevel"`
	SeverityTier    string             `json:"severityTier"`
	Recommendations []string           `json:"recommendations"`
	ConditionScores map[string]float64 `json:"conditionScores,omitempty"`
}

// swagger:model AssessmentSession
type AssessmentSession struct {
	BaseModel
	UserID    uint                 `gorm:"index;type:bigint unsigned" json:"userId"`
	User      *User                `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status    SessionStatus        `gorm:"size:20;default:'in_progress';index" json:"status"`
	Responses []AssessmentResponse `gorm:"serializer:json;type:json" json:"responses"`
	Result    *AssessmentResult    `gorm:"serializer:json;type:json" json:"result,omitempty"`
}

func (AssessmentSession) TableName() string {
	return "assessment_sessions"
}

// HasAnswered reports whether the session already carries a response for the
// given question.
func (s *AssessmentSession) HasAnswered(questionID uint) bool {
	for _, r := range s.Responses {
		if r.QuestionID == questionID {
			return true
		}
	}
	return false
}
