package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/config"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/repository"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/logger"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	questionBatchSize = 5
	bankCacheKey      = "assessment:question_bank"
)

type AssessmentService struct {
	Repo         *repository.AssessmentRepository
	QuestionRepo *repository.QuestionRepository
	UserRepo     *repository.UserRepository
	Redis        *redis.Client
	Storage      *StorageService
	Cfg          *config.Config
}

func NewAssessmentService(repo *repository.AssessmentRepository, questionRepo *repository.QuestionRepository, userRepo *repository.UserRepository, rdb *redis.Client, storage *StorageService, cfg *config.Config) *AssessmentService {
	return &AssessmentService{
		Repo:         repo,
		QuestionRepo: questionRepo,
		UserRepo:     userRepo,
		Redis:        rdb,
		Storage:      storage,
		Cfg:          cfg,
	}
}

// questionBank returns the full bank, served from Redis when cached.
func (s *AssessmentService) questionBank(ctx context.Context) ([]model.AssessmentQuestion, error) {
	ttl := time.Duration(s.Cfg.Assessment.BankCacheSeconds) * time.Second
	if s.Redis != nil && ttl > 0 {
		if raw, err := s.Redis.Get(ctx, bankCacheKey).Bytes(); err == nil {
			var qs []model.AssessmentQuestion
			if err := json.Unmarshal(raw, &qs); err == nil {
				return qs, nil
			}
		}
	}

	qs, err := s.QuestionRepo.ListAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil && ttl > 0 {
		if raw, err := json.Marshal(qs); err == nil {
			s.Redis.Set(ctx, bankCacheKey, raw, ttl)
		}
	}
	return qs, nil
}

func (s *AssessmentService) invalidateBank(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, bankCacheKey)
	}
}

func (s *AssessmentService) demographics(userID uint) (Demographics, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return Demographics{}, err
	}
	return Demographics{Age: user.Age, Gender: user.Gender, Profession: user.Profession}, nil
}

type StartSessionResponse struct {
	Session   *model.AssessmentSession   `json:"session"`
	Questions []model.AssessmentQuestion `json:"questions"`
}

// StartSession creates an in_progress session and returns the first batch,
// which contains every eligible initial question. An empty batch is a valid
// outcome when nothing in the bank targets this user.
func (s *AssessmentService) StartSession(ctx context.Context, userID uint) (*StartSessionResponse, error) {
	demo, err := s.demographics(userID)
	if err != nil {
		return nil, err
	}

	session := &model.AssessmentSession{
		UserID:    userID,
		Status:    model.SessionInProgress,
		Responses: []model.AssessmentResponse{},
	}
	if err := s.Repo.CreateSession(session); err != nil {
		return nil, err
	}
	monitoring.SessionCounter.WithLabelValues("started").Inc()

	bank, err := s.questionBank(ctx)
	if err != nil {
		return nil, err
	}

	batch := NextQuestions(bank, session, demo, questionBatchSize)
	if batch == nil {
		batch = []model.AssessmentQuestion{}
	}
	return &StartSessionResponse{Session: session, Questions: batch}, nil
}

func (s *AssessmentService) loadOwnedSession(sessionID, userID uint, adminOK bool, isAdmin bool) (*model.AssessmentSession, error) {
	session, err := s.Repo.FindSessionByID(sessionID)
	if err != nil {
		return nil, util.ErrSessionNotFound
	}
	if session.UserID != userID {
		if !(adminOK && isAdmin) {
			return nil, util.ErrPermissionDenied
		}
	}
	return session, nil
}

// NextBatch returns the current question batch for an in-progress session.
func (s *AssessmentService) NextBatch(ctx context.Context, sessionID, userID uint) ([]model.AssessmentQuestion, error) {
	session, err := s.loadOwnedSession(sessionID, userID, false, false)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionInProgress {
		return []model.AssessmentQuestion{}, nil
	}

	demo, err := s.demographics(userID)
	if err != nil {
		return nil, err
	}
	bank, err := s.questionBank(ctx)
	if err != nil {
		return nil, err
	}

	batch := NextQuestions(bank, session, demo, questionBatchSize)
	if batch == nil {
		batch = []model.AssessmentQuestion{}
	}
	return batch, nil
}

type RespondRequest struct {
	QuestionID     uint      `json:"questionId" binding:"required"`
	SelectedOption *float64  `json:"selectedOption,omitempty"`
	SelectedValues []float64 `json:"selectedValues,omitempty"`
	Answer         string    `json:"answer,omitempty"`
}

type RespondResponse struct {
	Session   *model.AssessmentSession   `json:"session"`
	Questions []model.AssessmentQuestion `json:"questions"`
}

// Respond records one answer and returns the next batch. Answers referencing
// questions absent from the bank are rejected outright; re-answering a
// question overwrites the earlier response so the session never carries two
// entries for one question.
func (s *AssessmentService) Respond(ctx context.Context, sessionID, userID uint, req RespondRequest) (*RespondResponse, error) {
	session, err := s.loadOwnedSession(sessionID, userID, false, false)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionInProgress {
		return nil, util.ErrSessionCompleted
	}

	bank, err := s.questionBank(ctx)
	if err != nil {
		return nil, err
	}
	var question *model.AssessmentQuestion
	for i := range bank {
		if bank[i].ID == req.QuestionID {
			question = &bank[i]
			break
		}
	}
	if question == nil {
		return nil, util.ErrQuestionNotFound
	}

	resp := model.AssessmentResponse{
		QuestionID:     req.QuestionID,
		SelectedOption: req.SelectedOption,
		SelectedValues: req.SelectedValues,
		Answer:         req.Answer,
	}
	resp.Score = ResponseScore(question, &resp)

	replaced := false
	for i := range session.Responses {
		if session.Responses[i].QuestionID == req.QuestionID {
			session.Responses[i] = resp
			replaced = true
			break
		}
	}
	if !replaced {
		session.Responses = append(session.Responses, resp)
	}

	if err := s.Repo.UpdateSession(session); err != nil {
		return nil, err
	}

	demo, err := s.demographics(userID)
	if err != nil {
		return nil, err
	}
	batch := NextQuestions(bank, session, demo, questionBatchSize)
	if batch == nil {
		batch = []model.AssessmentQuestion{}
	}
	return &RespondResponse{Session: session, Questions: batch}, nil
}

// finalizeSession scores the responses against the bank snapshot and stamps
// the session completed. Every completed session carries a result; when
// nothing scorable was answered the outcome is a neutral one, not an error.
// Replaying recomputes from the same inputs, so the outcome is unchanged
// unless the question bank moved underneath it.
func finalizeSession(session *model.AssessmentSession, bank map[uint]*model.AssessmentQuestion) {
	result := ScoreSession(bank, session.Responses)
	if result == nil {
		result = &model.AssessmentResult{
			Condition:       "none",
			Description:     "Not enough scorable responses to indicate a condition.",
			SeverityLevel:   0,
			SeverityTier:    SeverityMild,
			Recommendations: []string{"Retake the assessment and answer all questions for a meaningful result."},
		}
	}
	session.Result = result
	session.Status = model.SessionCompleted
}

// Complete scores the session and marks it completed. Idempotent by contract.
func (s *AssessmentService) Complete(ctx context.Context, sessionID, userID uint) (*model.AssessmentSession, error) {
	session, err := s.loadOwnedSession(sessionID, userID, false, false)
	if err != nil {
		return nil, err
	}

	bank, err := s.questionBank(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*model.AssessmentQuestion, len(bank))
	for i := range bank {
		byID[bank[i].ID] = &bank[i]
	}

	finalizeSession(session, byID)
	if err := s.Repo.UpdateSession(session); err != nil {
		return nil, err
	}
	monitoring.SessionCounter.WithLabelValues("completed").Inc()
	return session, nil
}

func (s *AssessmentService) ListUserSessions(userID uint) ([]model.AssessmentSession, error) {
	return s.Repo.ListSessionsByUser(userID)
}

func (s *AssessmentService) GetSession(sessionID, userID uint, isAdmin bool) (*model.AssessmentSession, error) {
	return s.loadOwnedSession(sessionID, userID, true, isAdmin)
}

func (s *AssessmentService) ListSessions(page, limit int, status string) ([]model.AssessmentSession, int64, error) {
	return s.Repo.ListSessions(page, limit, status)
}

// SweepAbandoned transitions stale in_progress sessions to abandoned. Runs
// from the app's background ticker.
func (s *AssessmentService) SweepAbandoned() error {
	cutoff := time.Now().AddDate(0, 0, -s.Cfg.Assessment.AbandonAfterDays)
	n, err := s.Repo.AbandonStale(cutoff)
	if err != nil {
		return err
	}
	if n > 0 {
		monitoring.SessionCounter.WithLabelValues("abandoned").Add(float64(n))
		logger.Log.Info("abandoned stale assessment sessions", zap.Int64("count", n))
	}
	return nil
}

// --- question bank administration ---

type QuestionRequest struct {
	Text             string                 `json:"text" binding:"required"`
	Description      string                 `json:"description"`
	Type             model.QuestionType     `json:"type" binding:"required"`
	Options          []model.QuestionOption `json:"options"`
	MinValue         float64                `json:"minValue"`
	MaxValue         float64                `json:"maxValue"`
	MinLabel         string                 `json:"minLabel"`
	MaxLabel         string                 `json:"maxLabel"`
	AgeMin           int                    `json:"ageMin"`
	AgeMax           int                    `json:"ageMax"`
	ForGender        []string               `json:"forGender"`
	ForProfessions   []string               `json:"forProfessions"`
	IsInitial        bool                   `json:"isInitial"`
	IsFinal          bool                   `json:"isFinal"`
	Weight           float64                `json:"weight"`
	ConditionMapping map[string]float64     `json:"conditionMapping"`
	Active           *bool                  `json:"active"`
}

func validQuestionType(t model.QuestionType) bool {
	switch t {
	case model.QuestionText, model.QuestionNumber, model.QuestionSelect,
		model.QuestionRadio, model.QuestionCheckbox, model.QuestionScale:
		return true
	}
	return false
}

// pruneMapping drops non-positive condition weights before persistence.
func pruneMapping(mapping map[string]float64) map[string]float64 {
	pruned := make(map[string]float64, len(mapping))
	for condition, w := range mapping {
		if w > 0 {
			pruned[condition] = w
		}
	}
	return pruned
}

func (s *AssessmentService) applyRequest(q *model.AssessmentQuestion, req QuestionRequest) {
	q.Text = req.Text
	q.Description = req.Description
	q.Type = req.Type
	q.Options = req.Options
	q.MinValue = req.MinValue
	q.MaxValue = req.MaxValue
	q.MinLabel = req.MinLabel
	q.MaxLabel = req.MaxLabel
	q.AgeMin = req.AgeMin
	q.AgeMax = req.AgeMax
	q.ForGender = req.ForGender
	q.ForProfessions = req.ForProfessions
	q.IsInitial = req.IsInitial
	q.IsFinal = req.IsFinal
	q.Weight = req.Weight
	q.ConditionMapping = pruneMapping(req.ConditionMapping)
	if req.Active != nil {
		q.Active = *req.Active
	}
}

func (s *AssessmentService) CreateQuestion(ctx context.Context, req QuestionRequest) (*model.AssessmentQuestion, error) {
	if !validQuestionType(req.Type) {
		return nil, fmt.Errorf("unknown question type %q", req.Type)
	}
	if req.Weight == 0 {
		req.Weight = 1
	}
	q := &model.AssessmentQuestion{Active: true}
	s.applyRequest(q, req)
	if err := s.QuestionRepo.Create(q); err != nil {
		return nil, err
	}
	s.invalidateBank(ctx)
	return q, nil
}

func (s *AssessmentService) UpdateQuestion(ctx context.Context, id uint, req QuestionRequest) (*model.AssessmentQuestion, error) {
	if !validQuestionType(req.Type) {
		return nil, fmt.Errorf("unknown question type %q", req.Type)
	}
	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrQuestionNotFound
	}
	s.applyRequest(q, req)
	if err := s.QuestionRepo.Update(q); err != nil {
		return nil, err
	}
	s.invalidateBank(ctx)
	return q, nil
}

func (s *AssessmentService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.QuestionRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateBank(ctx)
	return nil
}

func (s *AssessmentService) GetQuestion(id uint) (*model.AssessmentQuestion, error) {
	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrQuestionNotFound
	}
	return q, nil
}

func (s *AssessmentService) ListQuestions(page, limit int) ([]model.AssessmentQuestion, int64, error) {
	return s.QuestionRepo.List(page, limit)
}

// --- analytics & export ---

type AssessmentAnalytics struct {
	TotalSessions     int64            `json:"totalSessions"`
	Completed         int64            `json:"completed"`
	InProgress        int64            `json:"inProgress"`
	Abandoned         int64            `json:"abandoned"`
	CompletionRate    float64          `json:"completionRate"`
	ConditionCounts   map[string]int64 `json:"conditionCounts"`
	SeverityTierCount map[string]int64 `json:"severityTierCounts"`
}

func (s *AssessmentService) Analytics() (*AssessmentAnalytics, error) {
	total, err := s.Repo.CountByStatus("")
	if err != nil {
		return nil, err
	}
	completed, err := s.Repo.CountByStatus(model.SessionCompleted)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.Repo.CountByStatus(model.SessionInProgress)
	if err != nil {
		return nil, err
	}
	abandoned, err := s.Repo.CountByStatus(model.SessionAbandoned)
	if err != nil {
		return nil, err
	}

	analytics := &AssessmentAnalytics{
		TotalSessions:     total,
		Completed:         completed,
		InProgress:        inProgress,
		Abandoned:         abandoned,
		ConditionCounts:   map[string]int64{},
		SeverityTierCount: map[string]int64{},
	}
	if total > 0 {
		analytics.CompletionRate = float64(completed) / float64(total)
	}

	sessions, err := s.Repo.ListCompleted()
	if err != nil {
		return nil, err
	}
	for _, sess := range sessions {
		if sess.Result == nil {
			continue
		}
		analytics.ConditionCounts[sess.Result.Condition]++
		analytics.SeverityTierCount[sess.Result.SeverityTier]++
	}
	return analytics, nil
}

// ExportCSV renders all completed sessions as CSV, one row per session, and
// archives a copy through the storage provider when one is configured.
func (s *AssessmentService) ExportCSV(ctx context.Context) ([]byte, error) {
	sessions, err := s.Repo.ListCompleted()
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"session_id", "user_id", "email", "condition", "severity_level", "severity_tier", "responses", "completed_at"})
	for _, sess := range sessions {
		email := ""
		if sess.User != nil {
			email = sess.User.Email
		}
		condition, tier := "", ""
		level := 0
		if sess.Result != nil {
			condition = sess.Result.Condition
			tier = sess.Result.SeverityTier
			level = sess.Result.SeverityLevel
		}
		rec := []string{
			strconv.FormatUint(uint64(sess.ID), 10),
			strconv.FormatUint(uint64(sess.UserID), 10),
			email,
			condition,
			strconv.Itoa(level),
			tier,
			strconv.Itoa(len(sess.Responses)),
			sess.UpdatedAt.Format(time.RFC3339),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	data := buf.Bytes()
	if s.Storage != nil {
		name := fmt.Sprintf("exports/assessments-%s.csv", time.Now().Format("20060102-150405"))
		if _, err := s.Storage.Upload(ctx, name, bytes.NewReader(data), int64(len(data)), "text/csv"); err != nil {
			logger.Log.Error("failed to archive assessment export", zap.Error(err))
		}
	}
	return data, nil
}
