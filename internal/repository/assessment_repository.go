package repository

import (
	"time"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) CreateSession(s *model.AssessmentSession) error {
	return r.DB.Create(s).Error
}

func (r *AssessmentRepository) FindSessionByID(id uint) (*model.AssessmentSession, error) {
	var s model.AssessmentSession
	err := r.DB.First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AssessmentRepository) UpdateSession(s *model.AssessmentSession) error {
	return r.DB.Save(s).Error
}

func (r *AssessmentRepository) ListSessionsByUser(userID uint) ([]model.AssessmentSession, error) {
	var ss []model.AssessmentSession
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&ss).Error
	return ss, err
}

func (r *AssessmentRepository) ListSessions(page, limit int, status string) ([]model.AssessmentSession, int64, error) {
	var ss []model.AssessmentSession
	var total int64

	query := r.DB.Model(&model.AssessmentSession{}).Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ss).Error
	return ss, total, err
}

// ListCompleted returns every completed session, used by analytics and export.
func (r *AssessmentRepository) ListCompleted() ([]model.AssessmentSession, error) {
	var ss []model.AssessmentSession
	err := r.DB.Preload("User").
		Where("status = ?", model.SessionCompleted).
		Order("created_at asc").
		Find(&ss).Error
	return ss, err
}

func (r *AssessmentRepository) CountByStatus(status model.SessionStatus) (int64, error) {
	var count int64
	query := r.DB.Model(&model.AssessmentSession{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

// AbandonStale flips in_progress sessions untouched since the cutoff to
// abandoned. Runs from the background sweep.
func (r *AssessmentRepository) AbandonStale(cutoff time.Time) (int64, error) {
	res := r.DB.Model(&model.AssessmentSession{}).
		Where("status = ? AND updated_at < ?", model.SessionInProgress, cutoff).
		Update("status", model.SessionAbandoned)
	return res.RowsAffected, res.Error
}
