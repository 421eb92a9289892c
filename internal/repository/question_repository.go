package repository

import (
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.AssessmentQuestion) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.AssessmentQuestion, error) {
	var q model.AssessmentQuestion
	err := r.DB.First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ListAll returns the full question bank in creation order. The selector
// relies on this ordering for its "otherwise insertion order" rule.
func (r *QuestionRepository) ListAll() ([]model.AssessmentQuestion, error) {
	var qs []model.AssessmentQuestion
	err := r.DB.Order("id asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) List(page, limit int) ([]model.AssessmentQuestion, int64, error) {
	var qs []model.AssessmentQuestion
	var total int64

	query := r.DB.Model(&model.AssessmentQuestion{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("id asc").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}

func (r *QuestionRepository) Update(q *model.AssessmentQuestion) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.AssessmentQuestion{}, id).Error
}
