package repository

import (
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(p *model.Payment) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) FindByID(id string) (*model.Payment, error) {
	var p model.Payment
	err := r.DB.Preload("User").Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Update(p *model.Payment) error {
	return r.DB.Save(p).Error
}

func (r *PaymentRepository) ListByUser(userID uint, page, limit int) ([]model.Payment, int64, error) {
	var ps []model.Payment
	var total int64

	query := r.DB.Model(&model.Payment{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ps).Error
	return ps, total, err
}

func (r *PaymentRepository) List(page, limit int, status string) ([]model.Payment, int64, error) {
	var ps []model.Payment
	var total int64

	query := r.DB.Model(&model.Payment{}).Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ps).Error
	return ps, total, err
}

func (r *PaymentRepository) SumCompleted() (float64, error) {
	var total float64
	err := r.DB.Model(&model.Payment{}).
		Where("status = ?", model.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
