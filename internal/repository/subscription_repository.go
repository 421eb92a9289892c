package repository

import (
	"time"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) ListPlans(activeOnly bool) ([]model.Plan, error) {
	var plans []model.Plan
	query := r.DB.Model(&model.Plan{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("price asc").Find(&plans).Error
	return plans, err
}

func (r *SubscriptionRepository) FindPlanByID(id uint) (*model.Plan, error) {
	var p model.Plan
	err := r.DB.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SubscriptionRepository) CreatePlan(p *model.Plan) error {
	return r.DB.Create(p).Error
}

func (r *SubscriptionRepository) UpdatePlan(p *model.Plan) error {
	return r.DB.Save(p).Error
}

func (r *SubscriptionRepository) Create(s *model.Subscription) error {
	return r.DB.Create(s).Error
}

func (r *SubscriptionRepository) Update(s *model.Subscription) error {
	return r.DB.Save(s).Error
}

func (r *SubscriptionRepository) FindByID(id uint) (*model.Subscription, error) {
	var s model.Subscription
	err := r.DB.Preload("Plan").First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindActiveByUser returns the user's current active, unexpired subscription.
func (r *SubscriptionRepository) FindActiveByUser(userID uint) (*model.Subscription, error) {
	var s model.Subscription
	err := r.DB.Preload("Plan").
		Where("user_id = ? AND status = ? AND expires_at > ?", userID, model.SubscriptionActive, time.Now()).
		Order("expires_at desc").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubscriptionRepository) ListByUser(userID uint) ([]model.Subscription, error) {
	var ss []model.Subscription
	err := r.DB.Preload("Plan").Where("user_id = ?", userID).Order("created_at desc").Find(&ss).Error
	return ss, err
}

// ExpireStale marks active subscriptions past their expiry as expired.
func (r *SubscriptionRepository) ExpireStale() (int64, error) {
	res := r.DB.Model(&model.Subscription{}).
		Where("status = ? AND expires_at <= ?", model.SubscriptionActive, time.Now()).
		Update("status", model.SubscriptionExpired)
	return res.RowsAffected, res.Error
}
