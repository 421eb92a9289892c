package repository

import (
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"

	"gorm.io/gorm"
)

type CounselorRepository struct {
	DB *gorm.DB
}

func NewCounselorRepository(db *gorm.DB) *CounselorRepository {
	return &CounselorRepository{DB: db}
}

func (r *CounselorRepository) Create(profile *model.CounselorProfile) error {
	return r.DB.Create(profile).Error
}

func (r *CounselorRepository) FindByID(id uint) (*model.CounselorProfile, error) {
	var p model.CounselorProfile
	err := r.DB.Preload("User").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CounselorRepository) FindByUserID(userID uint) (*model.CounselorProfile, error) {
	var p model.CounselorProfile
	err := r.DB.Preload("User").Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CounselorRepository) Update(profile *model.CounselorProfile) error {
	return r.DB.Save(profile).Error
}

// ListVerified returns verified counselors for public browsing, optionally
// filtered by specialization (JSON containment done in Go, not SQL, to stay
// portable across MySQL versions).
func (r *CounselorRepository) ListVerified(page, limit int, specialization string) ([]model.CounselorProfile, int64, error) {
	var profiles []model.CounselorProfile

	query := r.DB.Model(&model.CounselorProfile{}).
		Preload("User").
		Where("status = ?", model.CounselorVerified)

	var all []model.CounselorProfile
	if err := query.Order("rating desc, created_at desc").Find(&all).Error; err != nil {
		return nil, 0, err
	}

	if specialization != "" {
		filtered := all[:0]
		for _, p := range all {
			for _, s := range p.Specializations {
				if s == specialization {
					filtered = append(filtered, p)
					break
				}
			}
		}
		all = filtered
	}

	total := int64(len(all))
	offset := (page - 1) * limit
	if offset >= len(all) {
		return []model.CounselorProfile{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	profiles = all[offset:end]
	return profiles, total, nil
}

func (r *CounselorRepository) ListByStatus(page, limit int, status model.CounselorStatus) ([]model.CounselorProfile, int64, error) {
	var profiles []model.CounselorProfile
	var total int64

	query := r.DB.Model(&model.CounselorProfile{}).Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&profiles).Error
	return profiles, total, err
}

func (r *CounselorRepository) Count(status model.CounselorStatus) (int64, error) {
	var count int64
	query := r.DB.Model(&model.CounselorProfile{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}
