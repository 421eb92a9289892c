package repository

import (
	"time"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	DB *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: db}
}

func (r *AppointmentRepository) Create(a *model.Appointment) error {
	return r.DB.Create(a).Error
}

func (r *AppointmentRepository) FindByID(id uint) (*model.Appointment, error) {
	var a model.Appointment
	err := r.DB.Preload("User").Preload("Counselor").Preload("Counselor.User").First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) Update(a *model.Appointment) error {
	return r.DB.Save(a).Error
}

// CountOverlapping counts live appointments of a counselor intersecting the
// given window. Canceled slots do not block rebooking.
func (r *AppointmentRepository) CountOverlapping(counselorID uint, start, end time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Appointment{}).
		Where("counselor_id = ?", counselorID).
		Where("status IN ?", []model.AppointmentStatus{model.AppointmentBooked, model.AppointmentConfirmed}).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
	return count, err
}

func (r *AppointmentRepository) ListByUser(userID uint, page, limit int, status string) ([]model.Appointment, int64, error) {
	return r.list("user_id", userID, page, limit, status)
}

func (r *AppointmentRepository) ListByCounselor(counselorID uint, page, limit int, status string) ([]model.Appointment, int64, error) {
	return r.list("counselor_id", counselorID, page, limit, status)
}

func (r *AppointmentRepository) list(column string, id uint, page, limit int, status string) ([]model.Appointment, int64, error) {
	var as []model.Appointment
	var total int64

	query := r.DB.Model(&model.Appointment{}).
		Preload("User").Preload("Counselor").Preload("Counselor.User").
		Where(column+" = ?", id)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("start_time desc").Offset(offset).Limit(limit).Find(&as).Error
	return as, total, err
}

func (r *AppointmentRepository) CountByStatus(status model.AppointmentStatus) (int64, error) {
	var count int64
	query := r.DB.Model(&model.Appointment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}
