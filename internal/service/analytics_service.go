package service

import (
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/repository"
)

type AnalyticsService struct {
	UserRepo        *repository.UserRepository
	CounselorRepo   *repository.CounselorRepository
	AppointmentRepo *repository.AppointmentRepository
	PaymentRepo     *repository.PaymentRepository
}

func NewAnalyticsService(userRepo *repository.UserRepository, counselorRepo *repository.CounselorRepository, appointmentRepo *repository.AppointmentRepository, paymentRepo *repository.PaymentRepository) *AnalyticsService {
	return &AnalyticsService{
		UserRepo:        userRepo,
		CounselorRepo:   counselorRepo,
		AppointmentRepo: appointmentRepo,
		PaymentRepo:     paymentRepo,
	}
}

type PlatformAnalytics struct {
	Users                 int64   `json:"users"`
	Counselors            int64   `json:"counselors"`
	VerifiedCounselors    int64   `json:"verifiedCounselors"`
	PendingCounselors     int64   `json:"pendingCounselors"`
	AppointmentsBooked    int64   `json:"appointmentsBooked"`
	AppointmentsCompleted int64   `json:"appointmentsCompleted"`
	AppointmentsCanceled  int64   `json:"appointmentsCanceled"`
	Revenue               float64 `json:"revenue"`
}

// Overview collects the platform-wide counters shown on the admin dashboard.
func (s *AnalyticsService) Overview() (*PlatformAnalytics, error) {
	out := &PlatformAnalytics{}

	var err error
	if out.Users, err = s.UserRepo.CountByRole(model.RoleUser); err != nil {
		return nil, err
	}
	if out.Counselors, err = s.UserRepo.CountByRole(model.RoleCounselor); err != nil {
		return nil, err
	}
	if out.VerifiedCounselors, err = s.CounselorRepo.Count(model.CounselorVerified); err != nil {
		return nil, err
	}
	if out.PendingCounselors, err = s.CounselorRepo.Count(model.CounselorPending); err != nil {
		return nil, err
	}
	if out.AppointmentsBooked, err = s.AppointmentRepo.CountByStatus(model.AppointmentBooked); err != nil {
		return nil, err
	}
	if out.AppointmentsCompleted, err = s.AppointmentRepo.CountByStatus(model.AppointmentCompleted); err != nil {
		return nil, err
	}
	if out.AppointmentsCanceled, err = s.AppointmentRepo.CountByStatus(model.AppointmentCanceled); err != nil {
		return nil, err
	}
	if out.Revenue, err = s.PaymentRepo.SumCompleted(); err != nil {
		return nil, err
	}
	return out, nil
}
