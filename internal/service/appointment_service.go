package service

import (
	"time"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/repository"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"
)

type AppointmentService struct {
	Repo          *repository.AppointmentRepository
	CounselorRepo *repository.CounselorRepository
}

func NewAppointmentService(repo *repository.AppointmentRepository, counselorRepo *repository.CounselorRepository) *AppointmentService {
	return &AppointmentService{Repo: repo, CounselorRepo: counselorRepo}
}

type BookRequest struct {
	CounselorID uint              `json:"counselorId" binding:"required"`
	StartTime   time.Time         `json:"startTime" binding:"required"`
	EndTime     time.Time         `json:"endTime" binding:"required"`
	SessionType model.SessionType `json:"sessionType"`
	Notes       string            `json:"notes"`
}

// Book creates an appointment with a verified counselor, rejecting windows
// that overlap the counselor's live slots.
func (s *AppointmentService) Book(userID uint, req BookRequest) (*model.Appointment, error) {
	counselor, err := s.CounselorRepo.FindByID(req.CounselorID)
	if err != nil {
		return nil, util.ErrCounselorNotFound
	}
	if counselor.Status != model.CounselorVerified {
		return nil, util.ErrCounselorUnverified
	}

	if !req.EndTime.After(req.StartTime) || req.StartTime.Before(time.Now()) {
		return nil, util.ErrSlotTaken
	}

	overlapping, err := s.Repo.CountOverlapping(req.CounselorID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, util.ErrSlotTaken
	}

	sessionType := req.SessionType
	if sessionType == "" {
		sessionType = model.SessionVideo
	}

	a := &model.Appointment{
		UserID:      userID,
		CounselorID: req.CounselorID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		SessionType: sessionType,
		Status:      model.AppointmentBooked,
		Notes:       req.Notes,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AppointmentService) Get(id, requesterID uint, isAdmin bool) (*model.Appointment, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrAppointmentNotFound
	}
	if !isAdmin && !s.participant(a, requesterID) {
		return nil, util.ErrPermissionDenied
	}
	return a, nil
}

// participant reports whether the user is either side of the appointment.
func (s *AppointmentService) participant(a *model.Appointment, userID uint) bool {
	if a.UserID == userID {
		return true
	}
	if a.Counselor != nil && a.Counselor.UserID == userID {
		return true
	}
	return false
}

func (s *AppointmentService) ListForUser(userID uint, page, limit int, status string) ([]model.Appointment, int64, error) {
	return s.Repo.ListByUser(userID, page, limit, status)
}

func (s *AppointmentService) ListForCounselor(counselorUserID uint, page, limit int, status string) ([]model.Appointment, int64, error) {
	profile, err := s.CounselorRepo.FindByUserID(counselorUserID)
	if err != nil {
		return nil, 0, util.ErrCounselorNotFound
	}
	return s.Repo.ListByCounselor(profile.ID, page, limit, status)
}

// Confirm moves a booked appointment to confirmed; counselor side only.
func (s *AppointmentService) Confirm(id, counselorUserID uint) (*model.Appointment, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrAppointmentNotFound
	}
	if a.Counselor == nil || a.Counselor.UserID != counselorUserID {
		return nil, util.ErrPermissionDenied
	}
	if a.Status != model.AppointmentBooked {
		return nil, util.ErrAppointmentNotFound
	}
	a.Status = model.AppointmentConfirmed
	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AppointmentService) Complete(id, counselorUserID uint) (*model.Appointment, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrAppointmentNotFound
	}
	if a.Counselor == nil || a.Counselor.UserID != counselorUserID {
		return nil, util.ErrPermissionDenied
	}
	a.Status = model.AppointmentCompleted
	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// Cancel is allowed for either participant while the appointment is live.
func (s *AppointmentService) Cancel(id, requesterID uint, req CancelRequest) (*model.Appointment, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrAppointmentNotFound
	}
	if !s.participant(a, requesterID) {
		return nil, util.ErrPermissionDenied
	}
	if a.Status == model.AppointmentCompleted || a.Status == model.AppointmentCanceled {
		return nil, util.ErrAppointmentNotFound
	}
	a.Status = model.AppointmentCanceled
	a.CancelReason = req.Reason
	a.CanceledBy = requesterID
	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}
