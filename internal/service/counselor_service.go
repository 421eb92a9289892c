package service

import (
	"errors"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/repository"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"

	"gorm.io/gorm"
)

type CounselorService struct {
	Repo     *repository.CounselorRepository
	UserRepo *repository.UserRepository
}

func NewCounselorService(repo *repository.CounselorRepository, userRepo *repository.UserRepository) *CounselorService {
	return &CounselorService{Repo: repo, UserRepo: userRepo}
}

type CounselorProfileRequest struct {
	Bio             string   `json:"bio"`
	Specializations []string `json:"specializations"`
	Languages       []string `json:"languages"`
	ExperienceYears int      `json:"experienceYears"`
	SessionFee      float64  `json:"sessionFee"`
}

// UpsertProfile creates or updates the caller's counselor profile. Any edit
// to a verified profile drops it back to pending for re-review.
func (s *CounselorService) UpsertProfile(userID uint, req CounselorProfileRequest) (*model.CounselorProfile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if user.Role != model.RoleCounselor {
		return nil, util.ErrPermissionDenied
	}

	profile, err := s.Repo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = &model.CounselorProfile{UserID: userID, Status: model.CounselorPending}
	} else if err != nil {
		return nil, err
	}

	profile.Bio = req.Bio
	profile.Specializations = req.Specializations
	profile.Languages = req.Languages
	profile.ExperienceYears = req.ExperienceYears
	profile.SessionFee = req.SessionFee
	profile.Status = model.CounselorPending
	profile.RejectionReason = ""

	if profile.ID == 0 {
		err = s.Repo.Create(profile)
	} else {
		err = s.Repo.Update(profile)
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *CounselorService) GetOwnProfile(userID uint) (*model.CounselorProfile, error) {
	profile, err := s.Repo.FindByUserID(userID)
	if err != nil {
		return nil, util.ErrCounselorNotFound
	}
	return profile, nil
}

func (s *CounselorService) GetPublicProfile(id uint) (*model.CounselorProfile, error) {
	profile, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrCounselorNotFound
	}
	if profile.Status != model.CounselorVerified {
		return nil, util.ErrCounselorNotFound
	}
	return profile, nil
}

func (s *CounselorService) Browse(page, limit int, specialization string) ([]model.CounselorProfile, int64, error) {
	return s.Repo.ListVerified(page, limit, specialization)
}

func (s *CounselorService) ListForAdmin(page, limit int, status model.CounselorStatus) ([]model.CounselorProfile, int64, error) {
	return s.Repo.ListByStatus(page, limit, status)
}

type VerifyRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

func (s *CounselorService) Verify(id uint, req VerifyRequest) (*model.CounselorProfile, error) {
	profile, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrCounselorNotFound
	}

	if req.Approve {
		profile.Status = model.CounselorVerified
		profile.RejectionReason = ""
	} else {
		profile.Status = model.CounselorRejected
		profile.RejectionReason = req.Reason
	}

	if err := s.Repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
