package service

import (
	"errors"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/repository"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"

	"gorm.io/gorm"
)

type ChatService struct {
	Repo            *repository.ChatRepository
	AppointmentRepo *repository.AppointmentRepository
}

func NewChatService(repo *repository.ChatRepository, appointmentRepo *repository.AppointmentRepository) *ChatService {
	return &ChatService{Repo: repo, AppointmentRepo: appointmentRepo}
}

// Conversation returns the appointment's conversation, creating it lazily on
// first access. Only the two participants may open it.
func (s *ChatService) Conversation(appointmentID, requesterID uint) (*model.Conversation, error) {
	a, err := s.AppointmentRepo.FindByID(appointmentID)
	if err != nil {
		return nil, util.ErrAppointmentNotFound
	}

	counselorUID := uint(0)
	if a.Counselor != nil {
		counselorUID = a.Counselor.UserID
	}
	if requesterID != a.UserID && requesterID != counselorUID {
		return nil, util.ErrPermissionDenied
	}

	conv, err := s.Repo.FindConversationByAppointment(appointmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		conv = &model.Conversation{
			AppointmentID: appointmentID,
			UserID:        a.UserID,
			CounselorUID:  counselorUID,
		}
		if err := s.Repo.CreateConversation(conv); err != nil {
			return nil, err
		}
		return conv, nil
	}
	return conv, err
}

func (s *ChatService) Messages(conversationID string, requesterID uint, page, limit int) ([]model.ChatMessage, int64, error) {
	conv, err := s.Repo.FindConversation(conversationID)
	if err != nil {
		return nil, 0, util.ErrAppointmentNotFound
	}
	if requesterID != conv.UserID && requesterID != conv.CounselorUID {
		return nil, 0, util.ErrPermissionDenied
	}
	return s.Repo.ListMessages(conversationID, page, limit)
}
