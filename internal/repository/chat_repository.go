package repository

import (
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type ChatRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewChatRepository(db *gorm.DB, rdb *redis.Client) *ChatRepository {
	return &ChatRepository{DB: db, Redis: rdb}
}

func (r *ChatRepository) CreateConversation(c *model.Conversation) error {
	return r.DB.Create(c).Error
}

func (r *ChatRepository) FindConversation(id string) (*model.Conversation, error) {
	var c model.Conversation
	err := r.DB.Where("id = ?", id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChatRepository) FindConversationByAppointment(appointmentID uint) (*model.Conversation, error) {
	var c model.Conversation
	err := r.DB.Where("appointment_id = ?", appointmentID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChatRepository) SaveMessage(m *model.ChatMessage) error {
	return r.DB.Create(m).Error
}

func (r *ChatRepository) ListMessages(conversationID string, page, limit int) ([]model.ChatMessage, int64, error) {
	var ms []model.ChatMessage
	var total int64

	query := r.DB.Model(&model.ChatMessage{}).Where("conversation_id = ?", conversationID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ms).Error
	return ms, total, err
}
