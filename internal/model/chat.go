package model

// Conversation binds a chat thread to an appointment. One conversation per
// appointment, created lazily on first use.
// swagger:model Conversation
type Conversation struct {
	UUIDBase
	AppointmentID uint `gorm:"uniqueIndex;type:bigint unsigned" json:"appointmentId"`
	UserID        uint `gorm:"index;type:bigint unsigned" json:"userId"`
	CounselorUID  uint `gorm:"index;type:bigint unsigned" json:"counselorUid"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// swagger:model ChatMessage
type ChatMessage struct {
	UUIDBase
	ConversationID string `gorm:"index;type:varchar(36)" json:"conversationId"`
	SenderID       uint   `gorm:"index;type:bigint unsigned" json:"senderId"`
	Content        string `gorm:"type:text;not null" json:"content"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
