package model

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records money movement for a subscription. Gateway integration is
// out of scope; records are created pending and settled through the payments API.
// swagger:model Payment
type Payment struct {
	UUIDBase
	UserID         uint          `gorm:"index;type:bigint unsigned" json:"userId"`
	User           *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SubscriptionID uint          `gorm:"index;type:bigint unsigned" json:"subscriptionId"`
	Amount         float64       `gorm:"not null" json:"amount"`
	Currency       string        `gorm:"size:10;default:'INR'" json:"currency"`
	Status         PaymentStatus `gorm:"size:20;default:'pending';index" json:"status"`
	Reference      string        `gorm:"size:100" json:"reference"`
	FailureReason  string        `gorm:"type:text" json:"failureReason,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
