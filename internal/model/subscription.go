package model

import "time"

// swagger:model Plan
type Plan struct {
	BaseModel
	Name         string   `gorm:"size:100;not null;unique" json:"name"`
	Description  string   `gorm:"type:text" json:"description"`
	Price        float64  `gorm:"not null" json:"price"`
	DurationDays int      `gorm:"not null" json:"durationDays"`
	Features     []string `gorm:"serializer:json;type:json" json:"features"`
	Active       bool     `gorm:"default:true" json:"active"`
}

func (Plan) TableName() string {
	return "plans"
}

type SubscriptionStatus string

const (
	SubscriptionPending  SubscriptionStatus = "pending"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionExpired  SubscriptionStatus = "expired"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// swagger:model Subscription
type Subscription struct {
	BaseModel
	UserID    uint               `gorm:"index;type:bigint unsigned" json:"userId"`
	PlanID    uint               `gorm:"index;type:bigint unsigned" json:"planId"`
	Plan      *Plan              `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	StartsAt  time.Time          `json:"startsAt"`
	ExpiresAt time.Time          `gorm:"index" json:"expiresAt"`
	Status    SubscriptionStatus `gorm:"size:20;default:'pending';index" json:"status"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
