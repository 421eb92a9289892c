package model

import "time"

type AppointmentStatus string

const (
	AppointmentBooked    AppointmentStatus = "booked"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCanceled  AppointmentStatus = "canceled"
)

type SessionType string

const (
	SessionVideo SessionType = "video"
	SessionChat  SessionType = "chat"
)

// swagger:model Appointment
type Appointment struct {
	BaseModel
	UserID       uint              `gorm:"index;type:bigint unsigned" json:"userId"`
	User         *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CounselorID  uint              `gorm:"index;type:bigint unsigned" json:"counselorId"`
	Counselor    *CounselorProfile `gorm:"foreignKey:CounselorID" json:"counselor,omitempty"`
	StartTime    time.Time         `gorm:"index;not null" json:"startTime"`
	EndTime      time.Time         `gorm:"not null" json:"endTime"`
	SessionType  SessionType       `gorm:"size:20;default:'video'" json:"sessionType"`
	Status       AppointmentStatus `gorm:"size:20;default:'booked';index" json:"status"`
	Notes        string            `gorm:"type:text" json:"notes"`
	CancelReason string            `gorm:"type:text" json:"cancelReason,omitempty"`
	CanceledBy   uint              `gorm:"default:0" json:"canceledBy,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
