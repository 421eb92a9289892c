package model

import (
	"time"
)

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleCounselor UserRole = "counselor"
	RoleAdmin     UserRole = "admin"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// swagger:model User
type User struct {
	BaseModel
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;unique;not null" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	Role       UserRole  `gorm:"type:enum('user','counselor','admin');default:'user'" json:"role"`
	Age        int       `gorm:"default:0" json:"age"`
	Gender     Gender    `gorm:"size:20" json:"gender"`
	Profession string    `gorm:"size:100" json:"profession"`
	Phone      string    `gorm:"size:30" json:"phone"`
	Disabled   bool      `gorm:"default:false" json:"disabled"`
	LastLogin  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen   time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
