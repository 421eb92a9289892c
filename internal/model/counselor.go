package model

type CounselorStatus string

const (
	CounselorPending  CounselorStatus = "pending"
	CounselorVerified CounselorStatus = "verified"
	CounselorRejected CounselorStatus = "rejected"
)

// CounselorProfile is the professional profile attached to a user with the
// counselor role. Browsing and booking only surface verified profiles.
// swagger:model CounselorProfile
type CounselorProfile struct {
	BaseModel
	UserID          uint            `gorm:"uniqueIndex;type:bigint unsigned" json:"userId"`
	User            *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bio             string          `gorm:"type:text" json:"bio"`
	Specializations []string        `gorm:"serializer:json;type:json" json:"specializations"`
	Languages       []string        `gorm:"serializer:json;type:json" json:"languages"`
	ExperienceYears int             `gorm:"default:0" json:"experienceYears"`
	SessionFee      float64         `gorm:"default:0" json:"sessionFee"`
	Status          CounselorStatus `gorm:"size:20;default:'pending';index" json:"status"`
	RejectionReason string          `gorm:"type:text" json:"rejectionReason,omitempty"`
	Rating          float64         `gorm:"default:0" json:"rating"`
	RatingCount     int             `gorm:"default:0" json:"ratingCount"`
}

func (CounselorProfile) TableName() string {
	return "counselor_profiles"
}
