package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GoogleID  *string   `json:"google_id,omitempty" gorm:"type:varchar(255);uniqueIndex"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName  string    `json:"full_name" gorm:"type:varchar(255)"`
	AvatarURL string    `json:"avatar_url" gorm:"type:varchar(1024)"`
	Role      string    `json:"role" gorm:"type:varchar(16);not null;default:USER"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
