package model

import "time"

// Role is the access level attached to a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered forum member.
type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	FirstName        string    `json:"first_name" gorm:"size:255;not null"`
	LastName         string    `json:"last_name" gorm:"size:255;not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PhoneNumber      string    `json:"phone_number" gorm:"size:32;not null"`
	PasswordHash     string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role             Role      `json:"role" gorm:"size:50;default:'user'"`
	ProfilePhotoPath *string   `json:"profile_photo_path" gorm:"size:255"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"-"` // bookkeeping only, not part of any response
}
