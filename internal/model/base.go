package model

import "time"

// Timestamps are the audit fields every document carries. CreatedAt is set
// once at insert; UpdatedAt moves on every write.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// Roles a User account can hold. Contact.Role is unrelated free text.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
