package entity

import (
	"time"

	"gorm.io/datatypes"
)

// User is the Clerk-synced user row. FavoriteTools and RecentTools hold
// catalog tool ids and back the user dashboard.
type User struct {
	ID            string                      `gorm:"primaryKey;size:64"` // Clerk user_id
	Email         string                      `gorm:"size:255"`
	Name          string                      `gorm:"size:100"`
	AvatarURL     string                      `gorm:"size:500"`
	Role          string                      `gorm:"size:16;default:user"`
	FavoriteTools datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	RecentTools   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
