package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Section is one independently editable region of the public site,
// keyed by a stable string id ("hero", "about", ...).
// Content is the schema-shaped JSON blob the admin edits as a whole.
type Section struct {
	ID        uint           `gorm:"primaryKey"`
	SectionID string         `gorm:"uniqueIndex;size:64"`
	Content   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
