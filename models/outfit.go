package models

import (
	"time"

	"gorm.io/gorm"
)

// Outfit represents a saved daily outfit photo. One outfit per day is
// assumed by the "today's outfit" check, but no uniqueness constraint is
// enforced; the first match in a day range is treated as authoritative.
type Outfit struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"` // foreign key to users table
	ImageURL  string         `gorm:"not null" json:"imageUrl"`
	Name      string         `gorm:"not null" json:"name"`
	Date      time.Time      `gorm:"not null;index" json:"date"` // day the outfit was worn
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Outfit model
func (Outfit) TableName() string {
	return "outfits"
}
