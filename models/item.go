package models

import (
	"time"

	"gorm.io/gorm"
)

// Item represents a single clothing item in a user's wardrobe.
// SubCategory must belong to the subcategory list of its MainCategory
// (see wardrobe.ValidCategory); this is enforced at write time, not by
// the database schema.
type Item struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"` // foreign key to users table
	ImageURL      string         `gorm:"not null" json:"imageUrl"`
	Brand         string         `gorm:"not null" json:"brand"`
	Color         string         `gorm:"not null" json:"color"`
	MainCategory  string         `gorm:"not null;index" json:"mainCategory"` // Tops, Bottoms, Jackets/Coats, Dresses, Shoes, Accessories
	SubCategory   string         `gorm:"not null" json:"subCategory"`
	NumberOfWears int            `gorm:"not null;default:0" json:"numberOfWears"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// DisplayName returns the name shown for the item in the wardrobe view,
// e.g. "Blue Levi's Jeans".
func (i Item) DisplayName() string {
	return i.Color + " " + i.Brand + " " + i.SubCategory
}
