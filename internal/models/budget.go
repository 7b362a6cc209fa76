package models

// Budget represents a monthly spending limit for one category.
// At most one live budget exists per (user, category, month);
// LimitAmount is int64 cents and always positive.
type Budget struct {
	Base
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  string `gorm:"type:uuid;not null" json:"category_id"`
	Month       string `gorm:"size:7;not null" json:"month"`
	LimitAmount int64  `gorm:"type:bigint;not null" json:"limit_amount"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
