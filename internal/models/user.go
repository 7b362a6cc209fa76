package models

// User represents the user model in the database.
// Credential and session management live outside this service; a verified
// user ID arrives with each request via the JWT middleware.
type User struct {
	Base
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	FullName string `json:"full_name"`
	Currency string `gorm:"size:3;not null;default:'USD'" json:"currency"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Relationships
	Categories   []Category    `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
}
