package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category. A category name is unique per
// (user, type) among live rows, and a category cannot be deleted while any
// transaction still references it.
type Category struct {
	Base
	UserID    string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string       `gorm:"size:30;not null" json:"name"`
	Type      CategoryType `gorm:"not null" json:"type"`
	Color     string       `gorm:"size:7;not null;default:'#6366f1'" json:"color"`
	Icon      string       `gorm:"not null;default:'tag'" json:"icon"`
	IsDefault bool         `gorm:"default:false" json:"is_default"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:CategoryID" json:"budgets,omitempty"`
}
