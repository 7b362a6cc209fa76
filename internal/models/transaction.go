package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// PaymentMethod represents how a transaction was paid
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodBank  PaymentMethod = "bank"
	PaymentMethodOther PaymentMethod = "other"
)

// Transaction represents a single income or expense entry.
// Amounts are stored as int64 cents and must be positive; the sign is
// carried by Type, never by Amount.
type Transaction struct {
	Base
	UserID        string          `gorm:"type:uuid;not null;index:idx_transactions_user_date" json:"user_id"`
	CategoryID    string          `gorm:"type:uuid;not null" json:"category_id"`
	Type          TransactionType `gorm:"not null" json:"type"`
	Amount        int64           `gorm:"type:bigint;not null" json:"amount"`
	Date          time.Time       `gorm:"not null;index:idx_transactions_user_date" json:"date"`
	Note          string          `gorm:"size:200" json:"note"`
	PaymentMethod PaymentMethod   `gorm:"not null;default:'cash'" json:"payment_method"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
