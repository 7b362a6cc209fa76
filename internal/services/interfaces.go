package services

import (
	"time"

	"pennywise/internal/models"
	"pennywise/internal/pagination"
	"pennywise/internal/reports"
)

// ReportServicer defines the contract for monthly aggregation reports.
// Every operation validates the month string before touching data and
// scopes strictly to the given owner.
type ReportServicer interface {
	GetMonthlySummary(ownerID, m string) (*reports.Summary, error)
	GetCategoryBreakdown(ownerID, m string, transactionType models.TransactionType) (*reports.Breakdown, error)
	GetDailySpending(ownerID, m string) ([]reports.DailyPoint, error)
	GetDashboard(ownerID, m string) (*reports.Dashboard, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, color, icon string) (*models.Category, error)
	GetUserCategories(userID string, categoryType *models.CategoryType) ([]models.Category, error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name, color, icon string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Month      *string
	Type       *models.TransactionType
	CategoryID *string
	Search     *string
}

// TransactionUpdate holds optional field updates for a transaction.
// Nil fields are left unchanged.
type TransactionUpdate struct {
	CategoryID    *string
	Type          *models.TransactionType
	Amount        *int64
	Date          *time.Time
	Note          *string
	PaymentMethod *models.PaymentMethod
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, categoryID string, transactionType models.TransactionType, amount int64, date time.Time, note string, paymentMethod models.PaymentMethod) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, categoryID, m string, limitAmount int64) (*models.Budget, error)
	GetBudgetsWithStatus(userID, m string) ([]reports.BudgetStatus, error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, limitAmount int64) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
}
