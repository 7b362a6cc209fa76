package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/month"
	"pennywise/internal/reports"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a new monthly budget for a category. The month must
// be a valid YYYY-MM string, the category must belong to the user, and at
// most one live budget may exist per (user, category, month).
func (s *budgetService) CreateBudget(userID, categoryID, m string, limitAmount int64) (*models.Budget, error) {
	if !month.Valid(m) {
		return nil, apperrors.ErrInvalidMonthFormat
	}
	if limitAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit amount must be greater than zero")
	}

	// Verify category exists and belongs to user
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category_id = ? AND month = ?", userID, categoryID, m).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateBudget
	}

	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  categoryID,
		Month:       m,
		LimitAmount: limitAmount,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	budget.Category = category
	return budget, nil
}

// GetBudgetsWithStatus returns one status entry per budget the user set
// for the month, joining each limit against the actual expense total for
// its category. Budgets keep their creation order; categories without
// expenses that month report zero spend.
func (s *budgetService) GetBudgetsWithStatus(userID, m string) ([]reports.BudgetStatus, error) {
	rng, err := month.Resolve(m)
	if err != nil {
		return nil, err
	}

	var budgets []models.Budget
	if err := s.db.Preload("Category").
		Where("user_id = ? AND month = ?", userID, m).
		Order("created_at ASC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataUnavailable, err)
	}

	var rows []struct {
		CategoryID string
		Total      int64
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("category_id, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?",
			userID, models.TransactionTypeExpense, rng.Start, rng.End).
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataUnavailable, err)
	}

	spent := make(map[string]int64, len(rows))
	for _, r := range rows {
		spent[r.CategoryID] = r.Total
	}

	return reports.MergeBudgets(budgets, spent), nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget changes a budget's limit amount. Month and category are
// fixed at creation; a different month gets its own budget row.
func (s *budgetService) UpdateBudget(userID, budgetID string, limitAmount int64) (*models.Budget, error) {
	if limitAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit amount must be greater than zero")
	}

	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(budget).Update("limit_amount", limitAmount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
