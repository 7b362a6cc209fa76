package services

import (
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/month"
	"pennywise/internal/reports"
)

// reportService produces the monthly aggregates. Type summaries and
// category breakdowns are grouped in SQL the way the rest of the services
// sum amounts; the daily series fetches the month's rows and groups in Go
// so the day-of-month extraction stays portable between postgres and the
// sqlite test databases.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// GetMonthlySummary sums the user's transactions by type over the month.
// Types with no transactions report zero; a query failure is surfaced as
// DATA_UNAVAILABLE rather than an empty summary, since zeros are also a
// legitimate "no activity" result.
func (s *reportService) GetMonthlySummary(ownerID, m string) (*reports.Summary, error) {
	rng, err := month.Resolve(m)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Type  models.TransactionType
		Total int64
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND date >= ? AND date <= ?", ownerID, rng.Start, rng.End).
		Group("type").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataUnavailable, err)
	}

	totals := make(map[models.TransactionType]int64, len(rows))
	for _, r := range rows {
		totals[r.Type] = r.Total
	}

	summary := reports.NewSummary(m, totals)
	return &summary, nil
}

// GetCategoryBreakdown sums and counts the user's transactions of one type
// grouped by category, sorted by total descending. The inner join on live
// categories drops rows whose category has been deleted, from both the rows
// and the grand total; the type summary intentionally keeps those amounts
// since it never joins categories.
func (s *reportService) GetCategoryBreakdown(ownerID, m string, transactionType models.TransactionType) (*reports.Breakdown, error) {
	rng, err := month.Resolve(m)
	if err != nil {
		return nil, err
	}

	var rows []reports.BreakdownRow
	if err := s.db.Model(&models.Transaction{}).
		Select("transactions.category_id AS category_id, "+
			"categories.name AS category_name, "+
			"categories.color AS category_color, "+
			"COALESCE(SUM(transactions.amount), 0) AS total, "+
			"COUNT(*) AS count").
		Joins("INNER JOIN categories ON categories.id = transactions.category_id AND categories.deleted_at IS NULL").
		Where("transactions.user_id = ? AND transactions.type = ? AND transactions.date >= ? AND transactions.date <= ?",
			ownerID, transactionType, rng.Start, rng.End).
		Group("transactions.category_id, categories.name, categories.color").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataUnavailable, err)
	}

	breakdown := reports.NewBreakdown(m, transactionType, rows)
	return &breakdown, nil
}

// GetDailySpending returns a dense series with one entry per calendar day
// of the month, days without activity staying at zero.
func (s *reportService) GetDailySpending(ownerID, m string) ([]reports.DailyPoint, error) {
	rng, err := month.Resolve(m)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", ownerID, rng.Start, rng.End).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataUnavailable, err)
	}

	return reports.BuildDailySeries(m, transactions)
}

// GetDashboard fetches the summary, expense breakdown, and daily series
// concurrently, mirroring the three parallel requests a dashboard render
// issues. The month is validated once up front so a bad format fails fast
// instead of fanning out.
func (s *reportService) GetDashboard(ownerID, m string) (*reports.Dashboard, error) {
	if !month.Valid(m) {
		return nil, apperrors.ErrInvalidMonthFormat
	}

	var dashboard reports.Dashboard

	var g errgroup.Group
	g.Go(func() error {
		summary, err := s.GetMonthlySummary(ownerID, m)
		if err != nil {
			return err
		}
		dashboard.Summary = *summary
		return nil
	})
	g.Go(func() error {
		breakdown, err := s.GetCategoryBreakdown(ownerID, m, models.TransactionTypeExpense)
		if err != nil {
			return err
		}
		dashboard.Breakdown = *breakdown
		return nil
	})
	g.Go(func() error {
		daily, err := s.GetDailySpending(ownerID, m)
		if err != nil {
			return err
		}
		dashboard.Daily = daily
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
