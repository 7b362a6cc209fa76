// Package reports contains the derived-data types and pure aggregation
// logic behind the monthly report endpoints: type summaries, category
// breakdowns, dense daily series, and budget status merging. Nothing in
// this package touches the database; services fetch owner-scoped rows
// and hand them here.
package reports

import (
	"math"

	"pennywise/internal/models"
	"pennywise/internal/month"
)

// Summary holds income and expense totals for one month, in cents.
type Summary struct {
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Net     int64  `json:"net"`
	Month   string `json:"month"`
}

// NewSummary builds a Summary from per-type totals. Types with no
// transactions default to zero; Net is income minus expense.
func NewSummary(m string, totalsByType map[models.TransactionType]int64) Summary {
	income := totalsByType[models.TransactionTypeIncome]
	expense := totalsByType[models.TransactionTypeExpense]
	return Summary{
		Income:  income,
		Expense: expense,
		Net:     income - expense,
		Month:   m,
	}
}

// BreakdownRow is one category's share of a month's transactions of a
// single type.
type BreakdownRow struct {
	CategoryID    string `json:"category_id"`
	CategoryName  string `json:"category_name"`
	CategoryColor string `json:"category_color"`
	Total         int64  `json:"total"`
	Count         int64  `json:"count"`
	Percentage    int    `json:"percentage"`
}

// Breakdown is the per-category aggregate for one month and type.
type Breakdown struct {
	Rows  []BreakdownRow         `json:"breakdown"`
	Total int64                  `json:"total"`
	Month string                 `json:"month"`
	Type  models.TransactionType `json:"type"`
}

// NewBreakdown computes the grand total and each row's whole-number
// percentage share of it. Rows keep the order they arrive in (the query
// sorts by total descending). When the grand total is zero every
// percentage is zero rather than dividing by zero.
func NewBreakdown(m string, t models.TransactionType, rows []BreakdownRow) Breakdown {
	var grandTotal int64
	for i := range rows {
		grandTotal += rows[i].Total
	}

	for i := range rows {
		if grandTotal > 0 {
			rows[i].Percentage = roundPct(rows[i].Total, grandTotal)
		} else {
			rows[i].Percentage = 0
		}
	}

	if rows == nil {
		rows = []BreakdownRow{}
	}

	return Breakdown{
		Rows:  rows,
		Total: grandTotal,
		Month: m,
		Type:  t,
	}
}

// DailyPoint is one day's income and expense totals.
type DailyPoint struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// BuildDailySeries groups transactions by day of month into a dense slice
// of exactly DaysInMonth entries, index i holding day i+1. Days without
// activity stay zero instead of being omitted so chart consumers never
// have to handle gaps.
func BuildDailySeries(m string, transactions []models.Transaction) ([]DailyPoint, error) {
	days, err := month.DaysInMonth(m)
	if err != nil {
		return nil, err
	}

	series := make([]DailyPoint, days)
	for i := range series {
		series[i] = DailyPoint{
			Day:  i + 1,
			Date: month.Day(m, i+1),
		}
	}

	for i := range transactions {
		tx := &transactions[i]
		idx := tx.Date.UTC().Day() - 1
		if idx < 0 || idx >= days {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			series[idx].Income += tx.Amount
		case models.TransactionTypeExpense:
			series[idx].Expense += tx.Amount
		}
	}

	return series, nil
}

// BudgetStatus is a budget joined with its actual spend for the month.
type BudgetStatus struct {
	Budget     models.Budget `json:"budget"`
	Spent      int64         `json:"spent"`
	Percentage int           `json:"percentage"`
	Exceeded   bool          `json:"exceeded"`
}

// MergeBudgets joins budgets against per-category expense totals.
// Percentage is clamped to 100 while Exceeded compares the unclamped
// spend, so a budget at exactly its limit reads 100% without being
// flagged and one over it reads 100% with the flag set. Output order
// follows input budget order.
func MergeBudgets(budgets []models.Budget, spentByCategory map[string]int64) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.CategoryID]

		pct := 0
		if b.LimitAmount > 0 {
			pct = roundPct(spent, b.LimitAmount)
			if pct > 100 {
				pct = 100
			}
		}

		statuses = append(statuses, BudgetStatus{
			Budget:     b,
			Spent:      spent,
			Percentage: pct,
			Exceeded:   spent > b.LimitAmount,
		})
	}
	return statuses
}

// Dashboard bundles the three monthly aggregates a dashboard render needs.
type Dashboard struct {
	Summary   Summary      `json:"summary"`
	Breakdown Breakdown    `json:"breakdown"`
	Daily     []DailyPoint `json:"daily"`
}

func roundPct(part, whole int64) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
