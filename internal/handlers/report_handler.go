package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/services"
)

// ReportHandler handles monthly report requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlySummary handles the monthly income/expense summary.
// @Summary     Get monthly summary
// @Description Get income, expense, and net totals for a month
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string true "Month in YYYY-MM format"
// @Success     200 {object} reports.Summary "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid month format"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Data unavailable"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetMonthlySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.GetMonthlySummary(userID, c.Query("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCategoryBreakdown handles the per-category aggregate for a month.
// @Summary     Get category breakdown
// @Description Get per-category totals for one transaction type in a month
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string true  "Month in YYYY-MM format"
// @Param       type  query string false "Transaction type (income/expense, default expense)"
// @Success     200 {object} reports.Breakdown "Category breakdown"
// @Failure     400 {object} ErrorResponse "Invalid month format or type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Data unavailable"
// @Router      /reports/category-breakdown [get]
func (h *ReportHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionType := models.TransactionTypeExpense
	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		if t != models.TransactionTypeIncome && t != models.TransactionTypeExpense {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'income' or 'expense'"))
			return
		}
		transactionType = t
	}

	breakdown, err := h.reportService.GetCategoryBreakdown(userID, c.Query("month"), transactionType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// GetDailySpending handles the dense per-day series for a month.
// @Summary     Get daily spending
// @Description Get income and expense totals for every calendar day of a month
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string true "Month in YYYY-MM format"
// @Success     200 {array} reports.DailyPoint "Daily series"
// @Failure     400 {object} ErrorResponse "Invalid month format"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Data unavailable"
// @Router      /reports/daily-spending [get]
func (h *ReportHandler) GetDailySpending(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	daily, err := h.reportService.GetDailySpending(userID, c.Query("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily": daily})
}

// GetDashboard handles the combined dashboard payload for a month.
// @Summary     Get dashboard
// @Description Get the monthly summary, expense breakdown, and daily series in one response
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string true "Month in YYYY-MM format"
// @Success     200 {object} reports.Dashboard "Dashboard aggregates"
// @Failure     400 {object} ErrorResponse "Invalid month format"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Data unavailable"
// @Router      /reports/dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.reportService.GetDashboard(userID, c.Query("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
