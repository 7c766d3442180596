package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// AnalyticsHandler serves aggregate views of the user's transactions.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetDashboard returns lifetime income, expense and net savings
// @Summary     Dashboard totals
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardSummary "Totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.GetDashboard(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSpendingTrends returns expense totals per month
// @Summary     Monthly spending trends
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.MonthlyTrend "Expense totals by month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/trends [get]
func (h *AnalyticsHandler) GetSpendingTrends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trends, err := h.analyticsService.GetSpendingTrends(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// GetExpensesByCategory returns allocated expense totals per category
// @Summary     Expenses by category
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.CategoryExpense "Expense totals by category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/expenses [get]
func (h *AnalyticsHandler) GetExpensesByCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.analyticsService.GetExpensesByCategory(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// GetExpenseReport renders the expense breakdown as a PDF download
// @Summary     Expense report (PDF)
// @Tags        analytics
// @Produce     application/pdf
// @Security    BearerAuth
// @Success     200 {file} file "PDF report"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/expenses/report [get]
func (h *AnalyticsHandler) GetExpenseReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	pdf, err := h.analyticsService.ExpenseReportPDF(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("expenses-%s.pdf", time.Now().UTC().Format(dateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
