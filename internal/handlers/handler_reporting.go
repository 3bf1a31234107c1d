package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portssvc "github.com/SscSPs/financial_reports_app/internal/core/ports/services"
	"github.com/SscSPs/financial_reports_app/internal/dto"
	"github.com/SscSPs/financial_reports_app/internal/middleware"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// RegisterReportingRoutes registers report routes under a group that binds :upload_id.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}

	rg.GET("/branches", h.getBranches)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/dre", h.getDRE)
		reports.GET("/dre/compare", h.getDREComparison)
		reports.GET("/dre/monthly", h.getDREByMonth)
		reports.GET("/top-vendors", h.getTopVendors)
		reports.GET("/top-clients", h.getTopClients)
		reports.GET("/expenses/by-category", h.getExpensesByCategory)
		reports.GET("/expenses/by-cost-center", h.getExpensesByCostCenter)
		reports.GET("/monthly-evolution", h.getMonthlyEvolution)
		reports.GET("/vendors/:name", h.getVendorDetail)
		reports.GET("/clients/:name", h.getClientDetail)
		reports.GET("/payroll", h.getPayroll)
		reports.GET("/bank-balances", h.getBankBalances)
	}
}

type reportFunc func(ctx context.Context, scope domain.Scope, params dto.ReportQueryParams) (any, error)

// serve binds the scope parameters, resolves the branch scope and writes the
// report wrapped in its scope envelope.
func (h *reportingHandler) serve(c *gin.Context, report string, fn reportFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("upload_id", c.Param("upload_id")),
		slog.String("report", report),
	)

	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind report query params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	view, err := domain.ParseViewMode(params.ViewMode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	codes, err := params.BranchCodes()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	branches, err := h.reportingService.ResolveBranchScope(ctx, c.Param("upload_id"), codes)
	if err != nil {
		writeServiceError(c, logger, err, "resolve branch scope")
		return
	}
	scope := domain.Scope{
		UploadID: c.Param("upload_id"),
		Month:    params.Month,
		Branches: branches,
		ViewMode: view,
	}

	data, err := fn(ctx, scope, params)
	if err != nil {
		writeServiceError(c, logger, err, "generate "+report+" report")
		return
	}
	logger.Debug("Report generated")
	c.JSON(http.StatusOK, dto.NewReportResponse(scope, data))
}

// getBranches godoc
// @Summary List branches of an upload
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Success 200 {object} dto.BranchesResponse
// @Failure 500 {object} map[string]string "Failed to list branches"
// @Security BearerAuth
// @Router /uploads/{upload_id}/branches [get]
func (h *reportingHandler) getBranches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branches, err := h.reportingService.AvailableBranches(c.Request.Context(), c.Param("upload_id"))
	if err != nil {
		writeServiceError(c, logger, err, "list branches")
		return
	}
	c.JSON(http.StatusOK, dto.BranchesResponse{Branches: branches})
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description KPIs, top vendors and clients, and expense distributions. Revenue counts received money only.
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param month query int false "Month (1-12)"
// @Param branches query string false "Comma separated branch codes or 'consolidated'"
// @Param viewMode query string false "realized, projected or all" default(all)
// @Param limit query int false "Size of the top lists" default(10)
// @Success 200 {object} dto.ReportResponse[domain.DashboardSummary]
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	h.serve(c, "dashboard", func(ctx context.Context, scope domain.Scope, p dto.ReportQueryParams) (any, error) {
		return h.reportingService.DashboardSummary(ctx, scope, p.Limit)
	})
}

// getDRE godoc
// @Summary DRE (income statement)
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param month query int false "Month (1-12)"
// @Param branches query string false "Comma separated branch codes or 'consolidated'"
// @Param viewMode query string false "realized, projected or all" default(all)
// @Success 200 {object} dto.ReportResponse[domain.DRESummary]
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/dre [get]
func (h *reportingHandler) getDRE(c *gin.Context) {
	h.serve(c, "dre", func(ctx context.Context, scope domain.Scope, _ dto.ReportQueryParams) (any, error) {
		return h.reportingService.DRESummary(ctx, scope)
	})
}

// getDREComparison godoc
// @Summary DRE for the month next to the whole period
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param month query int false "Month (1-12)"
// @Param branches query string false "Comma separated branch codes or 'consolidated'"
// @Param viewMode query string false "realized, projected or all" default(all)
// @Success 200 {object} dto.ReportResponse[domain.DREComparison]
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/dre/compare [get]
func (h *reportingHandler) getDREComparison(c *gin.Context) {
	h.serve(c, "dre comparison", func(ctx context.Context, scope domain.Scope, _ dto.ReportQueryParams) (any, error) {
		return h.reportingService.DREComparison(ctx, scope)
	})
}

// getDREByMonth godoc
// @Summary DRE pivoted by month
// @Description One column per month with activity plus a total column. The month parameter is ignored.
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param branches query string false "Comma separated branch codes or 'consolidated'"
// @Param viewMode query string false "realized, projected or all" default(all)
// @Success 200 {object} dto.ReportResponse[domain.DREByMonth]
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/dre/monthly [get]
func (h *reportingHandler) getDREByMonth(c *gin.Context) {
	h.serve(c, "dre by month", func(ctx context.Context, scope domain.Scope, _ dto.ReportQueryParams) (any, error) {
		return h.reportingService.DREByMonth(ctx, scope)
	})
}

// getTopVendors godoc
// @Summary Top vendors by amount paid
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param month query int false "Month (1-12)"
// @Param branches query string false "Comma separated branch codes or 'consolidated'"
// @Param viewMode query string false "realized, projected or all" default(all)
// @Param limit query int false "Number of vendors" default(10)
// @Success 200 {object} dto.ReportResponse[[]domain.Rollup]
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/top-vendors [get]
func (h *reportingHandler) getTopVendors(c *gin.Context) {
	h.serve(c, "top vendors", func(ctx context.Context, scope domain.Scope, p dto.ReportQueryParams) (any, error) {
		return h.reportingService.TopVendors(ctx, scope, p.Limit)
	})
}

// getTopClients godoc
// @Summary Top clients by amount received
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param month query int false "Month (1-12)"
// @Param branches query string false "Comma separated branch codes or 'consolidated'"
// @Param viewMode query string false "realized, projected or all" default(all)
// @Param limit query int false "Number of clients" default(10)
// @Success 200 {object} dto.ReportResponse[[]domain.Rollup]
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/top-clients [get]
func (h *reportingHandler) getTopClients(c *gin.Context) {
	h.serve(c, "top clients", func(ctx context.Context, scope domain.Scope, p dto.ReportQueryParams) (any, error) {
		return h.reportingService.TopClients(ctx, scope, p.Limit)
	})
}

// getExpensesByCategory godoc
// @Summary Paid expenses by category
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param month query int false "Month (1-12)"
// @Param branches query string false "Comma separated branch codes or 'consolidated'"
// @Param viewMode query string false "realized, projected or all" default(all)
// @Success 200 {object} dto.ReportResponse[[]domain.Breakdown]
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/expenses/by-category [get]
func (h *reportingHandler) getExpensesByCategory(c *gin.Context) {
	h.serve(c, "expenses by category", func(ctx context.Context, scope domain.Scope, _ dto.ReportQueryParams) (any, error) {
		return h.reportingService.ExpensesByCategory(ctx, scope)
	})
}

// getExpensesByCostCenter godoc
// @Summary Paid expenses by cost center
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param month query int false "Month (1-12)"
// @Param branches query string false "Comma separated branch codes or 'consolidated'"
// @Param viewMode query string false "realized, projected or all" default(all)
// @Success 200 {object} dto.ReportResponse[[]domain.Breakdown]
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/expenses/by-cost-center [get]
func (h *reportingHandler) getExpensesByCostCenter(c *gin.Context) {
	h.serve(c, "expenses by cost center", func(ctx context.Context, scope domain.Scope, _ dto.ReportQueryParams) (any, error) {
		return h.reportingService.ExpensesByCostCenter(ctx, scope)
	})
}

// getMonthlyEvolution godoc
// @Summary Settled revenue and expense per month
// @Description Ignores viewMode and month, respects branches.
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param branches query string false "Comma separated branch codes or 'consolidated'"
// @Success 200 {object} dto.ReportResponse[[]domain.MonthlyPoint]
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/monthly-evolution [get]
func (h *reportingHandler) getMonthlyEvolution(c *gin.Context) {
	h.serve(c, "monthly evolution", func(ctx context.Context, scope domain.Scope, _ dto.ReportQueryParams) (any, error) {
		return h.reportingService.MonthlyEvolution(ctx, scope)
	})
}

// getVendorDetail godoc
// @Summary Payables of one vendor
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param name path string true "Vendor name"
// @Param month query int false "Month (1-12)"
// @Param branches query string false "Comma separated branch codes or 'consolidated'"
// @Param viewMode query string false "realized, projected or all" default(all)
// @Success 200 {object} dto.ReportResponse[domain.VendorDetail]
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/vendors/{name} [get]
func (h *reportingHandler) getVendorDetail(c *gin.Context) {
	h.serve(c, "vendor detail", func(ctx context.Context, scope domain.Scope, _ dto.ReportQueryParams) (any, error) {
		return h.reportingService.VendorDetail(ctx, scope, strings.TrimSpace(c.Param("name")))
	})
}

// getClientDetail godoc
// @Summary Receivables of one client
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param name path string true "Client name"
// @Param month query int false "Month (1-12)"
// @Param branches query string false "Comma separated branch codes or 'consolidated'"
// @Param viewMode query string false "realized, projected or all" default(all)
// @Success 200 {object} dto.ReportResponse[domain.ClientDetail]
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/clients/{name} [get]
func (h *reportingHandler) getClientDetail(c *gin.Context) {
	h.serve(c, "client detail", func(ctx context.Context, scope domain.Scope, _ dto.ReportQueryParams) (any, error) {
		return h.reportingService.ClientDetail(ctx, scope, strings.TrimSpace(c.Param("name")))
	})
}

// getPayroll godoc
// @Summary Payroll by area and payment type
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Param month query int false "Month (1-8 on the payroll sheet)"
// @Success 200 {object} dto.ReportResponse[domain.PayrollSummary]
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/payroll [get]
func (h *reportingHandler) getPayroll(c *gin.Context) {
	h.serve(c, "payroll", func(ctx context.Context, scope domain.Scope, _ dto.ReportQueryParams) (any, error) {
		return h.reportingService.PayrollSummary(ctx, scope)
	})
}

// getBankBalances godoc
// @Summary Bank balances
// @Tags reports
// @Produce json
// @Param upload_id path string true "Upload ID"
// @Success 200 {object} dto.ReportResponse[domain.BankBalanceReport]
// @Security BearerAuth
// @Router /uploads/{upload_id}/reports/bank-balances [get]
func (h *reportingHandler) getBankBalances(c *gin.Context) {
	h.serve(c, "bank balances", func(ctx context.Context, scope domain.Scope, _ dto.ReportQueryParams) (any, error) {
		return h.reportingService.BankBalances(ctx, scope.UploadID)
	})
}
