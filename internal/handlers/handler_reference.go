package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portssvc "github.com/SscSPs/financial_reports_app/internal/core/ports/services"
	"github.com/SscSPs/financial_reports_app/internal/dto"
	"github.com/SscSPs/financial_reports_app/internal/middleware"
)

type referenceHandler struct {
	reportingService portssvc.ReportingService
}

// RegisterReferenceRoutes registers the read routes of the global reference tables.
func RegisterReferenceRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &referenceHandler{reportingService: reportingService}

	reference := rg.Group("/reference")
	{
		reference.GET("/accounts", h.listAccounts)
		reference.GET("/cost-centers", h.listCostCenters)
		reference.GET("/vendors", h.listVendors)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Accounts merged from every upload, with the category inferred from the code prefix.
// @Tags reference
// @Produce json
// @Param category query string false "revenue, expense, cost_of_goods or other"
// @Success 200 {object} dto.AccountsResponse
// @Failure 400 {object} map[string]string "Unknown category"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /reference/accounts [get]
func (h *referenceHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReferenceQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	category, err := domain.ParseAccountCategory(params.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accounts, err := h.reportingService.ChartOfAccounts(c.Request.Context(), category)
	if err != nil {
		writeServiceError(c, logger, err, "list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.AccountsResponse{Accounts: accounts})
}

// listCostCenters godoc
// @Summary List cost centers
// @Tags reference
// @Produce json
// @Success 200 {object} dto.CostCentersResponse
// @Failure 500 {object} map[string]string "Failed to list cost centers"
// @Security BearerAuth
// @Router /reference/cost-centers [get]
func (h *referenceHandler) listCostCenters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	costCenters, err := h.reportingService.CostCenters(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "list cost centers")
		return
	}
	c.JSON(http.StatusOK, dto.CostCentersResponse{CostCenters: costCenters})
}

// listVendors godoc
// @Summary List vendors
// @Tags reference
// @Produce json
// @Success 200 {object} dto.VendorsResponse
// @Failure 500 {object} map[string]string "Failed to list vendors"
// @Security BearerAuth
// @Router /reference/vendors [get]
func (h *referenceHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendors, err := h.reportingService.Vendors(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "list vendors")
		return
	}
	c.JSON(http.StatusOK, dto.VendorsResponse{Vendors: vendors})
}
