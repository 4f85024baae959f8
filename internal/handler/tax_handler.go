package handler

import (
	"bytes"
	"net/http"
	"time"

	"fleetadmin/internal/logger"
	"fleetadmin/internal/middleware"
	"fleetadmin/internal/service"
	"fleetadmin/pkg/pagination"
	"fleetadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type TaxHandler struct {
	taxService service.TaxService
	auth       *middleware.Auth
	logger     *logger.Logger
}

func NewTaxHandler(taxService service.TaxService, auth *middleware.Auth, log *logger.Logger) *TaxHandler {
	return &TaxHandler{taxService: taxService, auth: auth, logger: log}
}

func (h *TaxHandler) RegisterRoutes(router *gin.RouterGroup) {
	read := h.auth.RequireRole(middleware.RoleAdmin, middleware.RoleManager, middleware.RoleStaff)
	write := h.auth.RequireRole(middleware.RoleAdmin, middleware.RoleManager)

	rules := router.Group("/api/tax-rules")
	{
		rules.GET("", read, h.ListTaxRules)
		rules.GET("/export", write, h.ExportTaxRules)
		rules.GET("/:id", read, h.GetTaxRule)
		rules.POST("", write, h.CreateTaxRule)
		rules.PUT("/:id", write, h.UpdateTaxRule)
		rules.DELETE("/:id", write, h.DeleteTaxRule)
		rules.PATCH("/:id/toggle", write, h.ToggleTaxRuleStatus)
		rules.POST("/bulk", write, h.BulkAction)
		rules.POST("/preview", write, h.PreviewTax)
	}

	calc := router.Group("/api/tax")
	calc.Use(read)
	{
		calc.POST("/calculate", h.CalculateTax)
		calc.POST("/calculate/batch", h.CalculateTaxBatch)
	}
}

// ListTaxRules returns a paginated, filtered list of tax rules
// @Summary      List tax rules
// @Tags         tax
// @Security     BearerAuth
// @Produce      json
// @Param        search         query     string  false  "Search in name or description"
// @Param        tax_type       query     string  false  "percentage, fixed or hybrid"
// @Param        applicable_to  query     string  false  "all, rides_only, delivery_only or specific"
// @Param        status         query     string  false  "active or inactive"
// @Param        page           query     int     false  "Page number (default 1)"
// @Param        limit          query     int     false  "Number of items per page (default 20)"
// @Success      200            {object}  response.Response{data=object}
// @Failure      500            {object}  response.Response
// @Router       /api/tax-rules [get]
func (h *TaxHandler) ListTaxRules(c *gin.Context) {
	p := pagination.Parse(c)

	rules, total, err := h.taxService.ListTaxRules(c.Request.Context(), service.TaxRuleFilter{
		Search:       c.Query("search"),
		TaxType:      c.Query("tax_type"),
		ApplicableTo: c.Query("applicable_to"),
		Status:       c.Query("status"),
		Page:         p.Page,
		Limit:        p.Limit,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, pagination.NewPage(rules, total, p)))
}

// GetTaxRule returns one tax rule
// @Summary      Get tax rule
// @Tags         tax
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Tax rule ID"
// @Success      200  {object}  response.Response{data=service.TaxRuleResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/tax-rules/{id} [get]
func (h *TaxHandler) GetTaxRule(c *gin.Context) {
	rule, err := h.taxService.GetTaxRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rule))
}

// CreateTaxRule creates a new tax rule entry
// @Summary      Create tax rule
// @Tags         tax
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.TaxRuleRequest  true  "Tax rule"
// @Success      201      {object}  response.Response{data=service.TaxRuleResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/tax-rules [post]
func (h *TaxHandler) CreateTaxRule(c *gin.Context) {
	var req service.TaxRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rule, err := h.taxService.CreateTaxRule(c.Request.Context(), req, middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rule))
}

// UpdateTaxRule replaces a tax rule's settings
// @Summary      Update tax rule
// @Tags         tax
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Tax rule ID"
// @Param        payload  body      service.TaxRuleRequest  true  "Tax rule"
// @Success      200      {object}  response.Response{data=service.TaxRuleResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/tax-rules/{id} [put]
func (h *TaxHandler) UpdateTaxRule(c *gin.Context) {
	var req service.TaxRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rule, err := h.taxService.UpdateTaxRule(c.Request.Context(), c.Param("id"), req, middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rule))
}

// DeleteTaxRule soft-deletes a tax rule
// @Summary      Delete tax rule
// @Tags         tax
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Tax rule ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/tax-rules/{id} [delete]
func (h *TaxHandler) DeleteTaxRule(c *gin.Context) {
	if err := h.taxService.DeleteTaxRule(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Tax rule deleted"}))
}

// ToggleTaxRuleStatus flips the rule's active switch
// @Summary      Toggle tax rule status
// @Tags         tax
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Tax rule ID"
// @Success      200  {object}  response.Response{data=service.TaxRuleResponse}
// @Router       /api/tax-rules/{id}/toggle [patch]
func (h *TaxHandler) ToggleTaxRuleStatus(c *gin.Context) {
	rule, err := h.taxService.ToggleTaxRuleStatus(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rule))
}

// BulkAction activates, deactivates or deletes several rules at once
// @Summary      Bulk tax rule action
// @Tags         tax
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.BulkTaxRuleActionRequest  true  "Action and rule IDs"
// @Success      200      {object}  response.Response{data=service.BulkActionResponse}
// @Router       /api/tax-rules/bulk [post]
func (h *TaxHandler) BulkAction(c *gin.Context) {
	var req service.BulkTaxRuleActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.taxService.BulkAction(c.Request.Context(), req, middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, resp))
}

// ExportTaxRules downloads every tax rule as CSV
// @Summary      Export tax rules
// @Tags         tax
// @Security     BearerAuth
// @Produce      text/csv
// @Success      200
// @Router       /api/tax-rules/export [get]
func (h *TaxHandler) ExportTaxRules(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.taxService.ExportTaxRules(c.Request.Context(), &buf); err != nil {
		respondError(c, h.logger, err)
		return
	}

	filename := "tax-rules-" + time.Now().Format("20060102") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// PreviewTax computes a draft rule against a sample amount
// @Summary      Preview tax rule
// @Tags         tax
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.PreviewTaxRequest  true  "Draft rule and amount"
// @Success      200      {object}  response.Response{data=service.TaxCalculationResponse}
// @Router       /api/tax-rules/preview [post]
func (h *TaxHandler) PreviewTax(c *gin.Context) {
	var req service.PreviewTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.taxService.PreviewTax(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// CalculateTax computes taxes for a charge with the live rule set
// @Summary      Calculate tax
// @Tags         tax
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CalculateTaxRequest  true  "Charge context"
// @Success      200      {object}  response.Response{data=service.TaxCalculationResponse}
// @Failure      400      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /api/tax/calculate [post]
func (h *TaxHandler) CalculateTax(c *gin.Context) {
	var req service.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.taxService.CalculateTax(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// CalculateTaxBatch computes taxes for several charges in one call
// @Summary      Calculate tax for many charges
// @Tags         tax
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.BatchCalculateTaxRequest  true  "Charge contexts"
// @Success      200      {object}  response.Response{data=[]service.TaxCalculationResponse}
// @Router       /api/tax/calculate/batch [post]
func (h *TaxHandler) CalculateTaxBatch(c *gin.Context) {
	var req service.BatchCalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.taxService.CalculateTaxBatch(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}
