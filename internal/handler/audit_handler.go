package handler

import (
	"net/http"

	"fleetadmin/internal/logger"
	"fleetadmin/internal/middleware"
	"fleetadmin/internal/service"
	"fleetadmin/pkg/pagination"
	"fleetadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
	auth         *middleware.Auth
	logger       *logger.Logger
}

func NewAuditHandler(auditService service.AuditService, auth *middleware.Auth, log *logger.Logger) *AuditHandler {
	return &AuditHandler{auditService: auditService, auth: auth, logger: log}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/audit-logs")
	group.Use(h.auth.RequireRole(middleware.RoleAdmin, middleware.RoleManager))
	{
		group.GET("", h.GetAuditLogs)
		group.GET("/entity/:id", h.GetEntityHistory)
	}
}

// GetAuditLogs returns the tax settings audit trail
// @Summary      Get audit logs
// @Description  Who changed which tax rule or recorded which charge, newest first
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	p := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, pagination.NewPage(logs, total, p)))
}

// GetEntityHistory returns the audit trail of one tax rule or charge
// @Summary      Get entity history
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        id     path      string  true   "Tax rule or charge ID"
// @Param        page   query     int     false  "Page number (default 1)"
// @Param        limit  query     int     false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      400    {object}  response.Response
// @Router       /api/audit-logs/entity/{id} [get]
func (h *AuditHandler) GetEntityHistory(c *gin.Context) {
	p := pagination.Parse(c)

	logs, total, err := h.auditService.GetEntityHistory(c.Request.Context(), c.Param("id"), p.Page, p.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, pagination.NewPage(logs, total, p)))
}
