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

type ChargeHandler struct {
	chargeService service.ChargeService
	auth          *middleware.Auth
	logger        *logger.Logger
}

func NewChargeHandler(chargeService service.ChargeService, auth *middleware.Auth, log *logger.Logger) *ChargeHandler {
	return &ChargeHandler{chargeService: chargeService, auth: auth, logger: log}
}

func (h *ChargeHandler) RegisterRoutes(router *gin.RouterGroup) {
	charges := router.Group("/api/charges")
	charges.Use(h.auth.RequireRole(middleware.RoleAdmin, middleware.RoleManager, middleware.RoleStaff))
	{
		charges.POST("", h.RecordCharge)
		charges.GET("", h.ListCharges)
		charges.GET("/:id", h.GetCharge)
	}
}

// RecordCharge prices a ride or delivery and stores its tax breakdown
// @Summary      Record charge
// @Tags         charges
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RecordChargeRequest  true  "Charge"
// @Success      201      {object}  response.Response{data=service.ChargeResponse}
// @Failure      400      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /api/charges [post]
func (h *ChargeHandler) RecordCharge(c *gin.Context) {
	var req service.RecordChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	charge, err := h.chargeService.RecordCharge(c.Request.Context(), req, middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, charge))
}

// ListCharges returns recorded charges, newest first
// @Summary      List charges
// @Tags         charges
// @Security     BearerAuth
// @Produce      json
// @Param        service  query     string  false  "ride or delivery"
// @Param        zone     query     string  false  "Zone"
// @Param        page     query     int     false  "Page number (default 1)"
// @Param        limit    query     int     false  "Number of items per page (default 20)"
// @Success      200      {object}  response.Response{data=object}
// @Router       /api/charges [get]
func (h *ChargeHandler) ListCharges(c *gin.Context) {
	p := pagination.Parse(c)

	charges, total, err := h.chargeService.ListCharges(c.Request.Context(), service.ChargeFilter{
		Service: c.Query("service"),
		Zone:    c.Query("zone"),
		Page:    p.Page,
		Limit:   p.Limit,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, pagination.NewPage(charges, total, p)))
}

// GetCharge returns one charge with its tax lines
// @Summary      Get charge
// @Tags         charges
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Charge ID"
// @Success      200  {object}  response.Response{data=service.ChargeResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/charges/{id} [get]
func (h *ChargeHandler) GetCharge(c *gin.Context) {
	charge, err := h.chargeService.GetCharge(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, charge))
}
