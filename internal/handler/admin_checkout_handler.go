package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminCheckoutHandler struct {
	uc *usecase.AdminOrderUsecase
}

func NewAdminCheckoutHandler(uc *usecase.AdminOrderUsecase) *AdminCheckoutHandler {
	return &AdminCheckoutHandler{uc: uc}
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *AdminCheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/checkouts")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.GET("", h.list)
	g.PATCH("/:id/status", h.updateStatus)
}

func (h *AdminCheckoutHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "All checkouts retrieved", out)
}

func (h *AdminCheckoutHandler) updateStatus(c echo.Context) error {
	checkoutID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid id", nil)
	}

	var req OrderStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid body", nil)
	}

	//操作した管理者IDを取得（監査ログ用）
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return writeJSON(c, http.StatusUnauthorized, "unauthorized", nil)
	}

	if err := h.uc.UpdateStatus(
		c.Request().Context(),
		adminID,
		checkoutID,
		usecase.AdminUpdateOrderStatusInput{Status: req.Status},
	); err != nil {
		return writeError(c, err)
	}

	return writeJSON(c, http.StatusOK, "Status updated", nil)
}
