package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutCreateRequest struct {
	Address string                      `json:"address"`
	ZipCode int                         `json:"zip_code"`
	Items   []usecase.CheckoutItemInput `json:"items"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/checkouts")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
	g.GET("/:id", h.detail)
}

func (h *CheckoutHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return writeJSON(c, http.StatusUnauthorized, "unauthorized", nil)
	}

	var req CheckoutCreateRequest
	if err := c.Bind(&req); err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid body", nil)
	}

	out, err := h.uc.CreateCheckout(c.Request().Context(), userID, usecase.CreateCheckoutInput{
		Address: req.Address,
		ZipCode: req.ZipCode,
		Items:   req.Items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeJSON(c, http.StatusCreated, "Checkout successful", out)
}

func (h *CheckoutHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid id", nil)
	}

	out, err := h.uc.GetCheckout(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "Checkout retrieved", out)
}
