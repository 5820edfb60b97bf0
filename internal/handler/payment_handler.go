package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.POST("/payments/create/:checkoutId", h.create, middleware.AuthJWT(cfg))

	//通知はゲートウェイが叩く。真正性確認はゲートウェイSDKに委ねるのでルートは開けておく
	e.POST("/payments/notification", h.notification)
}

func (h *PaymentHandler) create(c echo.Context) error {
	checkoutID, err := strconv.ParseInt(c.Param("checkoutId"), 10, 64)
	if err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid id", nil)
	}

	out, err := h.uc.CreatePayment(c.Request().Context(), checkoutID)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusCreated, "Payment transaction created", out)
}

func (h *PaymentHandler) notification(c echo.Context) error {
	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid body", nil)
	}

	out, err := h.uc.HandleNotification(c.Request().Context(), payload)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "Notification processed", out)
}
