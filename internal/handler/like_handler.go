package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type LikeHandler struct {
	uc *usecase.LikeUsecase
}

func NewLikeHandler(uc *usecase.LikeUsecase) *LikeHandler {
	return &LikeHandler{uc: uc}
}

type ToggleLikeRequest struct {
	ProductID int64 `json:"product_id"`
}

func (h *LikeHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/likes")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.toggle)
	g.GET("", h.list)
}

func (h *LikeHandler) toggle(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return writeJSON(c, http.StatusUnauthorized, "unauthorized", nil)
	}

	var req ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid body", nil)
	}

	out, err := h.uc.Toggle(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "Like toggled", out)
}

func (h *LikeHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return writeJSON(c, http.StatusUnauthorized, "unauthorized", nil)
	}

	out, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "Likes retrieved", out)
}
