package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

type CategoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/categories", h.list)
	e.GET("/categories/:id", h.detail)

	admin := e.Group("/admin/categories")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.remove)
}

func (h *CategoryHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "Categories retrieved", out)
}

func (h *CategoryHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid id", nil)
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "Category retrieved", out)
}

func (h *CategoryHandler) create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid body", nil)
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CategoryInput{Name: req.Name})
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusCreated, "Category created", out)
}

func (h *CategoryHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid id", nil)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid body", nil)
	}

	out, err := h.uc.Update(c.Request().Context(), id, usecase.CategoryInput{Name: req.Name})
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "Category updated", out)
}

func (h *CategoryHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid id", nil)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "Category deleted", nil)
}
