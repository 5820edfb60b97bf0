package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	CategoryID  int64  `json:"category_id"`
}

type ProductImageRequest struct {
	ImageURL string `json:"image_url"`
	AltImage string `json:"alt_image"`
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin/products")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.remove)
	admin.POST("/:id/images", h.addImage)
	admin.DELETE("/images/:imageId", h.removeImage)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid body", nil)
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusCreated, "Product created", out)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid id", nil)
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid body", nil)
	}

	out, err := h.uc.Update(c.Request().Context(), id, usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "Product updated", out)
}

func (h *AdminProductHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid id", nil)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "Product deleted", nil)
}

func (h *AdminProductHandler) addImage(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid id", nil)
	}

	var req ProductImageRequest
	if err := c.Bind(&req); err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid body", nil)
	}

	out, err := h.uc.AddImage(c.Request().Context(), id, usecase.ProductImageInput{
		ImageURL: req.ImageURL,
		AltImage: req.AltImage,
	})
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusCreated, "Image added", out)
}

func (h *AdminProductHandler) removeImage(c echo.Context) error {
	imageID, err := strconv.ParseInt(c.Param("imageId"), 10, 64)
	if err != nil {
		return writeJSON(c, http.StatusBadRequest, "invalid id", nil)
	}

	if err := h.uc.DeleteImage(c.Request().Context(), imageID); err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, http.StatusOK, "Image deleted", nil)
}
