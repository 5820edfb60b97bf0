package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReviewUsecase struct {
	reviews  repo.ReviewRepository
	products repo.ProductRepository
}

func NewReviewUsecase(reviews repo.ReviewRepository, products repo.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, products: products}
}

type CreateReviewInput struct {
	ProductID int64
	Review    string
}

func (u *ReviewUsecase) Create(ctx context.Context, userID int64, in CreateReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var issues []FieldIssue
	if in.ProductID <= 0 {
		issues = append(issues, FieldIssue{Field: "product_id", Message: "required"})
	}
	if strings.TrimSpace(in.Review) == "" {
		issues = append(issues, FieldIssue{Field: "review", Message: "required"})
	}
	if len(issues) > 0 {
		return model.Review{}, NewValidationError(issues...)
	}

	if _, err := u.products.FindByID(ctx, in.ProductID); err != nil {
		if err == repo.ErrNotFound {
			return model.Review{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	review, err := u.reviews.Create(ctx, model.Review{
		ProductID: in.ProductID,
		UserID:    userID,
		Review:    strings.TrimSpace(in.Review),
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return review, nil
}

func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	if productID <= 0 {
		return []model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	items, err := u.reviews.ListByProductID(ctx, productID)
	if err != nil {
		return []model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
