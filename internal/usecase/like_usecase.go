package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type LikeUsecase struct {
	likes    repo.LikeRepository
	products repo.ProductRepository
}

func NewLikeUsecase(likes repo.LikeRepository, products repo.ProductRepository) *LikeUsecase {
	return &LikeUsecase{likes: likes, products: products}
}

type ToggleLikeOutput struct {
	Liked bool `json:"liked"`
}

// Toggleは同じ(user, product)の2回目で取り消しになる。
func (u *LikeUsecase) Toggle(ctx context.Context, userID, productID int64) (ToggleLikeOutput, error) {
	if userID <= 0 {
		return ToggleLikeOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return ToggleLikeOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return ToggleLikeOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return ToggleLikeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing, err := u.likes.FindByUserAndProduct(ctx, userID, productID)
	if err != nil && err != repo.ErrNotFound {
		return ToggleLikeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err == nil {
		if err := u.likes.Delete(ctx, existing.ID); err != nil {
			return ToggleLikeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return ToggleLikeOutput{Liked: false}, nil
	}

	if err := u.likes.Create(ctx, model.Like{UserID: userID, ProductID: productID}); err != nil {
		return ToggleLikeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ToggleLikeOutput{Liked: true}, nil
}

func (u *LikeUsecase) ListByUser(ctx context.Context, userID int64) ([]model.Like, error) {
	if userID <= 0 {
		return []model.Like{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.likes.ListByUserID(ctx, userID)
	if err != nil {
		return []model.Like{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
