package repository

import (
	"context"

	"app/internal/domain/model"
)

type LikeRepository interface {
	FindByUserAndProduct(ctx context.Context, userID, productID int64) (model.Like, error)
	Create(ctx context.Context, like model.Like) error
	Delete(ctx context.Context, likeID int64) error

	//商品つきで一覧
	ListByUserID(ctx context.Context, userID int64) ([]model.Like, error)
}
