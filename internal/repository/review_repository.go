package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review model.Review) (model.Review, error)

	//ユーザー（id/nameのみ意味がある）つきで取得
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
}
