package repository

import (
	"context"

	"app/internal/domain/model"
)

type CheckoutRepository interface {
	Create(ctx context.Context, checkout model.Checkout) (int64, error)
	FindByID(ctx context.Context, checkoutID int64) (model.Checkout, error)

	//住所・明細（商品つき）を含めて1件取得
	FindDetailByID(ctx context.Context, checkoutID int64) (model.Checkout, error)

	//管理者向け。住所・ユーザー・支払い・明細（商品つき）を含めて新しい順
	ListAllDetailed(ctx context.Context) ([]model.Checkout, error)

	UpdateStatus(ctx context.Context, checkoutID int64, status model.OrderStatus) error
}

type CheckoutItemRepository interface {
	CreateBulk(ctx context.Context, checkoutID int64, items []model.CheckoutItem) error
}
