package repository

import (
	"context"

	"app/internal/domain/model"
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	//公開一覧（カテゴリ・画像つき、新しい順）
	List(ctx context.Context) ([]model.Product, error)

	FindByID(ctx context.Context, productID int64) (model.Product, error)

	//チェックアウト用のバッチ取得
	FindByIDs(ctx context.Context, productIDs []int64) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, productID int64) error

	AddImage(ctx context.Context, img model.ProductImage) (model.ProductImage, error)
	DeleteImage(ctx context.Context, imageID int64) error
}

// 在庫の減算。チェックアウト時の在庫確定（設定で有効化）に使う。
type InventoryRepository interface {
	// 在庫が足りるときだけ減算
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
}
