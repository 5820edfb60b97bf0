package repository

import (
	"context"

	"app/internal/domain/model"
)

// 住所(Address)を保存・取得する窓口。
// チェックアウトごとに新しい住所行を作るので、更新・削除は持たない。
type AddressRepository interface {
	//作成後はaddress（IDが埋まったもの）を返す
	Create(ctx context.Context, address model.Address) (model.Address, error)
}
