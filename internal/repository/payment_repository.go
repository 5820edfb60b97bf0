package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

// 通知による上書き更新の内容。同じ通知なら必ず同じ値になる（冪等）。
type PaymentNotificationUpdate struct {
	Status model.PaymentStatus
	Method string
	PaidAt *time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment model.Payment) (model.Payment, error)

	//ゲートウェイに渡した外部参照からの逆引き
	FindByOrderRef(ctx context.Context, orderRef string) (model.Payment, error)

	FindByCheckoutID(ctx context.Context, checkoutID int64) (model.Payment, error)

	ApplyNotification(ctx context.Context, paymentID int64, upd PaymentNotificationUpdate) error
}
