package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, payment model.Payment) (model.Payment, error) {
	err := r.db.WithContext(ctx).Create(&payment).Error
	//checkout_idのunique違反（同じ注文に2回目の支払い作成）
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.Payment{}, repo.ErrConflict
	}
	if err != nil {
		return model.Payment{}, err
	}
	return payment, nil
}

func (r *PaymentGormRepository) FindByOrderRef(ctx context.Context, orderRef string) (model.Payment, error) {
	var p model.Payment
	err := r.db.WithContext(ctx).Where("order_ref = ?", orderRef).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Payment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Payment{}, err
	}
	return p, nil
}

func (r *PaymentGormRepository) FindByCheckoutID(ctx context.Context, checkoutID int64) (model.Payment, error) {
	var p model.Payment
	err := r.db.WithContext(ctx).Where("checkout_id = ?", checkoutID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Payment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Payment{}, err
	}
	return p, nil
}

// 通知の内容で上書きする。同じ通知なら何度適用しても同じ行になる。
func (r *PaymentGormRepository) ApplyNotification(ctx context.Context, paymentID int64, upd repo.PaymentNotificationUpdate) error {
	res := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ?", paymentID).
		Updates(map[string]interface{}{
			"status":  upd.Status,
			"method":  upd.Method,
			"paid_at": upd.PaidAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
