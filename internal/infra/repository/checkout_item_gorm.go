package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type CheckoutItemGormRepository struct {
	db *gorm.DB
}

func NewCheckoutItemGormRepository(db *gorm.DB) *CheckoutItemGormRepository {
	return &CheckoutItemGormRepository{db: db}
}

func (r *CheckoutItemGormRepository) CreateBulk(ctx context.Context, checkoutID int64, items []model.CheckoutItem) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]model.CheckoutItem, 0, len(items))
	for _, it := range items {
		it.CheckoutID = checkoutID
		it.Product = nil
		rows = append(rows, it)
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}
