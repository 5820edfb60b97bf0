package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CheckoutGormRepository struct {
	db *gorm.DB
}

func NewCheckoutGormRepository(db *gorm.DB) *CheckoutGormRepository {
	return &CheckoutGormRepository{db: db}
}

func (r *CheckoutGormRepository) Create(ctx context.Context, checkout model.Checkout) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&checkout).Error; err != nil {
		return 0, err
	}
	return checkout.ID, nil
}

func (r *CheckoutGormRepository) FindByID(ctx context.Context, checkoutID int64) (model.Checkout, error) {
	var c model.Checkout
	err := r.db.WithContext(ctx).Where("id = ?", checkoutID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Checkout{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Checkout{}, err
	}
	return c, nil
}

func (r *CheckoutGormRepository) FindDetailByID(ctx context.Context, checkoutID int64) (model.Checkout, error) {
	var c model.Checkout
	err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Items").
		Preload("Items.Product").
		Where("id = ?", checkoutID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Checkout{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Checkout{}, err
	}
	return c, nil
}

// 管理画面の注文一覧。ネスト込みで新しい順。
func (r *CheckoutGormRepository) ListAllDetailed(ctx context.Context) ([]model.Checkout, error) {
	var items []model.Checkout
	err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("User").
		Preload("Payment").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return []model.Checkout{}, err
	}
	return items, nil
}

func (r *CheckoutGormRepository) UpdateStatus(ctx context.Context, checkoutID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Checkout{}).
		Where("id = ?", checkoutID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
