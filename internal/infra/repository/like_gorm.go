package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type LikeGormRepository struct {
	db *gorm.DB
}

func NewLikeGormRepository(db *gorm.DB) *LikeGormRepository {
	return &LikeGormRepository{db: db}
}

func (r *LikeGormRepository) FindByUserAndProduct(ctx context.Context, userID, productID int64) (model.Like, error) {
	var l model.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Like{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Like{}, err
	}
	return l, nil
}

func (r *LikeGormRepository) Create(ctx context.Context, like model.Like) error {
	err := r.db.WithContext(ctx).Create(&like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrConflict
	}
	return err
}

func (r *LikeGormRepository) Delete(ctx context.Context, likeID int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", likeID).Delete(&model.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *LikeGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Like, error) {
	var items []model.Like
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		return []model.Like{}, err
	}
	return items, nil
}
