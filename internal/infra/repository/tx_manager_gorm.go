package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	addresses     repo.AddressRepository
	products      repo.ProductRepository
	inventory     repo.InventoryRepository
	checkouts     repo.CheckoutRepository
	checkoutItems repo.CheckoutItemRepository
}

func (r *txReposGorm) Addresses() repo.AddressRepository          { return r.addresses }
func (r *txReposGorm) Products() repo.ProductRepository           { return r.products }
func (r *txReposGorm) Inventory() repo.InventoryRepository        { return r.inventory }
func (r *txReposGorm) Checkouts() repo.CheckoutRepository         { return r.checkouts }
func (r *txReposGorm) CheckoutItems() repo.CheckoutItemRepository { return r.checkoutItems }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			addresses:     NewAddressGormRepository(tx),
			products:      NewProductGormRepository(tx),
			inventory:     NewInventoryGormRepository(tx),
			checkouts:     NewCheckoutGormRepository(tx),
			checkoutItems: NewCheckoutItemGormRepository(tx),
		}
		return fn(r)
	})
}
