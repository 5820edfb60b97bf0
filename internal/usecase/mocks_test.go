package usecase_test

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	addresses     repo.AddressRepository
	products      repo.ProductRepository
	inventory     repo.InventoryRepository
	checkouts     repo.CheckoutRepository
	checkoutItems repo.CheckoutItemRepository
}

func (r *TxReposMock) Addresses() repo.AddressRepository          { return r.addresses }
func (r *TxReposMock) Products() repo.ProductRepository           { return r.products }
func (r *TxReposMock) Inventory() repo.InventoryRepository        { return r.inventory }
func (r *TxReposMock) Checkouts() repo.CheckoutRepository         { return r.checkouts }
func (r *TxReposMock) CheckoutItems() repo.CheckoutItemRepository { return r.checkoutItems }

// =====================
// Repository mocks
// =====================

type AddressRepoMock struct{ mock.Mock }

func (m *AddressRepoMock) Create(ctx context.Context, address model.Address) (model.Address, error) {
	args := m.Called(ctx, address)
	a, _ := args.Get(0).(model.Address)
	return a, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDs(ctx context.Context, productIDs []int64) ([]model.Product, error) {
	args := m.Called(ctx, productIDs)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(model.Product)
	return out, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *ProductRepoMock) AddImage(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	args := m.Called(ctx, img)
	out, _ := args.Get(0).(model.ProductImage)
	return out, args.Error(1)
}

func (m *ProductRepoMock) DeleteImage(ctx context.Context, imageID int64) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Create(ctx context.Context, review model.Review) (model.Review, error) {
	args := m.Called(ctx, review)
	r, _ := args.Get(0).(model.Review)
	return r, args.Error(1)
}

func (m *ReviewRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.Review)
	return items, args.Error(1)
}

type LikeRepoMock struct{ mock.Mock }

func (m *LikeRepoMock) FindByUserAndProduct(ctx context.Context, userID, productID int64) (model.Like, error) {
	args := m.Called(ctx, userID, productID)
	l, _ := args.Get(0).(model.Like)
	return l, args.Error(1)
}

func (m *LikeRepoMock) Create(ctx context.Context, like model.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *LikeRepoMock) Delete(ctx context.Context, likeID int64) error {
	args := m.Called(ctx, likeID)
	return args.Error(0)
}

func (m *LikeRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Like, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Like)
	return items, args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

type CheckoutRepoMock struct{ mock.Mock }

func (m *CheckoutRepoMock) Create(ctx context.Context, checkout model.Checkout) (int64, error) {
	args := m.Called(ctx, checkout)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CheckoutRepoMock) FindByID(ctx context.Context, checkoutID int64) (model.Checkout, error) {
	args := m.Called(ctx, checkoutID)
	c, _ := args.Get(0).(model.Checkout)
	return c, args.Error(1)
}

func (m *CheckoutRepoMock) FindDetailByID(ctx context.Context, checkoutID int64) (model.Checkout, error) {
	args := m.Called(ctx, checkoutID)
	c, _ := args.Get(0).(model.Checkout)
	return c, args.Error(1)
}

func (m *CheckoutRepoMock) ListAllDetailed(ctx context.Context) ([]model.Checkout, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Checkout)
	return items, args.Error(1)
}

func (m *CheckoutRepoMock) UpdateStatus(ctx context.Context, checkoutID int64, status model.OrderStatus) error {
	args := m.Called(ctx, checkoutID, status)
	return args.Error(0)
}

type CheckoutItemRepoMock struct{ mock.Mock }

func (m *CheckoutItemRepoMock) CreateBulk(ctx context.Context, checkoutID int64, items []model.CheckoutItem) error {
	args := m.Called(ctx, checkoutID, items)
	return args.Error(0)
}

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) Create(ctx context.Context, payment model.Payment) (model.Payment, error) {
	args := m.Called(ctx, payment)
	p, _ := args.Get(0).(model.Payment)
	return p, args.Error(1)
}

func (m *PaymentRepoMock) FindByOrderRef(ctx context.Context, orderRef string) (model.Payment, error) {
	args := m.Called(ctx, orderRef)
	p, _ := args.Get(0).(model.Payment)
	return p, args.Error(1)
}

func (m *PaymentRepoMock) FindByCheckoutID(ctx context.Context, checkoutID int64) (model.Payment, error) {
	args := m.Called(ctx, checkoutID)
	p, _ := args.Get(0).(model.Payment)
	return p, args.Error(1)
}

func (m *PaymentRepoMock) ApplyNotification(ctx context.Context, paymentID int64, upd repo.PaymentNotificationUpdate) error {
	args := m.Called(ctx, paymentID, upd)
	return args.Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// =====================
// Gateway mock
// =====================

type GatewayMock struct{ mock.Mock }

func (m *GatewayMock) CreateTransaction(ctx context.Context, orderRef string, grossAmount int64, customerName, customerEmail string) (usecase.GatewayTransaction, error) {
	args := m.Called(ctx, orderRef, grossAmount, customerName, customerEmail)
	tx, _ := args.Get(0).(usecase.GatewayTransaction)
	return tx, args.Error(1)
}

func (m *GatewayMock) VerifyNotification(ctx context.Context, payload map[string]interface{}) (usecase.GatewayNotification, error) {
	args := m.Called(ctx, payload)
	n, _ := args.Get(0).(usecase.GatewayNotification)
	return n, args.Error(1)
}
