package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminUpdateOrderStatus_Success(t *testing.T) {
	checkouts := &CheckoutRepoMock{}
	audits := &AuditRepoMock{}
	uc := usecase.NewAdminOrderUsecase(checkouts, audits)

	checkouts.On("FindByID", mock.Anything, int64(10)).
		Return(model.Checkout{ID: 10, Status: model.OrderStatusUnpaid}, nil)
	checkouts.On("UpdateStatus", mock.Anything, int64(10), model.OrderStatusShipping).Return(nil)
	audits.On("Create", mock.Anything, mock.MatchedBy(func(log model.AuditLog) bool {
		return log.ActorUserID == 1 &&
			log.Action == model.AuditActionUpdateOrderStatus &&
			log.ResourceType == model.AuditResourceCheckout &&
			log.ResourceID == 10 &&
			log.BeforeJSON == `{"status":"UNPAID"}` &&
			log.AfterJSON == `{"status":"SHIPPING"}`
	})).Return(nil)

	err := uc.UpdateStatus(context.Background(), 1, 10, usecase.AdminUpdateOrderStatusInput{Status: "SHIPPING"})

	assert.NoError(t, err)
	checkouts.AssertExpectations(t)
	audits.AssertExpectations(t)
}

// 列挙外のステータスは書き込みに到達しない
func TestAdminUpdateOrderStatus_InvalidStatus(t *testing.T) {
	checkouts := &CheckoutRepoMock{}
	audits := &AuditRepoMock{}
	uc := usecase.NewAdminOrderUsecase(checkouts, audits)

	for _, bad := range []string{"", "shipped", "unpaid", "DONE"} {
		err := uc.UpdateStatus(context.Background(), 1, 10, usecase.AdminUpdateOrderStatusInput{Status: bad})

		he, ok := usecase.AsHTTPError(err)
		assert.True(t, ok, "status=%q", bad)
		assert.Equal(t, 400, he.Status)
	}
	checkouts.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	audits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminUpdateOrderStatus_NotFound(t *testing.T) {
	checkouts := &CheckoutRepoMock{}
	audits := &AuditRepoMock{}
	uc := usecase.NewAdminOrderUsecase(checkouts, audits)

	checkouts.On("FindByID", mock.Anything, int64(999)).Return(model.Checkout{}, repo.ErrNotFound)

	err := uc.UpdateStatus(context.Background(), 1, 999, usecase.AdminUpdateOrderStatusInput{Status: "COMPLETED"})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
	checkouts.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderList(t *testing.T) {
	checkouts := &CheckoutRepoMock{}
	uc := usecase.NewAdminOrderUsecase(checkouts, &AuditRepoMock{})

	checkouts.On("ListAllDetailed", mock.Anything).Return([]model.Checkout{
		{ID: 2, Status: model.OrderStatusShipping},
		{ID: 1, Status: model.OrderStatusUnpaid},
	}, nil)

	items, err := uc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
}
