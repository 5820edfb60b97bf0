package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminOrderUsecase struct {
	checkouts repo.CheckoutRepository
	auditRepo repo.AuditLogRepository
}

func NewAdminOrderUsecase(checkouts repo.CheckoutRepository, auditRepo repo.AuditLogRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{checkouts: checkouts, auditRepo: auditRepo}
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

// 注文一覧（住所・ユーザー・支払い・明細込み、新しい順）
func (u *AdminOrderUsecase) List(ctx context.Context) ([]model.Checkout, error) {
	items, err := u.checkouts.ListAllDetailed(ctx)
	if err != nil {
		return []model.Checkout{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// ステータス更新。4値の列挙以外は書き込み前に弾く。
// 遷移グラフの強制はしない（どのステータスからどこへでも動かせる）。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actorAdminUserID int64, checkoutID int64, in AdminUpdateOrderStatusInput) error {
	if actorAdminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if checkoutID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := model.OrderStatus(strings.TrimSpace(in.Status))
	if !newStatus.Valid() {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	before, err := u.checkouts.FindByID(ctx, checkoutID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "checkout not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.checkouts.UpdateStatus(ctx, checkoutID, newStatus); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "checkout not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//監査ログ（UPDATE_ORDER_STATUS）
	beforeJSON := `{"status":"` + string(before.Status) + `"}`
	afterJSON := `{"status":"` + string(newStatus) + `"}`
	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  actorAdminUserID,
		Action:       model.AuditActionUpdateOrderStatus,
		ResourceType: model.AuditResourceCheckout,
		ResourceID:   checkoutID,
		BeforeJSON:   beforeJSON,
		AfterJSON:    afterJSON,
		CreatedAt:    time.Now(),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
