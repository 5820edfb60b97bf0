package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

const paymentProvider = "midtrans"

type GatewayTransaction struct {
	Token       string
	RedirectURL string
}

type GatewayNotification struct {
	OrderRef          string
	TransactionStatus string
	FraudStatus       string
	PaymentType       string
}

// 外部決済ゲートウェイの約束。通知の真正性確認はゲートウェイ側に委ねる。
type PaymentGateway interface {
	CreateTransaction(ctx context.Context, orderRef string, grossAmount int64, customerName, customerEmail string) (GatewayTransaction, error)
	VerifyNotification(ctx context.Context, payload map[string]interface{}) (GatewayNotification, error)
}

type PaymentUsecase struct {
	checkouts repo.CheckoutRepository
	payments  repo.PaymentRepository
	users     repo.UserRepository
	gateway   PaymentGateway
	logger    *zap.Logger
}

func NewPaymentUsecase(
	checkouts repo.CheckoutRepository,
	payments repo.PaymentRepository,
	users repo.UserRepository,
	gateway PaymentGateway,
	logger *zap.Logger,
) *PaymentUsecase {
	return &PaymentUsecase{
		checkouts: checkouts,
		payments:  payments,
		users:     users,
		gateway:   gateway,
		logger:    logger,
	}
}

type CreatePaymentOutput struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type NotificationOutput struct {
	Status string `json:"status"`
}

// CreatePaymentはゲートウェイのトランザクションを作り、pendingの支払い行を残す。
// methodは通知が来るまで分からないので"unknown"で入れておく。
func (u *PaymentUsecase) CreatePayment(ctx context.Context, checkoutID int64) (CreatePaymentOutput, error) {
	if checkoutID <= 0 {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	checkout, err := u.checkouts.FindByID(ctx, checkoutID)
	if err == repo.ErrNotFound {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusNotFound, "checkout not found")
	}
	if err != nil {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//既に支払いがあるならゲートウェイを叩かずに返す
	if _, err := u.payments.FindByCheckoutID(ctx, checkout.ID); err == nil {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusConflict, "payment already created")
	} else if err != repo.ErrNotFound {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user, err := u.users.FindByID(ctx, checkout.UserID)
	if err != nil {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//ゲートウェイへの外部参照。通知からこの値で支払い行を逆引きする
	orderRef := fmt.Sprintf("ORDER-%d-%d", checkout.ID, time.Now().UnixMilli())

	tx, err := u.gateway.CreateTransaction(ctx, orderRef, checkout.TotalPrice, user.Name, user.Email)
	if err != nil {
		u.logger.Error("gateway transaction failed",
			zap.Int64("checkout_id", checkoutID),
			zap.Error(err),
		)
		return CreatePaymentOutput{}, NewHTTPError(http.StatusBadGateway, "payment gateway error")
	}

	_, err = u.payments.Create(ctx, model.Payment{
		CheckoutID:    checkout.ID,
		Provider:      paymentProvider,
		Method:        "unknown",
		Amount:        checkout.TotalPrice,
		Status:        model.PaymentStatusPending,
		TransactionID: tx.Token,
		OrderRef:      orderRef,
	})
	if err == repo.ErrConflict {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusConflict, "payment already created")
	}
	if err != nil {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CreatePaymentOutput{Token: tx.Token, RedirectURL: tx.RedirectURL}, nil
}

// ResolvePaymentStatusはゲートウェイの(transaction_status, fraud_status)を
// 内部の支払いステータスに写す純関数。
func ResolvePaymentStatus(transactionStatus, fraudStatus string) model.PaymentStatus {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return model.PaymentStatusChallenge
		}
		if fraudStatus == "accept" {
			return model.PaymentStatusPaid
		}
		return model.PaymentStatusPending
	case "settlement":
		return model.PaymentStatusPaid
	case "cancel", "deny", "expire":
		return model.PaymentStatusFailed
	case "pending":
		return model.PaymentStatusPending
	default:
		return model.PaymentStatusPending
	}
}

// HandleNotificationはゲートウェイからの非同期通知を支払い行に反映する。
// 上書き更新なので、同じ通知が再送されても結果は変わらない。
func (u *PaymentUsecase) HandleNotification(ctx context.Context, payload map[string]interface{}) (NotificationOutput, error) {
	notif, err := u.gateway.VerifyNotification(ctx, payload)
	if err != nil {
		u.logger.Warn("notification verification failed", zap.Error(err))
		return NotificationOutput{}, NewHTTPError(http.StatusBadRequest, "invalid notification")
	}

	u.logger.Info("payment notification received",
		zap.String("order_ref", notif.OrderRef),
		zap.String("transaction_status", notif.TransactionStatus),
		zap.String("fraud_status", notif.FraudStatus),
	)

	payment, err := u.payments.FindByOrderRef(ctx, notif.OrderRef)
	if err == repo.ErrNotFound {
		return NotificationOutput{}, NewHTTPError(http.StatusNotFound, "payment not found")
	}
	if err != nil {
		return NotificationOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	status := ResolvePaymentStatus(notif.TransactionStatus, notif.FraudStatus)

	//paid_atはpaidになったときだけ入れる
	var paidAt *time.Time
	if status == model.PaymentStatusPaid {
		now := time.Now()
		paidAt = &now
	}

	err = u.payments.ApplyNotification(ctx, payment.ID, repo.PaymentNotificationUpdate{
		Status: status,
		Method: notif.PaymentType,
		PaidAt: paidAt,
	})
	if err != nil {
		return NotificationOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return NotificationOutput{Status: "ok"}, nil
}
