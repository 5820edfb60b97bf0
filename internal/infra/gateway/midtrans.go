package gateway

import (
	"context"
	"errors"

	"app/internal/usecase"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

// Midtransのアダプタ。usecase.PaymentGatewayを満たす。
type MidtransGateway struct {
	snap snap.Client
	core coreapi.Client
}

func NewMidtransGateway(serverKey string, production bool) *MidtransGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	g := &MidtransGateway{}
	g.snap.New(serverKey, env)
	g.core.New(serverKey, env)
	return g
}

func (g *MidtransGateway) CreateTransaction(ctx context.Context, orderRef string, grossAmount int64, customerName, customerEmail string) (usecase.GatewayTransaction, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderRef,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
	}

	res, mErr := g.snap.CreateTransaction(req)
	if mErr != nil {
		return usecase.GatewayTransaction{}, mErr
	}

	return usecase.GatewayTransaction{
		Token:       res.Token,
		RedirectURL: res.RedirectURL,
	}, nil
}

// VerifyNotificationは通知のorder_idでMidtransに照会し、
// 返ってきた内容を正とする（ペイロード自体は信用しない）。
func (g *MidtransGateway) VerifyNotification(ctx context.Context, payload map[string]interface{}) (usecase.GatewayNotification, error) {
	orderID, _ := payload["order_id"].(string)
	if orderID == "" {
		return usecase.GatewayNotification{}, errors.New("order_id missing in notification")
	}

	res, mErr := g.core.CheckTransaction(orderID)
	if mErr != nil {
		return usecase.GatewayNotification{}, mErr
	}

	return usecase.GatewayNotification{
		OrderRef:          res.OrderID,
		TransactionStatus: res.TransactionStatus,
		FraudStatus:       res.FraudStatus,
		PaymentType:       res.PaymentType,
	}, nil
}
