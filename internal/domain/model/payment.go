package model

import "time"

// 支払いステータス（ゲートウェイ側の語彙から解決する）。注文ステータスとは独立。
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusChallenge PaymentStatus = "challenge"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// 支払いレコード。チェックアウトにつき最大1件。
// OrderRefはゲートウェイに渡した外部参照で、通知からの逆引きに使う。
type Payment struct {
	ID         int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	CheckoutID int64         `gorm:"not null;uniqueIndex" json:"checkout_id"`
	Provider   string        `gorm:"type:varchar(50);not null" json:"provider"`
	Method     string        `gorm:"type:varchar(50);not null" json:"method"`
	Amount     int64         `gorm:"not null" json:"amount"`
	Status     PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`

	TransactionID string `gorm:"type:varchar(100);not null" json:"transaction_id"`
	OrderRef      string `gorm:"type:varchar(100);not null;uniqueIndex" json:"order_ref"`

	PaidAt    *time.Time `json:"paid_at"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
