package model

import "time"

// 注文ステータス（管理者が更新する）。支払いステータスとは別の語彙。
type OrderStatus string

const (
	OrderStatusUnpaid    OrderStatus = "UNPAID"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusUnpaid, OrderStatusShipping, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// チェックアウト（注文）。住所・明細・合計金額をまとめる。
type Checkout struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64       `gorm:"not null;index" json:"user_id"`
	AddressID  int64       `gorm:"not null" json:"address_id"`
	TotalPrice int64       `gorm:"not null" json:"total_price"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;default:'UNPAID'" json:"status"`

	User    *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Address *Address       `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	Items   []CheckoutItem `gorm:"foreignKey:CheckoutID" json:"items,omitempty"`
	Payment *Payment       `gorm:"foreignKey:CheckoutID" json:"payment,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
