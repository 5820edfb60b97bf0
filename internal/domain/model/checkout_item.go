package model

// チェックアウトの明細。
// 購入時点の小計（価格×数量）を必ず保存する。後から商品価格が変わっても変動しない。
type CheckoutItem struct {
	ID         int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CheckoutID int64    `gorm:"not null;index" json:"checkout_id"`
	ProductID  int64    `gorm:"not null;index" json:"product_id"`
	Product    *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   int64    `gorm:"not null" json:"quantity"`
	Subtotal   int64    `gorm:"not null" json:"subtotal"`
}
