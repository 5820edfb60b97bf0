package model

// いいね。ユーザー×商品で1行（トグルで増減）。
type Like struct {
	ID        int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64    `gorm:"not null;index:idx_like_user_product,unique" json:"user_id"`
	ProductID int64    `gorm:"not null;index:idx_like_user_product,unique" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
