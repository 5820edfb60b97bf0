package model

import "time"

// 配送先住所。チェックアウトごとに1行作る（その時点のスナップショット）。
type Address struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	//住所（フリーテキスト）
	Address string `gorm:"type:varchar(255);not null" json:"address"`

	//郵便番号
	ZipCode int `gorm:"not null" json:"zip_code"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
