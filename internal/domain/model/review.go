package model

import "time"

type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Review    string    `gorm:"type:varchar(255)" json:"review"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
