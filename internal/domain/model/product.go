package model

import "time"

// 商品。価格は最小通貨単位（セント）のint64で持つ。
// 管理者のみ作成・削除できる。更新は無い（作り直し）。
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	ImageURL    string    `gorm:"type:varchar(512)" json:"image_url"`
	Stock       int64     `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
