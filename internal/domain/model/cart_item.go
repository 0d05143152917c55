package model

import "time"

// カートの明細。(user_id, product_id)は1行だけ。
// 同じ商品を追加したら数量を加算する。数量0以下の行は存在させない（削除する）。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID int64     `gorm:"not null;index;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// 読み取り時に現在のカタログ価格でjoinする（スナップショットはしない）
	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}
