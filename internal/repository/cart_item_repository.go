package repository

import (
	"context"

	"app/internal/domain/model"
)

// カート明細の永続化。所有チェックはuser_idの絞り込みで行う
// （他人の明細はErrNotFoundになり、存在自体を漏らさない）。
type CartItemRepository interface {
	//ユーザーの明細を商品joinつき・id昇順で返す
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)

	// 同一(user, product)は数量加算。無ければ新規作成。加算後の明細を返す
	UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64) (model.CartItem, error)

	//所有チェックつきで1件取得
	FindOwnedByID(ctx context.Context, userID int64, cartItemID int64) (model.CartItem, error)

	//所有チェックつきで数量を上書き
	UpdateQuantity(ctx context.Context, userID int64, cartItemID int64, qty int64) error

	//所有チェックつきで削除
	DeleteOwnedByID(ctx context.Context, userID int64, cartItemID int64) error

	//ユーザーの明細を全削除（checkout/clear用）
	DeleteByUserID(ctx context.Context, userID int64) error

	//商品削除時のカスケード用
	DeleteByProductID(ctx context.Context, productID int64) error
}
