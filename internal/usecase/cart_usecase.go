package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /api/cart と /checkout の業務ロジックです。
// 読んで書く操作（加算・上書き・checkout）はWithinTxで直列化する。
type CartUsecase struct {
	tx        repo.TransactionManager
	cartItems repo.CartItemRepository
}

func NewCartUsecase(tx repo.TransactionManager, cartItems repo.CartItemRepository) *CartUsecase {
	return &CartUsecase{
		tx:        tx,
		cartItems: cartItems,
	}
}

// 明細に埋め込む商品のスナップショットではなく、読んだ時点のカタログ値。
type CartProductOutput struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url"`
}

type CartItemOutput struct {
	ID       int64             `json:"id"`
	Quantity int64             `json:"quantity"`
	Product  CartProductOutput `json:"product"`
}

type CartSummaryOutput struct {
	Items    []CartItemOutput `json:"items"`
	Subtotal int64            `json:"subtotal"`
}

// 数量0以下への更新は削除として扱い、Removedで伝える。
type UpdateCartItemOutput struct {
	Removed bool            `json:"removed"`
	Item    *CartItemOutput `json:"item,omitempty"`
}

type CheckoutOutput struct {
	Amount int64 `json:"amount"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartItemInput struct {
	CartItemID int64
	Quantity   int64
}

// AddToCart はカートに追加（同一商品は数量加算、上書きはしない）。
// 商品の存在確認と加算を同一トランザクションで行うので、
// 商品の無いゴミ明細は作られない。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartItemOutput, error) {
	if userID <= 0 {
		return CartItemOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return CartItemOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return CartItemOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	var item model.CartItem

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//商品チェック
		if _, err := r.Products().FindByID(ctx, in.ProductID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "product not found")
			}
			return err
		}

		merged, err := r.CartItems().UpsertByUserAndProduct(ctx, userID, in.ProductID, qty)
		if err != nil {
			return err
		}

		item = merged
		return nil
	})

	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return CartItemOutput{}, err
		}
		return CartItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCartItemOutput(item), nil
}

// 数量変更（所有チェックつき）。0以下は削除として扱う。
func (u *CartUsecase) UpdateItem(ctx context.Context, userID int64, in UpdateCartItemInput) (UpdateCartItemOutput, error) {
	if userID <= 0 {
		return UpdateCartItemOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.CartItemID <= 0 {
		return UpdateCartItemOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart_item_id")
	}

	var out UpdateCartItemOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 所有チェック。他人の明細は「無い」と同じ扱い
		item, err := r.CartItems().FindOwnedByID(ctx, userID, in.CartItemID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "cart item not found")
			}
			return err
		}

		if in.Quantity <= 0 {
			//削除パス
			if err := r.CartItems().DeleteOwnedByID(ctx, userID, in.CartItemID); err != nil {
				return err
			}
			out = UpdateCartItemOutput{Removed: true}
			return nil
		}

		//上書き（加算ではない）
		if err := r.CartItems().UpdateQuantity(ctx, userID, in.CartItemID, in.Quantity); err != nil {
			return err
		}

		item.Quantity = in.Quantity
		o := toCartItemOutput(item)
		out = UpdateCartItemOutput{Item: &o}
		return nil
	})

	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return UpdateCartItemOutput{}, err
		}
		return UpdateCartItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

// 明細削除（所有チェックつき）
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, cartItemID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid cart_item_id")
	}

	err := u.cartItems.DeleteOwnedByID(ctx, userID, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// カート一覧＋小計。商品は読んだ時点のカタログ値でjoinされている
func (u *CartUsecase) Summary(ctx context.Context, userID int64) (CartSummaryOutput, error) {
	if userID <= 0 {
		return CartSummaryOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.cartItems.ListByUserID(ctx, userID)
	if err != nil {
		return CartSummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCartSummaryOutput(items), nil
}

// Checkout は「小計を読んでから全削除」を1トランザクションで行う。
// 並行した追加はトランザクション前に入れば金額に反映され、
// 後に入れば次のカートに残る。黙って消えることはない。
func (u *CartUsecase) Checkout(ctx context.Context, userID int64) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var amount int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return err
		}

		amount = Subtotal(items)

		return r.CartItems().DeleteByUserID(ctx, userID)
	})

	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CheckoutOutput{Amount: amount}, nil
}

// Subtotal はΣ(price × quantity)。最小通貨単位のint64なので誤差は出ない。
func Subtotal(items []model.CartItem) int64 {
	var total int64 = 0
	for _, it := range items {
		total += it.Product.Price * it.Quantity
	}
	return total
}

func toCartItemOutput(it model.CartItem) CartItemOutput {
	return CartItemOutput{
		ID:       it.ID,
		Quantity: it.Quantity,
		Product: CartProductOutput{
			ID:       it.Product.ID,
			Name:     it.Product.Name,
			Price:    it.Product.Price,
			ImageURL: it.Product.ImageURL,
		},
	}
}

func toCartSummaryOutput(items []model.CartItem) CartSummaryOutput {
	out := make([]CartItemOutput, 0, len(items))
	for _, it := range items {
		out = append(out, toCartItemOutput(it))
	}
	return CartSummaryOutput{
		Items:    out,
		Subtotal: Subtotal(items),
	}
}
