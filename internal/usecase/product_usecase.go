package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ProductUsecase はカタログの業務ロジックです。
// 作成・削除は管理者ルートからのみ呼ばれる（ガードはmiddleware側）。
type ProductUsecase struct {
	tx       repo.TransactionManager
	products repo.ProductRepository
}

func NewProductUsecase(tx repo.TransactionManager, products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{
		tx:       tx,
		products: products,
	}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       int64
	Stock       int64
	ImageURL    string
}

// 商品作成。IDが埋まったものを返す
func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.Stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid stock")
	}

	p, err := u.products.Create(ctx, model.Product{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}

// 全商品一覧（挿入順）
func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// IDで商品を取得
func (u *ProductUsecase) GetByID(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.products.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 商品削除。参照しているカート明細も同一トランザクションで消す
// （宙ぶらりんの明細を残さない方針）。
func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Products().Delete(ctx, id); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "product not found")
			}
			return err
		}

		//カスケード
		return r.CartItems().DeleteByProductID(ctx, id)
	})

	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return err
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
