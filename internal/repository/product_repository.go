package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// 商品の永続化（保存・取得・削除）だけを約束。
type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)

	//全件をid昇順で返す
	List(ctx context.Context) ([]model.Product, error)

	FindByID(ctx context.Context, id int64) (model.Product, error)

	//無ければErrNotFound（2回目の削除はErrNotFound）
	Delete(ctx context.Context, id int64) error
}
