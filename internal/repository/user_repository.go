package repository

import (
	"context"

	"app/internal/domain/model"
)

// ユーザーの保存・取得だけを約束。
type UserRepository interface {
	//新規ユーザー作成。IDが埋まったものを返す
	Create(ctx context.Context, user *model.User) error

	// IDからユーザーを1件取得。無ければErrNotFound
	FindByID(ctx context.Context, userID int64) (model.User, error)

	// usernameからユーザーを1件取得。無ければErrNotFound
	FindByUsername(ctx context.Context, username string) (model.User, error)

	//登録済みユーザー数（最初の1人をadminにする判定に使う）
	Count(ctx context.Context) (int64, error)
}
