package auth

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	"app/internal/repository"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")

	// 競合
	ErrUsernameTaken = errors.New("username already taken")
)

// 会員登録の入力
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// RegisterUserUsecaseは会員登録の処理。
// 「最初の1人がadmin」の判定と作成を同一トランザクションで行う。
type RegisterUserUsecase struct {
	tx     repository.TransactionManager
	hasher PasswordHasher
}

// DI
func NewRegisterUserUsecase(tx repository.TransactionManager, hasher PasswordHasher) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		tx:     tx,
		hasher: hasher,
	}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (model.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" || email == "" || in.Password == "" {
		return model.User{}, ErrInvalidInput
	}

	// パスワードをハッシュ化（トランザクションの外でよい）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	var created model.User

	err = u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		// username重複チェック
		_, err := r.Users().FindByUsername(ctx, username)
		if err == nil {
			return ErrUsernameTaken
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		// 最初の1人だけadmin
		count, err := r.Users().Count(ctx)
		if err != nil {
			return err
		}

		user := &model.User{
			Username:     username,
			Email:        email,
			PasswordHash: hashed,
			IsAdmin:      count == 0,
		}

		if err := r.Users().Create(ctx, user); err != nil {
			return err
		}

		created = *user
		return nil
	})

	if err != nil {
		return model.User{}, err
	}
	return created, nil
}
