package auth

import (
	"context"
	"errors"

	"app/internal/domain/model"
	"app/internal/repository"
)

// 「ユーザーが居ない」と「パスワード不一致」を区別しない
var ErrInvalidCredentials = errors.New("invalid credentials")

// ログインの入力
type LoginInput struct {
	Username string
	Password string
}

// LoginUsecaseはusername+passwordの認証。
type LoginUsecase struct {
	users    repository.UserRepository
	verifier PasswordVerifier
}

// DI
func NewLoginUsecase(users repository.UserRepository, verifier PasswordVerifier) *LoginUsecase {
	return &LoginUsecase{
		users:    users,
		verifier: verifier,
	}
}

// 認証実行。どちらの失敗でも同じErrInvalidCredentialsを返す
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (model.User, error) {
	user, err := u.users.FindByUsername(ctx, in.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, err
	}

	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return model.User{}, ErrInvalidCredentials
	}

	return user, nil
}
