package auth_test

import (
	"context"
	"testing"

	auth "app/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	store := newUserStore()

	registerUC := auth.NewRegisterUserUsecase(store, plainHasher{})
	_, err := registerUC.Execute(ctx, auth.RegisterUserInput{Username: "alice", Email: "a@example.com", Password: "secret"})
	require.NoError(t, err)

	loginUC := auth.NewLoginUsecase(store, plainVerifier{})
	user, err := loginUC.Execute(ctx, auth.LoginInput{Username: "alice", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

// 「ユーザー不在」と「パスワード不一致」は同じエラー
func TestLogin_SameSignalForUnknownUserAndWrongPassword(t *testing.T) {
	ctx := context.Background()
	store := newUserStore()

	registerUC := auth.NewRegisterUserUsecase(store, plainHasher{})
	_, err := registerUC.Execute(ctx, auth.RegisterUserInput{Username: "alice", Email: "a@example.com", Password: "secret"})
	require.NoError(t, err)

	loginUC := auth.NewLoginUsecase(store, plainVerifier{})

	_, errUnknown := loginUC.Execute(ctx, auth.LoginInput{Username: "nobody", Password: "secret"})
	_, errWrongPw := loginUC.Execute(ctx, auth.LoginInput{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, auth.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw)
}
