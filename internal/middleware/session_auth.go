package middleware

import (
	"errors"
	"net/http"

	"app/internal/repository"
	"app/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey  = "user_id"  // int64
	CtxIsAdminKey = "is_admin" // bool
)

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// SessionAuth はcookieのトークンをユーザーに解決するミドルウェア。
// cookie無し・壊れたトークン・存在しないユーザーは全部「未ログイン」で、
// requiredのときだけ401にする。エラーページでユーザーの有無を漏らさない。
func SessionAuth(codec session.TokenCodec, users repository.UserRepository, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return unauthenticated(c, next, required)
			}

			userID, ok := codec.Decode(cookie.Value)
			if !ok {
				return unauthenticated(c, next, required)
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if errors.Is(err, repository.ErrNotFound) {
				return unauthenticated(c, next, required)
			}
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			//contextへ保存
			c.Set(CtxUserIDKey, user.ID)
			c.Set(CtxIsAdminKey, user.IsAdmin)

			return next(c)
		}
	}
}

func unauthenticated(c echo.Context, next echo.HandlerFunc, required bool) error {
	if required {
		return c.JSON(http.StatusUnauthorized, errorJSON("not logged in"))
	}
	return next(c)
}
