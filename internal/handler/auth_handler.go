package handler

import (
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/metrics"
	"app/internal/session"
	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// signup / login / logout のHTTP。
// 成功したら識別cookieをセットして / へ303リダイレクトする（元のフォームUI互換）。
type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase
	loginUC    *auth.LoginUsecase
	codec      session.TokenCodec
	rec        metrics.Recorder
}

// DI
func NewAuthHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	codec session.TokenCodec,
	rec metrics.Recorder,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		codec:      codec,
		rec:        rec,
	}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/signup", h.signup)
	e.POST("/login", h.login)
	e.GET("/logout", h.logout)
}

func (h *AuthHandler) signup(c echo.Context) error {
	in := auth.RegisterUserInput{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	user, err := h.registerUC.Execute(c.Request().Context(), in)
	if err != nil {
		h.rec.IncUserAction("signup", "failed")
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username already taken"})
		case errors.Is(err, auth.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	h.rec.IncUserAction("signup", "success")
	return h.setSessionAndRedirect(c, user)
}

func (h *AuthHandler) login(c echo.Context) error {
	in := auth.LoginInput{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}

	user, err := h.loginUC.Execute(c.Request().Context(), in)
	if err != nil {
		h.rec.IncUserAction("login", "failed")
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	h.rec.IncUserAction("login", "success")
	return h.setSessionAndRedirect(c, user)
}

func (h *AuthHandler) logout(c echo.Context) error {
	h.rec.IncUserAction("logout", "success")

	//cookieを消す
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) setSessionAndRedirect(c echo.Context, user model.User) error {
	token, err := h.codec.Encode(user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	return c.Redirect(http.StatusSeeOther, "/")
}
