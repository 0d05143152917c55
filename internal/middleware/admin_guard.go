package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminGuard はcontextのis_adminを確認する。
// 未ログインも非adminも同じ403にする（区別して漏らさない）。
// SessionAuthの後ろに置くこと。
func AdminGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, ok := c.Get(CtxIsAdminKey).(bool)
			if !ok || !isAdmin {
				return c.JSON(http.StatusForbidden, errorJSON("admins only"))
			}

			return next(c)
		}
	}
}
