package middleware

import (
	"time"

	"app/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics は全ルートのリクエスト数と所要時間を記録する。
// /metrics自身は数えない。
func Metrics(rec metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			if route == "/metrics" {
				return next(c)
			}

			method := c.Request().Method
			rec.IncRequest(route, method)

			start := time.Now()
			err := next(c)
			rec.ObserveRequest(route, method, time.Since(start).Seconds())

			return err
		}
	}
}
