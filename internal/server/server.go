package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/metrics"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/session"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// 各ハンドラをまとめて受け取る
type Handlers struct {
	Auth          *handler.AuthHandler
	Products      *handler.ProductHandler
	Cart          *handler.CartHandler
	AdminProducts *handler.AdminProductHandler
}

// New は全ルートを登録したechoを組み立てる。
func New(
	h Handlers,
	codec session.TokenCodec,
	userRepo repository.UserRepository,
	rec metrics.Recorder,
	metricsHandler http.Handler,
	uploadDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(middleware.Metrics(rec))

	h.Auth.RegisterRoutes(e)
	h.Products.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, codec, userRepo)
	h.AdminProducts.RegisterRoutes(e, codec, userRepo)

	//アップロード画像の配信。URLはUploadURLPrefixに固定し、実体の場所は設定に従う
	e.Static(config.UploadURLPrefix, uploadDir)

	e.GET("/metrics", echo.WrapHandler(metricsHandler))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
