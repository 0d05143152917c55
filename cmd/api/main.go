package main

import (
	"time"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/metrics"
	"app/internal/server"
	"app/internal/session"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// signedセッションの有効期限
const sessionTTL = 24 * time.Hour

func main() {
	_ = godotenv.Load() // .envがあれば読む

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("failed to migrate: %v", err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//セッションcookieの方式を選ぶ。既定は観測された素のID方式
	var codec session.TokenCodec
	switch cfg.SessionMode {
	case config.SessionModeSigned:
		codec = session.NewSignedCodec([]byte(cfg.SessionSecret), sessionTTL)
	default:
		codec = session.NewPlainCodec()
	}

	//metrics
	rec := metrics.NewPrometheusRecorder()

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(txManager, hasher)
	loginUC := auth.NewLoginUsecase(userRepo, verifier)
	cartUC := usecase.NewCartUsecase(txManager, cartItemRepo)
	productUC := usecase.NewProductUsecase(txManager, productRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:          handler.NewAuthHandler(registerUC, loginUC, codec, rec),
		Products:      handler.NewProductHandler(productUC, rec),
		Cart:          handler.NewCartHandler(cartUC, rec),
		AdminProducts: handler.NewAdminProductHandler(productUC, cfg, rec),
	}

	e := server.New(handlers, codec, userRepo, rec, rec.Handler(), cfg.UploadDir)

	//Server起動
	addr := ":" + cfg.Port
	logrus.Infof("server listening on %s", addr)
	if err := server.Start(e, addr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
