package config

import (
	"fmt"
	"os"
)

// セッションcookieの方式
const (
	SessionModePlain  = "plain"
	SessionModeSigned = "signed"
)

// UploadURLPrefix はアップロード画像の公開URLプレフィックス。
// 実体はUploadDirに置かれ、serverがこのプレフィックスで配信する。
const UploadURLPrefix = "/static/uploads"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	SessionMode   string // plain / signed
	SessionSecret string // signedのときの署名シークレット

	UploadDir string // 商品画像の保存先
	GoEnv     string // dev/prod
}

// Loadは環境変数から設定を読む。
// DB接続はinfra/dbが直接環境変数を見る（DATABASE_URL優先）。
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		SessionMode:   getenv("SESSION_MODE", SessionModePlain),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		UploadDir:     getenv("UPLOAD_DIR", "static/uploads"),
		GoEnv:         getenv("GO_ENV", "dev"),
	}

	//必須チェック
	if cfg.SessionMode != SessionModePlain && cfg.SessionMode != SessionModeSigned {
		return Config{}, fmt.Errorf("SESSION_MODE must be plain or signed")
	}
	if cfg.SessionMode == SessionModeSigned && cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required when SESSION_MODE=signed")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
