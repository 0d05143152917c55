package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"app/internal/config"
	"app/internal/metrics"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/session"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// /admin/products のHTTP。admin専用
type AdminProductHandler struct {
	uc  *usecase.ProductUsecase
	cfg config.Config
	rec metrics.Recorder
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase, cfg config.Config, rec metrics.Recorder) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, cfg: cfg, rec: rec}
}

// adminルートを登録。未ログインも非adminも403になる
func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, codec session.TokenCodec, userRepo repository.UserRepository) {
	g := e.Group("/admin")
	g.Use(middleware.SessionAuth(codec, userRepo, false))
	g.Use(middleware.AdminGuard())

	g.POST("/products", h.create)
	g.POST("/products/:id/delete", h.delete)
}

// multipartフォームで受ける。priceとstockは最小通貨単位の整数
func (h *AdminProductHandler) create(c echo.Context) error {
	name := c.FormValue("name")
	description := c.FormValue("description")

	price, err := strconv.ParseInt(c.FormValue("price"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
	}

	var stock int64 = 0
	if v := c.FormValue("stock"); v != "" {
		stock, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid stock"})
		}
	}

	//画像はファイルアップロードかimage_urlのどちらか
	imageURL := c.FormValue("image_url")
	if file, err := c.FormFile("image"); err == nil && file != nil {
		saved, err := h.saveImage(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
		}
		imageURL = saved
	}

	_, err = h.uc.Create(c.Request().Context(), usecase.CreateProductInput{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		ImageURL:    imageURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	h.rec.IncProductOp("create")
	return c.Redirect(http.StatusSeeOther, "/products")
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		h.rec.IncProductOp("delete_failed")
		return writeError(c, err)
	}

	h.rec.IncProductOp("delete")
	return c.Redirect(http.StatusSeeOther, "/products")
}

// アップロード画像をUPLOAD_DIRに保存して公開URLを返す。
// ファイル名は衝突しないようuuidにする
func (h *AdminProductHandler) saveImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	dstPath := filepath.Join(h.cfg.UploadDir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return config.UploadURLPrefix + "/" + filename, nil
}
