package handler

import (
	"net/http"
	"strconv"

	"app/internal/metrics"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products の公開API
type ProductHandler struct {
	uc  *usecase.ProductUsecase
	rec metrics.Recorder
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, rec metrics.Recorder) *ProductHandler {
	return &ProductHandler{uc: uc, rec: rec}
}

// 公開商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
}

func (h *ProductHandler) list(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		h.rec.IncProductOp("view_not_found")
		return writeError(c, err)
	}

	h.rec.IncProductOp("view")
	return c.JSON(http.StatusOK, p)
}
