package handler

import (
	"net/http"

	"app/internal/metrics"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/session"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/cart と /checkout のHTTP
type CartHandler struct {
	uc  *usecase.CartUsecase
	rec metrics.Recorder
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, rec metrics.Recorder) *CartHandler {
	return &CartHandler{uc: uc, rec: rec}
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartItemRequest struct {
	CartItemID int64 `json:"cart_item_id"`
	Quantity   int64 `json:"quantity"`
}

type RemoveCartItemRequest struct {
	CartItemID int64 `json:"cart_item_id"`
}

type RemoveCartItemResponse struct {
	Success bool `json:"success"`
}

// カートのルートを登録。全部ログイン必須
func (h *CartHandler) RegisterRoutes(e *echo.Echo, codec session.TokenCodec, userRepo repository.UserRepository) {
	g := e.Group("/api/cart")
	g.Use(middleware.SessionAuth(codec, userRepo, true))

	g.POST("/add", h.add)
	g.POST("/update", h.update)
	g.POST("/remove", h.remove)
	g.GET("/summary", h.summary)

	e.POST("/checkout", h.checkout, middleware.SessionAuth(codec, userRepo, true))
}

func (h *CartHandler) add(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
	}

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), userID, usecase.AddCartInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.rec.IncCartOp("add", "failed")
		return writeError(c, err)
	}

	h.rec.IncCartOp("add", "success")
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateItem(c.Request().Context(), userID, usecase.UpdateCartItemInput{
		CartItemID: req.CartItemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.rec.IncCartOp("update", "failed")
		return writeError(c, err)
	}

	h.rec.IncCartOp("update", "success")
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) remove(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
	}

	var req RemoveCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.RemoveItem(c.Request().Context(), userID, req.CartItemID); err != nil {
		h.rec.IncCartOp("remove", "failed")
		return writeError(c, err)
	}

	h.rec.IncCartOp("remove", "success")
	return c.JSON(http.StatusOK, RemoveCartItemResponse{Success: true})
}

func (h *CartHandler) summary(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
	}

	out, err := h.uc.Summary(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	h.rec.IncCartOp("view", "success")
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), userID)
	if err != nil {
		h.rec.IncCartOp("checkout", "failed")
		return writeError(c, err)
	}

	h.rec.IncCartOp("checkout", "success")
	return c.JSON(http.StatusOK, out)
}
