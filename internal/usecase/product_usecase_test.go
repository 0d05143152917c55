package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductUsecase_Create_InvalidName(t *testing.T) {
	uc := usecase.NewProductUsecase(&txManagerStub{}, new(ProductRepoMock))

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{Name: "  ", Price: 100})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestProductUsecase_Create_NegativePrice(t *testing.T) {
	uc := usecase.NewProductUsecase(&txManagerStub{}, new(ProductRepoMock))

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{Name: "X", Price: -1})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestProductUsecase_Create_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(&txManagerStub{products: pRepo}, pRepo)

	in := model.Product{Name: "coffee", Description: "dark", Price: 700, Stock: 5}
	pRepo.On("Create", mock.Anything, in).Return(model.Product{ID: 1, Name: "coffee", Description: "dark", Price: 700, Stock: 5}, nil)

	out, err := uc.Create(ctx, usecase.CreateProductInput{Name: "coffee", Description: "dark", Price: 700, Stock: 5})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(&txManagerStub{products: pRepo}, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetByID(ctx, 99)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestProductUsecase_Delete_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	ciRepo := new(CartItemRepoMock)
	uc := usecase.NewProductUsecase(&txManagerStub{products: pRepo, cartItems: ciRepo}, pRepo)

	pRepo.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	err := uc.Delete(ctx, 99)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)

	//カスケードは走らない
	ciRepo.AssertNotCalled(t, "DeleteByProductID", mock.Anything, mock.Anything)
}

func TestProductUsecase_Delete_CascadesCartItems(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	ciRepo := new(CartItemRepoMock)
	uc := usecase.NewProductUsecase(&txManagerStub{products: pRepo, cartItems: ciRepo}, pRepo)

	pRepo.On("Delete", mock.Anything, int64(7)).Return(nil)
	ciRepo.On("DeleteByProductID", mock.Anything, int64(7)).Return(nil)

	err := uc.Delete(ctx, 7)
	assert.NoError(t, err)

	pRepo.AssertExpectations(t)
	ciRepo.AssertExpectations(t)
}
