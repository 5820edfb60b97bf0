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

func TestProductCreate_GeneratesSlug(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewProductUsecase(products, &ReviewRepoMock{})

	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Kopi Gayo 250g" && p.Slug == "kopi-gayo-250g"
	})).Return(model.Product{ID: 1, Slug: "kopi-gayo-250g"}, nil)

	p, err := uc.Create(context.Background(), usecase.ProductInput{
		Name:       "  Kopi Gayo 250g ",
		Price:      52000,
		Stock:      10,
		CategoryID: 3,
	})

	assert.NoError(t, err)
	assert.Equal(t, "kopi-gayo-250g", p.Slug)
	products.AssertExpectations(t)
}

func TestProductCreate_ValidationError(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewProductUsecase(products, &ReviewRepoMock{})

	_, err := uc.Create(context.Background(), usecase.ProductInput{
		Name:  "ab",
		Price: -1,
		Stock: -5,
	})

	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.Len(t, ve.Issues, 4)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductCreate_DuplicateSlug(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewProductUsecase(products, &ReviewRepoMock{})

	products.On("Create", mock.Anything, mock.Anything).Return(model.Product{}, repo.ErrConflict)

	_, err := uc.Create(context.Background(), usecase.ProductInput{
		Name:       "Kopi Gayo 250g",
		Price:      52000,
		Stock:      10,
		CategoryID: 3,
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 409, he.Status)
}

// 詳細はレビューも抱き合わせで返す
func TestProductGet_IncludesReviews(t *testing.T) {
	products := &ProductRepoMock{}
	reviews := &ReviewRepoMock{}
	uc := usecase.NewProductUsecase(products, reviews)

	products.On("FindByID", mock.Anything, int64(7)).
		Return(model.Product{ID: 7, Name: "Kopi Gayo 250g"}, nil)
	reviews.On("ListByProductID", mock.Anything, int64(7)).
		Return([]model.Review{{ID: 1, ProductID: 7, Review: "enak"}}, nil)

	out, err := uc.Get(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.Len(t, out.Reviews, 1)
}

func TestProductAddImage_ProductNotFound(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewProductUsecase(products, &ReviewRepoMock{})

	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddImage(context.Background(), 99, usecase.ProductImageInput{ImageURL: "https://img.example/1.jpg"})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
	products.AssertNotCalled(t, "AddImage", mock.Anything, mock.Anything)
}
