package usecase

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	products repo.ProductRepository
	reviews  repo.ReviewRepository
}

func NewProductUsecase(products repo.ProductRepository, reviews repo.ReviewRepository) *ProductUsecase {
	return &ProductUsecase{products: products, reviews: reviews}
}

type ProductInput struct {
	Name        string
	Description string
	Price       int64
	Stock       int64
	CategoryID  int64
}

type ProductDetailOutput struct {
	model.Product
	Reviews []model.Review `json:"reviews"`
}

type ProductImageInput struct {
	ImageURL string
	AltImage string
}

func validateProduct(in ProductInput) error {
	var issues []FieldIssue

	if len(strings.TrimSpace(in.Name)) < 3 {
		issues = append(issues, FieldIssue{Field: "name", Message: "must be at least 3 characters"})
	}
	if in.Price < 0 {
		issues = append(issues, FieldIssue{Field: "price", Message: "must be >= 0"})
	}
	if in.Stock < 0 {
		issues = append(issues, FieldIssue{Field: "stock", Message: "must be >= 0"})
	}
	if in.CategoryID <= 0 {
		issues = append(issues, FieldIssue{Field: "category_id", Message: "required"})
	}

	if len(issues) > 0 {
		return NewValidationError(issues...)
	}
	return nil
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	items, err := u.products.List(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// 詳細はカテゴリ・画像に加えてレビューも返す
func (u *ProductUsecase) Get(ctx context.Context, productID int64) (ProductDetailOutput, error) {
	if productID <= 0 {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	reviews, err := u.reviews.ListByProductID(ctx, productID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductDetailOutput{Product: p, Reviews: reviews}, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := validateProduct(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.products.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Slug:        slugify(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
	})
	if err == repo.ErrConflict {
		return model.Product{}, NewHTTPError(http.StatusConflict, "slug already exists")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, productID int64, in ProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateProduct(in); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Slug:        slugify(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
	}

	err := u.products.Update(ctx, p)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err == repo.ErrConflict {
		return model.Product{}, NewHTTPError(http.StatusConflict, "slug already exists")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.products.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ProductUsecase) AddImage(ctx context.Context, productID int64, in ProductImageInput) (model.ProductImage, error) {
	if productID <= 0 {
		return model.ProductImage{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return model.ProductImage{}, NewValidationError(FieldIssue{Field: "image_url", Message: "required"})
	}

	//商品の存在確認
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return model.ProductImage{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.ProductImage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	img, err := u.products.AddImage(ctx, model.ProductImage{
		ProductID: productID,
		ImageURL:  strings.TrimSpace(in.ImageURL),
		AltImage:  in.AltImage,
	})
	if err != nil {
		return model.ProductImage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return img, nil
}

func (u *ProductUsecase) DeleteImage(ctx context.Context, imageID int64) error {
	if imageID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.products.DeleteImage(ctx, imageID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "image not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// 商品名からslugを作る（小文字＋ハイフン区切り）
func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
