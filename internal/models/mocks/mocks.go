// Package mocks provides function-field store fakes for handler tests, so
// the HTTP layer can be exercised without a running document store.
package mocks

import (
	"context"

	"shopapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductStore struct {
	InsertProductFunc      func(ctx context.Context, p *models.Product) (*models.Product, error)
	LatestProductsFunc     func(ctx context.Context) ([]*models.Product, error)
	ProductBySlugFunc      func(ctx context.Context, slug string) (*models.Product, error)
	ProductByIDFunc        func(ctx context.Context, id string) (*models.Product, error)
	ProductPhotoFunc       func(ctx context.Context, id string) (*models.Photo, error)
	UpdateProductFunc      func(ctx context.Context, id string, p *models.Product) (*models.Product, error)
	DeleteProductFunc      func(ctx context.Context, id string) error
	FilterProductsFunc     func(ctx context.Context, checked []string, radio []float64) ([]*models.Product, error)
	CountProductsFunc      func(ctx context.Context) (int64, error)
	ProductPageFunc        func(ctx context.Context, page int) ([]*models.Product, error)
	SearchProductsFunc     func(ctx context.Context, keyword string) ([]*models.Product, error)
	RelatedProductsFunc    func(ctx context.Context, productID, categoryID string) ([]*models.Product, error)
	ProductsByCategoryFunc func(ctx context.Context, categoryID primitive.ObjectID) ([]*models.Product, error)
	DecrementStockFunc     func(ctx context.Context, productID primitive.ObjectID, qty int) error
}

func (s *ProductStore) InsertProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	return s.InsertProductFunc(ctx, p)
}

func (s *ProductStore) LatestProducts(ctx context.Context) ([]*models.Product, error) {
	return s.LatestProductsFunc(ctx)
}

func (s *ProductStore) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.ProductBySlugFunc(ctx, slug)
}

func (s *ProductStore) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.ProductByIDFunc(ctx, id)
}

func (s *ProductStore) ProductPhoto(ctx context.Context, id string) (*models.Photo, error) {
	return s.ProductPhotoFunc(ctx, id)
}

func (s *ProductStore) UpdateProduct(ctx context.Context, id string, p *models.Product) (*models.Product, error) {
	return s.UpdateProductFunc(ctx, id, p)
}

func (s *ProductStore) DeleteProduct(ctx context.Context, id string) error {
	return s.DeleteProductFunc(ctx, id)
}

func (s *ProductStore) FilterProducts(ctx context.Context, checked []string, radio []float64) ([]*models.Product, error) {
	return s.FilterProductsFunc(ctx, checked, radio)
}

func (s *ProductStore) CountProducts(ctx context.Context) (int64, error) {
	return s.CountProductsFunc(ctx)
}

func (s *ProductStore) ProductPage(ctx context.Context, page int) ([]*models.Product, error) {
	return s.ProductPageFunc(ctx, page)
}

func (s *ProductStore) SearchProducts(ctx context.Context, keyword string) ([]*models.Product, error) {
	return s.SearchProductsFunc(ctx, keyword)
}

func (s *ProductStore) RelatedProducts(ctx context.Context, productID, categoryID string) ([]*models.Product, error) {
	return s.RelatedProductsFunc(ctx, productID, categoryID)
}

func (s *ProductStore) ProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]*models.Product, error) {
	return s.ProductsByCategoryFunc(ctx, categoryID)
}

func (s *ProductStore) DecrementStock(ctx context.Context, productID primitive.ObjectID, qty int) error {
	return s.DecrementStockFunc(ctx, productID, qty)
}

type CategoryStore struct {
	InsertCategoryFunc func(ctx context.Context, name string) (*models.Category, error)
	CategoryByNameFunc func(ctx context.Context, name string) (*models.Category, error)
	CategoryBySlugFunc func(ctx context.Context, slug string) (*models.Category, error)
	UpdateCategoryFunc func(ctx context.Context, id, name string) (*models.Category, error)
	DeleteCategoryFunc func(ctx context.Context, id string) error
	AllCategoriesFunc  func(ctx context.Context) ([]*models.Category, error)
}

func (s *CategoryStore) InsertCategory(ctx context.Context, name string) (*models.Category, error) {
	return s.InsertCategoryFunc(ctx, name)
}

func (s *CategoryStore) CategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return s.CategoryByNameFunc(ctx, name)
}

func (s *CategoryStore) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.CategoryBySlugFunc(ctx, slug)
}

func (s *CategoryStore) UpdateCategory(ctx context.Context, id, name string) (*models.Category, error) {
	return s.UpdateCategoryFunc(ctx, id, name)
}

func (s *CategoryStore) DeleteCategory(ctx context.Context, id string) error {
	return s.DeleteCategoryFunc(ctx, id)
}

func (s *CategoryStore) AllCategories(ctx context.Context) ([]*models.Category, error) {
	return s.AllCategoriesFunc(ctx)
}

type OrderStore struct {
	InsertOrderFunc       func(ctx context.Context, o *models.Order) (*models.Order, error)
	AllOrdersFunc         func(ctx context.Context) ([]*models.Order, error)
	OrdersByBuyerFunc     func(ctx context.Context, buyer primitive.ObjectID) ([]*models.Order, error)
	UpdateOrderStatusFunc func(ctx context.Context, id, status string) (*models.Order, error)
}

func (s *OrderStore) InsertOrder(ctx context.Context, o *models.Order) (*models.Order, error) {
	return s.InsertOrderFunc(ctx, o)
}

func (s *OrderStore) AllOrders(ctx context.Context) ([]*models.Order, error) {
	return s.AllOrdersFunc(ctx)
}

func (s *OrderStore) OrdersByBuyer(ctx context.Context, buyer primitive.ObjectID) ([]*models.Order, error) {
	return s.OrdersByBuyerFunc(ctx, buyer)
}

func (s *OrderStore) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	return s.UpdateOrderStatusFunc(ctx, id, status)
}

type UserStore struct {
	InsertUserFunc   func(ctx context.Context, name, email, password, phone, address string) (*models.User, error)
	AuthenticateFunc func(ctx context.Context, email, password string) (*models.User, error)
}

func (s *UserStore) InsertUser(ctx context.Context, name, email, password, phone, address string) (*models.User, error) {
	return s.InsertUserFunc(ctx, name, email, password, phone, address)
}

func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	return s.AuthenticateFunc(ctx, email, password)
}
