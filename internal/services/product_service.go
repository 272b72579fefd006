package services

import (
	"context"
	"fmt"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct stores a new product. New products are always available.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	product.ID = 0
	product.Availability = true
	return s.repo.Create(ctx, product)
}

// ReplaceProduct overwrites name, price and availability of an existing product.
func (s *ProductService) ReplaceProduct(ctx context.Context, id uint, replacement models.Product) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = replacement.Name
	product.Price = replacement.Price
	product.Availability = replacement.Availability
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to replace product %d: %w", id, err)
	}
	return product, nil
}

// ToggleAvailability flips the availability flag of an existing product.
func (s *ProductService) ToggleAvailability(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Availability = !product.Availability
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to toggle availability of product %d: %w", id, err)
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
