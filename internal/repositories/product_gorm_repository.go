package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"estoque/internal/models"
)

// GORMProdutoRepository is a GORM implementation of ProdutoRepository.
type GORMProdutoRepository struct {
	db *gorm.DB
}

// NewGORMProdutoRepository creates a new instance of GORMProdutoRepository.
func NewGORMProdutoRepository(db *gorm.DB) *GORMProdutoRepository {
	return &GORMProdutoRepository{
		db: db,
	}
}

// GetAll retrieves all products ordered by primary key.
func (r *GORMProdutoRepository) GetAll() ([]models.Produto, error) {
	var produtos []models.Produto
	if err := r.db.Order("id").Find(&produtos).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return produtos, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProdutoRepository) GetByID(id uint) (*models.Produto, error) {
	var produto models.Produto
	if err := r.db.First(&produto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &produto, nil
}

// Create inserts a new product; the database assigns the ID.
func (r *GORMProdutoRepository) Create(produto *models.Produto) error {
	if err := r.db.Create(produto).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists all fields of an existing product.
func (r *GORMProdutoRepository) Update(produto *models.Produto) error {
	res := r.db.Save(produto) // Save updates all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound for an update that
		// matched no rows, so we check RowsAffected.
		return fmt.Errorf("product with ID %d: %w", produto.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a product row permanently.
func (r *GORMProdutoRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Produto{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of product rows.
func (r *GORMProdutoRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Produto{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}
