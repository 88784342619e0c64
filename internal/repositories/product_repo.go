package repositories

import (
	"errors"

	"estoque/internal/models"
)

// ErrNotFound signals that a referenced row does not exist. Handlers translate
// it into a 404 response.
var ErrNotFound = errors.New("record not found")

// ProdutoRepository defines the interface for product data access.
type ProdutoRepository interface {
	GetAll() ([]models.Produto, error)
	GetByID(id uint) (*models.Produto, error)
	Create(produto *models.Produto) error
	Update(produto *models.Produto) error
	Delete(id uint) error
	Count() (int64, error)
}
