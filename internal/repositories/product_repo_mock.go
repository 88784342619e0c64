package repositories

import (
	"fmt"
	"sort"
	"sync"

	"estoque/internal/models"
)

// MockProdutoRepository is an in-memory implementation of ProdutoRepository,
// used by unit tests that don't need a real database.
type MockProdutoRepository struct {
	produtos map[uint]models.Produto
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProdutoRepository creates a new instance of MockProdutoRepository.
func NewMockProdutoRepository() *MockProdutoRepository {
	return &MockProdutoRepository{
		produtos: make(map[uint]models.Produto),
		nextID:   1,
	}
}

// GetAll returns all products ordered by ID.
func (r *MockProdutoRepository) GetAll() ([]models.Produto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetByID returns a product by its ID.
func (r *MockProdutoRepository) GetByID(id uint) (*models.Produto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	produto, ok := r.produtos[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	return &produto, nil
}

// Create adds a new product, assigning the next sequential ID.
func (r *MockProdutoRepository) Create(produto *models.Produto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if produto.ID == 0 {
		produto.ID = r.nextID
	}
	if produto.ID >= r.nextID {
		r.nextID = produto.ID + 1
	}
	r.produtos[produto.ID] = *produto
	return nil
}

// Update modifies an existing product.
func (r *MockProdutoRepository) Update(produto *models.Produto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.produtos[produto.ID]; !ok {
		return fmt.Errorf("product with ID %d: %w", produto.ID, ErrNotFound)
	}
	r.produtos[produto.ID] = *produto
	return nil
}

// Delete removes a product by its ID.
func (r *MockProdutoRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.produtos[id]; !ok {
		return fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	delete(r.produtos, id)
	return nil
}

// Count returns the number of stored products.
func (r *MockProdutoRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.produtos)), nil
}
