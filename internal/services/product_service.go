package services

import (
	"log"
	"time"

	"estoque/internal/models"
	"estoque/internal/repositories"
)

// EventPublisher publishes inventory change events. A nil publisher disables
// event publication entirely.
type EventPublisher interface {
	PublishProdutoEvent(evento string, payload map[string]interface{}) error
}

// ProdutoUpdate carries a partial update; nil fields keep the stored value.
type ProdutoUpdate struct {
	Nome       *string
	Quantidade *int
	Preco      *float64
	Validade   *time.Time
}

// ProdutoService handles business logic related to products.
type ProdutoService struct {
	repo   repositories.ProdutoRepository
	events EventPublisher
}

// NewProdutoService creates a new ProdutoService.
func NewProdutoService(repo repositories.ProdutoRepository, events EventPublisher) *ProdutoService {
	return &ProdutoService{
		repo:   repo,
		events: events,
	}
}

// List retrieves all products.
func (s *ProdutoService) List() ([]models.Produto, error) {
	return s.repo.GetAll()
}

// Get retrieves a single product by its ID.
func (s *ProdutoService) Get(id uint) (*models.Produto, error) {
	return s.repo.GetByID(id)
}

// Create stores a new product and publishes a creation event.
func (s *ProdutoService) Create(produto *models.Produto) error {
	if err := s.repo.Create(produto); err != nil {
		return err
	}
	s.publish("produto.criado", produto)
	return nil
}

// Update applies a partial update: fields absent from upd default to the
// currently stored values. Returns the updated record.
func (s *ProdutoService) Update(id uint, upd ProdutoUpdate) (*models.Produto, error) {
	produto, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Nome != nil {
		produto.Nome = *upd.Nome
	}
	if upd.Quantidade != nil {
		produto.Quantidade = *upd.Quantidade
	}
	if upd.Preco != nil {
		produto.Preco = *upd.Preco
	}
	if upd.Validade != nil {
		produto.Validade = *upd.Validade
	}

	if err := s.repo.Update(produto); err != nil {
		return nil, err
	}
	s.publish("produto.atualizado", produto)
	return produto, nil
}

// Delete removes a product permanently and publishes a removal event.
func (s *ProdutoService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("produto.removido", &models.Produto{ID: id})
	return nil
}

// Count returns the number of stored products.
func (s *ProdutoService) Count() (int64, error) {
	return s.repo.Count()
}

// publish sends an inventory event. Publication is best-effort: a broker
// failure must never fail the request that caused it.
func (s *ProdutoService) publish(evento string, produto *models.Produto) {
	if s.events == nil {
		return
	}
	payload := map[string]interface{}{
		"id":         produto.ID,
		"nome":       produto.Nome,
		"quantidade": produto.Quantidade,
		"preco":      produto.Preco,
	}
	if err := s.events.PublishProdutoEvent(evento, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", evento, produto.ID, err)
	}
}
