package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"estoque/internal/models"
)

// GORMUsuarioRepository is a GORM implementation of UsuarioRepository.
type GORMUsuarioRepository struct {
	db *gorm.DB
}

// NewGORMUsuarioRepository creates a new instance of GORMUsuarioRepository.
func NewGORMUsuarioRepository(db *gorm.DB) *GORMUsuarioRepository {
	return &GORMUsuarioRepository{
		db: db,
	}
}

// Create inserts a new user. Username uniqueness is enforced by the database.
func (r *GORMUsuarioRepository) Create(usuario *models.Usuario) error {
	if err := r.db.Create(usuario).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by their username.
func (r *GORMUsuarioRepository) GetByUsername(username string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.First(&usuario, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with username %s: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &usuario, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUsuarioRepository) GetByID(id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.First(&usuario, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &usuario, nil
}
