package repositories

import "estoque/internal/models"

// UsuarioRepository defines the interface for user data access.
type UsuarioRepository interface {
	Create(usuario *models.Usuario) error
	GetByUsername(username string) (*models.Usuario, error)
	GetByID(id uint) (*models.Usuario, error)
}
