package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"estoque/internal/models"
	"estoque/internal/repositories"
)

// ErrCredenciaisInvalidas is returned for any failed login attempt. It is
// deliberately the same for unknown usernames and wrong passwords so the API
// never reveals which usernames exist.
var ErrCredenciaisInvalidas = fmt.Errorf("invalid credentials")

// AuthService handles credential verification and password hashing.
type AuthService struct {
	usuarioRepo repositories.UsuarioRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(usuarioRepo repositories.UsuarioRepository) *AuthService {
	return &AuthService{
		usuarioRepo: usuarioRepo,
	}
}

// HashPassword derives a bcrypt hash for storage. The plaintext is never kept.
func (s *AuthService) HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Authenticate verifies a username/password pair and returns the matching
// user, or ErrCredenciaisInvalidas.
func (s *AuthService) Authenticate(username, password string) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	return usuario, nil
}

// RegisterUsuario hashes the given password and stores a new user. Used by the
// bootstrap admin seed; no registration route is exposed.
func (s *AuthService) RegisterUsuario(username, password string) (*models.Usuario, error) {
	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	usuario := &models.Usuario{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.usuarioRepo.Create(usuario); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return usuario, nil
}
