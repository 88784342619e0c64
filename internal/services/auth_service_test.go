package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"estoque/internal/models"
	"estoque/internal/services"
)

// MockUsuarioRepository is a mock implementation of repositories.UsuarioRepository
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) Create(usuario *models.Usuario) error {
	args := m.Called(usuario)
	return args.Error(0)
}

func (m *MockUsuarioRepository) GetByUsername(username string) (*models.Usuario, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) GetByID(id uint) (*models.Usuario, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func TestAuthService_HashPassword(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	authService := services.NewAuthService(mockRepo)

	hash, err := authService.HashPassword("12345")
	assert.NoError(t, err)
	assert.NotEqual(t, "12345", hash)

	// The stored hash must verify against the original plaintext.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("12345")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))

	// Salted: hashing the same plaintext twice yields different strings.
	hash2, err := authService.HashPassword("12345")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestAuthService_Authenticate(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	authService := services.NewAuthService(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	usuario := &models.Usuario{
		ID:           1,
		Username:     "admin",
		PasswordHash: string(hashed),
	}

	// Successful login
	mockRepo.On("GetByUsername", "admin").Return(usuario, nil).Once()
	got, err := authService.Authenticate("admin", "password123")
	assert.NoError(t, err)
	assert.Equal(t, usuario.ID, got.ID)
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByUsername", "admin").Return(usuario, nil).Once()
	got, err = authService.Authenticate("admin", "wrongpassword")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, services.ErrCredenciaisInvalidas)
	mockRepo.AssertExpectations(t)

	// Unknown user yields the same generic error.
	mockRepo.On("GetByUsername", "nobody").Return(nil, fmt.Errorf("user with username nobody: not found")).Once()
	got, err = authService.Authenticate("nobody", "password123")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, services.ErrCredenciaisInvalidas)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUsuario(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	authService := services.NewAuthService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Usuario")).Return(nil).Once()

	usuario, err := authService.RegisterUsuario("admin", "12345")
	assert.NoError(t, err)
	assert.Equal(t, "admin", usuario.Username)
	assert.NotEqual(t, "12345", usuario.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte("12345")))
	mockRepo.AssertExpectations(t)

	// Repository failure propagates.
	mockRepo.On("Create", mock.AnythingOfType("*models.Usuario")).Return(fmt.Errorf("database error")).Once()
	_, err = authService.RegisterUsuario("admin", "12345")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
