package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estoque/internal/config"
	"estoque/internal/models"
	"estoque/internal/repositories"
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

func TestSeedAdmin(t *testing.T) {
	cfg := config.Config{AdminUsername: "admin", AdminPassword: "12345"}

	// Admin already present: nothing is created.
	mockRepo := new(MockUsuarioRepository)
	authService := services.NewAuthService(mockRepo)
	mockRepo.On("GetByUsername", "admin").Return(&models.Usuario{ID: 1, Username: "admin"}, nil).Once()

	assert.NoError(t, seedAdmin(authService, mockRepo, cfg))
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)

	// Admin absent: the user is created.
	mockRepo = new(MockUsuarioRepository)
	authService = services.NewAuthService(mockRepo)
	mockRepo.On("GetByUsername", "admin").
		Return(nil, fmt.Errorf("user with username admin: %w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Usuario")).Return(nil).Once()

	assert.NoError(t, seedAdmin(authService, mockRepo, cfg))
	mockRepo.AssertExpectations(t)
}

func TestSeedAdminPropagatesLookupFailure(t *testing.T) {
	cfg := config.Config{AdminUsername: "admin", AdminPassword: "12345"}

	// A transient lookup failure must not be mistaken for an absent row.
	mockRepo := new(MockUsuarioRepository)
	authService := services.NewAuthService(mockRepo)
	lookupErr := fmt.Errorf("failed to get user by username admin: database is locked")
	mockRepo.On("GetByUsername", "admin").Return(nil, lookupErr).Once()

	err := seedAdmin(authService, mockRepo, cfg)
	assert.ErrorIs(t, err, lookupErr)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}
