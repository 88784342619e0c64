package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"estoque/internal/services"
	"estoque/internal/sessions"
)

// AuthHandler handles login, logout and the home redirect.
type AuthHandler struct {
	authService *services.AuthService
	store       *sessions.Store
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, store *sessions.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Get("/login", h.HandleLoginPage)
	router.Post("/login", h.HandleLogin)
	router.Get("/logout", h.HandleLogout)
	router.Post("/logout", h.HandleLogout)
}

// HandleHome redirects to the login page.
func (h *AuthHandler) HandleHome(c *fiber.Ctx) error {
	return c.Redirect("/login", fiber.StatusFound)
}

// HandleLoginPage answers GET /login with an informational message.
func (h *AuthHandler) HandleLoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"mensagem": "Página de login - use POST para autenticar",
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin verifies the credentials and establishes a session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"erro": "Dados inválidos ou ausentes",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"erro": "Dados inválidos ou ausentes",
		})
	}

	usuario, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		// Same message for unknown user and wrong password.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"erro": "Usuário ou senha inválidos",
		})
	}

	if err := h.store.Login(c, usuario.ID); err != nil {
		log.Printf("Error establishing session for user %s: %v", usuario.Username, err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"mensagem": "Login realizado com sucesso",
	})
}

// HandleLogout clears the session unconditionally.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	h.store.Logout(c)
	return c.JSON(fiber.Map{
		"mensagem": "Logout realizado com sucesso",
	})
}
