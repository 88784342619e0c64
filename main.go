package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"estoque/internal/config"
	"estoque/internal/database"
	"estoque/internal/handlers"
	"estoque/internal/middleware"
	"estoque/internal/models"
	"estoque/internal/repositories"
	"estoque/internal/services"
	"estoque/internal/sessions"
	"estoque/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Repositories ---
	produtoRepo := repositories.NewGORMProdutoRepository(db)
	usuarioRepo := repositories.NewGORMUsuarioRepository(db)

	// --- Optional event publisher ---
	var events services.EventPublisher
	if cfg.AMQPEnabled {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.AMQPURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient
	}

	// --- Services ---
	produtoService := services.NewProdutoService(produtoRepo, events)
	authService := services.NewAuthService(usuarioRepo)

	// --- Bootstrap seed ---
	if err := seedAdmin(authService, usuarioRepo, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seedProdutos(produtoService); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	// --- Sessions ---
	store := sessions.NewStore(cfg.SessionSecret, cfg.SessionTTL)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, store)
	produtoHandler := handlers.NewProdutoHandler(produtoService)

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New()) // Request logger

	// Public routes
	authHandler.RegisterRoutes(app)

	// Protected routes; the guard only covers the /produtos prefix.
	produtoHandler.RegisterRoutes(app, middleware.LoginRequerido(store))

	// --- Health Check Endpoint ---
	app.Get("/health", handleHealth)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// handleHealth answers the unauthenticated liveness probe.
func handleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// errorHandler is the catch-all: explicit fiber errors keep their status,
// everything else becomes a generic 500 JSON body.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code != fiber.StatusInternalServerError {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"erro": fiberErr.Message,
		})
	}
	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"erro": "Erro interno do servidor",
	})
}

// seedAdmin creates the admin user from configuration if it does not exist.
func seedAdmin(authService *services.AuthService, usuarioRepo repositories.UsuarioRepository, cfg config.Config) error {
	_, err := usuarioRepo.GetByUsername(cfg.AdminUsername)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err // transient failure, not an absent row
	}
	usuario, err := authService.RegisterUsuario(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return err
	}
	log.Printf("Seeded admin user %s (ID: %d)", usuario.Username, usuario.ID)
	return nil
}

// seedProdutos inserts the example products when the table is empty.
func seedProdutos(produtoService *services.ProdutoService) error {
	count, err := produtoService.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	validade := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	produtos := []models.Produto{
		{Nome: "X-Burger", Preco: 15.00, Quantidade: 0, Validade: validade},
		{Nome: "Coca-Cola 350ml", Preco: 6.00, Quantidade: 0, Validade: validade},
		{Nome: "Batata Frita", Preco: 12.00, Quantidade: 0, Validade: validade},
	}

	for i := range produtos {
		if err := produtoService.Create(&produtos[i]); err != nil {
			return err
		}
		log.Printf("Seeded product: %s (ID: %d)", produtos[i].Nome, produtos[i].ID)
	}
	return nil
}
