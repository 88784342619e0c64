package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"estoque/internal/models"
	"estoque/internal/repositories"
	"estoque/internal/services"
)

const dateLayout = "2006-01-02"

// ProdutoHandler handles HTTP requests for products.
type ProdutoHandler struct {
	service  *services.ProdutoService
	validate *validator.Validate
}

// NewProdutoHandler creates a new ProdutoHandler.
func NewProdutoHandler(service *services.ProdutoService) *ProdutoHandler {
	return &ProdutoHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes behind the given session guard.
// The guard is scoped to the /produtos prefix so public routes registered on
// the same app stay public.
func (h *ProdutoHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	produtoRoutes := router.Group("/produtos", guard)
	produtoRoutes.Get("/", h.HandleListProdutos)
	produtoRoutes.Post("/", h.HandleCreateProduto)
	produtoRoutes.Get("/:id", h.HandleGetProduto)
	produtoRoutes.Put("/:id", h.HandleUpdateProduto)
	produtoRoutes.Delete("/:id", h.HandleDeleteProduto)
}

// produtoRequest is the write payload. Quantidade and Preco are kept raw so
// numeric strings (including comma decimal separators) are accepted alongside
// JSON numbers, matching the lenient input handling of the original API.
type produtoRequest struct {
	Nome       *string     `json:"nome"`
	Quantidade interface{} `json:"quantidade"`
	Preco      interface{} `json:"preco"`
	Validade   *string     `json:"validade"`
}

// produtoResponse is the read shape; validade is always YYYY-MM-DD.
type produtoResponse struct {
	ID         uint    `json:"id"`
	Nome       string  `json:"nome"`
	Quantidade int     `json:"quantidade"`
	Preco      float64 `json:"preco"`
	Validade   string  `json:"validade"`
}

func toProdutoResponse(p models.Produto) produtoResponse {
	return produtoResponse{
		ID:         p.ID,
		Nome:       p.Nome,
		Quantidade: p.Quantidade,
		Preco:      p.Preco,
		Validade:   p.Validade.Format(dateLayout),
	}
}

// HandleListProdutos returns the full product list.
func (h *ProdutoHandler) HandleListProdutos(c *fiber.Ctx) error {
	produtos, err := h.service.List()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return fiber.ErrInternalServerError
	}

	resp := make([]produtoResponse, 0, len(produtos))
	for _, p := range produtos {
		resp = append(resp, toProdutoResponse(p))
	}
	return c.JSON(resp)
}

// HandleGetProduto returns a single product by ID.
func (h *ProdutoHandler) HandleGetProduto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondProdutoNotFound(c)
	}

	produto, err := h.service.Get(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondProdutoNotFound(c)
		}
		log.Printf("Error getting product %d: %v", id, err)
		return fiber.ErrInternalServerError
	}
	return c.JSON(toProdutoResponse(*produto))
}

// HandleCreateProduto validates the payload and creates a product.
func (h *ProdutoHandler) HandleCreateProduto(c *fiber.Ctx) error {
	var req produtoRequest
	if err := c.BodyParser(&req); err != nil {
		return respondDadosInvalidos(c)
	}

	// All four fields are required on creation.
	if req.Nome == nil || req.Quantidade == nil || req.Preco == nil || req.Validade == nil {
		return respondDadosInvalidos(c)
	}

	quantidade, err := parseQuantidade(req.Quantidade)
	if err != nil {
		return respondDadosInvalidos(c)
	}
	preco, err := parsePreco(req.Preco)
	if err != nil {
		return respondDadosInvalidos(c)
	}
	validade, err := time.Parse(dateLayout, *req.Validade)
	if err != nil {
		return respondDadosInvalidos(c)
	}

	produto := models.Produto{
		Nome:       *req.Nome,
		Quantidade: quantidade,
		Preco:      preco,
		Validade:   validade,
	}
	if err := h.validate.Struct(&produto); err != nil {
		return respondProdutoValidationError(c, err)
	}

	if err := h.service.Create(&produto); err != nil {
		log.Printf("Error creating product: %v", err)
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       produto.ID,
		"mensagem": "Produto adicionado com sucesso",
	})
}

// HandleUpdateProduto applies a partial update: fields absent from the body
// keep their stored values. The merged record is re-validated before commit.
func (h *ProdutoHandler) HandleUpdateProduto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondProdutoNotFound(c)
	}

	atual, err := h.service.Get(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondProdutoNotFound(c)
		}
		log.Printf("Error getting product %d for update: %v", id, err)
		return fiber.ErrInternalServerError
	}

	var req produtoRequest
	if err := c.BodyParser(&req); err != nil {
		return respondDadosInvalidos(c)
	}

	upd := services.ProdutoUpdate{Nome: req.Nome}
	merged := *atual
	if req.Nome != nil {
		merged.Nome = *req.Nome
	}
	if req.Quantidade != nil {
		quantidade, err := parseQuantidade(req.Quantidade)
		if err != nil {
			return respondDadosInvalidos(c)
		}
		upd.Quantidade = &quantidade
		merged.Quantidade = quantidade
	}
	if req.Preco != nil {
		preco, err := parsePreco(req.Preco)
		if err != nil {
			return respondDadosInvalidos(c)
		}
		upd.Preco = &preco
		merged.Preco = preco
	}
	if req.Validade != nil {
		validade, err := time.Parse(dateLayout, *req.Validade)
		if err != nil {
			return respondDadosInvalidos(c)
		}
		upd.Validade = &validade
		merged.Validade = validade
	}

	if err := h.validate.Struct(&merged); err != nil {
		return respondProdutoValidationError(c, err)
	}

	produto, err := h.service.Update(uint(id), upd)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondProdutoNotFound(c)
		}
		log.Printf("Error updating product %d: %v", id, err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"id":       produto.ID,
		"mensagem": "Produto atualizado com sucesso",
		"novo":     toProdutoResponse(*produto),
	})
}

// HandleDeleteProduto removes a product permanently.
func (h *ProdutoHandler) HandleDeleteProduto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondProdutoNotFound(c)
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondProdutoNotFound(c)
		}
		log.Printf("Error deleting product %d: %v", id, err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"mensagem": "Produto deletado com sucesso",
	})
}

func respondDadosInvalidos(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"erro": "Dados inválidos ou ausentes",
	})
}

func respondProdutoNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"erro": "Produto não encontrado",
	})
}

// respondProdutoValidationError maps struct validation failures to the two
// user-facing messages: positivity violations get the dedicated one.
func respondProdutoValidationError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			if e.Field() == "Quantidade" || e.Field() == "Preco" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"erro": "Quantidade e preço devem ser positivos",
				})
			}
		}
	}
	return respondDadosInvalidos(c)
}

// parseQuantidade accepts a JSON number or a numeric string.
func parseQuantidade(v interface{}) (int, error) {
	switch value := v.(type) {
	case float64:
		return int(value), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(value))
	default:
		return 0, strconv.ErrSyntax
	}
}

// parsePreco accepts a JSON number or a numeric string; string values may use
// a comma as the decimal separator ("12,50" and "12.50" are equivalent).
func parsePreco(v interface{}) (float64, error) {
	switch value := v.(type) {
	case float64:
		return value, nil
	case string:
		normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
		return strconv.ParseFloat(normalized, 64)
	default:
		return 0, strconv.ErrSyntax
	}
}
