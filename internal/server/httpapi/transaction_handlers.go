package httpapi

import (
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/dimaum1001/financas-web/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

type transactionRequest struct {
	Tipo      models.Type `json:"tipo"`
	Categoria string      `json:"categoria"`
	Valor     float64     `json:"valor"`
	Data      models.Date `json:"data"`
	Descricao *string     `json:"descricao"`
}

type transactionResponse struct {
	ID        int64       `json:"id"`
	Tipo      models.Type `json:"tipo"`
	Categoria string      `json:"categoria"`
	Valor     float64     `json:"valor"`
	Data      models.Date `json:"data"`
	Descricao *string     `json:"descricao"`
}

func newTransactionResponse(t *models.Transaction) transactionResponse {
	return transactionResponse{
		ID:        t.ID,
		Tipo:      t.Type,
		Categoria: t.Category,
		Valor:     t.Amount,
		Data:      t.Date,
		Descricao: t.Description,
	}
}

func (s *Server) handleCreateTransaction(c *fiber.Ctx) error {
	var req transactionRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	user := currentUser(c)
	created, err := s.transactions.Create(c.UserContext(), user.ID, services.TransactionInput{
		Type:        req.Tipo,
		Category:    req.Categoria,
		Amount:      req.Valor,
		Date:        req.Data,
		Description: req.Descricao,
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newTransactionResponse(created))
}

func (s *Server) handleListTransactions(c *fiber.Ctx) error {
	user := currentUser(c)
	list, err := s.transactions.List(c.UserContext(), user.ID)
	if err != nil {
		return s.fail(c, err)
	}

	out := make([]transactionResponse, 0, len(list))
	for _, item := range list {
		out = append(out, newTransactionResponse(item))
	}
	return c.JSON(out)
}
