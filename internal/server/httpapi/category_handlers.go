package httpapi

import (
	"errors"

	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

type categoryRequest struct {
	Nome string      `json:"nome"`
	Tipo models.Type `json:"tipo"`
}

type categoryResponse struct {
	ID   int64       `json:"id"`
	Nome string      `json:"nome"`
	Tipo models.Type `json:"tipo"`
}

func newCategoryResponse(c *models.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Nome: c.Name, Tipo: c.Type}
}

func (s *Server) handleListCategories(c *fiber.Ctx) error {
	tipo := models.Type(c.Params("tipo"))
	if !tipo.Valid() {
		return detail(c, fiber.StatusBadRequest, "Tipo inválido")
	}

	user := currentUser(c)
	list, err := s.categories.List(c.UserContext(), user.ID, tipo)
	if err != nil {
		return s.fail(c, err)
	}

	out := make([]categoryResponse, 0, len(list))
	for _, item := range list {
		out = append(out, newCategoryResponse(item))
	}
	return c.JSON(out)
}

func (s *Server) handleCreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	user := currentUser(c)
	created, err := s.categories.Create(c.UserContext(), user.ID, req.Nome, req.Tipo)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return detail(c, fiber.StatusBadRequest, "Categoria já existe")
		}
		return s.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newCategoryResponse(created))
}
