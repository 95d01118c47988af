package httpapi

import (
	"errors"

	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type registerRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Nome  string    `json:"nome"`
	Email string    `json:"email"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Nome: u.Name, Email: u.Email}
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Dados inválidos")
	}
	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		return detail(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	if _, err := s.users.Register(c.UserContext(), req.Nome, req.Email, req.Senha); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return detail(c, fiber.StatusBadRequest, "Email já está em uso")
		}
		return s.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"msg": "Usuário cadastrado com sucesso"})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Dados inválidos")
	}
	if req.Email == "" || req.Senha == "" {
		return detail(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	token, err := s.users.Login(c.UserContext(), req.Email, req.Senha)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(fiber.Map{"access_token": token, "token_type": "bearer"})
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	return c.JSON(newUserResponse(currentUser(c)))
}
