// Package httpapi exposes the JSON HTTP surface of the finance tracker:
// registration and login under /auth, plus bearer-token protected category
// and transaction routes.
package httpapi

import (
	"errors"

	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/dimaum1001/financas-web/internal/logging"
	"github.com/dimaum1001/financas-web/internal/server/config"
	"github.com/dimaum1001/financas-web/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Server wires the Fiber app to the service layer.
type Server struct {
	app          *fiber.App
	logger       logging.Logger
	users        *services.UserService
	categories   *services.CategoryService
	transactions *services.TransactionService
}

// NewServer builds the Fiber application with its middleware and routes.
func NewServer(cfg *config.Config, log logging.Logger,
	us *services.UserService, cs *services.CategoryService, ts *services.TransactionService) *Server {

	s := &Server{
		app:          fiber.New(fiber.Config{DisableStartupMessage: true}),
		logger:       log,
		users:        us,
		categories:   cs,
		transactions: ts,
	}

	s.app.Use(logger.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"mensagem": "API de Gestão Financeira rodando com sucesso"})
	})
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := s.app.Group("/auth")
	auth.Post("/register", s.handleRegister)
	auth.Post("/login", s.handleLogin)
	auth.Get("/me", s.requireUser(), s.handleMe)

	categorias := s.app.Group("/categorias", s.requireUser())
	categorias.Get("/:tipo", s.handleListCategories)
	categorias.Post("/", s.handleCreateCategory)

	transactions := s.app.Group("/transactions", s.requireUser())
	transactions.Post("/", s.handleCreateTransaction)
	transactions.Get("/", s.handleListTransactions)

	return s
}

// Listen serves HTTP on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server, draining in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// detail is the error payload shape used on every failure path.
func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

// fail maps service-layer sentinels to HTTP statuses. Handlers that need a
// route-specific phrasing handle the sentinel before calling fail.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return detail(c, fiber.StatusBadRequest, "Dados inválidos")
	case errors.Is(err, common.ErrInvalidToken):
		return detail(c, fiber.StatusUnauthorized, "Token inválido")
	case errors.Is(err, common.ErrorUnauthorized):
		return detail(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	case errors.Is(err, common.ErrorNotFound):
		return detail(c, fiber.StatusNotFound, "Não encontrado")
	default:
		s.logger.Error(c.UserContext(), "request failed", "path", c.Path(), "error", err.Error())
		return detail(c, fiber.StatusInternalServerError, "Erro interno no servidor")
	}
}
