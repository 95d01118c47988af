package httpapi

import (
	"errors"
	"strings"

	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "currentUser"

// requireUser resolves the Authorization bearer token to a user record and
// stores it in the request locals. A missing or invalid token is 401; a
// valid token naming a user that no longer exists is 404. Every protected
// handler scopes its queries by the user resolved here.
func (s *Server) requireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string
		header := c.Get(fiber.HeaderAuthorization)
		if header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			}
		}
		if token == "" {
			return detail(c, fiber.StatusUnauthorized, "Token inválido")
		}

		user, err := s.users.ResolveToken(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return detail(c, fiber.StatusNotFound, "Usuário não encontrado")
			}
			if errors.Is(err, common.ErrInvalidToken) {
				return detail(c, fiber.StatusUnauthorized, "Token inválido")
			}
			return s.fail(c, err)
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// currentUser returns the user stashed by requireUser.
func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
