// Package services contains server-side business logic. This file implements
// UserService: registration with default-category seeding, login, and
// resolving bearer tokens back to user records.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/dimaum1001/financas-web/internal/dbx"
	"github.com/dimaum1001/financas-web/internal/server/auth"
	"github.com/dimaum1001/financas-web/internal/server/config"
	"github.com/dimaum1001/financas-web/internal/server/models"
	"github.com/dimaum1001/financas-web/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// DefaultCategories is the seed set every new user starts with: 4 income
// and 8 expense categories.
var DefaultCategories = map[models.Type][]string{
	models.TypeIncome: {
		"Salário",
		"Freelance",
		"Rendimentos",
		"Investimentos",
	},
	models.TypeExpense: {
		"Alimentação",
		"Transporte",
		"Moradia",
		"Lazer",
		"Educação",
		"Saúde",
		"Assinaturas",
		"Impostos",
	},
}

// UserService provides authentication-related operations:
// - Register: create a user together with its default categories
// - Login: verify credentials and mint an access token
// - ResolveToken: map a bearer token back to a user record
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user and its default categories in a single
// transaction. A taken email yields common.ErrorAlreadyExists and nothing
// is written; any later failure rolls the whole registration back, so a
// user without categories is never durably visible.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userRepoTx := s.repomanager.Users(tx)
		if _, err := userRepoTx.Create(ctx, user); err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}

		catRepoTx := s.repomanager.Categories(tx)
		for tipo, names := range DefaultCategories {
			for _, nome := range names {
				c := &models.Category{Name: nome, Type: tipo, UserID: user.ID}
				if _, err := catRepoTx.Create(ctx, c); err != nil {
					return fmt.Errorf("error seeding category %q: %w", nome, err)
				}
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns a signed access token. An
// unknown email and a wrong password are deliberately indistinguishable.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID.String(), s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// ResolveToken validates a bearer token and loads the user it names.
// Invalid tokens yield common.ErrInvalidToken; a valid token whose user no
// longer exists yields common.ErrorNotFound.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	subject, err := auth.SubjectFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	id, err := uuid.Parse(subject)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}
