// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/dmitrijs2005/contactkeeper/internal/server/config"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
)

const minPasswordLength = 6

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserService provides authentication-related operations:
// - Register: validate input, create the account, mint a token
// - Login: verify credentials and mint a token
// - GetProfile: resolve the authenticated identity to an account
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// validateRegistration enforces the boundary rules: non-empty name,
// well-formed email, password of at least six characters.
func validateRegistration(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return common.ErrNameRequired
	}
	if !emailRx.MatchString(email) {
		return common.ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return common.ErrPasswordTooShort
	}
	return nil
}

// Register creates a new account and returns a token bound to it.
//
// The email pre-check and the insert run inside one transaction; the unique
// index on users.email remains the authority, so a concurrent registration
// that wins the race still surfaces as common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		exists, err := repo.EmailExists(ctx, email)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return common.ErrorConflict
		}

		user, err = repo.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return "", common.ErrorConflict
		}
		return "", common.ErrorInternal
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Login verifies credentials and returns a fresh token. An unknown email and
// a wrong password are deliberately indistinguishable: both return
// common.ErrorUnauthorized.
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

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetProfile returns the account for the authenticated user id.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
