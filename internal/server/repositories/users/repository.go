package users

import (
	"context"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// Repository is the credential store: it persists accounts and looks them up
// for login and identity echo.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
