package contacts

import (
	"context"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// Repository stores contact records scoped by owning user. Every lookup and
// mutation filters by both the contact id and the owner id, so a contact that
// exists under another user is indistinguishable from one that does not exist.
type Repository interface {
	ListByOwner(ctx context.Context, userID int64) ([]*models.Contact, error)
	Get(ctx context.Context, id, userID int64) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id, userID int64) error
}
