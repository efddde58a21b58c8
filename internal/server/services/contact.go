package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
)

// ContactFields carries the client-editable part of a contact. Identity
// (id, owner) is always stamped server-side from the authenticated request,
// never taken from the payload.
type ContactFields struct {
	Ime           string
	Prezime       string
	Email         string
	Telefon       string
	Adresa        string
	Linkedin      string
	Skype         string
	Instagram     string
	DatumRodjenja string
	Jmbg          string
}

// ContactService implements the owner-scoped contact operations behind the
// protected resource endpoints.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewContactService constructs a ContactService.
func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

func (s *ContactService) apply(c *models.Contact, f ContactFields) {
	c.Ime = f.Ime
	c.Prezime = f.Prezime
	c.Email = f.Email
	c.Telefon = f.Telefon
	c.Adresa = f.Adresa
	c.Linkedin = f.Linkedin
	c.Skype = f.Skype
	c.Instagram = f.Instagram
	c.DatumRodjenja = f.DatumRodjenja
	c.Jmbg = f.Jmbg
}

// List returns all contacts owned by userID.
func (s *ContactService) List(ctx context.Context, userID int64) ([]*models.Contact, error) {
	repo := s.repomanager.Contacts(s.db)
	return repo.ListByOwner(ctx, userID)
}

// Get returns a single contact owned by userID, or common.ErrorNotFound.
func (s *ContactService) Get(ctx context.Context, id, userID int64) (*models.Contact, error) {
	repo := s.repomanager.Contacts(s.db)
	return repo.Get(ctx, id, userID)
}

// Create stores a new contact owned by userID and returns it with the
// assigned id.
func (s *ContactService) Create(ctx context.Context, userID int64, fields ContactFields) (*models.Contact, error) {
	contact := &models.Contact{UserID: userID}
	s.apply(contact, fields)

	repo := s.repomanager.Contacts(s.db)
	return repo.Create(ctx, contact)
}

// Update replaces every field of the contact identified by (id, userID).
// A contact owned by another user surfaces as common.ErrorNotFound.
func (s *ContactService) Update(ctx context.Context, id, userID int64, fields ContactFields) (*models.Contact, error) {
	contact := &models.Contact{ID: id, UserID: userID}
	s.apply(contact, fields)

	repo := s.repomanager.Contacts(s.db)
	if err := repo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes the contact identified by (id, userID).
func (s *ContactService) Delete(ctx context.Context, id, userID int64) error {
	repo := s.repomanager.Contacts(s.db)
	return repo.Delete(ctx, id, userID)
}
