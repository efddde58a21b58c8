// Package contacts provides the PostgreSQL-backed contact repository.
package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// PostgresRepository implements contact storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByOwner returns all contacts owned by userID, ordered by id.
func (r *PostgresRepository) ListByOwner(ctx context.Context, userID int64) ([]*models.Contact, error) {
	query := `
		SELECT id, user_id, ime, prezime, email, telefon, adresa,
		       linkedin, skype, instagram, datum_rodjenja, jmbg
		FROM contacts
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Contact{}
	for rows.Next() {
		var item models.Contact
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Ime, &item.Prezime, &item.Email,
			&item.Telefon, &item.Adresa, &item.Linkedin, &item.Skype,
			&item.Instagram, &item.DatumRodjenja, &item.Jmbg,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the contact with the given id owned by userID, or
// common.ErrorNotFound when no such row exists for that owner.
func (r *PostgresRepository) Get(ctx context.Context, id, userID int64) (*models.Contact, error) {
	query := `
		SELECT id, user_id, ime, prezime, email, telefon, adresa,
		       linkedin, skype, instagram, datum_rodjenja, jmbg
		FROM contacts
		WHERE id = $1 AND user_id = $2
	`

	item := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&item.ID, &item.UserID, &item.Ime, &item.Prezime, &item.Email,
		&item.Telefon, &item.Adresa, &item.Linkedin, &item.Skype,
		&item.Instagram, &item.DatumRodjenja, &item.Jmbg,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

// Create inserts a contact for contact.UserID and returns it with the
// server-assigned id.
func (r *PostgresRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `
		INSERT INTO contacts
			(user_id, ime, prezime, email, telefon, adresa,
			 linkedin, skype, instagram, datum_rodjenja, jmbg)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		contact.UserID, contact.Ime, contact.Prezime, contact.Email,
		contact.Telefon, contact.Adresa, contact.Linkedin, contact.Skype,
		contact.Instagram, contact.DatumRodjenja, contact.Jmbg,
	).Scan(&contact.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contact, nil
}

// Update replaces every data field of the contact identified by
// (contact.ID, contact.UserID) in a single conditional statement. Zero rows
// affected means the row is absent or owned by someone else; both surface as
// common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, contact *models.Contact) error {
	query := `
		UPDATE contacts
		SET ime = $1, prezime = $2, email = $3, telefon = $4, adresa = $5,
		    linkedin = $6, skype = $7, instagram = $8, datum_rodjenja = $9, jmbg = $10
		WHERE id = $11 AND user_id = $12
	`

	res, err := r.db.ExecContext(ctx, query,
		contact.Ime, contact.Prezime, contact.Email, contact.Telefon,
		contact.Adresa, contact.Linkedin, contact.Skype, contact.Instagram,
		contact.DatumRodjenja, contact.Jmbg, contact.ID, contact.UserID,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Delete removes the contact identified by (id, userID). Deleting an absent
// or not-owned contact yields common.ErrorNotFound on every call, never an
// internal error.
func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM contacts WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
