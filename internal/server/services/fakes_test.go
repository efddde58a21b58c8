package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	contactsrepo "github.com/dmitrijs2005/contactkeeper/internal/server/repositories/contacts"
	usersrepo "github.com/dmitrijs2005/contactkeeper/internal/server/repositories/users"
)

// --- in-memory fakes shared by the service tests ---

type fakeUsersRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User

	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[int64]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return nil, common.ErrorConflict
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if err == common.ErrorNotFound {
		return false, nil
	}
	return false, err
}

type fakeContactsRepo struct {
	mu       sync.Mutex
	nextID   int64
	contacts map[int64]*models.Contact
}

func newFakeContactsRepo() *fakeContactsRepo {
	return &fakeContactsRepo{contacts: map[int64]*models.Contact{}}
}

func (f *fakeContactsRepo) ListByOwner(ctx context.Context, userID int64) ([]*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []*models.Contact{}
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.contacts[id]; ok && c.UserID == userID {
			cp := *c
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakeContactsRepo) Get(ctx context.Context, id, userID int64) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.contacts[id]; ok && c.UserID == userID {
		cp := *c
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeContactsRepo) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	contact.ID = f.nextID
	cp := *contact
	f.contacts[contact.ID] = &cp
	return contact, nil
}

func (f *fakeContactsRepo) Update(ctx context.Context, contact *models.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.contacts[contact.ID]; ok && existing.UserID == contact.UserID {
		cp := *contact
		f.contacts[contact.ID] = &cp
		return nil
	}
	return common.ErrorNotFound
}

func (f *fakeContactsRepo) Delete(ctx context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.contacts[id]; ok && c.UserID == userID {
		delete(f.contacts, id)
		return nil
	}
	return common.ErrorNotFound
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeContactsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), c: newFakeContactsRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Contacts(db dbx.DBTX) contactsrepo.Repository { return m.c }
