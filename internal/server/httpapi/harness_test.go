package httpapi

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/dmitrijs2005/contactkeeper/internal/server/config"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	contactsrepo "github.com/dmitrijs2005/contactkeeper/internal/server/repositories/contacts"
	usersrepo "github.com/dmitrijs2005/contactkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/contactkeeper/internal/server/services"
	"github.com/dmitrijs2005/contactkeeper/internal/server/storage"
	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

// --- in-memory repositories backing the router under test ---

type memUsersRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func (f *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
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

func (f *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *memUsersRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

type memContactsRepo struct {
	mu       sync.Mutex
	nextID   int64
	contacts map[int64]*models.Contact
}

func (f *memContactsRepo) ListByOwner(ctx context.Context, userID int64) ([]*models.Contact, error) {
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

func (f *memContactsRepo) Get(ctx context.Context, id, userID int64) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.contacts[id]; ok && c.UserID == userID {
		cp := *c
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (f *memContactsRepo) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	contact.ID = f.nextID
	cp := *contact
	f.contacts[contact.ID] = &cp
	return contact, nil
}

func (f *memContactsRepo) Update(ctx context.Context, contact *models.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.contacts[contact.ID]; ok && existing.UserID == contact.UserID {
		cp := *contact
		f.contacts[contact.ID] = &cp
		return nil
	}
	return common.ErrorNotFound
}

func (f *memContactsRepo) Delete(ctx context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.contacts[id]; ok && c.UserID == userID {
		delete(f.contacts, id)
		return nil
	}
	return common.ErrorNotFound
}

type memRepoManager struct {
	u *memUsersRepo
	c *memContactsRepo
}

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *memRepoManager) Contacts(db dbx.DBTX) contactsrepo.Repository {
	return m.c
}

// --- router harness ---

type testEnv struct {
	router *gin.Engine
	mock   sqlmock.Sqlmock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	rm := &memRepoManager{
		u: &memUsersRepo{users: map[int64]*models.User{}},
		c: &memContactsRepo{contacts: map[int64]*models.Contact{}},
	}

	cfg := &config.Config{SecretKey: testSecret, TokenValidityDuration: time.Hour}
	us := services.NewUserService(db, rm, cfg)
	cs := services.NewContactService(db, rm)

	fs, err := storage.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore error: %v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := NewHTTPServer(":0", logger, us, cs, fs, testSecret)

	return &testEnv{router: srv.buildRouter(), mock: mock}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthTokenHeaderName, token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, w.Body.String())
	}
	return m
}

// registerUser queues the transaction expectations for one registration and
// returns the issued token.
func (e *testEnv) registerUser(t *testing.T, name, email, password string) string {
	t.Helper()

	e.mock.ExpectBegin()
	e.mock.ExpectCommit()

	w := e.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	token, ok := decodeJSON(t, w)["token"].(string)
	if !ok || token == "" {
		t.Fatalf("register response missing token: %s", w.Body.String())
	}
	return token
}

// multipartBody builds a multipart form with a single "file" part.
func multipartBody(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}
