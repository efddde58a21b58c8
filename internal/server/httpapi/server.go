// Package httpapi exposes the REST surface of the server: public auth
// endpoints and the token-guarded contact and upload resources.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/dmitrijs2005/contactkeeper/internal/server/services"
	"github.com/dmitrijs2005/contactkeeper/internal/server/storage"
)

// Client-visible response messages. These are part of the wire contract with
// the SPA and kept apart from the internal sentinel errors.
const (
	msgInvalidBody        = "Invalid request body"
	msgNameRequired       = "Name is required"
	msgInvalidEmail       = "Please include a valid email"
	msgPasswordTooShort   = "Please enter a password with 6 or more characters"
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid Credentials"
	msgUserNotFound       = "User not found"
	msgServerError        = "Server error"
	msgNoToken            = "No token, authorization denied"
	msgTokenNotValid      = "Token is not valid"
	msgContactNotFound    = "Contact not found"
	msgContactDeleted     = "Contact deleted successfully"
	msgNoFileUploaded     = "No file uploaded"
	msgUnsupportedFile    = "Only image and document files are allowed!"
	msgFileTooLarge       = "File too large"
	msgFileNotFound       = "File not found"
	msgFileDeleted        = "File deleted successfully"
)

const shutdownTimeout = 5 * time.Second

// HTTPServer serves the REST API.
type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	contacts  *services.ContactService
	files     storage.FileStore
	jwtSecret []byte
}

// NewHTTPServer constructs an HTTPServer bound to the given services.
func NewHTTPServer(a string, l logging.Logger, us *services.UserService, cs *services.ContactService, fs storage.FileStore, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		contacts:  cs,
		files:     fs,
		jwtSecret: []byte(secretKey),
	}
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.buildRouter(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
