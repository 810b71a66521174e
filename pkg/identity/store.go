package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/asaskevich/govalidator"
	"go.uber.org/zap"

	"ktap/pkg/api"
	"ktap/pkg/content"
)

var ErrLoginFailed = errors.New("login failed, try again later")

// LoginError carries the server's explanation of a rejected login.
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string { return e.Message }

type Authenticator interface {
	HasSession() bool
	ClearSession()
	CurrentUser(ctx context.Context) (*content.User, error)
	Login(ctx context.Context, email, password string) (*content.User, error)
	Logout(ctx context.Context) error
}

// Storage is client-side persisted state that must not outlive the session.
type Storage interface {
	Clear() error
}

type Store struct {
	auth    Authenticator
	storage Storage
	logger  *zap.SugaredLogger

	mu             sync.RWMutex
	user           *content.User
	authenticating bool
}

func NewStore(auth Authenticator, storage Storage, logger *zap.SugaredLogger) *Store {
	return &Store{
		auth:           auth,
		storage:        storage,
		logger:         logger,
		authenticating: true,
	}
}

// User returns a copy of the current user or nil.
func (s *Store) User() *content.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

func (s *Store) Authenticating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticating
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin
}

func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = a.apply(s.user.Clone())
}

// Hydrate restores the user of an existing session. Any failure ends in a
// clean logged out state; it never returns an error.
func (s *Store) Hydrate(ctx context.Context) {
	defer s.settle()

	if !s.auth.HasSession() {
		return
	}

	u, err := s.auth.CurrentUser(ctx)
	if err != nil {
		s.logger.Infow("session restore failed", "error", err)
		s.clearLocal()
		return
	}
	s.Dispatch(SetUser(u))
}

// Login settles the store whether or not it succeeds, so Authenticating is
// false afterwards even without a prior Hydrate.
func (s *Store) Login(ctx context.Context, email, password string) error {
	defer s.settle()
	s.clearLocal()

	email = strings.TrimSpace(email)
	if !govalidator.IsEmail(email) {
		return &LoginError{Message: "invalid email"}
	}
	if password == "" {
		return &LoginError{Message: "password is required"}
	}

	u, err := s.auth.Login(ctx, email, password)
	if err != nil {
		var serr *api.StatusError
		if errors.As(err, &serr) && serr.Code == http.StatusForbidden && serr.Message != "" {
			return &LoginError{Message: serr.Message}
		}
		s.logger.Errorw("login failed", "email", email, "error", err)
		return ErrLoginFailed
	}

	s.Dispatch(SetUser(u))
	return nil
}

// Logout always ends logged out locally, even when the server call fails.
func (s *Store) Logout(ctx context.Context) error {
	defer s.clearLocal()

	if err := s.auth.Logout(ctx); err != nil {
		s.logger.Warnw("server logout failed", "error", err)
		return err
	}
	return nil
}

func (s *Store) settle() {
	s.mu.Lock()
	s.authenticating = false
	s.mu.Unlock()
}

func (s *Store) clearLocal() {
	s.auth.ClearSession()
	if s.storage != nil {
		if err := s.storage.Clear(); err != nil {
			s.logger.Warnw("storage clear failed", "error", err)
		}
	}
	s.Dispatch(ClearUser())
}
