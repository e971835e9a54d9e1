package services

import (
	"context"
	"fmt"

	"acsd/internal/models"
	"acsd/internal/providers"
	"acsd/internal/storage"
	"acsd/internal/structures"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// CredentialVerifier checks one credential pair and yields the matching
// user. Kept as a capability so the static pair can later be replaced by a
// real identity backend without touching callers.
type CredentialVerifier interface {
	Verify(email, password string) (*models.User, bool)
}

// StaticVerifier holds the single admin credential pair from configuration.
// Comparison is plain equality; there is exactly one supported account.
type StaticVerifier struct {
	email    string
	password string
	user     models.User
}

func NewStaticVerifier(conf *structures.Config) CredentialVerifier {
	return &StaticVerifier{
		email:    conf.Auth.AdminEmail,
		password: conf.Auth.AdminPassword,
		user: models.User{
			ID:    conf.Auth.AdminID,
			Email: conf.Auth.AdminEmail,
		},
	}
}

func (v *StaticVerifier) Verify(email, password string) (*models.User, bool) {
	if email != v.email || password != v.password {
		return nil, false
	}
	user := v.user
	return &user, true
}

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	StoreSession(ctx context.Context, user *models.User) error
	StoredSession(ctx context.Context) (*models.User, error)
	ClearSession(ctx context.Context) error
	Status(ctx context.Context) (bool, error)
}

// AuthService simulates remote authentication over the session keys. Login
// and logout are deliberately separate from session storage: login verifies
// only, logout is latency-only, and the caller decides when the local
// session keys are written or cleared.
type AuthService struct {
	delays
	store    storage.Store
	verifier CredentialVerifier
	logger   providers.Logger
}

func NewAuthService(store storage.Store, conf *structures.Config, verifier CredentialVerifier, logger providers.Logger) AuthServiceInterface {
	return &AuthService{
		delays:   delays{conf: conf.Latency},
		store:    store,
		verifier: verifier,
		logger:   logger,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := s.wait(ctx, s.conf.Login); err != nil {
		return nil, err
	}
	user, ok := s.verifier.Verify(email, password)
	if !ok {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

// Logout only simulates the remote call. Clearing the local session is a
// separate primitive the caller invokes on its own.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.wait(ctx, s.conf.Logout)
}

func (s *AuthService) StoreSession(_ context.Context, user *models.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}
	token := fmt.Sprintf("token_%s_%s", user.ID, uuid.NewString())
	rawToken, err := json.Marshal(token)
	if err != nil {
		return err
	}
	s.store.Set(storage.UserKey, rawUser)
	s.store.Set(storage.AuthTokenKey, rawToken)
	return nil
}

func (s *AuthService) StoredSession(_ context.Context) (*models.User, error) {
	raw, ok := s.store.Get(storage.UserKey)
	if !ok {
		return nil, models.ErrNotFound
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warnf(providers.TypeApp, "Corrupt stored user, treating session as absent: %s", err)
		return nil, models.ErrNotFound
	}
	return &user, nil
}

// ClearSession removes both session keys. Repeated calls are harmless.
func (s *AuthService) ClearSession(_ context.Context) error {
	s.store.Delete(storage.UserKey)
	s.store.Delete(storage.AuthTokenKey)
	return nil
}

// Status reports token presence, nothing more. The token content is never
// inspected; presence alone stands in for server-side verification.
func (s *AuthService) Status(ctx context.Context) (bool, error) {
	if err := s.wait(ctx, s.conf.Status); err != nil {
		return false, err
	}
	return s.store.Has(storage.AuthTokenKey), nil
}
