// Package lists implements the collaborative list operations: membership,
// items, ratings, criteria and owner-gated administration.
//
// Every operation loads the whole list aggregate, mutates it in memory and
// saves it back once. There is no versioning: two concurrent writers of the
// same list race and the last save wins.
package lists

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mmynk/topten/internal/auth"
	"github.com/mmynk/topten/internal/models"
	"github.com/mmynk/topten/internal/storage"
)

// Repository persists list aggregates and the per-user membership index.
type Repository interface {
	GetList(ctx context.Context, listID string) (*models.TopTenList, error)
	SaveList(ctx context.Context, list *models.TopTenList) error
	UserListIDs(ctx context.Context, userID string) ([]string, error)
	AddUserList(ctx context.Context, userID, listID string) error
}

var _ Repository = (*storage.ListStore)(nil)

// SecretHasher mints and verifies owner secrets.
type SecretHasher interface {
	Mint() (secret, hash string, err error)
	Verify(hash, secret string) bool
}

var _ SecretHasher = (*auth.SecretHasher)(nil)

// Service runs list operations on behalf of resolved callers.
type Service struct {
	repo     Repository
	resolver auth.Resolver
	secrets  SecretHasher
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger (default slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service.
func NewService(repo Repository, resolver auth.Resolver, secrets SecretHasher, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		resolver: resolver,
		secrets:  secrets,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) load(ctx context.Context, listID string) (*models.TopTenList, error) {
	if listID == "" {
		return nil, fmt.Errorf("list id is required: %w", ErrInvalidArgument)
	}

	list, err := s.repo.GetList(ctx, listID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("list %s: %w", listID, ErrNotFound)
		}
		s.logger.Error("Failed to load list", "list_id", listID, "error", err)
		return nil, &StorageError{Op: "load list", Err: err}
	}
	return list, nil
}

func (s *Service) save(ctx context.Context, list *models.TopTenList) error {
	if err := s.repo.SaveList(ctx, list); err != nil {
		s.logger.Error("Failed to save list", "list_id", list.ID, "error", err)
		return &StorageError{Op: "save list", Err: err}
	}
	return nil
}

func (s *Service) index(ctx context.Context, userID, listID string) error {
	if err := s.repo.AddUserList(ctx, userID, listID); err != nil {
		s.logger.Error("Failed to index list for user", "list_id", listID, "user_id", userID, "error", err)
		return &StorageError{Op: "index list", Err: err}
	}
	return nil
}

// resolve returns the caller identity, or ErrUnauthenticated.
func (s *Service) resolve(ctx context.Context, listID string) (*auth.Identity, error) {
	id, err := s.resolver.Resolve(ctx, listID)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			return nil, ErrUnauthenticated
		}
		s.logger.Error("Failed to resolve caller", "list_id", listID, "error", err)
		return nil, &StorageError{Op: "resolve caller", Err: err}
	}
	return id, nil
}

// identify resolves the caller, enrolling a fresh identity when none is
// presented, the resolver supports it and a display name was given.
func (s *Service) identify(ctx context.Context, listID, displayName string) (*auth.Identity, *auth.Credential, error) {
	id, err := s.resolve(ctx, listID)
	if err == nil {
		return id, nil, nil
	}
	if !errors.Is(err, ErrUnauthenticated) {
		return nil, nil, err
	}

	enroller, ok := s.resolver.(auth.Enroller)
	if !ok || displayName == "" {
		return nil, nil, err
	}

	id, cred, err := enroller.Enroll(ctx, listID, displayName)
	if err != nil {
		s.logger.Error("Failed to enroll caller", "list_id", listID, "error", err)
		return nil, nil, &StorageError{Op: "enroll caller", Err: err}
	}
	return id, cred, nil
}

// member resolves the caller and requires list membership.
func (s *Service) member(ctx context.Context, list *models.TopTenList) (*auth.Identity, error) {
	id, err := s.resolve(ctx, list.ID)
	if err != nil {
		return nil, err
	}
	if !list.IsMember(id.UserID) {
		return nil, fmt.Errorf("user %s on list %s: %w", id.UserID, list.ID, ErrForbidden)
	}
	return id, nil
}

func (s *Service) authorizeOwner(list *models.TopTenList, ownerSecret string) error {
	if !s.secrets.Verify(list.OwnerSecretHash, ownerSecret) {
		return fmt.Errorf("list %s: %w", list.ID, ErrUnauthorized)
	}
	return nil
}

func (s *Service) invalid(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%s failed %q: %w", fieldName(fe), fe.Tag(), ErrInvalidArgument)
	}
	return fmt.Errorf("%v: %w", err, ErrInvalidArgument)
}

func fieldName(fe validator.FieldError) string {
	if fe.Field() != "" {
		return fe.Field()
	}
	return "value"
}

func newUser(id *auth.Identity, cred *auth.Credential, displayName string, joinedAt int64) models.User {
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = id.DisplayName
	}
	if name == "" {
		name = "Anonymous"
	}

	user := models.User{
		ID:          id.UserID,
		DisplayName: name,
		JoinedAt:    joinedAt,
		Email:       id.Email,
		AvatarURL:   id.AvatarURL,
	}
	if cred != nil && cred.Kind == auth.CredentialToken {
		user.TokenHash = auth.HashToken(cred.Value)
	}
	return user
}
