package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/topten/internal/models"
	"github.com/mmynk/topten/internal/storage"
)

// UserTokenHeader carries the per-list user token.
const UserTokenHeader = "X-TopTen-User-Token"

// TokenBindings persists which member a token hash belongs to.
// Implemented by storage.ListStore.
type TokenBindings interface {
	PutUserToken(ctx context.Context, listID, tokenHash string, binding storage.TokenBinding) error
	GetUserToken(ctx context.Context, listID, tokenHash string) (*storage.TokenBinding, error)
}

// TokenResolver recognizes members by an opaque per-list token. Presenting
// the same token from another device yields the same identity.
type TokenResolver struct {
	bindings TokenBindings
}

var (
	_ Resolver = (*TokenResolver)(nil)
	_ Enroller = (*TokenResolver)(nil)
)

// NewTokenResolver creates a resolver backed by bindings.
func NewTokenResolver(bindings TokenBindings) *TokenResolver {
	return &TokenResolver{bindings: bindings}
}

// Resolve implements Resolver. Lookup failures other than an unknown token
// are returned as-is so callers can tell them apart from a missing identity.
func (r *TokenResolver) Resolve(ctx context.Context, listID string) (*Identity, error) {
	token := CredentialsFromContext(ctx).UserToken
	if listID == "" || token == "" {
		return nil, ErrUnauthenticated
	}

	binding, err := r.bindings.GetUserToken(ctx, listID, HashToken(token))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve user token: %w", err)
	}

	return &Identity{UserID: binding.UserID, DisplayName: binding.DisplayName}, nil
}

// Enroll implements Enroller. The binding is stored before returning, so the
// token is usable as soon as the caller receives it.
func (r *TokenResolver) Enroll(ctx context.Context, listID, displayName string) (*Identity, *Credential, error) {
	token, err := RandomToken()
	if err != nil {
		return nil, nil, err
	}

	id := &Identity{UserID: models.NewID(), DisplayName: displayName}
	binding := storage.TokenBinding{UserID: id.UserID, DisplayName: displayName}
	if err := r.bindings.PutUserToken(ctx, listID, HashToken(token), binding); err != nil {
		return nil, nil, fmt.Errorf("failed to bind user token: %w", err)
	}

	return id, &Credential{
		Kind:  CredentialToken,
		Name:  UserTokenHeader,
		Value: token,
	}, nil
}
