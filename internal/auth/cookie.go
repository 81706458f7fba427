package auth

import (
	"context"
	"time"

	"github.com/mmynk/topten/internal/models"
)

// CookiePrefix prefixes the per-list session cookie name.
const CookiePrefix = "topten_user_"

// CookieName returns the session cookie name for a list.
func CookieName(listID string) string {
	return CookiePrefix + listID
}

// CookieResolver recognizes anonymous members by a signed per-list cookie.
type CookieResolver struct {
	sessions *JWTManager
}

var (
	_ Resolver = (*CookieResolver)(nil)
	_ Enroller = (*CookieResolver)(nil)
)

// NewCookieResolver creates a resolver whose cookies are signed with
// sessionSecret and expire after ttl.
func NewCookieResolver(sessionSecret string, ttl time.Duration) *CookieResolver {
	return &CookieResolver{sessions: NewJWTManager(sessionSecret, ttl)}
}

// Resolve implements Resolver.
func (r *CookieResolver) Resolve(ctx context.Context, listID string) (*Identity, error) {
	if listID == "" {
		return nil, ErrUnauthenticated
	}

	value, ok := CredentialsFromContext(ctx).Cookies[CookieName(listID)]
	if !ok || value == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := r.sessions.Validate(value)
	if err != nil || claims.ListID != listID {
		return nil, ErrUnauthenticated
	}

	return &Identity{UserID: claims.CallerID(), DisplayName: claims.Name}, nil
}

// Enroll implements Enroller. The returned cookie must be set on the response.
func (r *CookieResolver) Enroll(_ context.Context, listID, displayName string) (*Identity, *Credential, error) {
	id := &Identity{UserID: models.NewID(), DisplayName: displayName}

	value, expiresAt, err := r.sessions.Generate(Claims{
		UserID: id.UserID,
		Name:   displayName,
		ListID: listID,
	})
	if err != nil {
		return nil, nil, err
	}

	return id, &Credential{
		Kind:      CredentialCookie,
		Name:      CookieName(listID),
		Value:     value,
		ExpiresAt: expiresAt,
	}, nil
}
