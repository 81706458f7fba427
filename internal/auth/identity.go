// Package auth resolves who is calling and guards owner-only operations.
//
// Three Resolver variants exist, selected at startup:
//
//   - ExternalResolver: a bearer JWT issued by an identity provider.
//   - CookieResolver: an anonymous display name plus a signed per-list session cookie.
//   - TokenResolver: a per-list random token that can be copied to other devices.
//
// Cookie and token resolvers also implement Enroller, which mints a fresh
// local identity the first time someone creates or joins a list.
package auth

import (
	"context"
	"errors"
	"time"
)

// ErrUnauthenticated is returned when no identity can be resolved.
var ErrUnauthenticated = errors.New("not signed in")

// Identity is a resolved caller.
type Identity struct {
	UserID      string
	DisplayName string
	Email       string
	AvatarURL   string
}

// Credentials are the raw, unverified values a caller presented.
type Credentials struct {
	// Bearer is the token from an "Authorization: Bearer" header.
	Bearer string

	// Cookies maps cookie names to values.
	Cookies map[string]string

	// UserToken is the value of the UserTokenHeader header.
	UserToken string
}

type credentialsKey struct{}

// WithCredentials returns a context carrying c.
func WithCredentials(ctx context.Context, c Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, c)
}

// CredentialsFromContext returns the credentials stored in ctx, or the zero value.
func CredentialsFromContext(ctx context.Context) Credentials {
	c, _ := ctx.Value(credentialsKey{}).(Credentials)
	return c
}

// Resolver identifies the caller for a list. listID may be empty for
// list-independent calls; per-list resolvers then return ErrUnauthenticated.
type Resolver interface {
	Resolve(ctx context.Context, listID string) (*Identity, error)
}

// CredentialKind says how an issued credential must be delivered.
type CredentialKind string

const (
	// CredentialCookie is set on the response as an HTTP cookie.
	CredentialCookie CredentialKind = "cookie"
	// CredentialToken is returned in the response body for the client to keep.
	CredentialToken CredentialKind = "token"
)

// Credential is something a newly enrolled caller must present next time.
type Credential struct {
	Kind      CredentialKind
	Name      string
	Value     string
	ExpiresAt time.Time
}

// Enroller is implemented by resolvers that can mint identities on demand.
type Enroller interface {
	Enroll(ctx context.Context, listID, displayName string) (*Identity, *Credential, error)
}
