package middleware

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/topten/internal/auth"
)

// CredentialsFromHeader collects the raw credentials a caller presented.
// Nothing is verified here; resolvers do that per list.
func CredentialsFromHeader(h http.Header) auth.Credentials {
	creds := auth.Credentials{
		UserToken: strings.TrimSpace(h.Get(auth.UserTokenHeader)),
	}

	// Parse Bearer token
	if authHeader := h.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			creds.Bearer = parts[1]
		}
	}

	// Only our session cookies are kept.
	cookies := (&http.Request{Header: h}).Cookies()
	for _, c := range cookies {
		if !strings.HasPrefix(c.Name, auth.CookiePrefix) {
			continue
		}
		if creds.Cookies == nil {
			creds.Cookies = make(map[string]string)
		}
		creds.Cookies[c.Name] = c.Value
	}

	return creds
}

// CredentialsInterceptor returns an interceptor that places the caller's
// credentials in the request context for auth.Resolver implementations.
func CredentialsInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			ctx = auth.WithCredentials(ctx, CredentialsFromHeader(req.Header()))
			return next(ctx, req)
		}
	}
}
