package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)

	token, expiresAt, err := m.Generate(Claims{UserID: "u1", Name: "Alice", ListID: "l1"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expiresAt %v should be in the future", expiresAt)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.CallerID() != "u1" || claims.Name != "Alice" || claims.ListID != "l1" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestJWTManagerRejects(t *testing.T) {
	m := NewJWTManager("secret-one", time.Hour)
	other := NewJWTManager("secret-two", time.Hour)
	expired := NewJWTManager("secret-one", -time.Minute)

	foreign, _, err := other.Generate(Claims{UserID: "u1"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	stale, _, err := expired.Generate(Claims{UserID: "u1"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	anonymous, _, err := m.Generate(Claims{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty", token: "", wantErr: ErrMissingToken},
		{name: "garbage", token: "not-a-jwt", wantErr: ErrInvalidToken},
		{name: "wrong secret", token: foreign, wantErr: ErrInvalidToken},
		{name: "expired", token: stale, wantErr: ErrInvalidToken},
		{name: "no subject", token: anonymous, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Validate(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
