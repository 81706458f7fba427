package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// secretBytes is the entropy of owner secrets and user tokens.
const secretBytes = 32

// SecretHasher mints owner secrets and verifies them against their bcrypt hash.
type SecretHasher struct {
	cost int
}

// NewSecretHasher creates a hasher using the given bcrypt cost.
// Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewSecretHasher(cost int) *SecretHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &SecretHasher{cost: cost}
}

// Mint returns a fresh owner secret and the hash to store in its place.
func (h *SecretHasher) Mint() (secret, hash string, err error) {
	secret, err = RandomToken()
	if err != nil {
		return "", "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash owner secret: %w", err)
	}
	return secret, string(hashed), nil
}

// Verify reports whether secret matches hash. Empty inputs never match.
func (h *SecretHasher) Verify(hash, secret string) bool {
	if hash == "" || secret == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// RandomToken returns 32 random bytes encoded as unpadded base64url.
func RandomToken() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashToken returns the hex SHA-256 of a user token, used as its lookup key.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
