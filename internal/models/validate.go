package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// NoExperience is the explicit "haven't tried it" abstention.
	NoExperience = -1
	// MinScore and MaxScore bound a real score.
	MinScore = 1
	MaxScore = 5
)

// ErrInvalidRating is returned for values outside {-1} ∪ [1,5].
var ErrInvalidRating = errors.New("rating must be -1 (no experience) or between 1 and 5")

// ValidateRatingValue checks that v is a storable rating value.
// Zero is rejected: "unrated" is represented by the absence of a Rating.
func ValidateRatingValue(v int) error {
	if v == NoExperience || (v >= MinScore && v <= MaxScore) {
		return nil
	}
	return fmt.Errorf("%w: got %d", ErrInvalidRating, v)
}

// NewID returns a fresh opaque identifier (a random UUID without dashes).
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
