package models

import (
	"strings"
)

// Criterion is a named dimension items are rated on (e.g., "Cost").
type Criterion struct {
	// ID is the unique identifier for the criterion.
	ID string `json:"id"`

	// Name is unique case-insensitively within a list.
	Name string `json:"name"`
}

// Rating is one user's value for one criterion of one item.
type Rating struct {
	UserID      string `json:"userId"`
	CriterionID string `json:"criterionId"`

	// Value is 1..5, or NoExperience.
	Value int `json:"value"`
}

// Item is a candidate entry in a list.
type Item struct {
	// ID is the unique identifier for the item.
	ID string `json:"id"`

	// Name is the display name of the item (e.g., "Thai Palace").
	Name string `json:"name"`

	// AddedBy is the ID of the member who added the item.
	AddedBy string `json:"addedBy"`

	// AddedAt is the Unix millisecond timestamp when the item was added.
	AddedAt int64 `json:"addedAt"`

	// Ratings holds at most one rating per (UserID, CriterionID) pair.
	Ratings []Rating `json:"ratings"`
}

// User is a member of a list.
type User struct {
	// ID is either an identity-provider subject or a locally generated ID.
	ID string `json:"id"`

	DisplayName string `json:"displayName"`

	// JoinedAt is the Unix millisecond timestamp when the user joined.
	JoinedAt int64 `json:"joinedAt"`

	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`

	// TokenHash is the SHA-256 of the per-list user token, when the user
	// joined in token-linked mode. The raw token is never stored.
	TokenHash string `json:"tokenHash,omitempty"`
}

// TopTenList is the aggregate root for a collaboratively ranked list.
type TopTenList struct {
	// ID is the unique identifier for the list.
	ID string `json:"id"`

	// Name is the title of the list (e.g., "Best lunch spots").
	Name string `json:"name"`

	Criteria []Criterion `json:"criteria"`
	Items    []Item      `json:"items"`
	Users    []User      `json:"users"`

	// OwnerID is the user ID of the creator.
	OwnerID string `json:"ownerId"`

	// OwnerSecretHash is the bcrypt hash of the owner secret issued at creation.
	OwnerSecretHash string `json:"ownerSecretHash"`

	// CreatedAt is the Unix millisecond timestamp when the list was created.
	CreatedAt int64 `json:"createdAt"`

	// IsLocked blocks new items. Rating, joining and owner actions still work.
	IsLocked bool `json:"isLocked"`
}

// FindUser returns the member with the given ID, or nil.
func (l *TopTenList) FindUser(userID string) *User {
	for i := range l.Users {
		if l.Users[i].ID == userID {
			return &l.Users[i]
		}
	}
	return nil
}

// IsMember reports whether userID has joined the list.
func (l *TopTenList) IsMember(userID string) bool {
	return userID != "" && l.FindUser(userID) != nil
}

// FindItem returns the item with the given ID, or nil.
func (l *TopTenList) FindItem(itemID string) *Item {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			return &l.Items[i]
		}
	}
	return nil
}

// FindCriterion returns the criterion with the given ID, or nil.
func (l *TopTenList) FindCriterion(criterionID string) *Criterion {
	for i := range l.Criteria {
		if l.Criteria[i].ID == criterionID {
			return &l.Criteria[i]
		}
	}
	return nil
}

// HasCriterionNamed reports whether a criterion with the same name exists,
// ignoring case and surrounding whitespace.
func (l *TopTenList) HasCriterionNamed(name string) bool {
	name = strings.TrimSpace(name)
	for _, c := range l.Criteria {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return true
		}
	}
	return false
}

// RemoveItem deletes the item with the given ID.
// Returns false if no such item exists.
func (l *TopTenList) RemoveItem(itemID string) bool {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveCriterion deletes the criterion and every rating that references it.
// Returns false if no such criterion exists; ratings are left untouched then.
func (l *TopTenList) RemoveCriterion(criterionID string) bool {
	idx := -1
	for i := range l.Criteria {
		if l.Criteria[i].ID == criterionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	l.Criteria = append(l.Criteria[:idx], l.Criteria[idx+1:]...)

	for i := range l.Items {
		item := &l.Items[i]
		kept := item.Ratings[:0]
		for _, r := range item.Ratings {
			if r.CriterionID != criterionID {
				kept = append(kept, r)
			}
		}
		item.Ratings = kept
	}
	return true
}

// SetRating records a rating, replacing any earlier rating by the same user
// for the same criterion.
func (it *Item) SetRating(r Rating) {
	kept := it.Ratings[:0]
	for _, existing := range it.Ratings {
		if existing.UserID == r.UserID && existing.CriterionID == r.CriterionID {
			continue
		}
		kept = append(kept, existing)
	}
	it.Ratings = append(kept, r)
}
