package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmynk/topten/internal/models"
)

// Key namespaces. The store itself is an opaque map; these prefixes are the
// only structure imposed on it.
const (
	listPrefix      = "list:"
	userListsPrefix = "user_lists:"
	userTokenPrefix = "user_token:"
)

// ListStore persists list aggregates and their secondary indexes on top of a KV.
type ListStore struct {
	kv KV
}

// NewListStore creates a ListStore over the given backend.
func NewListStore(kv KV) *ListStore {
	return &ListStore{kv: kv}
}

// KV exposes the underlying backend (used for health checks).
func (s *ListStore) KV() KV {
	return s.kv
}

// GetList loads a list aggregate.
// Returns an error wrapping ErrNotFound if the list does not exist.
func (s *ListStore) GetList(ctx context.Context, listID string) (*models.TopTenList, error) {
	data, err := s.kv.Get(ctx, listPrefix+listID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("list %s: %w", listID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	var list models.TopTenList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode list %s: %w", listID, err)
	}
	return &list, nil
}

// SaveList writes the whole aggregate. Concurrent writers of the same list
// race: the last write wins.
func (s *ListStore) SaveList(ctx context.Context, list *models.TopTenList) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode list %s: %w", list.ID, err)
	}
	if err := s.kv.Set(ctx, listPrefix+list.ID, data); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}
	return nil
}

// DeleteList removes a list aggregate. Membership index entries pointing at
// it are left in place; readers skip lists that no longer exist.
func (s *ListStore) DeleteList(ctx context.Context, listID string) error {
	if err := s.kv.Delete(ctx, listPrefix+listID); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return nil
}

// UserListIDs returns the IDs of lists the user created or joined.
// Returns an empty slice for unknown users.
func (s *ListStore) UserListIDs(ctx context.Context, userID string) ([]string, error) {
	data, err := s.kv.Get(ctx, userListsPrefix+userID)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user lists: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode user lists for %s: %w", userID, err)
	}
	return ids, nil
}

// AddUserList records listID in the user's membership index. Adding an
// already indexed list is a no-op.
func (s *ListStore) AddUserList(ctx context.Context, userID, listID string) error {
	ids, err := s.UserListIDs(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == listID {
			return nil
		}
	}

	data, err := json.Marshal(append(ids, listID))
	if err != nil {
		return fmt.Errorf("failed to encode user lists: %w", err)
	}
	if err := s.kv.Set(ctx, userListsPrefix+userID, data); err != nil {
		return fmt.Errorf("failed to save user lists: %w", err)
	}
	return nil
}

// TokenBinding maps a per-list user token (by hash) to the member it identifies.
type TokenBinding struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// PutUserToken stores the binding for tokenHash within listID.
func (s *ListStore) PutUserToken(ctx context.Context, listID, tokenHash string, binding TokenBinding) error {
	data, err := json.Marshal(binding)
	if err != nil {
		return fmt.Errorf("failed to encode token binding: %w", err)
	}
	if err := s.kv.Set(ctx, userTokenKey(listID, tokenHash), data); err != nil {
		return fmt.Errorf("failed to save token binding: %w", err)
	}
	return nil
}

// GetUserToken looks up the binding for tokenHash within listID.
// Returns an error wrapping ErrNotFound if the token is unknown.
func (s *ListStore) GetUserToken(ctx context.Context, listID, tokenHash string) (*TokenBinding, error) {
	data, err := s.kv.Get(ctx, userTokenKey(listID, tokenHash))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("token binding: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get token binding: %w", err)
	}

	var binding TokenBinding
	if err := json.Unmarshal(data, &binding); err != nil {
		return nil, fmt.Errorf("failed to decode token binding: %w", err)
	}
	return &binding, nil
}

func userTokenKey(listID, tokenHash string) string {
	return userTokenPrefix + listID + ":" + tokenHash
}
