package lists

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/topten/internal/auth"
	"github.com/mmynk/topten/internal/models"
)

// CreateListInput describes a new list.
type CreateListInput struct {
	Name     string   `validate:"required,max=120"`
	Criteria []string `validate:"max=20,dive,required,max=80"`

	// DisplayName is required when the caller has no identity yet and one
	// must be enrolled.
	DisplayName string `validate:"max=60"`
}

// CreateListResult is returned once, to the creator.
type CreateListResult struct {
	ListID string

	// OwnerSecret is never stored or returned again.
	OwnerSecret string

	UserID string

	// Credential is set when a new identity was enrolled for the creator.
	Credential *auth.Credential
}

// CreateList creates a list owned by the caller, who becomes its first member.
func (s *Service) CreateList(ctx context.Context, in CreateListInput) (*CreateListResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	criteria := make([]string, len(in.Criteria))
	for i, name := range in.Criteria {
		criteria[i] = strings.TrimSpace(name)
	}
	in.Criteria = criteria
	if err := s.validate.Struct(in); err != nil {
		return nil, s.invalid(err)
	}

	list := &models.TopTenList{
		ID:       models.NewID(),
		Name:     in.Name,
		Criteria: make([]models.Criterion, 0, len(in.Criteria)),
		Items:    []models.Item{},
	}
	for _, name := range in.Criteria {
		if list.HasCriterionNamed(name) {
			return nil, fmt.Errorf("criterion %q: %w", name, ErrConflict)
		}
		list.Criteria = append(list.Criteria, models.Criterion{ID: models.NewID(), Name: name})
	}

	caller, cred, err := s.identify(ctx, list.ID, in.DisplayName)
	if err != nil {
		return nil, err
	}

	secret, hash, err := s.secrets.Mint()
	if err != nil {
		return nil, fmt.Errorf("failed to mint owner secret: %w", err)
	}

	now := s.now().UnixMilli()
	list.OwnerID = caller.UserID
	list.OwnerSecretHash = hash
	list.CreatedAt = now
	list.Users = []models.User{newUser(caller, cred, in.DisplayName, now)}

	if err := s.index(ctx, caller.UserID, list.ID); err != nil {
		return nil, err
	}
	if err := s.save(ctx, list); err != nil {
		return nil, err
	}

	s.logger.Info("List created",
		"list_id", list.ID,
		"owner_id", caller.UserID,
		"criteria_count", len(list.Criteria),
	)

	return &CreateListResult{
		ListID:      list.ID,
		OwnerSecret: secret,
		UserID:      caller.UserID,
		Credential:  cred,
	}, nil
}

// JoinResult reports the caller's membership after JoinList.
type JoinResult struct {
	UserID        string
	AlreadyMember bool

	// Credential is set when a new identity was enrolled.
	Credential *auth.Credential
}

// JoinList adds the caller to the list. Joining again is a no-op that
// returns the existing user ID.
func (s *Service) JoinList(ctx context.Context, listID, displayName string) (*JoinResult, error) {
	displayName = strings.TrimSpace(displayName)
	if err := s.validate.Var(displayName, "max=60"); err != nil {
		return nil, s.invalid(err)
	}

	list, err := s.load(ctx, listID)
	if err != nil {
		return nil, err
	}

	caller, cred, err := s.identify(ctx, list.ID, displayName)
	if err != nil {
		return nil, err
	}
	if list.IsMember(caller.UserID) {
		return &JoinResult{UserID: caller.UserID, AlreadyMember: true}, nil
	}

	list.Users = append(list.Users, newUser(caller, cred, displayName, s.now().UnixMilli()))

	if err := s.index(ctx, caller.UserID, list.ID); err != nil {
		return nil, err
	}
	if err := s.save(ctx, list); err != nil {
		return nil, err
	}

	s.logger.Info("User joined list", "list_id", list.ID, "user_id", caller.UserID)

	return &JoinResult{UserID: caller.UserID, Credential: cred}, nil
}

// AddItem appends an item. The caller must be a member and the list unlocked.
func (s *Service) AddItem(ctx context.Context, listID, name string) (*models.Item, error) {
	name = strings.TrimSpace(name)
	if err := s.validate.Var(name, "required,max=80"); err != nil {
		return nil, s.invalid(err)
	}

	list, err := s.load(ctx, listID)
	if err != nil {
		return nil, err
	}
	caller, err := s.member(ctx, list)
	if err != nil {
		return nil, err
	}
	if list.IsLocked {
		return nil, fmt.Errorf("list %s: %w", list.ID, ErrLocked)
	}

	item := models.Item{
		ID:      models.NewID(),
		Name:    name,
		AddedBy: caller.UserID,
		AddedAt: s.now().UnixMilli(),
		Ratings: []models.Rating{},
	}
	list.Items = append(list.Items, item)

	if err := s.save(ctx, list); err != nil {
		return nil, err
	}

	s.logger.Info("Item added", "list_id", list.ID, "item_id", item.ID, "user_id", caller.UserID)
	return &item, nil
}

// RateItem records the caller's rating, replacing any earlier rating of the
// same item on the same criterion. Locked lists still accept ratings.
func (s *Service) RateItem(ctx context.Context, listID, itemID, criterionID string, value int) error {
	if err := models.ValidateRatingValue(value); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidArgument)
	}

	list, err := s.load(ctx, listID)
	if err != nil {
		return err
	}
	caller, err := s.member(ctx, list)
	if err != nil {
		return err
	}

	item := list.FindItem(itemID)
	if item == nil {
		return fmt.Errorf("item %s: %w", itemID, ErrNotFound)
	}
	if list.FindCriterion(criterionID) == nil {
		return fmt.Errorf("criterion %s: %w", criterionID, ErrNotFound)
	}

	item.SetRating(models.Rating{UserID: caller.UserID, CriterionID: criterionID, Value: value})

	if err := s.save(ctx, list); err != nil {
		return err
	}

	s.logger.Debug("Item rated",
		"list_id", list.ID,
		"item_id", itemID,
		"criterion_id", criterionID,
		"user_id", caller.UserID,
		"value", value,
	)
	return nil
}
