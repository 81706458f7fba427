package lists

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/topten/internal/models"
)

// RemoveItem deletes an item and its ratings.
func (s *Service) RemoveItem(ctx context.Context, listID, itemID, ownerSecret string) error {
	list, err := s.load(ctx, listID)
	if err != nil {
		return err
	}
	if err := s.authorizeOwner(list, ownerSecret); err != nil {
		return err
	}
	if !list.RemoveItem(itemID) {
		return fmt.Errorf("item %s: %w", itemID, ErrNotFound)
	}

	if err := s.save(ctx, list); err != nil {
		return err
	}

	s.logger.Info("Item removed", "list_id", list.ID, "item_id", itemID)
	return nil
}

// ToggleLock flips the lock and returns the new state.
func (s *Service) ToggleLock(ctx context.Context, listID, ownerSecret string) (bool, error) {
	list, err := s.load(ctx, listID)
	if err != nil {
		return false, err
	}
	if err := s.authorizeOwner(list, ownerSecret); err != nil {
		return false, err
	}

	list.IsLocked = !list.IsLocked

	if err := s.save(ctx, list); err != nil {
		return false, err
	}

	s.logger.Info("List lock toggled", "list_id", list.ID, "locked", list.IsLocked)
	return list.IsLocked, nil
}

// AddCriterion appends a criterion whose name is not yet used on the list,
// compared case-insensitively.
func (s *Service) AddCriterion(ctx context.Context, listID, name, ownerSecret string) (*models.Criterion, error) {
	name = strings.TrimSpace(name)

	list, err := s.load(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwner(list, ownerSecret); err != nil {
		return nil, err
	}
	if err := s.validate.Var(name, "required,max=80"); err != nil {
		return nil, s.invalid(err)
	}
	if list.HasCriterionNamed(name) {
		return nil, fmt.Errorf("criterion %q: %w", name, ErrConflict)
	}

	criterion := models.Criterion{ID: models.NewID(), Name: name}
	list.Criteria = append(list.Criteria, criterion)

	if err := s.save(ctx, list); err != nil {
		return nil, err
	}

	s.logger.Info("Criterion added", "list_id", list.ID, "criterion_id", criterion.ID)
	return &criterion, nil
}

// RemoveCriterion deletes a criterion and every rating that references it.
// The last remaining criterion may be removed too.
func (s *Service) RemoveCriterion(ctx context.Context, listID, criterionID, ownerSecret string) error {
	list, err := s.load(ctx, listID)
	if err != nil {
		return err
	}
	if err := s.authorizeOwner(list, ownerSecret); err != nil {
		return err
	}
	if !list.RemoveCriterion(criterionID) {
		return fmt.Errorf("criterion %s: %w", criterionID, ErrNotFound)
	}

	if err := s.save(ctx, list); err != nil {
		return err
	}

	s.logger.Info("Criterion removed", "list_id", list.ID, "criterion_id", criterionID)
	return nil
}
