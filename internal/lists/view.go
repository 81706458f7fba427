package lists

import (
	"context"
	"errors"

	"github.com/mmynk/topten/internal/auth"
	"github.com/mmynk/topten/internal/calculator"
	"github.com/mmynk/topten/internal/models"
)

// ListView is a read-only snapshot of a list for one viewer.
type ListView struct {
	// List has the owner secret hash and member token hashes removed.
	List *models.TopTenList

	// Scores are ranked best first.
	Scores []calculator.ItemScore

	// Viewer is nil when the caller could not be identified.
	Viewer *auth.Identity

	IsMember bool
	IsOwner  bool

	// RatedCount is how many items the viewer has rated at least once.
	RatedCount int
}

// GetList returns the list with ranked scores. ownerSecret is optional and
// only used to report IsOwner.
func (s *Service) GetList(ctx context.Context, listID, ownerSecret string) (*ListView, error) {
	list, err := s.load(ctx, listID)
	if err != nil {
		return nil, err
	}

	view := &ListView{
		Scores:  ScoreList(list),
		IsOwner: ownerSecret != "" && s.secrets.Verify(list.OwnerSecretHash, ownerSecret),
	}

	viewer, err := s.resolve(ctx, list.ID)
	switch {
	case err == nil:
		view.Viewer = viewer
		view.IsMember = list.IsMember(viewer.UserID)
		view.RatedCount = calculator.RatedItemCount(itemRatings(list), viewer.UserID)
	case !errors.Is(err, ErrUnauthenticated):
		return nil, err
	}

	view.List = redact(list)
	return view, nil
}

// ListSummary is one entry of ListsForCaller.
type ListSummary struct {
	ID          string
	Name        string
	ItemCount   int
	MemberCount int
	IsOwner     bool
	IsLocked    bool
	CreatedAt   int64
}

// ListsForCaller returns the lists the caller created or joined, in the
// order they were indexed. Index entries whose list no longer exists are
// skipped. Only identities that span lists can use this.
func (s *Service) ListsForCaller(ctx context.Context) ([]ListSummary, error) {
	caller, err := s.resolve(ctx, "")
	if err != nil {
		return nil, err
	}

	ids, err := s.repo.UserListIDs(ctx, caller.UserID)
	if err != nil {
		s.logger.Error("Failed to read membership index", "user_id", caller.UserID, "error", err)
		return nil, &StorageError{Op: "read membership index", Err: err}
	}

	summaries := make([]ListSummary, 0, len(ids))
	for _, id := range ids {
		list, err := s.load(ctx, id)
		if errors.Is(err, ErrNotFound) {
			s.logger.Debug("Skipping dangling list index entry", "list_id", id, "user_id", caller.UserID)
			continue
		}
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, ListSummary{
			ID:          list.ID,
			Name:        list.Name,
			ItemCount:   len(list.Items),
			MemberCount: len(list.Users),
			IsOwner:     list.OwnerID == caller.UserID,
			IsLocked:    list.IsLocked,
			CreatedAt:   list.CreatedAt,
		})
	}
	return summaries, nil
}

// ScoreList scores every item against the list's current criteria and
// returns them ranked.
func ScoreList(list *models.TopTenList) []calculator.ItemScore {
	scores := make([]calculator.ItemScore, 0, len(list.Items))
	for _, item := range list.Items {
		scores = append(scores, calculator.ScoreItem(item.ID, toCalculatorRatings(item.Ratings), len(list.Criteria)))
	}
	return calculator.Rank(scores)
}

func toCalculatorRatings(ratings []models.Rating) []calculator.Rating {
	out := make([]calculator.Rating, len(ratings))
	for i, r := range ratings {
		out[i] = calculator.Rating{UserID: r.UserID, CriterionID: r.CriterionID, Value: r.Value}
	}
	return out
}

func itemRatings(list *models.TopTenList) [][]calculator.Rating {
	out := make([][]calculator.Rating, len(list.Items))
	for i, item := range list.Items {
		out[i] = toCalculatorRatings(item.Ratings)
	}
	return out
}

// redact returns a copy of list safe to hand to clients.
func redact(list *models.TopTenList) *models.TopTenList {
	out := *list
	out.OwnerSecretHash = ""
	out.Users = make([]models.User, len(list.Users))
	for i, u := range list.Users {
		u.TokenHash = ""
		out.Users[i] = u
	}
	return &out
}

