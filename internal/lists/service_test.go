package lists

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/topten/internal/auth"
	"github.com/mmynk/topten/internal/models"
	"github.com/mmynk/topten/internal/storage"
	"github.com/mmynk/topten/internal/storage/memory"
)

// bearerResolver treats the bearer value as the user ID, like a provider
// token that has already been verified.
type bearerResolver struct{}

func (bearerResolver) Resolve(ctx context.Context, _ string) (*auth.Identity, error) {
	bearer := auth.CredentialsFromContext(ctx).Bearer
	if bearer == "" {
		return nil, auth.ErrUnauthenticated
	}
	return &auth.Identity{UserID: bearer, DisplayName: "user " + bearer, Email: bearer + "@example.com"}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, resolver auth.Resolver) (*Service, *storage.ListStore) {
	t.Helper()
	store := storage.NewListStore(memory.New())
	svc := NewService(store, resolver, auth.NewSecretHasher(bcrypt.MinCost),
		WithLogger(discardLogger()),
		WithClock(func() time.Time { return fixedNow }),
	)
	return svc, store
}

func as(userID string) context.Context {
	return auth.WithCredentials(context.Background(), auth.Credentials{Bearer: userID})
}

// createTestList creates a list owned by "owner" with the given criteria.
func createTestList(t *testing.T, svc *Service, criteria ...string) *CreateListResult {
	t.Helper()
	res, err := svc.CreateList(as("owner"), CreateListInput{Name: "Lunch spots", Criteria: criteria})
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}
	return res
}

func mustGet(t *testing.T, store *storage.ListStore, listID string) *models.TopTenList {
	t.Helper()
	list, err := store.GetList(context.Background(), listID)
	if err != nil {
		t.Fatalf("GetList failed: %v", err)
	}
	return list
}

func TestCreateList(t *testing.T) {
	svc, store := newTestService(t, bearerResolver{})

	t.Run("creator becomes owner and first member", func(t *testing.T) {
		res, err := svc.CreateList(as("alice"), CreateListInput{
			Name:     "  Coffee  ",
			Criteria: []string{"Taste", "Price"},
		})
		if err != nil {
			t.Fatalf("CreateList failed: %v", err)
		}
		if res.ListID == "" || res.OwnerSecret == "" || res.UserID != "alice" {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Credential != nil {
			t.Errorf("no credential expected for a resolved caller, got %+v", res.Credential)
		}

		list := mustGet(t, store, res.ListID)
		if list.Name != "Coffee" {
			t.Errorf("Name = %q, want trimmed", list.Name)
		}
		if list.OwnerID != "alice" || len(list.Users) != 1 || list.Users[0].ID != "alice" {
			t.Errorf("unexpected ownership: owner=%s users=%+v", list.OwnerID, list.Users)
		}
		if list.Users[0].Email != "alice@example.com" || list.Users[0].JoinedAt != fixedNow.UnixMilli() {
			t.Errorf("unexpected user record: %+v", list.Users[0])
		}
		if len(list.Criteria) != 2 || list.Criteria[0].ID == list.Criteria[1].ID {
			t.Errorf("criteria should have distinct fresh IDs: %+v", list.Criteria)
		}
		if list.OwnerSecretHash == "" || list.OwnerSecretHash == res.OwnerSecret {
			t.Error("owner secret must be stored hashed")
		}
		if list.CreatedAt != fixedNow.UnixMilli() || list.IsLocked {
			t.Errorf("unexpected list state: created=%d locked=%v", list.CreatedAt, list.IsLocked)
		}

		ids, err := store.UserListIDs(context.Background(), "alice")
		if err != nil || len(ids) != 1 || ids[0] != res.ListID {
			t.Errorf("list not indexed for creator: %v, %v", ids, err)
		}
	})

	tests := []struct {
		name    string
		ctx     context.Context
		input   CreateListInput
		wantErr error
	}{
		{
			name:    "no identity",
			ctx:     context.Background(),
			input:   CreateListInput{Name: "Coffee", DisplayName: "Alice"},
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "empty name",
			ctx:     as("alice"),
			input:   CreateListInput{Name: "   "},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "blank criterion",
			ctx:     as("alice"),
			input:   CreateListInput{Name: "Coffee", Criteria: []string{"Taste", " "}},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "duplicate criteria ignoring case",
			ctx:     as("alice"),
			input:   CreateListInput{Name: "Coffee", Criteria: []string{"Taste", "taste"}},
			wantErr: ErrConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateList(tt.ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateList() error = %v, want %v", err, tt.wantErr)
			}
			ids, _ := store.UserListIDs(context.Background(), "bob")
			if len(ids) != 0 {
				t.Errorf("failed create should not index anything, got %v", ids)
			}
		})
	}
}

func TestJoinList(t *testing.T) {
	svc, store := newTestService(t, bearerResolver{})
	created := createTestList(t, svc, "Taste")

	t.Run("join is idempotent", func(t *testing.T) {
		first, err := svc.JoinList(as("bob"), created.ListID, "Bob")
		if err != nil {
			t.Fatalf("JoinList failed: %v", err)
		}
		if first.AlreadyMember {
			t.Error("first join should not report AlreadyMember")
		}

		second, err := svc.JoinList(as("bob"), created.ListID, "Bobby")
		if err != nil {
			t.Fatalf("second JoinList failed: %v", err)
		}
		if second.UserID != first.UserID || !second.AlreadyMember {
			t.Errorf("second join = %+v, want same user and AlreadyMember", second)
		}

		list := mustGet(t, store, created.ListID)
		count := 0
		for _, u := range list.Users {
			if u.ID == "bob" {
				count++
				if u.DisplayName != "Bob" {
					t.Errorf("DisplayName = %q, want Bob", u.DisplayName)
				}
			}
		}
		if count != 1 {
			t.Errorf("bob appears %d times, want 1", count)
		}

		ids, _ := store.UserListIDs(context.Background(), "bob")
		if len(ids) != 1 || ids[0] != created.ListID {
			t.Errorf("joined list not indexed: %v", ids)
		}
	})

	t.Run("owner joining is a no-op", func(t *testing.T) {
		res, err := svc.JoinList(as("owner"), created.ListID, "")
		if err != nil {
			t.Fatalf("JoinList failed: %v", err)
		}
		if !res.AlreadyMember || res.UserID != "owner" {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("display name falls back to identity", func(t *testing.T) {
		if _, err := svc.JoinList(as("carol"), created.ListID, ""); err != nil {
			t.Fatalf("JoinList failed: %v", err)
		}
		list := mustGet(t, store, created.ListID)
		if u := list.FindUser("carol"); u == nil || u.DisplayName != "user carol" {
			t.Errorf("unexpected user: %+v", u)
		}
	})

	t.Run("unknown list", func(t *testing.T) {
		if _, err := svc.JoinList(as("bob"), "missing", "Bob"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("no identity", func(t *testing.T) {
		if _, err := svc.JoinList(context.Background(), created.ListID, "Bob"); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})
}

func TestAddItem(t *testing.T) {
	svc, store := newTestService(t, bearerResolver{})
	created := createTestList(t, svc, "Taste")

	item, err := svc.AddItem(as("owner"), created.ListID, " Thai Palace ")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if item.Name != "Thai Palace" || item.AddedBy != "owner" || len(item.Ratings) != 0 {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.AddedAt != fixedNow.UnixMilli() {
		t.Errorf("AddedAt = %d", item.AddedAt)
	}
	if got := mustGet(t, store, created.ListID); len(got.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(got.Items))
	}

	if _, err := svc.ToggleLock(context.Background(), created.ListID, created.OwnerSecret); err != nil {
		t.Fatalf("ToggleLock failed: %v", err)
	}

	tests := []struct {
		name    string
		ctx     context.Context
		listID  string
		item    string
		wantErr error
	}{
		{name: "locked list", ctx: as("owner"), listID: created.ListID, item: "Pho Hut", wantErr: ErrLocked},
		{name: "not a member", ctx: as("stranger"), listID: created.ListID, item: "Pho Hut", wantErr: ErrForbidden},
		{name: "no identity", ctx: context.Background(), listID: created.ListID, item: "Pho Hut", wantErr: ErrUnauthenticated},
		{name: "unknown list", ctx: as("owner"), listID: "missing", item: "Pho Hut", wantErr: ErrNotFound},
		{name: "empty name", ctx: as("owner"), listID: created.ListID, item: "", wantErr: ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.AddItem(tt.ctx, tt.listID, tt.item); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddItem() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if got := mustGet(t, store, created.ListID); len(got.Items) != 1 {
		t.Errorf("rejected adds must not change the list, items = %d", len(got.Items))
	}
}

func TestRateItem(t *testing.T) {
	svc, store := newTestService(t, bearerResolver{})
	created := createTestList(t, svc, "Taste", "Price")
	list := mustGet(t, store, created.ListID)
	taste := list.Criteria[0].ID

	item, err := svc.AddItem(as("owner"), created.ListID, "Thai Palace")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	t.Run("re-rating replaces", func(t *testing.T) {
		for _, v := range []int{3, 5} {
			if err := svc.RateItem(as("owner"), created.ListID, item.ID, taste, v); err != nil {
				t.Fatalf("RateItem(%d) failed: %v", v, err)
			}
		}
		got := mustGet(t, store, created.ListID).FindItem(item.ID)
		if len(got.Ratings) != 1 || got.Ratings[0].Value != 5 {
			t.Errorf("ratings = %+v, want exactly one rating of 5", got.Ratings)
		}
	})

	t.Run("no experience is stored", func(t *testing.T) {
		if _, err := svc.JoinList(as("bob"), created.ListID, "Bob"); err != nil {
			t.Fatalf("JoinList failed: %v", err)
		}
		if err := svc.RateItem(as("bob"), created.ListID, item.ID, taste, models.NoExperience); err != nil {
			t.Fatalf("RateItem failed: %v", err)
		}
		got := mustGet(t, store, created.ListID).FindItem(item.ID)
		if len(got.Ratings) != 2 {
			t.Errorf("ratings = %+v, want 2", got.Ratings)
		}
	})

	t.Run("locked list still accepts ratings", func(t *testing.T) {
		if _, err := svc.ToggleLock(context.Background(), created.ListID, created.OwnerSecret); err != nil {
			t.Fatalf("ToggleLock failed: %v", err)
		}
		if err := svc.RateItem(as("owner"), created.ListID, item.ID, taste, 4); err != nil {
			t.Errorf("RateItem on locked list failed: %v", err)
		}
	})

	tests := []struct {
		name      string
		ctx       context.Context
		itemID    string
		criterion string
		value     int
		wantErr   error
	}{
		{name: "zero", ctx: as("owner"), itemID: item.ID, criterion: taste, value: 0, wantErr: ErrInvalidArgument},
		{name: "above max", ctx: as("owner"), itemID: item.ID, criterion: taste, value: 6, wantErr: ErrInvalidArgument},
		{name: "below no experience", ctx: as("owner"), itemID: item.ID, criterion: taste, value: -2, wantErr: ErrInvalidArgument},
		{name: "unknown item", ctx: as("owner"), itemID: "nope", criterion: taste, value: 3, wantErr: ErrNotFound},
		{name: "unknown criterion", ctx: as("owner"), itemID: item.ID, criterion: "nope", value: 3, wantErr: ErrNotFound},
		{name: "not a member", ctx: as("stranger"), itemID: item.ID, criterion: taste, value: 3, wantErr: ErrForbidden},
		{name: "no identity", ctx: context.Background(), itemID: item.ID, criterion: taste, value: 3, wantErr: ErrUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.RateItem(tt.ctx, created.ListID, tt.itemID, tt.criterion, tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RateItem() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOwnerOperationsRejectWrongSecret(t *testing.T) {
	svc, store := newTestService(t, bearerResolver{})
	created := createTestList(t, svc, "Taste", "Price")
	list := mustGet(t, store, created.ListID)
	criterionID := list.Criteria[0].ID

	item, err := svc.AddItem(as("owner"), created.ListID, "Thai Palace")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	ops := []struct {
		name string
		run  func(secret string) error
	}{
		{name: "RemoveItem", run: func(secret string) error {
			return svc.RemoveItem(context.Background(), created.ListID, item.ID, secret)
		}},
		{name: "ToggleLock", run: func(secret string) error {
			_, err := svc.ToggleLock(context.Background(), created.ListID, secret)
			return err
		}},
		{name: "AddCriterion", run: func(secret string) error {
			_, err := svc.AddCriterion(context.Background(), created.ListID, "Service", secret)
			return err
		}},
		{name: "RemoveCriterion", run: func(secret string) error {
			return svc.RemoveCriterion(context.Background(), created.ListID, criterionID, secret)
		}},
	}

	// Owner identity does not substitute for the secret.
	secrets := []string{"", "wrong-secret", created.OwnerSecret + "x"}

	for _, locked := range []bool{false, true} {
		if mustGet(t, store, created.ListID).IsLocked != locked {
			if _, err := svc.ToggleLock(context.Background(), created.ListID, created.OwnerSecret); err != nil {
				t.Fatalf("ToggleLock failed: %v", err)
			}
		}
		before := mustGet(t, store, created.ListID)

		for _, op := range ops {
			for _, secret := range secrets {
				if err := op.run(secret); !errors.Is(err, ErrUnauthorized) {
					t.Errorf("%s(locked=%v, secret=%q) error = %v, want ErrUnauthorized", op.name, locked, secret, err)
				}
			}
		}

		after := mustGet(t, store, created.ListID)
		if len(after.Items) != len(before.Items) || len(after.Criteria) != len(before.Criteria) || after.IsLocked != before.IsLocked {
			t.Errorf("rejected owner operations changed the list (locked=%v)", locked)
		}
	}
}

func TestOwnerOperations(t *testing.T) {
	svc, store := newTestService(t, bearerResolver{})
	created := createTestList(t, svc, "Price")
	ctx := context.Background()
	secret := created.OwnerSecret

	t.Run("ToggleLock flips and reports state", func(t *testing.T) {
		locked, err := svc.ToggleLock(ctx, created.ListID, secret)
		if err != nil || !locked {
			t.Fatalf("ToggleLock = %v, %v; want true", locked, err)
		}
		locked, err = svc.ToggleLock(ctx, created.ListID, secret)
		if err != nil || locked {
			t.Fatalf("ToggleLock = %v, %v; want false", locked, err)
		}
	})

	t.Run("AddCriterion rejects case-insensitive duplicates", func(t *testing.T) {
		if _, err := svc.AddCriterion(ctx, created.ListID, "price", secret); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
		if got := mustGet(t, store, created.ListID); len(got.Criteria) != 1 {
			t.Errorf("criteria changed on conflict: %+v", got.Criteria)
		}

		c, err := svc.AddCriterion(ctx, created.ListID, "Service", secret)
		if err != nil {
			t.Fatalf("AddCriterion failed: %v", err)
		}
		if got := mustGet(t, store, created.ListID); got.FindCriterion(c.ID) == nil {
			t.Error("criterion not persisted")
		}
	})

	t.Run("AddCriterion validates name", func(t *testing.T) {
		if _, err := svc.AddCriterion(ctx, created.ListID, "  ", secret); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("RemoveItem", func(t *testing.T) {
		item, err := svc.AddItem(as("owner"), created.ListID, "Pho Hut")
		if err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		if err := svc.RemoveItem(ctx, created.ListID, item.ID, secret); err != nil {
			t.Fatalf("RemoveItem failed: %v", err)
		}
		if got := mustGet(t, store, created.ListID); got.FindItem(item.ID) != nil {
			t.Error("item still present")
		}
		if err := svc.RemoveItem(ctx, created.ListID, item.ID, secret); !errors.Is(err, ErrNotFound) {
			t.Errorf("second RemoveItem error = %v, want ErrNotFound", err)
		}
	})

	t.Run("RemoveCriterion unknown", func(t *testing.T) {
		if err := svc.RemoveCriterion(ctx, created.ListID, "nope", secret); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("unknown list", func(t *testing.T) {
		if _, err := svc.ToggleLock(ctx, "missing", secret); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRemoveCriterionCascades(t *testing.T) {
	svc, store := newTestService(t, bearerResolver{})
	created := createTestList(t, svc, "Taste", "Price")
	list := mustGet(t, store, created.ListID)
	taste, price := list.Criteria[0].ID, list.Criteria[1].ID

	for _, name := range []string{"A", "B"} {
		item, err := svc.AddItem(as("owner"), created.ListID, name)
		if err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		for _, c := range []string{taste, price} {
			if err := svc.RateItem(as("owner"), created.ListID, item.ID, c, 4); err != nil {
				t.Fatalf("RateItem failed: %v", err)
			}
		}
	}

	if err := svc.RemoveCriterion(context.Background(), created.ListID, taste, created.OwnerSecret); err != nil {
		t.Fatalf("RemoveCriterion failed: %v", err)
	}

	list = mustGet(t, store, created.ListID)
	for _, item := range list.Items {
		for _, r := range item.Ratings {
			if r.CriterionID == taste {
				t.Errorf("item %s still has a rating for the removed criterion", item.Name)
			}
		}
		if len(item.Ratings) != 1 {
			t.Errorf("item %s ratings = %+v, want only the price rating", item.Name, item.Ratings)
		}
	}

	t.Run("last criterion can be removed", func(t *testing.T) {
		if err := svc.RemoveCriterion(context.Background(), created.ListID, price, created.OwnerSecret); err != nil {
			t.Fatalf("RemoveCriterion failed: %v", err)
		}
		list := mustGet(t, store, created.ListID)
		if len(list.Criteria) != 0 {
			t.Errorf("criteria = %+v, want none", list.Criteria)
		}
		for _, item := range list.Items {
			if len(item.Ratings) != 0 {
				t.Errorf("item %s still has ratings", item.Name)
			}
		}
	})
}

func TestGetList(t *testing.T) {
	svc, store := newTestService(t, bearerResolver{})
	created := createTestList(t, svc, "Taste", "Price")
	list := mustGet(t, store, created.ListID)
	taste, price := list.Criteria[0].ID, list.Criteria[1].ID

	partial, err := svc.AddItem(as("owner"), created.ListID, "Perfect on one")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	full, err := svc.AddItem(as("owner"), created.ListID, "Good on both")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	ratings := []struct {
		itemID, criterionID string
		value               int
	}{
		{partial.ID, taste, 5},
		{full.ID, taste, 3},
		{full.ID, price, 4},
	}
	for _, r := range ratings {
		if err := svc.RateItem(as("owner"), created.ListID, r.itemID, r.criterionID, r.value); err != nil {
			t.Fatalf("RateItem failed: %v", err)
		}
	}

	t.Run("completeness discount decides the ranking", func(t *testing.T) {
		view, err := svc.GetList(as("owner"), created.ListID, created.OwnerSecret)
		if err != nil {
			t.Fatalf("GetList failed: %v", err)
		}
		if len(view.Scores) != 2 {
			t.Fatalf("scores = %d, want 2", len(view.Scores))
		}
		if view.Scores[0].ItemID != full.ID || math.Abs(view.Scores[0].AverageScore-0.7) > 1e-9 {
			t.Errorf("first = %+v, want %s with 0.7", view.Scores[0], full.ID)
		}
		if view.Scores[1].ItemID != partial.ID || math.Abs(view.Scores[1].AverageScore-0.5) > 1e-9 {
			t.Errorf("second = %+v, want %s with 0.5", view.Scores[1], partial.ID)
		}
		if !view.IsOwner || !view.IsMember || view.RatedCount != 2 {
			t.Errorf("owner=%v member=%v rated=%d", view.IsOwner, view.IsMember, view.RatedCount)
		}
		if view.List.OwnerSecretHash != "" {
			t.Error("owner secret hash must not be exposed")
		}
	})

	t.Run("anonymous viewer", func(t *testing.T) {
		view, err := svc.GetList(context.Background(), created.ListID, "")
		if err != nil {
			t.Fatalf("GetList failed: %v", err)
		}
		if view.Viewer != nil || view.IsMember || view.IsOwner || view.RatedCount != 0 {
			t.Errorf("unexpected view for anonymous caller: %+v", view)
		}
	})

	t.Run("wrong secret is not owner", func(t *testing.T) {
		view, err := svc.GetList(as("owner"), created.ListID, "wrong")
		if err != nil {
			t.Fatalf("GetList failed: %v", err)
		}
		if view.IsOwner {
			t.Error("IsOwner should be false for a wrong secret")
		}
	})

	t.Run("redaction does not touch the stored list", func(t *testing.T) {
		if got := mustGet(t, store, created.ListID); got.OwnerSecretHash == "" {
			t.Error("stored hash was cleared")
		}
	})

	t.Run("unknown list", func(t *testing.T) {
		if _, err := svc.GetList(as("owner"), "missing", ""); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestListsForCaller(t *testing.T) {
	svc, store := newTestService(t, bearerResolver{})
	first := createTestList(t, svc, "Taste")
	second := createTestList(t, svc)

	if _, err := svc.JoinList(as("bob"), first.ListID, "Bob"); err != nil {
		t.Fatalf("JoinList failed: %v", err)
	}

	summaries, err := svc.ListsForCaller(as("owner"))
	if err != nil {
		t.Fatalf("ListsForCaller failed: %v", err)
	}
	if len(summaries) != 2 || summaries[0].ID != first.ListID || summaries[1].ID != second.ListID {
		t.Fatalf("summaries = %+v", summaries)
	}
	if !summaries[0].IsOwner || summaries[0].MemberCount != 2 {
		t.Errorf("unexpected summary: %+v", summaries[0])
	}

	bobs, err := svc.ListsForCaller(as("bob"))
	if err != nil {
		t.Fatalf("ListsForCaller failed: %v", err)
	}
	if len(bobs) != 1 || bobs[0].IsOwner {
		t.Errorf("bob summaries = %+v", bobs)
	}

	t.Run("dangling index entries are skipped", func(t *testing.T) {
		if err := store.DeleteList(context.Background(), second.ListID); err != nil {
			t.Fatalf("DeleteList failed: %v", err)
		}
		summaries, err := svc.ListsForCaller(as("owner"))
		if err != nil {
			t.Fatalf("ListsForCaller failed: %v", err)
		}
		if len(summaries) != 1 || summaries[0].ID != first.ListID {
			t.Errorf("summaries = %+v", summaries)
		}
	})

	t.Run("no identity", func(t *testing.T) {
		if _, err := svc.ListsForCaller(context.Background()); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})
}
