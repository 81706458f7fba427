package service

import (
	"context"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mmynk/topten/internal/auth"
	"github.com/mmynk/topten/internal/lists"
)

// ListService implements the Connect ListService on top of lists.Service.
type ListService struct {
	lists         *lists.Service
	secureCookies bool
}

var _ ListServiceHandler = (*ListService)(nil)

// ListServiceOption configures a ListService.
type ListServiceOption func(*ListService)

// WithSecureCookies marks issued session cookies Secure (HTTPS only).
func WithSecureCookies(secure bool) ListServiceOption {
	return func(s *ListService) { s.secureCookies = secure }
}

// NewListService creates a new ListService.
func NewListService(svc *lists.Service, opts ...ListServiceOption) *ListService {
	s := &ListService{lists: svc}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// issue delivers a newly enrolled credential. Cookies go into Set-Cookie;
// tokens are returned for the caller to put in the response body.
func (s *ListService) issue(header http.Header, cred *auth.Credential) string {
	if cred == nil {
		return ""
	}
	if cred.Kind == auth.CredentialToken {
		return cred.Value
	}

	cookie := &http.Cookie{
		Name:     cred.Name,
		Value:    cred.Value,
		Path:     "/",
		Expires:  cred.ExpiresAt,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	header.Add("Set-Cookie", cookie.String())
	return ""
}

// CreateList creates a new list owned by the caller.
func (s *ListService) CreateList(ctx context.Context, req *connect.Request[CreateListRequest]) (*connect.Response[CreateListResponse], error) {
	slog.Info("CreateList request received",
		"name", req.Msg.Name,
		"criteria_count", len(req.Msg.Criteria),
	)

	res, err := s.lists.CreateList(ctx, lists.CreateListInput{
		Name:        req.Msg.Name,
		Criteria:    req.Msg.Criteria,
		DisplayName: req.Msg.DisplayName,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := connect.NewResponse(&CreateListResponse{
		ListID:      res.ListID,
		OwnerSecret: res.OwnerSecret,
		UserID:      res.UserID,
	})
	resp.Msg.UserToken = s.issue(resp.Header(), res.Credential)
	return resp, nil
}

// JoinList adds the caller to a list.
func (s *ListService) JoinList(ctx context.Context, req *connect.Request[JoinListRequest]) (*connect.Response[JoinListResponse], error) {
	slog.Info("JoinList request received", "list_id", req.Msg.ListID)

	res, err := s.lists.JoinList(ctx, req.Msg.ListID, req.Msg.DisplayName)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := connect.NewResponse(&JoinListResponse{
		UserID:        res.UserID,
		AlreadyMember: res.AlreadyMember,
	})
	resp.Msg.UserToken = s.issue(resp.Header(), res.Credential)
	return resp, nil
}

// GetList returns a list with its ranking.
func (s *ListService) GetList(ctx context.Context, req *connect.Request[GetListRequest]) (*connect.Response[GetListResponse], error) {
	slog.Debug("GetList request received", "list_id", req.Msg.ListID)

	view, err := s.lists.GetList(ctx, req.Msg.ListID, req.Msg.OwnerSecret)
	if err != nil {
		return nil, toConnectError(err)
	}

	msg := &GetListResponse{
		List:       toList(view.List),
		Ranking:    toRanking(view.Scores, view.List.Criteria),
		IsMember:   view.IsMember,
		IsOwner:    view.IsOwner,
		RatedCount: view.RatedCount,
	}
	if view.Viewer != nil {
		msg.Viewer = &Viewer{
			UserID:      view.Viewer.UserID,
			DisplayName: view.Viewer.DisplayName,
			Email:       view.Viewer.Email,
			AvatarURL:   view.Viewer.AvatarURL,
		}
	}
	return connect.NewResponse(msg), nil
}

// ListMyLists returns the lists the caller created or joined.
func (s *ListService) ListMyLists(ctx context.Context, _ *connect.Request[ListMyListsRequest]) (*connect.Response[ListMyListsResponse], error) {
	summaries, err := s.lists.ListsForCaller(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Debug("ListMyLists successful", "count", len(summaries))
	return connect.NewResponse(&ListMyListsResponse{Lists: toSummaries(summaries)}), nil
}

// AddItem adds an item to an unlocked list.
func (s *ListService) AddItem(ctx context.Context, req *connect.Request[AddItemRequest]) (*connect.Response[AddItemResponse], error) {
	slog.Info("AddItem request received", "list_id", req.Msg.ListID, "name", req.Msg.Name)

	item, err := s.lists.AddItem(ctx, req.Msg.ListID, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&AddItemResponse{Item: toItem(*item)}), nil
}

// RateItem records the caller's rating of an item on one criterion.
func (s *ListService) RateItem(ctx context.Context, req *connect.Request[RateItemRequest]) (*connect.Response[RateItemResponse], error) {
	err := s.lists.RateItem(ctx, req.Msg.ListID, req.Msg.ItemID, req.Msg.CriterionID, req.Msg.Value)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RateItemResponse{}), nil
}

// RemoveItem deletes an item. Owner only.
func (s *ListService) RemoveItem(ctx context.Context, req *connect.Request[RemoveItemRequest]) (*connect.Response[RemoveItemResponse], error) {
	slog.Info("RemoveItem request received", "list_id", req.Msg.ListID, "item_id", req.Msg.ItemID)

	if err := s.lists.RemoveItem(ctx, req.Msg.ListID, req.Msg.ItemID, req.Msg.OwnerSecret); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RemoveItemResponse{}), nil
}

// ToggleLock locks or unlocks a list. Owner only.
func (s *ListService) ToggleLock(ctx context.Context, req *connect.Request[ToggleLockRequest]) (*connect.Response[ToggleLockResponse], error) {
	slog.Info("ToggleLock request received", "list_id", req.Msg.ListID)

	locked, err := s.lists.ToggleLock(ctx, req.Msg.ListID, req.Msg.OwnerSecret)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ToggleLockResponse{IsLocked: locked}), nil
}

// AddCriterion adds a rating criterion. Owner only.
func (s *ListService) AddCriterion(ctx context.Context, req *connect.Request[AddCriterionRequest]) (*connect.Response[AddCriterionResponse], error) {
	slog.Info("AddCriterion request received", "list_id", req.Msg.ListID, "name", req.Msg.Name)

	c, err := s.lists.AddCriterion(ctx, req.Msg.ListID, req.Msg.Name, req.Msg.OwnerSecret)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&AddCriterionResponse{Criterion: Criterion{ID: c.ID, Name: c.Name}}), nil
}

// RemoveCriterion removes a criterion and its ratings. Owner only.
func (s *ListService) RemoveCriterion(ctx context.Context, req *connect.Request[RemoveCriterionRequest]) (*connect.Response[RemoveCriterionResponse], error) {
	slog.Info("RemoveCriterion request received", "list_id", req.Msg.ListID, "criterion_id", req.Msg.CriterionID)

	if err := s.lists.RemoveCriterion(ctx, req.Msg.ListID, req.Msg.CriterionID, req.Msg.OwnerSecret); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RemoveCriterionResponse{}), nil
}
