package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// ListServiceName is the fully-qualified name of the ListService service.
const ListServiceName = "topten.v1.ListService"

// These constants are the fully-qualified names of the RPCs defined in ListService. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	ListServiceCreateListProcedure      = "/topten.v1.ListService/CreateList"
	ListServiceJoinListProcedure        = "/topten.v1.ListService/JoinList"
	ListServiceGetListProcedure         = "/topten.v1.ListService/GetList"
	ListServiceListMyListsProcedure     = "/topten.v1.ListService/ListMyLists"
	ListServiceAddItemProcedure         = "/topten.v1.ListService/AddItem"
	ListServiceRateItemProcedure        = "/topten.v1.ListService/RateItem"
	ListServiceRemoveItemProcedure      = "/topten.v1.ListService/RemoveItem"
	ListServiceToggleLockProcedure      = "/topten.v1.ListService/ToggleLock"
	ListServiceAddCriterionProcedure    = "/topten.v1.ListService/AddCriterion"
	ListServiceRemoveCriterionProcedure = "/topten.v1.ListService/RemoveCriterion"
)

// ListServiceHandler is implemented by ListService.
type ListServiceHandler interface {
	CreateList(context.Context, *connect.Request[CreateListRequest]) (*connect.Response[CreateListResponse], error)
	JoinList(context.Context, *connect.Request[JoinListRequest]) (*connect.Response[JoinListResponse], error)
	GetList(context.Context, *connect.Request[GetListRequest]) (*connect.Response[GetListResponse], error)
	ListMyLists(context.Context, *connect.Request[ListMyListsRequest]) (*connect.Response[ListMyListsResponse], error)
	AddItem(context.Context, *connect.Request[AddItemRequest]) (*connect.Response[AddItemResponse], error)
	RateItem(context.Context, *connect.Request[RateItemRequest]) (*connect.Response[RateItemResponse], error)
	RemoveItem(context.Context, *connect.Request[RemoveItemRequest]) (*connect.Response[RemoveItemResponse], error)
	ToggleLock(context.Context, *connect.Request[ToggleLockRequest]) (*connect.Response[ToggleLockResponse], error)
	AddCriterion(context.Context, *connect.Request[AddCriterionRequest]) (*connect.Response[AddCriterionResponse], error)
	RemoveCriterion(context.Context, *connect.Request[RemoveCriterionRequest]) (*connect.Response[RemoveCriterionResponse], error)
}

// NewListServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewListServiceHandler(svc ListServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	handlers := map[string]http.Handler{
		ListServiceCreateListProcedure:      connect.NewUnaryHandler(ListServiceCreateListProcedure, svc.CreateList, opts...),
		ListServiceJoinListProcedure:        connect.NewUnaryHandler(ListServiceJoinListProcedure, svc.JoinList, opts...),
		ListServiceGetListProcedure:         connect.NewUnaryHandler(ListServiceGetListProcedure, svc.GetList, opts...),
		ListServiceListMyListsProcedure:     connect.NewUnaryHandler(ListServiceListMyListsProcedure, svc.ListMyLists, opts...),
		ListServiceAddItemProcedure:         connect.NewUnaryHandler(ListServiceAddItemProcedure, svc.AddItem, opts...),
		ListServiceRateItemProcedure:        connect.NewUnaryHandler(ListServiceRateItemProcedure, svc.RateItem, opts...),
		ListServiceRemoveItemProcedure:      connect.NewUnaryHandler(ListServiceRemoveItemProcedure, svc.RemoveItem, opts...),
		ListServiceToggleLockProcedure:      connect.NewUnaryHandler(ListServiceToggleLockProcedure, svc.ToggleLock, opts...),
		ListServiceAddCriterionProcedure:    connect.NewUnaryHandler(ListServiceAddCriterionProcedure, svc.AddCriterion, opts...),
		ListServiceRemoveCriterionProcedure: connect.NewUnaryHandler(ListServiceRemoveCriterionProcedure, svc.RemoveCriterion, opts...),
	}

	return "/" + ListServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// ListServiceClient is a client for the topten.v1.ListService service.
type ListServiceClient interface {
	CreateList(context.Context, *connect.Request[CreateListRequest]) (*connect.Response[CreateListResponse], error)
	JoinList(context.Context, *connect.Request[JoinListRequest]) (*connect.Response[JoinListResponse], error)
	GetList(context.Context, *connect.Request[GetListRequest]) (*connect.Response[GetListResponse], error)
	ListMyLists(context.Context, *connect.Request[ListMyListsRequest]) (*connect.Response[ListMyListsResponse], error)
	AddItem(context.Context, *connect.Request[AddItemRequest]) (*connect.Response[AddItemResponse], error)
	RateItem(context.Context, *connect.Request[RateItemRequest]) (*connect.Response[RateItemResponse], error)
	RemoveItem(context.Context, *connect.Request[RemoveItemRequest]) (*connect.Response[RemoveItemResponse], error)
	ToggleLock(context.Context, *connect.Request[ToggleLockRequest]) (*connect.Response[ToggleLockResponse], error)
	AddCriterion(context.Context, *connect.Request[AddCriterionRequest]) (*connect.Response[AddCriterionResponse], error)
	RemoveCriterion(context.Context, *connect.Request[RemoveCriterionRequest]) (*connect.Response[RemoveCriterionResponse], error)
}

// NewListServiceClient constructs a client for the topten.v1.ListService service.
// The URL should be the server's base URL, e.g. http://localhost:8080.
func NewListServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ListServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &listServiceClient{
		createList:      connect.NewClient[CreateListRequest, CreateListResponse](httpClient, baseURL+ListServiceCreateListProcedure, opts...),
		joinList:        connect.NewClient[JoinListRequest, JoinListResponse](httpClient, baseURL+ListServiceJoinListProcedure, opts...),
		getList:         connect.NewClient[GetListRequest, GetListResponse](httpClient, baseURL+ListServiceGetListProcedure, opts...),
		listMyLists:     connect.NewClient[ListMyListsRequest, ListMyListsResponse](httpClient, baseURL+ListServiceListMyListsProcedure, opts...),
		addItem:         connect.NewClient[AddItemRequest, AddItemResponse](httpClient, baseURL+ListServiceAddItemProcedure, opts...),
		rateItem:        connect.NewClient[RateItemRequest, RateItemResponse](httpClient, baseURL+ListServiceRateItemProcedure, opts...),
		removeItem:      connect.NewClient[RemoveItemRequest, RemoveItemResponse](httpClient, baseURL+ListServiceRemoveItemProcedure, opts...),
		toggleLock:      connect.NewClient[ToggleLockRequest, ToggleLockResponse](httpClient, baseURL+ListServiceToggleLockProcedure, opts...),
		addCriterion:    connect.NewClient[AddCriterionRequest, AddCriterionResponse](httpClient, baseURL+ListServiceAddCriterionProcedure, opts...),
		removeCriterion: connect.NewClient[RemoveCriterionRequest, RemoveCriterionResponse](httpClient, baseURL+ListServiceRemoveCriterionProcedure, opts...),
	}
}

type listServiceClient struct {
	createList      *connect.Client[CreateListRequest, CreateListResponse]
	joinList        *connect.Client[JoinListRequest, JoinListResponse]
	getList         *connect.Client[GetListRequest, GetListResponse]
	listMyLists     *connect.Client[ListMyListsRequest, ListMyListsResponse]
	addItem         *connect.Client[AddItemRequest, AddItemResponse]
	rateItem        *connect.Client[RateItemRequest, RateItemResponse]
	removeItem      *connect.Client[RemoveItemRequest, RemoveItemResponse]
	toggleLock      *connect.Client[ToggleLockRequest, ToggleLockResponse]
	addCriterion    *connect.Client[AddCriterionRequest, AddCriterionResponse]
	removeCriterion *connect.Client[RemoveCriterionRequest, RemoveCriterionResponse]
}

func (c *listServiceClient) CreateList(ctx context.Context, req *connect.Request[CreateListRequest]) (*connect.Response[CreateListResponse], error) {
	return c.createList.CallUnary(ctx, req)
}

func (c *listServiceClient) JoinList(ctx context.Context, req *connect.Request[JoinListRequest]) (*connect.Response[JoinListResponse], error) {
	return c.joinList.CallUnary(ctx, req)
}

func (c *listServiceClient) GetList(ctx context.Context, req *connect.Request[GetListRequest]) (*connect.Response[GetListResponse], error) {
	return c.getList.CallUnary(ctx, req)
}

func (c *listServiceClient) ListMyLists(ctx context.Context, req *connect.Request[ListMyListsRequest]) (*connect.Response[ListMyListsResponse], error) {
	return c.listMyLists.CallUnary(ctx, req)
}

func (c *listServiceClient) AddItem(ctx context.Context, req *connect.Request[AddItemRequest]) (*connect.Response[AddItemResponse], error) {
	return c.addItem.CallUnary(ctx, req)
}

func (c *listServiceClient) RateItem(ctx context.Context, req *connect.Request[RateItemRequest]) (*connect.Response[RateItemResponse], error) {
	return c.rateItem.CallUnary(ctx, req)
}

func (c *listServiceClient) RemoveItem(ctx context.Context, req *connect.Request[RemoveItemRequest]) (*connect.Response[RemoveItemResponse], error) {
	return c.removeItem.CallUnary(ctx, req)
}

func (c *listServiceClient) ToggleLock(ctx context.Context, req *connect.Request[ToggleLockRequest]) (*connect.Response[ToggleLockResponse], error) {
	return c.toggleLock.CallUnary(ctx, req)
}

func (c *listServiceClient) AddCriterion(ctx context.Context, req *connect.Request[AddCriterionRequest]) (*connect.Response[AddCriterionResponse], error) {
	return c.addCriterion.CallUnary(ctx, req)
}

func (c *listServiceClient) RemoveCriterion(ctx context.Context, req *connect.Request[RemoveCriterionRequest]) (*connect.Response[RemoveCriterionResponse], error) {
	return c.removeCriterion.CallUnary(ctx, req)
}
