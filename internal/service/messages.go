package service

import (
	"github.com/mmynk/topten/internal/calculator"
	"github.com/mmynk/topten/internal/lists"
	"github.com/mmynk/topten/internal/models"
)

// Wire types of topten.v1.ListService.

type Criterion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Rating struct {
	UserID      string `json:"userId"`
	CriterionID string `json:"criterionId"`
	Value       int    `json:"value"`
}

type Item struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	AddedBy string   `json:"addedBy"`
	AddedAt int64    `json:"addedAt"`
	Ratings []Rating `json:"ratings"`
}

type Member struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	JoinedAt    int64  `json:"joinedAt"`
	Email       string `json:"email,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type List struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Criteria  []Criterion `json:"criteria"`
	Items     []Item      `json:"items"`
	Members   []Member    `json:"members"`
	OwnerID   string      `json:"ownerId"`
	CreatedAt int64       `json:"createdAt"`
	IsLocked  bool        `json:"isLocked"`
}

type CriterionScore struct {
	CriterionID string  `json:"criterionId"`
	Average     float64 `json:"average"`
	Count       int     `json:"count"`
}

// ItemScore is one entry of the ranking, best first.
type ItemScore struct {
	ItemID          string           `json:"itemId"`
	AverageScore    float64          `json:"averageScore"`
	TotalRatings    int              `json:"totalRatings"`
	RatingsByUser   map[string]int   `json:"ratingsByUser"`
	CriterionScores []CriterionScore `json:"criterionScores"`
}

type Viewer struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type ListSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ItemCount   int    `json:"itemCount"`
	MemberCount int    `json:"memberCount"`
	IsOwner     bool   `json:"isOwner"`
	IsLocked    bool   `json:"isLocked"`
	CreatedAt   int64  `json:"createdAt"`
}

type CreateListRequest struct {
	Name        string   `json:"name"`
	Criteria    []string `json:"criteria"`
	DisplayName string   `json:"displayName,omitempty"`
}

type CreateListResponse struct {
	ListID string `json:"listId"`
	// OwnerSecret is only ever returned here.
	OwnerSecret string `json:"ownerSecret"`
	UserID      string `json:"userId"`
	// UserToken is set when a per-list user token was issued.
	UserToken string `json:"userToken,omitempty"`
}

type JoinListRequest struct {
	ListID      string `json:"listId"`
	DisplayName string `json:"displayName,omitempty"`
}

type JoinListResponse struct {
	UserID        string `json:"userId"`
	AlreadyMember bool   `json:"alreadyMember"`
	UserToken     string `json:"userToken,omitempty"`
}

type GetListRequest struct {
	ListID      string `json:"listId"`
	OwnerSecret string `json:"ownerSecret,omitempty"`
}

type GetListResponse struct {
	List       List        `json:"list"`
	Ranking    []ItemScore `json:"ranking"`
	Viewer     *Viewer     `json:"viewer,omitempty"`
	IsMember   bool        `json:"isMember"`
	IsOwner    bool        `json:"isOwner"`
	RatedCount int         `json:"ratedCount"`
}

type ListMyListsRequest struct{}

type ListMyListsResponse struct {
	Lists []ListSummary `json:"lists"`
}

type AddItemRequest struct {
	ListID string `json:"listId"`
	Name   string `json:"name"`
}

type AddItemResponse struct {
	Item Item `json:"item"`
}

type RateItemRequest struct {
	ListID      string `json:"listId"`
	ItemID      string `json:"itemId"`
	CriterionID string `json:"criterionId"`
	Value       int    `json:"value"`
}

type RateItemResponse struct{}

type RemoveItemRequest struct {
	ListID      string `json:"listId"`
	ItemID      string `json:"itemId"`
	OwnerSecret string `json:"ownerSecret"`
}

type RemoveItemResponse struct{}

type ToggleLockRequest struct {
	ListID      string `json:"listId"`
	OwnerSecret string `json:"ownerSecret"`
}

type ToggleLockResponse struct {
	IsLocked bool `json:"isLocked"`
}

type AddCriterionRequest struct {
	ListID      string `json:"listId"`
	Name        string `json:"name"`
	OwnerSecret string `json:"ownerSecret"`
}

type AddCriterionResponse struct {
	Criterion Criterion `json:"criterion"`
}

type RemoveCriterionRequest struct {
	ListID      string `json:"listId"`
	CriterionID string `json:"criterionId"`
	OwnerSecret string `json:"ownerSecret"`
}

type RemoveCriterionResponse struct{}

func toItem(item models.Item) Item {
	ratings := make([]Rating, len(item.Ratings))
	for i, r := range item.Ratings {
		ratings[i] = Rating{UserID: r.UserID, CriterionID: r.CriterionID, Value: r.Value}
	}
	return Item{
		ID:      item.ID,
		Name:    item.Name,
		AddedBy: item.AddedBy,
		AddedAt: item.AddedAt,
		Ratings: ratings,
	}
}

func toList(list *models.TopTenList) List {
	out := List{
		ID:        list.ID,
		Name:      list.Name,
		Criteria:  make([]Criterion, len(list.Criteria)),
		Items:     make([]Item, len(list.Items)),
		Members:   make([]Member, len(list.Users)),
		OwnerID:   list.OwnerID,
		CreatedAt: list.CreatedAt,
		IsLocked:  list.IsLocked,
	}
	for i, c := range list.Criteria {
		out.Criteria[i] = Criterion{ID: c.ID, Name: c.Name}
	}
	for i, item := range list.Items {
		out.Items[i] = toItem(item)
	}
	for i, u := range list.Users {
		out.Members[i] = Member{
			ID:          u.ID,
			DisplayName: u.DisplayName,
			JoinedAt:    u.JoinedAt,
			Email:       u.Email,
			AvatarURL:   u.AvatarURL,
		}
	}
	return out
}

// toRanking keeps criterion scores in the list's criterion order.
func toRanking(scores []calculator.ItemScore, criteria []models.Criterion) []ItemScore {
	out := make([]ItemScore, len(scores))
	for i, s := range scores {
		var byCriterion []CriterionScore
		for _, c := range criteria {
			if cs, ok := s.CriterionScores[c.ID]; ok {
				byCriterion = append(byCriterion, CriterionScore{CriterionID: c.ID, Average: cs.Average, Count: cs.Count})
			}
		}
		out[i] = ItemScore{
			ItemID:          s.ItemID,
			AverageScore:    s.AverageScore,
			TotalRatings:    s.TotalRatings,
			RatingsByUser:   s.RatingsByUser,
			CriterionScores: byCriterion,
		}
	}
	return out
}

func toSummaries(summaries []lists.ListSummary) []ListSummary {
	out := make([]ListSummary, len(summaries))
	for i, s := range summaries {
		out[i] = ListSummary{
			ID:          s.ID,
			Name:        s.Name,
			ItemCount:   s.ItemCount,
			MemberCount: s.MemberCount,
			IsOwner:     s.IsOwner,
			IsLocked:    s.IsLocked,
			CreatedAt:   s.CreatedAt,
		}
	}
	return out
}
