package app

import (
	"context"
	"strconv"
	"strings"

	"silent-auction-client/internal/domain/shared"
	"silent-auction-client/internal/ports/inbound"
	"silent-auction-client/internal/ports/outbound"
	"silent-auction-client/internal/session"

	"github.com/rs/zerolog"
)

// CatalogService implements the catalog use cases
type CatalogService struct {
	items   outbound.ItemGateway
	session *session.Store
	logger  zerolog.Logger
}

type CatalogServiceParams struct {
	Items   outbound.ItemGateway
	Session *session.Store
	Logger  zerolog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(params CatalogServiceParams) *CatalogService {
	return &CatalogService{
		items:   params.Items,
		session: params.Session,
		logger:  params.Logger.With().Str("component", "catalog_service").Logger(),
	}
}

// ListItems retrieves items for presentation. Seller scoping is
// delegated to the backend query parameter. The home feed asks for
// NewestFirst, which reverses backend order so the most recently
// created item comes first; other views keep backend order.
func (service *CatalogService) ListItems(ctx context.Context, req inbound.ListItemsRequest) ([]shared.Item, error) {
	items, err := service.items.List(ctx, req.SellerID)
	if err != nil {
		service.logger.Error().Err(err).Str("seller_id", req.SellerID).Msg("Failed to fetch items")
		return nil, err
	}

	if req.NewestFirst {
		reversed := make([]shared.Item, len(items))
		for i, item := range items {
			reversed[len(items)-1-i] = item
		}
		items = reversed
	}

	service.logger.Debug().Int("count", len(items)).Msg("Items fetched")
	return items, nil
}

// FilterItems narrows items for presentation. CategoryAll passes every
// item; search matches case-insensitively against the title or the
// category, and empty search text matches everything. Input order is
// preserved.
func FilterItems(items []shared.Item, category shared.Category, search string) []shared.Item {
	search = strings.ToLower(search)

	filtered := make([]shared.Item, 0, len(items))
	for _, item := range items {
		if category != shared.CategoryAll && item.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(string(item.Category)), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// CreateListing validates a draft and submits it as a new listing.
// The seller is the signed-in user; drafts may not set one directly.
func (service *CatalogService) CreateListing(ctx context.Context, draft shared.ListingDraft) (*shared.Item, error) {
	user, ok := service.session.Get()
	if !ok {
		return nil, shared.ErrNotSignedIn
	}
	draft.SellerID = user.ID

	if err := validateDraft(draft); err != nil {
		service.logger.Warn().Err(err).Str("title", draft.Title).Msg("Listing draft rejected")
		return nil, err
	}

	item, err := service.items.Create(ctx, draft)
	if err != nil {
		service.logger.Error().Err(err).Str("title", draft.Title).Msg("Failed to create listing")
		return nil, err
	}

	service.logger.Info().
		Str("item_id", item.ID).
		Str("seller_id", user.ID).
		Str("title", item.Title).
		Msg("Listing created")
	return item, nil
}

func validateDraft(draft shared.ListingDraft) error {
	if draft.Title == "" || draft.Description == "" || draft.StartingBid == "" || draft.Deadline == "" {
		return shared.ErrMissingListingFields
	}
	if draft.ImageURL == "" && draft.Image == nil {
		return shared.ErrMissingListingImage
	}
	if !draft.Category.Valid() {
		return shared.ErrInvalidCategory
	}

	startingBid, err := strconv.ParseFloat(draft.StartingBid, 64)
	if err != nil || startingBid <= 0 {
		return shared.ErrInvalidStartingBid
	}
	return nil
}
