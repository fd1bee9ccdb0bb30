package inbound

import (
	"context"

	"silent-auction-client/internal/domain/shared"
)

// CatalogService defines the interface for catalog operations
type CatalogService interface {
	// ListItems retrieves items for presentation
	ListItems(ctx context.Context, req ListItemsRequest) ([]shared.Item, error)

	// CreateListing validates and submits a new listing
	CreateListing(ctx context.Context, draft shared.ListingDraft) (*shared.Item, error)
}

// BidService defines the interface for bid operations
type BidService interface {
	// SubmitBid validates a prospective bid and submits it
	SubmitBid(ctx context.Context, req SubmitBidRequest) (*shared.Bid, error)

	// GetMyBids retrieves the signed-in user's bid history
	GetMyBids(ctx context.Context, userID string) ([]shared.Bid, error)
}

// NotificationService defines the interface for the enriched feed
type NotificationService interface {
	// FetchEnriched retrieves a user's notifications joined with the
	// items they reference
	FetchEnriched(ctx context.Context, userID string) ([]shared.EnrichedNotification, error)
}

// AccountService defines the interface for session flows
type AccountService interface {
	// Login authenticates and stores the user in the session
	Login(ctx context.Context, email, password string) (*shared.User, error)

	// Register creates a new account
	Register(ctx context.Context, req RegisterRequest) error

	// Logout clears the session
	Logout()

	// UpdateProfile merges the given fields into the current user and
	// replaces the session atomically
	UpdateProfile(update ProfileUpdate) (*shared.User, error)
}

// request to list catalog items
type ListItemsRequest struct {
	// SellerID scopes the catalog to one seller when non-empty
	SellerID string `json:"seller_id,omitempty"`

	// NewestFirst reverses backend order so the most recently created
	// item comes first (the home feed)
	NewestFirst bool `json:"newest_first"`
}

// request to submit a bid; Amount carries raw form text
type SubmitBidRequest struct {
	Item     shared.Item `json:"item"`
	BidderID string      `json:"bidder_id"`
	Amount   string      `json:"amount"`
}

// request to register a new account
type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     shared.Role `json:"role"`
}

// partial profile edit; nil fields are left unchanged
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
