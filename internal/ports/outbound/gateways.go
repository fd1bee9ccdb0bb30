package outbound

import (
	"context"

	"silent-auction-client/internal/domain/shared"
)

//go:generate mockgen -source=gateways.go -destination=gateways_mock.go -package=outbound

// AuthGateway defines the interface for account operations on the backend
type AuthGateway interface {
	// Login authenticates with email and password and returns the user
	Login(ctx context.Context, email, password string) (*shared.User, error)

	// Register creates a new account
	Register(ctx context.Context, name, email, password string, role shared.Role) error
}

// ItemGateway defines the interface for catalog operations on the backend
type ItemGateway interface {
	// List retrieves items, scoped to one seller when sellerID is non-empty
	List(ctx context.Context, sellerID string) ([]shared.Item, error)

	// GetByID retrieves a single item
	GetByID(ctx context.Context, id string) (*shared.Item, error)

	// Create submits a new listing as a multipart form and returns the
	// created item
	Create(ctx context.Context, draft shared.ListingDraft) (*shared.Item, error)
}

// BidGateway defines the interface for bid operations on the backend
type BidGateway interface {
	// Place submits a bid and returns the server-confirmed bid
	Place(ctx context.Context, itemID, bidderID string, amount float64) (*shared.Bid, error)

	// BidsByUser retrieves a user's bid history
	BidsByUser(ctx context.Context, userID string) ([]shared.Bid, error)
}

// NotificationGateway defines the interface for the notification feed
type NotificationGateway interface {
	// NotificationsByUser retrieves a user's raw notification feed
	NotificationsByUser(ctx context.Context, userID string) ([]shared.Notification, error)
}
