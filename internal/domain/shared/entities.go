package shared

import (
	"io"
	"time"
)

// User represents the signed-in marketplace user
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Item represents an auction listing fetched from the backend
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	StartingBid *float64  `json:"startingBid"`
	CurrentBid  *float64  `json:"currentBid"`
	Price       *float64  `json:"price"` // legacy field, still present on old listings
	Deadline    time.Time `json:"deadline"`
	SellerID    string    `json:"sellerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EffectiveCurrentPrice returns the price a new bid must exceed.
// The fallback chain is currentBid, then startingBid, then the legacy
// price field; ok is false when none of them is set.
func (i *Item) EffectiveCurrentPrice() (price float64, ok bool) {
	switch {
	case i.CurrentBid != nil:
		return *i.CurrentBid, true
	case i.StartingBid != nil:
		return *i.StartingBid, true
	case i.Price != nil:
		return *i.Price, true
	default:
		return 0, false
	}
}

// Bid represents a bid confirmed by the backend
type Bid struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	BidderID  string    `json:"bidderId"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification represents one entry of a user's raw notification feed
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	ItemID    string           `json:"itemId"`
	CreatedAt time.Time        `json:"createdAt"`
}

// EnrichedNotification pairs a notification with a snapshot of the item
// it references. Item is nil when the notification carries no item
// reference or the item lookup failed.
type EnrichedNotification struct {
	Notification
	Item *Item `json:"item"`
}

// ListingDraft carries the fields of a new listing before submission.
// StartingBid and Deadline hold raw form text; validation parses them.
// Exactly one of ImageURL or Image should be set.
type ListingDraft struct {
	Title         string
	Description   string
	Category      Category
	StartingBid   string
	Deadline      string
	SellerID      string
	ImageURL      string
	Image         io.Reader
	ImageFilename string
}
