package rest

import (
	"context"
	"net/http"
	"net/url"

	"silent-auction-client/internal/domain/shared"
)

type bidPayload struct {
	ID        string  `json:"_id"`
	AltID     string  `json:"id"`
	ItemID    string  `json:"itemId"`
	BidderID  string  `json:"bidderId"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"createdAt"`
}

func (p bidPayload) toDomain() shared.Bid {
	return shared.Bid{
		ID:        pickID(p.ID, p.AltID),
		ItemID:    p.ItemID,
		BidderID:  p.BidderID,
		Amount:    p.Amount,
		CreatedAt: parseTimestamp(p.CreatedAt),
	}
}

// Place submits a bid and returns the server-confirmed bid. The
// backend performs the authoritative price check; a rejection comes
// back as a TransportError carrying its message.
func (c *Client) Place(ctx context.Context, itemID, bidderID string, amount float64) (*shared.Bid, error) {
	body := map[string]interface{}{
		"itemId":   itemID,
		"amount":   amount,
		"bidderId": bidderID,
	}

	var envelope struct {
		Data bidPayload `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/bids", body, &envelope); err != nil {
		return nil, err
	}

	bid := envelope.Data.toDomain()
	return &bid, nil
}

// BidsByUser retrieves a user's bid history
func (c *Client) BidsByUser(ctx context.Context, userID string) ([]shared.Bid, error) {
	var envelope struct {
		Data []bidPayload `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/bids/user/"+url.PathEscape(userID), nil, &envelope); err != nil {
		return nil, err
	}

	bids := make([]shared.Bid, 0, len(envelope.Data))
	for _, payload := range envelope.Data {
		bids = append(bids, payload.toDomain())
	}
	return bids, nil
}
