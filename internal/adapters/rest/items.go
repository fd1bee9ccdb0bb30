package rest

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"silent-auction-client/internal/domain/shared"
)

// itemPayload mirrors the backend's item document. Old documents carry
// a plain id and a legacy price field, newer ones _id and currentBid.
type itemPayload struct {
	ID          string   `json:"_id"`
	AltID       string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	StartingBid *float64 `json:"startingBid"`
	CurrentBid  *float64 `json:"currentBid"`
	Price       *float64 `json:"price"`
	Deadline    string   `json:"deadline"`
	SellerID    string   `json:"sellerId"`
	CreatedAt   string   `json:"createdAt"`
}

func (p itemPayload) toDomain() shared.Item {
	return shared.Item{
		ID:          pickID(p.ID, p.AltID),
		Title:       p.Title,
		Description: p.Description,
		Category:    shared.Category(p.Category),
		ImageURL:    p.ImageURL,
		StartingBid: p.StartingBid,
		CurrentBid:  p.CurrentBid,
		Price:       p.Price,
		Deadline:    parseTimestamp(p.Deadline),
		SellerID:    p.SellerID,
		CreatedAt:   parseTimestamp(p.CreatedAt),
	}
}

// List retrieves the catalog, scoped to one seller when sellerID is
// non-empty. Backend order is preserved.
func (c *Client) List(ctx context.Context, sellerID string) ([]shared.Item, error) {
	path := "/items"
	if sellerID != "" {
		path += "?sellerId=" + url.QueryEscape(sellerID)
	}

	var envelope struct {
		Data []itemPayload `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}

	items := make([]shared.Item, 0, len(envelope.Data))
	for _, payload := range envelope.Data {
		items = append(items, payload.toDomain())
	}
	return items, nil
}

// GetByID retrieves a single item
func (c *Client) GetByID(ctx context.Context, id string) (*shared.Item, error) {
	var envelope struct {
		Data itemPayload `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/items/"+url.PathEscape(id), nil, &envelope); err != nil {
		return nil, err
	}

	item := envelope.Data.toDomain()
	return &item, nil
}

// Create submits a new listing as a multipart form. The image travels
// either as a file part or as an imageUrl field, never both.
func (c *Client) Create(ctx context.Context, draft shared.ListingDraft) (*shared.Item, error) {
	var envelope struct {
		Data itemPayload `json:"data"`
	}

	err := c.doMultipart(ctx, "/items", func(form *multipart.Writer) error {
		fields := map[string]string{
			"title":       draft.Title,
			"description": draft.Description,
			"startingBid": draft.StartingBid,
			"deadline":    draft.Deadline,
			"category":    string(draft.Category),
			"sellerId":    draft.SellerID,
		}
		for name, value := range fields {
			if err := form.WriteField(name, value); err != nil {
				return err
			}
		}

		if draft.ImageURL != "" {
			return form.WriteField("imageUrl", draft.ImageURL)
		}

		part, err := form.CreateFormFile("image", draft.ImageFilename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, draft.Image); err != nil {
			return fmt.Errorf("failed to copy image data: %w", err)
		}
		return nil
	}, &envelope)
	if err != nil {
		return nil, err
	}

	item := envelope.Data.toDomain()
	return &item, nil
}
