package rest

import (
	"context"
	"net/http"
	"net/url"

	"silent-auction-client/internal/domain/shared"
)

type notificationPayload struct {
	ID        string `json:"_id"`
	AltID     string `json:"id"`
	UserID    string `json:"userId"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	ItemID    string `json:"itemId"`
	CreatedAt string `json:"createdAt"`
}

func (p notificationPayload) toDomain() shared.Notification {
	return shared.Notification{
		ID:        pickID(p.ID, p.AltID),
		UserID:    p.UserID,
		Type:      shared.NotificationType(p.Type),
		Message:   p.Message,
		ItemID:    p.ItemID,
		CreatedAt: parseTimestamp(p.CreatedAt),
	}
}

// NotificationsByUser retrieves a user's raw notification feed in
// backend order.
func (c *Client) NotificationsByUser(ctx context.Context, userID string) ([]shared.Notification, error) {
	var envelope struct {
		Data []notificationPayload `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/notifications/user/"+url.PathEscape(userID), nil, &envelope); err != nil {
		return nil, err
	}

	notifications := make([]shared.Notification, 0, len(envelope.Data))
	for _, payload := range envelope.Data {
		notifications = append(notifications, payload.toDomain())
	}
	return notifications, nil
}
