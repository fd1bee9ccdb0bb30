package app

import (
	"context"
	"sync"

	"silent-auction-client/internal/config"
	"silent-auction-client/internal/domain/shared"
	"silent-auction-client/internal/ports/outbound"

	"github.com/alitto/pond"
	"github.com/rs/zerolog"
)

// NotificationService builds the enriched notification feed
type NotificationService struct {
	notifications outbound.NotificationGateway
	items         outbound.ItemGateway
	maxWorkers    int
	maxCapacity   int
	logger        zerolog.Logger
}

type NotificationServiceParams struct {
	Notifications outbound.NotificationGateway
	Items         outbound.ItemGateway
	Config        *config.Config
	Logger        zerolog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(params NotificationServiceParams) *NotificationService {
	maxWorkers := config.EnrichMaxWorkersDefault
	maxCapacity := config.EnrichMaxCapacityDefault
	if params.Config != nil {
		maxWorkers = params.Config.Enrichment.MaxWorkers
		maxCapacity = params.Config.Enrichment.MaxCapacity
	}

	return &NotificationService{
		notifications: params.Notifications,
		items:         params.Items,
		maxWorkers:    maxWorkers,
		maxCapacity:   maxCapacity,
		logger:        params.Logger.With().Str("component", "notification_service").Logger(),
	}
}

// FetchEnriched retrieves a user's notifications and joins each one
// with a snapshot of the item it references. Each distinct item id is
// fetched exactly once through a bounded worker pool; the join waits
// for every fetch to settle. A failed item fetch leaves the affected
// notifications with a nil item and never fails the feed. Only a
// failure of the initial feed fetch is fatal.
func (service *NotificationService) FetchEnriched(ctx context.Context, userID string) ([]shared.EnrichedNotification, error) {
	raw, err := service.notifications.NotificationsByUser(ctx, userID)
	if err != nil {
		service.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch notifications")
		return nil, err
	}

	seen := make(map[string]struct{})
	ids := make([]string, 0, len(raw))
	for _, notification := range raw {
		if notification.ItemID == "" {
			continue
		}
		if _, dup := seen[notification.ItemID]; dup {
			continue
		}
		seen[notification.ItemID] = struct{}{}
		ids = append(ids, notification.ItemID)
	}

	fetched := service.fetchItems(ctx, ids)

	enriched := make([]shared.EnrichedNotification, 0, len(raw))
	for _, notification := range raw {
		enriched = append(enriched, shared.EnrichedNotification{
			Notification: notification,
			Item:         fetched[notification.ItemID],
		})
	}

	service.logger.Debug().
		Str("user_id", userID).
		Int("notifications", len(raw)).
		Int("distinct_items", len(ids)).
		Int("resolved_items", len(fetched)).
		Msg("Notification feed enriched")
	return enriched, nil
}

// fetchItems fans out one lookup per distinct id and collects the
// snapshots that arrived. Failed lookups are logged and omitted.
func (service *NotificationService) fetchItems(ctx context.Context, ids []string) map[string]*shared.Item {
	fetched := make(map[string]*shared.Item, len(ids))
	if len(ids) == 0 {
		return fetched
	}

	pool := pond.New(
		service.maxWorkers,
		service.maxCapacity,
		pond.Context(ctx),
		pond.Strategy(pond.Balanced()),
	)
	defer pool.StopAndWait()

	var mu sync.Mutex
	group := pool.Group()
	for _, id := range ids {
		id := id
		group.Submit(func() {
			item, err := service.items.GetByID(ctx, id)
			if err != nil {
				service.logger.Warn().Err(err).Str("item_id", id).Msg("Item lookup failed, leaving notification unenriched")
				return
			}
			mu.Lock()
			fetched[id] = item
			mu.Unlock()
		})
	}
	group.Wait()

	return fetched
}
