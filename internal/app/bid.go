package app

import (
	"context"
	"math"
	"strconv"

	"silent-auction-client/internal/domain/shared"
	"silent-auction-client/internal/ports/inbound"
	"silent-auction-client/internal/ports/outbound"

	"github.com/rs/zerolog"
)

// BidService implements the bid use cases
type BidService struct {
	bids             outbound.BidGateway
	markCatalogStale func()
	logger           zerolog.Logger
}

type BidServiceParams struct {
	Bids outbound.BidGateway

	// MarkCatalogStale is invoked after a bid is accepted so the next
	// catalog fetch picks up the authoritative price. The client never
	// applies the increment itself.
	MarkCatalogStale func()

	Logger zerolog.Logger
}

// NewBidService creates a new bid service
func NewBidService(params BidServiceParams) *BidService {
	return &BidService{
		bids:             params.Bids,
		markCatalogStale: params.MarkCatalogStale,
		logger:           params.Logger.With().Str("component", "bid_service").Logger(),
	}
}

// SubmitBid validates a prospective bid against the item's current
// auction state and submits it. Validation runs before any network
// call; the backend performs the authoritative check.
func (service *BidService) SubmitBid(ctx context.Context, req inbound.SubmitBidRequest) (*shared.Bid, error) {
	service.logger.Info().
		Str("item_id", req.Item.ID).
		Str("bidder_id", req.BidderID).
		Str("amount", req.Amount).
		Msg("Attempting to place bid")

	amount, err := parseBidAmount(req.Amount)
	if err != nil {
		service.logger.Warn().Str("amount", req.Amount).Msg("Bid amount is not a number")
		return nil, err
	}

	price, ok := req.Item.EffectiveCurrentPrice()
	if !ok {
		service.logger.Warn().Str("item_id", req.Item.ID).Msg("Item carries no price to bid against")
		return nil, shared.ErrNoKnownPrice
	}
	if amount <= price {
		service.logger.Warn().
			Str("item_id", req.Item.ID).
			Float64("current_price", price).
			Float64("new_bid_amount", amount).
			Msg("Bid amount too low (must be higher than current price)")
		return nil, shared.ErrBidTooLow
	}

	bid, err := service.bids.Place(ctx, req.Item.ID, req.BidderID, amount)
	if err != nil {
		service.logger.Error().Err(err).Str("item_id", req.Item.ID).Msg("Failed to place bid")
		return nil, err
	}

	if service.markCatalogStale != nil {
		service.markCatalogStale()
	}

	service.logger.Info().
		Str("bid_id", bid.ID).
		Str("item_id", bid.ItemID).
		Float64("amount", bid.Amount).
		Msg("Bid placed successfully")
	return bid, nil
}

// GetMyBids retrieves a user's bid history in backend order
func (service *BidService) GetMyBids(ctx context.Context, userID string) ([]shared.Bid, error) {
	bids, err := service.bids.BidsByUser(ctx, userID)
	if err != nil {
		service.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch bid history")
		return nil, err
	}
	return bids, nil
}

// parseBidAmount parses raw bid text. ParseFloat accepts "NaN" and
// "Inf", which are not valid bids.
func parseBidAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, shared.ErrBidNotANumber
	}
	return amount, nil
}
