package app

import (
	"context"
	"errors"
	"testing"

	"silent-auction-client/internal/domain/shared"
	"silent-auction-client/internal/ports/inbound"
	"silent-auction-client/internal/ports/outbound"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }

func TestBidService_SubmitBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBids := outbound.NewMockBidGateway(ctrl)

	staleCalls := 0
	service := NewBidService(BidServiceParams{
		Bids:             mockBids,
		MarkCatalogStale: func() { staleCalls++ },
		Logger:           zerolog.Nop(),
	})

	itemWithCurrent := shared.Item{ID: "item1", CurrentBid: float64Ptr(100)}
	itemStartingOnly := shared.Item{ID: "item2", StartingBid: float64Ptr(50)}
	itemLegacyPrice := shared.Item{ID: "item3", Price: float64Ptr(25)}

	tests := []struct {
		name          string
		item          shared.Item
		amount        string
		mockSetup     func()
		expectedError error
		expectAmount  float64
	}{
		{
			name:          "non_numeric_amount",
			item:          itemWithCurrent,
			amount:        "abc",
			mockSetup:     func() {},
			expectedError: shared.ErrBidNotANumber,
		},
		{
			name:          "empty_amount",
			item:          itemWithCurrent,
			amount:        "",
			mockSetup:     func() {},
			expectedError: shared.ErrBidNotANumber,
		},
		{
			name:          "nan_amount",
			item:          itemWithCurrent,
			amount:        "NaN",
			mockSetup:     func() {},
			expectedError: shared.ErrBidNotANumber,
		},
		{
			name:          "infinite_amount",
			item:          itemWithCurrent,
			amount:        "+Inf",
			mockSetup:     func() {},
			expectedError: shared.ErrBidNotANumber,
		},
		{
			name:          "amount_equal_to_current_bid",
			item:          itemWithCurrent,
			amount:        "100",
			mockSetup:     func() {},
			expectedError: shared.ErrBidTooLow,
		},
		{
			name:          "amount_below_current_bid",
			item:          itemWithCurrent,
			amount:        "99.99",
			mockSetup:     func() {},
			expectedError: shared.ErrBidTooLow,
		},
		{
			name:   "amount_above_current_bid",
			item:   itemWithCurrent,
			amount: "101",
			mockSetup: func() {
				mockBids.EXPECT().
					Place(gomock.Any(), "item1", "user1", 101.0).
					Return(&shared.Bid{ID: "bid1", ItemID: "item1", Amount: 101}, nil)
			},
			expectAmount: 101,
		},
		{
			name:          "falls_back_to_starting_bid",
			item:          itemStartingOnly,
			amount:        "50",
			mockSetup:     func() {},
			expectedError: shared.ErrBidTooLow,
		},
		{
			name:   "exceeds_starting_bid",
			item:   itemStartingOnly,
			amount: "51",
			mockSetup: func() {
				mockBids.EXPECT().
					Place(gomock.Any(), "item2", "user1", 51.0).
					Return(&shared.Bid{ID: "bid2", ItemID: "item2", Amount: 51}, nil)
			},
			expectAmount: 51,
		},
		{
			name:          "falls_back_to_legacy_price",
			item:          itemLegacyPrice,
			amount:        "20",
			mockSetup:     func() {},
			expectedError: shared.ErrBidTooLow,
		},
		{
			name:          "item_without_any_price",
			item:          shared.Item{ID: "item4"},
			amount:        "10",
			mockSetup:     func() {},
			expectedError: shared.ErrNoKnownPrice,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			staleCalls = 0
			tc.mockSetup()

			bid, err := service.SubmitBid(context.Background(), inbound.SubmitBidRequest{
				Item:     tc.item,
				BidderID: "user1",
				Amount:   tc.amount,
			})

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				require.Nil(t, bid)
				require.Zero(t, staleCalls, "rejected bid must not mark the catalog stale")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, bid)
			require.Equal(t, tc.expectAmount, bid.Amount)
			require.Equal(t, 1, staleCalls, "accepted bid must mark the catalog stale once")
		})
	}
}

func TestBidService_SubmitBid_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBids := outbound.NewMockBidGateway(ctrl)

	staleCalls := 0
	service := NewBidService(BidServiceParams{
		Bids:             mockBids,
		MarkCatalogStale: func() { staleCalls++ },
		Logger:           zerolog.Nop(),
	})

	backendErr := errors.New("Bid must be higher than the current bid")
	mockBids.EXPECT().
		Place(gomock.Any(), "item1", "user1", 200.0).
		Return(nil, backendErr)

	bid, err := service.SubmitBid(context.Background(), inbound.SubmitBidRequest{
		Item:     shared.Item{ID: "item1", CurrentBid: float64Ptr(100)},
		BidderID: "user1",
		Amount:   "200",
	})

	// The backend's error passes through untouched for user-visible
	// reporting.
	require.ErrorIs(t, err, backendErr)
	require.Nil(t, bid)
	require.Zero(t, staleCalls)
}

func TestBidService_GetMyBids(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBids := outbound.NewMockBidGateway(ctrl)
	service := NewBidService(BidServiceParams{Bids: mockBids, Logger: zerolog.Nop()})

	history := []shared.Bid{
		{ID: "bid1", ItemID: "item1", Amount: 10},
		{ID: "bid2", ItemID: "item2", Amount: 20},
	}
	mockBids.EXPECT().BidsByUser(gomock.Any(), "user1").Return(history, nil)

	bids, err := service.GetMyBids(context.Background(), "user1")
	require.NoError(t, err)
	require.Equal(t, history, bids)
}
