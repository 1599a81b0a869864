package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"art-auction/internal/auctionerrors"
	model "art-auction/internal/models"
	"art-auction/internal/repository"
)

// Tests CreateSubmission
func TestAuctionService_CreateSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore)
	ctx := context.Background()

	// Table-driven test cases
	tests := []struct {
		name          string
		artistName    string
		wallet        string
		artworkURL    string
		description   string
		reservePrice  string
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:         "valid_submission",
			artistName:   "SharkBoy",
			wallet:       "0x1234",
			artworkURL:   "https://example.com/a.png",
			description:  "oceanic shifts",
			reservePrice: "0.1",
			mockSetup: func() {
				mockStore.EXPECT().
					CreateSubmission(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sub model.Submission) (model.Submission, error) {
						require.Equal(t, model.SubmissionPending, sub.Status)
						sub.ID = 1
						sub.CreatedAt = time.Now().UTC()
						return sub, nil
					})
			},
			expectError: false,
		},
		{
			name:          "missing_artist_name",
			artistName:    "",
			wallet:        "0x1234",
			artworkURL:    "https://example.com/a.png",
			description:   "d",
			reservePrice:  "0.1",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "missing_wallet",
			artistName:    "SharkBoy",
			wallet:        "",
			artworkURL:    "https://example.com/a.png",
			description:   "d",
			reservePrice:  "0.1",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "reserve_price_not_decimal",
			artistName:    "SharkBoy",
			wallet:        "0x1234",
			artworkURL:    "https://example.com/a.png",
			description:   "d",
			reservePrice:  "one ether",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "negative_reserve_price",
			artistName:    "SharkBoy",
			wallet:        "0x1234",
			artworkURL:    "https://example.com/a.png",
			description:   "d",
			reservePrice:  "-0.5",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:         "store_fails",
			artistName:   "SharkBoy",
			wallet:       "0x1234",
			artworkURL:   "https://example.com/a.png",
			description:  "d",
			reservePrice: "0.1",
			mockSetup: func() {
				mockStore.EXPECT().
					CreateSubmission(gomock.Any(), gomock.Any()).
					Return(model.Submission{}, errors.New("store write failed"))
			},
			expectError:   true,
			expectedError: nil, // service wraps store error, no sentinel to match
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			sub, err := service.CreateSubmission(ctx, tc.artistName, tc.wallet, tc.artworkURL, tc.description, tc.reservePrice)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.ErrorIs(t, err, tc.expectedError)
				}
			} else {
				require.NoError(t, err)
				require.NotZero(t, sub.ID)
				require.Equal(t, tc.artistName, sub.ArtistName)
				require.Equal(t, model.SubmissionPending, sub.Status)
			}
		})
	}
}

// Tests UpdateSubmission
func TestAuctionService_UpdateSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore)
	ctx := context.Background()

	approved := model.SubmissionApproved
	bogus := "archived"
	badPrice := "NaN"

	tests := []struct {
		name          string
		id            int64
		updates       model.SubmissionUpdate
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:    "approve_submission",
			id:      1,
			updates: model.SubmissionUpdate{Status: &approved},
			mockSetup: func() {
				mockStore.EXPECT().
					UpdateSubmission(gomock.Any(), int64(1), gomock.Any()).
					Return(model.Submission{ID: 1, ArtistName: "SharkBoy", Status: model.SubmissionApproved}, nil)
			},
			expectError: false,
		},
		{
			name:          "unknown_status",
			id:            1,
			updates:       model.SubmissionUpdate{Status: &bogus},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "bad_reserve_price",
			id:            1,
			updates:       model.SubmissionUpdate{ReservePrice: &badPrice},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:    "submission_missing",
			id:      42,
			updates: model.SubmissionUpdate{Status: &approved},
			mockSetup: func() {
				mockStore.EXPECT().
					UpdateSubmission(gomock.Any(), int64(42), gomock.Any()).
					Return(model.Submission{}, auctionerrors.ErrSubmissionNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrSubmissionNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			sub, err := service.UpdateSubmission(ctx, tc.id, tc.updates)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.ErrorIs(t, err, tc.expectedError)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, model.SubmissionApproved, sub.Status)
			}
		})
	}
}

// Tests CreateAuction
func TestAuctionService_CreateAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore)
	ctx := context.Background()

	future := time.Now().UTC().Add(24 * time.Hour)

	tests := []struct {
		name          string
		submissionID  int64
		endTime       time.Time
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:         "valid_auction",
			submissionID: 1,
			endTime:      future,
			mockSetup: func() {
				mockStore.EXPECT().
					GetSubmission(gomock.Any(), int64(1)).
					Return(model.Submission{ID: 1, Status: model.SubmissionApproved}, nil)
				mockStore.EXPECT().
					CreateAuction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a model.Auction) (model.Auction, error) {
						require.Equal(t, "0", a.HighestBid)
						require.Equal(t, model.AuctionActive, a.Status)
						a.ID = 1
						return a, nil
					})
			},
			expectError: false,
		},
		{
			name:          "end_time_in_past",
			submissionID:  1,
			endTime:       time.Now().UTC().Add(-time.Hour),
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:         "submission_missing",
			submissionID: 42,
			endTime:      future,
			mockSetup: func() {
				mockStore.EXPECT().
					GetSubmission(gomock.Any(), int64(42)).
					Return(model.Submission{}, auctionerrors.ErrSubmissionNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrSubmissionNotFound,
		},
		{
			name:         "submission_not_approved",
			submissionID: 2,
			endTime:      future,
			mockSetup: func() {
				mockStore.EXPECT().
					GetSubmission(gomock.Any(), int64(2)).
					Return(model.Submission{ID: 2, Status: model.SubmissionPending}, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrSubmissionNotApproved,
		},
		{
			name:         "active_auction_exists",
			submissionID: 1,
			endTime:      future,
			mockSetup: func() {
				mockStore.EXPECT().
					GetSubmission(gomock.Any(), int64(1)).
					Return(model.Submission{ID: 1, Status: model.SubmissionApproved}, nil)
				mockStore.EXPECT().
					CreateAuction(gomock.Any(), gomock.Any()).
					Return(model.Auction{}, auctionerrors.ErrActiveAuctionExists)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrActiveAuctionExists,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			auction, err := service.CreateAuction(ctx, tc.submissionID, tc.endTime)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.ErrorIs(t, err, tc.expectedError)
				}
			} else {
				require.NoError(t, err)
				require.NotZero(t, auction.ID)
				require.Equal(t, tc.submissionID, auction.SubmissionID)
			}
		})
	}
}

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore)
	ctx := context.Background()

	tests := []struct {
		name          string
		auctionID     int64
		wallet        string
		amount        string
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:      "valid_bid",
			auctionID: 1,
			wallet:    "0xAA",
			amount:    "0.5",
			mockSetup: func() {
				mockStore.EXPECT().
					PlaceBid(gomock.Any(), int64(1), "0xAA", "0.5").
					Return(model.Bid{ID: 1, AuctionID: 1, BidderWallet: "0xAA", Amount: "0.5", CreatedAt: time.Now().UTC()}, nil)
			},
			expectError: false,
		},
		{
			name:          "empty_wallet",
			auctionID:     1,
			wallet:        "",
			amount:        "0.5",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "amount_not_decimal",
			auctionID:     1,
			wallet:        "0xAA",
			amount:        "lots",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "zero_amount",
			auctionID:     1,
			wallet:        "0xAA",
			amount:        "0",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "negative_amount",
			auctionID:     1,
			wallet:        "0xAA",
			amount:        "-1",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:      "bid_too_low",
			auctionID: 1,
			wallet:    "0xBB",
			amount:    "0.3",
			mockSetup: func() {
				mockStore.EXPECT().
					PlaceBid(gomock.Any(), int64(1), "0xBB", "0.3").
					Return(model.Bid{}, auctionerrors.ErrBidTooLow)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "auction_not_active",
			auctionID: 2,
			wallet:    "0xAA",
			amount:    "1",
			mockSetup: func() {
				mockStore.EXPECT().
					PlaceBid(gomock.Any(), int64(2), "0xAA", "1").
					Return(model.Bid{}, auctionerrors.ErrAuctionNotActive)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrAuctionNotActive,
		},
		{
			name:      "auction_ended",
			auctionID: 3,
			wallet:    "0xAA",
			amount:    "1",
			mockSetup: func() {
				mockStore.EXPECT().
					PlaceBid(gomock.Any(), int64(3), "0xAA", "1").
					Return(model.Bid{}, auctionerrors.ErrAuctionEnded)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrAuctionEnded,
		},
		{
			name:      "high_precision_amount",
			auctionID: 1,
			wallet:    "0xCC",
			amount:    "123456789.000000000000000001",
			mockSetup: func() {
				mockStore.EXPECT().
					PlaceBid(gomock.Any(), int64(1), "0xCC", "123456789.000000000000000001").
					Return(model.Bid{ID: 2, AuctionID: 1, BidderWallet: "0xCC", Amount: "123456789.000000000000000001"}, nil)
			},
			expectError: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			bid, err := service.PlaceBid(ctx, tc.auctionID, tc.wallet, tc.amount)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.ErrorIs(t, err, tc.expectedError)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.auctionID, bid.AuctionID)
				require.Equal(t, tc.wallet, bid.BidderWallet)
				require.Equal(t, tc.amount, bid.Amount)
			}
		})
	}
}

// Tests CloseAuction and GetActiveAuction pass-throughs
func TestAuctionService_CloseAndGetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore)
	ctx := context.Background()

	t.Run("close_success", func(t *testing.T) {
		mockStore.EXPECT().
			CloseAuction(gomock.Any(), int64(1)).
			Return(model.Auction{ID: 1, Status: model.AuctionClosed}, nil)

		auction, err := service.CloseAuction(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, model.AuctionClosed, auction.Status)
	})

	t.Run("close_missing", func(t *testing.T) {
		mockStore.EXPECT().
			CloseAuction(gomock.Any(), int64(42)).
			Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)

		_, err := service.CloseAuction(ctx, 42)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
	})

	t.Run("no_active_auction_is_not_an_error", func(t *testing.T) {
		mockStore.EXPECT().
			GetActiveAuction(gomock.Any()).
			Return(nil, nil)

		active, err := service.GetActiveAuction(ctx)
		require.NoError(t, err)
		require.Nil(t, active)
	})

	t.Run("active_auction_returned", func(t *testing.T) {
		mockStore.EXPECT().
			GetActiveAuction(gomock.Any()).
			Return(&model.Auction{ID: 7, Status: model.AuctionActive, HighestBid: "0"}, nil)

		active, err := service.GetActiveAuction(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		require.Equal(t, int64(7), active.ID)
	})

	t.Run("store_error_wrapped", func(t *testing.T) {
		mockStore.EXPECT().
			GetActiveAuction(gomock.Any()).
			Return(nil, errors.New("db failure"))

		_, err := service.GetActiveAuction(ctx)
		require.Error(t, err)
	})
}
