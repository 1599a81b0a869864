package auction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"art-auction/internal/auctionerrors"
	"art-auction/internal/models"
	"art-auction/internal/repository"
)

// AuctionService defines the business logic for the sequential art auction:
// submission review, the single-auction lifecycle and bid placement
type AuctionService struct {
	store repository.AuctionStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore) *AuctionService {
	return &AuctionService{
		store: store,
	}
}

// ListSubmissions returns all submissions, newest first
func (s *AuctionService) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	subs, err := s.store.ListSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list submissions: %w", err)
	}
	return subs, nil
}

// CreateSubmission validates and records an artist's submission. The status is
// always pending; approval is a separate admin action.
func (s *AuctionService) CreateSubmission(ctx context.Context, artistName, walletAddress, artworkURL, description, reservePrice string) (models.Submission, error) {
	if artistName == "" || walletAddress == "" || artworkURL == "" || description == "" {
		return models.Submission{}, fmt.Errorf("service: %w - missing submission fields", auctionerrors.ErrInvalidInput)
	}
	if err := validateReservePrice(reservePrice); err != nil {
		return models.Submission{}, err
	}

	sub, err := s.store.CreateSubmission(ctx, models.Submission{
		ArtistName:    artistName,
		WalletAddress: walletAddress,
		ArtworkURL:    artworkURL,
		Description:   description,
		ReservePrice:  reservePrice,
		Status:        models.SubmissionPending,
	})
	if err != nil {
		return models.Submission{}, fmt.Errorf("service: failed to create submission for %s: %w", artistName, err)
	}
	return sub, nil
}

// UpdateSubmission applies a partial admin update to a submission
func (s *AuctionService) UpdateSubmission(ctx context.Context, id int64, updates models.SubmissionUpdate) (models.Submission, error) {
	if updates.Status != nil && !models.ValidSubmissionStatus(*updates.Status) {
		return models.Submission{}, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidInput, *updates.Status)
	}
	if updates.ReservePrice != nil {
		if err := validateReservePrice(*updates.ReservePrice); err != nil {
			return models.Submission{}, err
		}
	}

	sub, err := s.store.UpdateSubmission(ctx, id, updates)
	if err != nil {
		return models.Submission{}, fmt.Errorf("service: failed to update submission %d: %w", id, err)
	}
	return sub, nil
}

// ListAuctions returns all auctions, newest first
func (s *AuctionService) ListAuctions(ctx context.Context) ([]models.Auction, error) {
	auctions, err := s.store.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// GetActiveAuction returns the auction currently accepting bids, or nil when none
func (s *AuctionService) GetActiveAuction(ctx context.Context) (*models.Auction, error) {
	active, err := s.store.GetActiveAuction(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get active auction: %w", err)
	}
	return active, nil
}

// CreateAuction opens a timed auction on an approved submission. Only one
// auction may be active at a time; the store rejects a second.
func (s *AuctionService) CreateAuction(ctx context.Context, submissionID int64, endTime time.Time) (models.Auction, error) {
	if endTime.Before(time.Now().UTC()) {
		return models.Auction{}, fmt.Errorf("service: %w - end time is in the past", auctionerrors.ErrInvalidInput)
	}

	sub, err := s.store.GetSubmission(ctx, submissionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to load submission %d: %w", submissionID, err)
	}
	if sub.Status != models.SubmissionApproved {
		return models.Auction{}, fmt.Errorf("service: %w - submission %d is %s", auctionerrors.ErrSubmissionNotApproved, submissionID, sub.Status)
	}

	auction, err := s.store.CreateAuction(ctx, models.Auction{
		SubmissionID: submissionID,
		EndTime:      endTime.UTC(),
		HighestBid:   "0",
		Status:       models.AuctionActive,
	})
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction on submission %d: %w", submissionID, err)
	}
	return auction, nil
}

// CloseAuction transitions an auction to closed; closing twice succeeds
// idempotently. The winner is inferred from highestBidder/highestBid at close.
func (s *AuctionService) CloseAuction(ctx context.Context, id int64) (models.Auction, error) {
	auction, err := s.store.CloseAuction(ctx, id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to close auction %d: %w", id, err)
	}
	return auction, nil
}

// ListBids returns all bids for an auction, newest first
func (s *AuctionService) ListBids(ctx context.Context, auctionID int64) ([]models.Bid, error) {
	bids, err := s.store.ListBids(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for auction %d: %w", auctionID, err)
	}
	return bids, nil
}

// PlaceBid validates and records a wallet's bid on an auction. The store
// enforces active status, expiry and bid monotonicity atomically.
func (s *AuctionService) PlaceBid(ctx context.Context, auctionID int64, bidderWallet, amount string) (models.Bid, error) {
	if bidderWallet == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing bidder wallet", auctionerrors.ErrInvalidInput)
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w - amount %q is not a decimal", auctionerrors.ErrInvalidInput, amount)
	}
	if !parsed.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	bid, err := s.store.PlaceBid(ctx, auctionID, bidderWallet, amount)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on auction %d by %s: %w", auctionID, bidderWallet, err)
	}
	return bid, nil
}

// validateReservePrice checks that a reserve price is a non-negative decimal
func validateReservePrice(price string) error {
	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("service: %w - reserve price %q is not a decimal", auctionerrors.ErrInvalidInput, price)
	}
	if parsed.IsNegative() {
		return fmt.Errorf("service: %w - negative reserve price", auctionerrors.ErrInvalidInput)
	}
	return nil
}
