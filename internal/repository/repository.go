package repository

import (
	"context"
	"time"

	model "art-auction/internal/models"
)

// AuctionStore defines the persistent storage interface for the auction system.
// Listings return rows ordered by creation time descending.
type AuctionStore interface {
	// Submissions
	ListSubmissions(ctx context.Context) ([]model.Submission, error)
	GetSubmission(ctx context.Context, id int64) (model.Submission, error)
	CreateSubmission(ctx context.Context, sub model.Submission) (model.Submission, error)
	UpdateSubmission(ctx context.Context, id int64, updates model.SubmissionUpdate) (model.Submission, error)

	// Auctions
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	GetAuction(ctx context.Context, id int64) (model.Auction, error)
	GetActiveAuction(ctx context.Context) (*model.Auction, error)
	CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error)
	CloseAuction(ctx context.Context, id int64) (model.Auction, error)
	CloseExpired(ctx context.Context, now time.Time) (int64, error)

	// Bids
	ListBids(ctx context.Context, auctionID int64) ([]model.Bid, error)
	PlaceBid(ctx context.Context, auctionID int64, bidderWallet, amount string) (model.Bid, error)
}
