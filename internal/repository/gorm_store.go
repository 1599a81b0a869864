package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"art-auction/internal/auctionerrors"
	model "art-auction/internal/models"
)

// GormStore is the relational implementation of AuctionStore
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm handle in an AuctionStore
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Open connects to the configured database, runs migrations and returns the handle.
// Supported drivers: "mysql" for deployments, "sqlite" (pure Go) for dev and tests.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent), // request logging is handled by the HTTP layer
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err := db.AutoMigrate(&model.Submission{}, &model.Auction{}, &model.Bid{}); err != nil {
		return nil, errors.Wrap(err, "migrate schema")
	}
	return db, nil
}

// ListSubmissions returns all submissions, newest first
func (s *GormStore) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	var subs []model.Submission
	err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&subs).Error
	if err != nil {
		return nil, errors.Wrap(err, "list submissions")
	}
	return subs, nil
}

// GetSubmission returns one submission by id
func (s *GormStore) GetSubmission(ctx context.Context, id int64) (model.Submission, error) {
	var sub model.Submission
	err := s.db.WithContext(ctx).First(&sub, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Submission{}, fmt.Errorf("get submission %d: %w", id, auctionerrors.ErrSubmissionNotFound)
	}
	if err != nil {
		return model.Submission{}, errors.Wrapf(err, "get submission %d", id)
	}
	return sub, nil
}

// CreateSubmission inserts a new submission and returns it with its assigned id
func (s *GormStore) CreateSubmission(ctx context.Context, sub model.Submission) (model.Submission, error) {
	if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
		return model.Submission{}, errors.Wrap(err, "create submission")
	}
	return sub, nil
}

// UpdateSubmission applies a partial update; nil fields are left untouched
func (s *GormStore) UpdateSubmission(ctx context.Context, id int64, updates model.SubmissionUpdate) (model.Submission, error) {
	var sub model.Submission
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("update submission %d: %w", id, auctionerrors.ErrSubmissionNotFound)
			}
			return errors.Wrapf(err, "load submission %d", id)
		}

		fields := map[string]any{}
		if updates.ArtistName != nil {
			fields["artist_name"] = *updates.ArtistName
		}
		if updates.WalletAddress != nil {
			fields["wallet_address"] = *updates.WalletAddress
		}
		if updates.ArtworkURL != nil {
			fields["artwork_url"] = *updates.ArtworkURL
		}
		if updates.Description != nil {
			fields["description"] = *updates.Description
		}
		if updates.ReservePrice != nil {
			fields["reserve_price"] = *updates.ReservePrice
		}
		if updates.Status != nil {
			fields["status"] = *updates.Status
		}
		if len(fields) == 0 {
			return nil
		}

		if err := tx.Model(&sub).Updates(fields).Error; err != nil {
			return errors.Wrapf(err, "update submission %d", id)
		}
		return tx.First(&sub, id).Error
	})
	if err != nil {
		return model.Submission{}, err
	}
	return sub, nil
}

// ListAuctions returns all auctions, newest first
func (s *GormStore) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	var auctions []model.Auction
	err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&auctions).Error
	if err != nil {
		return nil, errors.Wrap(err, "list auctions")
	}
	return auctions, nil
}

// GetAuction returns one auction by id
func (s *GormStore) GetAuction(ctx context.Context, id int64) (model.Auction, error) {
	var auction model.Auction
	err := s.db.WithContext(ctx).First(&auction, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Auction{}, fmt.Errorf("get auction %d: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, errors.Wrapf(err, "get auction %d", id)
	}
	return auction, nil
}

// GetActiveAuction returns the auction currently accepting bids, or nil when none is active
func (s *GormStore) GetActiveAuction(ctx context.Context) (*model.Auction, error) {
	var auctions []model.Auction
	err := s.db.WithContext(ctx).
		Where("status = ?", model.AuctionActive).
		Order("created_at DESC").Order("id DESC").
		Limit(1).
		Find(&auctions).Error
	if err != nil {
		return nil, errors.Wrap(err, "get active auction")
	}
	if len(auctions) == 0 {
		return nil, nil
	}
	return &auctions[0], nil
}

// CreateAuction opens a new auction. The insert runs in a transaction that
// fails with ErrActiveAuctionExists while another auction is still active.
func (s *GormStore) CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error) {
	if auction.HighestBid == "" {
		auction.HighestBid = "0"
	}
	if auction.Status == "" {
		auction.Status = model.AuctionActive
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&model.Auction{}).
			Where("status = ?", model.AuctionActive).
			Count(&active).Error; err != nil {
			return errors.Wrap(err, "count active auctions")
		}
		if active > 0 {
			return fmt.Errorf("create auction: %w", auctionerrors.ErrActiveAuctionExists)
		}
		if err := tx.Create(&auction).Error; err != nil {
			return errors.Wrap(err, "create auction")
		}
		return nil
	})
	if err != nil {
		return model.Auction{}, err
	}
	return auction, nil
}

// CloseAuction transitions an auction to closed. Closing an already closed
// auction is a no-op and returns the auction unchanged.
func (s *GormStore) CloseAuction(ctx context.Context, id int64) (model.Auction, error) {
	var auction model.Auction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&auction, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("close auction %d: %w", id, auctionerrors.ErrAuctionNotFound)
			}
			return errors.Wrapf(err, "load auction %d", id)
		}
		if auction.Status == model.AuctionClosed {
			return nil
		}
		if err := tx.Model(&auction).Update("status", model.AuctionClosed).Error; err != nil {
			return errors.Wrapf(err, "close auction %d", id)
		}
		auction.Status = model.AuctionClosed
		return nil
	})
	if err != nil {
		return model.Auction{}, err
	}
	return auction, nil
}

// CloseExpired closes every active auction whose end time has passed and
// returns the number of auctions closed
func (s *GormStore) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Auction{}).
		Where("status = ? AND end_time <= ?", model.AuctionActive, now).
		Update("status", model.AuctionClosed)
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "close expired auctions")
	}
	return res.RowsAffected, nil
}

// ListBids returns all bids for an auction, newest first
func (s *GormStore) ListBids(ctx context.Context, auctionID int64) ([]model.Bid, error) {
	var bids []model.Bid
	err := s.db.WithContext(ctx).
		Where("auction_id = ?", auctionID).
		Order("created_at DESC").Order("id DESC").
		Find(&bids).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list bids for auction %d", auctionID)
	}
	return bids, nil
}

// PlaceBid records a bid and advances the auction's highest bid in a single
// transaction. The auction update is a compare-and-swap keyed on the highest
// bid read at the start of the transaction, so of two concurrent bidders only
// one can win the update and no bid is silently dropped.
func (s *GormStore) PlaceBid(ctx context.Context, auctionID int64, bidderWallet, amount string) (model.Bid, error) {
	bid := model.Bid{
		AuctionID:    auctionID,
		BidderWallet: bidderWallet,
		Amount:       amount,
	}

	// Lazy expiry: an auction past its end time stops accepting bids and is
	// closed on first contact. The close must commit, so it cannot share a
	// transaction with the rejection error.
	expired := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var auction model.Auction
		if err := tx.First(&auction, auctionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("place bid on auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
			}
			return errors.Wrapf(err, "load auction %d", auctionID)
		}
		if auction.Status != model.AuctionActive {
			return fmt.Errorf("place bid on auction %d: %w", auctionID, auctionerrors.ErrAuctionNotActive)
		}

		if time.Now().UTC().After(auction.EndTime) {
			if err := tx.Model(&auction).Update("status", model.AuctionClosed).Error; err != nil {
				return errors.Wrapf(err, "close expired auction %d", auctionID)
			}
			expired = true
			return nil
		}

		offered, err := decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("place bid on auction %d: %w: %q is not a decimal", auctionID, auctionerrors.ErrInvalidInput, amount)
		}
		current, err := decimal.NewFromString(auction.HighestBid)
		if err != nil {
			return errors.Wrapf(err, "auction %d has malformed highest bid %q", auctionID, auction.HighestBid)
		}
		if offered.LessThanOrEqual(current) {
			return fmt.Errorf("place bid on auction %d: %w: current highest bid is %s", auctionID, auctionerrors.ErrBidTooLow, auction.HighestBid)
		}

		res := tx.Model(&model.Auction{}).
			Where("id = ? AND status = ? AND highest_bid = ?", auctionID, model.AuctionActive, auction.HighestBid).
			Updates(map[string]any{
				"highest_bid":    amount,
				"highest_bidder": bidderWallet,
			})
		if res.Error != nil {
			return errors.Wrapf(res.Error, "update highest bid on auction %d", auctionID)
		}
		if res.RowsAffected == 0 {
			// A concurrent bidder moved the highest bid first.
			return fmt.Errorf("place bid on auction %d: %w", auctionID, auctionerrors.ErrConcurrentBid)
		}

		if err := tx.Create(&bid).Error; err != nil {
			return errors.Wrapf(err, "record bid on auction %d", auctionID)
		}
		return nil
	})
	if err != nil {
		return model.Bid{}, err
	}
	if expired {
		return model.Bid{}, fmt.Errorf("place bid on auction %d: %w", auctionID, auctionerrors.ErrAuctionEnded)
	}
	return bid, nil
}
