package models

import "time"

// Submission statuses
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// Auction statuses
const (
	AuctionActive = "active"
	AuctionClosed = "closed"
)

// Submission represents an artist's proposed artwork awaiting admin approval
type Submission struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ArtistName    string    `json:"artistName" gorm:"not null"`
	WalletAddress string    `json:"walletAddress" gorm:"not null"`
	ArtworkURL    string    `json:"artworkUrl" gorm:"not null"`
	Description   string    `json:"description" gorm:"not null"`
	ReservePrice  string    `json:"reservePrice" gorm:"not null"` // decimal-as-text
	Status        string    `json:"status" gorm:"not null;default:pending"`
	CreatedAt     time.Time `json:"createdAt" gorm:"index"` // listings scan newest first
}

// Auction represents a timed auction opened on an approved submission.
// At most one auction has status "active" at any time.
type Auction struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SubmissionID  int64     `json:"submissionId" gorm:"not null;index"`
	EndTime       time.Time `json:"endTime" gorm:"not null"`
	HighestBid    string    `json:"highestBid" gorm:"not null;default:0"` // decimal-as-text
	HighestBidder *string   `json:"highestBidder"`
	Status        string    `json:"status" gorm:"not null;default:active;index"`
	CreatedAt     time.Time `json:"createdAt" gorm:"index"` // listings scan newest first
}

// Bid represents a wallet's bid on an auction; immutable once created
type Bid struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AuctionID    int64     `json:"auctionId" gorm:"not null;index"`
	BidderWallet string    `json:"bidderWallet" gorm:"not null"`
	Amount       string    `json:"amount" gorm:"not null"` // decimal-as-text
	CreatedAt    time.Time `json:"createdAt" gorm:"index"` // listings scan newest first
}

// SubmissionUpdate carries a partial admin update; nil fields are left unchanged
type SubmissionUpdate struct {
	ArtistName    *string
	WalletAddress *string
	ArtworkURL    *string
	Description   *string
	ReservePrice  *string
	Status        *string
}

// ValidSubmissionStatus reports whether s is a recognized submission status
func ValidSubmissionStatus(s string) bool {
	return s == SubmissionPending || s == SubmissionApproved || s == SubmissionRejected
}
