package helpers

import "time"

// Request DTOs; monetary amounts travel as decimal strings

type CreateSubmissionRequest struct {
	ArtistName    string `json:"artistName" binding:"required"`
	WalletAddress string `json:"walletAddress" binding:"required"`
	ArtworkURL    string `json:"artworkUrl" binding:"required"`
	Description   string `json:"description" binding:"required"`
	ReservePrice  string `json:"reservePrice" binding:"required"`
}

// UpdateSubmissionRequest is a partial update; absent fields stay unchanged
type UpdateSubmissionRequest struct {
	ArtistName    *string `json:"artistName"`
	WalletAddress *string `json:"walletAddress"`
	ArtworkURL    *string `json:"artworkUrl"`
	Description   *string `json:"description"`
	ReservePrice  *string `json:"reservePrice"`
	Status        *string `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}

type CreateAuctionRequest struct {
	SubmissionID int64     `json:"submissionId" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required"` // ISO-8601
}

type PlaceBidRequest struct {
	BidderWallet string `json:"bidderWallet" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
}
