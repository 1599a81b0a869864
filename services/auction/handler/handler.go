package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	model "art-auction/internal/models"
	"art-auction/utils"
)

// AuctionServiceInterface is the domain surface the HTTP layer depends on
type AuctionServiceInterface interface {
	ListSubmissions(ctx context.Context) ([]model.Submission, error)
	CreateSubmission(ctx context.Context, artistName, walletAddress, artworkURL, description, reservePrice string) (model.Submission, error)
	UpdateSubmission(ctx context.Context, id int64, updates model.SubmissionUpdate) (model.Submission, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	GetActiveAuction(ctx context.Context) (*model.Auction, error)
	CreateAuction(ctx context.Context, submissionID int64, endTime time.Time) (model.Auction, error)
	CloseAuction(ctx context.Context, id int64) (model.Auction, error)
	ListBids(ctx context.Context, auctionID int64) ([]model.Bid, error)
	PlaceBid(ctx context.Context, auctionID int64, bidderWallet, amount string) (model.Bid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// parseID reads a positive integer path parameter, replying 400 on garbage
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid %s %q", name, raw), "invalid id")
		return 0, false
	}
	return id, true
}
