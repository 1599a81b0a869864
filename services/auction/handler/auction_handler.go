package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "art-auction/internal/models"
	"art-auction/services/auction/helpers"
	"art-auction/utils"
)

// ListAuctionsHandler handles GET /api/auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error listing auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// GetActiveAuctionHandler handles GET /api/auctions/active.
// Data is null when no auction is currently active.
func (h *AuctionHandler) GetActiveAuctionHandler(c *gin.Context) {
	active, err := h.service.GetActiveAuction(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetActiveAuctionHandler: error getting active auction", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, active, "active auction retrieved successfully")
}

// CreateAuctionHandler handles POST /api/auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.CreateAuction(c.Request.Context(), req.SubmissionID, req.EndTime)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateAuctionHandler: failed to create auction", map[string]any{
			"submission_id": req.SubmissionID,
			"error":         err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":    auction.ID,
		"submission_id": auction.SubmissionID,
		"end_time":      auction.EndTime,
	})
}

// CloseAuctionHandler handles POST /api/auctions/:id/close
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	auction, err := h.service.CloseAuction(c.Request.Context(), id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CloseAuctionHandler: failed to close auction", map[string]any{
			"auction_id": id,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction closed successfully")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed successfully", map[string]any{
		"auction_id":     auction.ID,
		"highest_bid":    auction.HighestBid,
		"highest_bidder": auction.HighestBidder,
	})
}
