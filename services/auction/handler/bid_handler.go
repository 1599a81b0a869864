package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "art-auction/internal/models"
	"art-auction/services/auction/helpers"
	"art-auction/utils"
)

// ListBidsHandler handles GET /api/auctions/:id/bids
func (h *AuctionHandler) ListBidsHandler(c *gin.Context) {
	auctionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	bids, err := h.service.ListBids(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListBidsHandler: error listing bids", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// PlaceBidHandler handles POST /api/auctions/:id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), auctionID, req.BidderWallet, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": auctionID,
			"wallet":     req.BidderWallet,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionID,
		"wallet":     bid.BidderWallet,
		"amount":     bid.Amount,
	})
}
