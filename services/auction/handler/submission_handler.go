package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "art-auction/internal/models"
	"art-auction/services/auction/helpers"
	"art-auction/utils"
)

// ListSubmissionsHandler handles GET /api/submissions
func (h *AuctionHandler) ListSubmissionsHandler(c *gin.Context) {
	subs, err := h.service.ListSubmissions(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListSubmissionsHandler: error listing submissions", map[string]any{"error": err.Error()})
		return
	}

	if subs == nil {
		subs = []model.Submission{}
	}

	utils.JSONResponse(c, http.StatusOK, subs, "submissions retrieved successfully")
}

// CreateSubmissionHandler handles POST /api/submissions
func (h *AuctionHandler) CreateSubmissionHandler(c *gin.Context) {
	var req helpers.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateSubmissionHandler", err)
		return
	}

	sub, err := h.service.CreateSubmission(c.Request.Context(), req.ArtistName, req.WalletAddress, req.ArtworkURL, req.Description, req.ReservePrice)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateSubmissionHandler: failed to create submission", map[string]any{
			"artist": req.ArtistName,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, sub, "submission created successfully")
	helpers.LogSuccess("CreateSubmissionHandler", "submission created successfully", map[string]any{
		"submission_id": sub.ID,
		"artist":        sub.ArtistName,
	})
}

// UpdateSubmissionHandler handles PATCH /api/submissions/:id
func (h *AuctionHandler) UpdateSubmissionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req helpers.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateSubmissionHandler", err)
		return
	}

	sub, err := h.service.UpdateSubmission(c.Request.Context(), id, model.SubmissionUpdate{
		ArtistName:    req.ArtistName,
		WalletAddress: req.WalletAddress,
		ArtworkURL:    req.ArtworkURL,
		Description:   req.Description,
		ReservePrice:  req.ReservePrice,
		Status:        req.Status,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateSubmissionHandler: failed to update submission", map[string]any{
			"submission_id": id,
			"error":         err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, sub, "submission updated successfully")
	helpers.LogSuccess("UpdateSubmissionHandler", "submission updated successfully", map[string]any{
		"submission_id": sub.ID,
		"status":        sub.Status,
	})
}
