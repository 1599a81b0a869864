package server

import (
	"github.com/gin-gonic/gin"

	auction "art-auction/internal/auctionService"
	handler "art-auction/services/auction/handler"
	"art-auction/services/auction/helpers"
)

// SetupRouter configures all Gin routes for the application. Admin routes
// (approval, auction open/close) sit behind the bearer-token middleware.
func SetupRouter(auctionService *auction.AuctionService, adminToken string) *gin.Engine {
	helpers.RegisterJSONTagNames()

	router := gin.New() // no default middleware, logging and recovery are wired explicitly

	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware)

	auctionHandler := handler.NewAuctionHandler(auctionService)
	adminOnly := AdminAuthMiddleware(adminToken)

	api := router.Group("/api")

	submissions := api.Group("/submissions")
	{
		submissions.GET("", auctionHandler.ListSubmissionsHandler)
		submissions.POST("", auctionHandler.CreateSubmissionHandler)
		submissions.PATCH("/:id", adminOnly, auctionHandler.UpdateSubmissionHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/active", auctionHandler.GetActiveAuctionHandler)
		auctions.POST("", adminOnly, auctionHandler.CreateAuctionHandler)
		auctions.POST("/:id/close", adminOnly, auctionHandler.CloseAuctionHandler)
		auctions.GET("/:id/bids", auctionHandler.ListBidsHandler)
		auctions.POST("/:id/bids", auctionHandler.PlaceBidHandler)
	}

	return router
}

