package server

import (
	"time"

	"marketbids/internal/auth"
	handler "marketbids/services/bids/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.NegotiationServiceInterface, sessions auth.SessionStore, storeTimeout time.Duration) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(StoreTimeoutMiddleware(storeTimeout))

	bidHandler := handler.NewBidHandler(service)

	bids := router.Group("/bids")
	bids.Use(AuthMiddleware(sessions))
	{
		bids.POST("", bidHandler.PlaceBidHandler)
		bids.POST("/:bid_id/accept", bidHandler.AcceptBidHandler)
		bids.POST("/:bid_id/reject", bidHandler.RejectBidHandler)
		bids.POST("/:bid_id/counter", bidHandler.CounterOfferHandler)
		bids.POST("/:bid_id/counter/accept", bidHandler.AcceptCounterOfferHandler)
		bids.POST("/:bid_id/counter/reject", bidHandler.RejectCounterOfferHandler)

		bids.GET("/mine", bidHandler.ListMyBidsHandler)
		bids.GET("/received", bidHandler.ListReceivedBidsHandler)
		bids.GET("/filters", bidHandler.ListSellerFiltersHandler)
	}

	return router
}
