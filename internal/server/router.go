package server

import (
	bidding "auction-engine/internal/biddingService"
	closeout "auction-engine/internal/closeoutService"
	"auction-engine/internal/livestream"
	payment "auction-engine/internal/paymentService"
	registration "auction-engine/internal/registrationService"
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	biddingService *bidding.BiddingService,
	registrationService *registration.RegistrationService,
	closeoutService *closeout.CloseoutService,
	paymentService *payment.PaymentService,
	hub *livestream.Hub,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService, registrationService)
	settlementHandler := handler.NewSettlementHandler(closeoutService, paymentService)
	streamHandler := handler.NewStreamHandler(hub)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.RecordBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id/bids", biddingHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/winning", biddingHandler.GetWinningBidHandler)
		auctions.POST("/:auction_id/register", settlementHandler.InitiateRegistrationHandler)
		auctions.POST("/:auction_id/winner-payment", settlementHandler.InitiateWinnerPaymentHandler)
		auctions.POST("/close", settlementHandler.CloseAuctionsHandler)
	}

	payments := router.Group("/payments")
	{
		payments.POST("/notify", settlementHandler.PaymentNotifyHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/registrations", biddingHandler.GetRegistrationsByUserHandler)
	}

	router.GET("/ws/auctions/:auction_id", streamHandler.WatchAuctionHandler)

	return router
}
