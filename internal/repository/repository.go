package repository

import (
	"time"

	"auction-engine/internal/models"

	"github.com/shopspring/decimal"
)

// AuctionDB defines the storage interface for the auction marketplace.
// Every mutating method that backs a webhook or sweep branch is a guarded
// conditional transition: applying it twice has the same effect as once.
type AuctionDB interface {
	// Auctions
	GetAuction(auctionID string) (models.Auction, error)
	PutAuction(a models.Auction) error
	ListEndedAuctions(now time.Time) ([]models.Auction, error)
	ListStartableAuctions(now time.Time) ([]models.Auction, error)
	MarkAuctionActive(auctionID string) (bool, error)
	MarkAuctionSold(auctionID, winnerID string, winningBid decimal.Decimal) (bool, error)
	MarkAuctionUnsold(auctionID string) (bool, error)
	CompleteAuctionSale(auctionID string) (bool, error)

	// Bids
	AppendBid(bid models.Bid) error
	GetBidsByAuction(auctionID string) ([]models.Bid, error)
	GetWinningBid(auctionID string) (models.Bid, error)

	// Registrations
	UpsertRegistration(reg models.Registration) (models.Registration, error)
	GetRegistration(auctionID, userID string) (models.Registration, error)
	GetRegistrationByID(registrationID string) (models.Registration, error)
	GetRegistrationsByUser(userID string) ([]models.Registration, error)
	GetRegistrationsByAuction(auctionID string) ([]models.Registration, error)
	ConfirmRegistration(registrationID string) (bool, error)
	DeletePendingRegistration(registrationID string) (bool, error)
	MarkRegistrationWinner(auctionID, userID string) error
	MarkDepositApplied(auctionID, userID string) error

	// Orders
	CreateOrderIfAbsent(order models.Order) (models.Order, bool, error)
	GetOrder(orderID string) (models.Order, error)
	GetOrderByAuction(auctionID string) (models.Order, error)
	SetOrderStatus(orderID string, from, to models.OrderStatus) (bool, error)
}
