package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	AuctionDraft     AuctionStatus = "draft"
	AuctionApproved  AuctionStatus = "approved"
	AuctionActive    AuctionStatus = "active"
	AuctionSold      AuctionStatus = "sold"
	AuctionUnsold    AuctionStatus = "unsold"
	AuctionCompleted AuctionStatus = "completed"
)

// PaymentStatus is the state of a registration's deposit payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// OrderStatus is the fulfillment state of a post-auction order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCancelled  OrderStatus = "cancelled"
)

// User represents a participant in the marketplace
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Auction represents a time-boxed sale of one product resolved by bidding.
// Status and winner fields are mutated only by the close-out processor;
// CurrentBid/BidCount are denormalized by bid placement.
type Auction struct {
	AuctionID       string          `json:"auction_id"`
	ProductID       string          `json:"product_id"`
	VendorID        string          `json:"vendor_id"`
	Title           string          `json:"title"`
	Status          AuctionStatus   `json:"status"`
	RegistrationFee decimal.Decimal `json:"registration_fee"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	CurrentBid      decimal.Decimal `json:"current_bid"`
	BidCount        int             `json:"bid_count"`
	WinnerID        string          `json:"winner_id,omitempty"`
	WinningBid      decimal.Decimal `json:"winning_bid"`
}

// Bid is an immutable fact: one user's offer on one auction.
// Bids are never updated or deleted.
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// Registration tracks a user's entry-fee deposit for one auction.
// At most one row exists per (auction, user) pair.
type Registration struct {
	RegistrationID string          `json:"registration_id"`
	AuctionID      string          `json:"auction_id"`
	UserID         string          `json:"user_id"`
	FeePaid        decimal.Decimal `json:"fee_paid"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	IsWinner       bool            `json:"is_winner"`
	DepositApplied bool            `json:"deposit_applied"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Order is the fulfillment record created once per won auction.
type Order struct {
	OrderID   string          `json:"order_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	ProductID string          `json:"product_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
