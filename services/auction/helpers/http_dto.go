package helpers

import "github.com/shopspring/decimal"

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string          `json:"auction_id" binding:"required"`
	UserID    string          `json:"user_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	UserID    string `json:"user_id"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type CheckoutRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type CheckoutResponse struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
}

type CloseAuctionsRequest struct {
	AuctionID  string `json:"auction_id"`
	ProcessAll bool   `json:"process_all"`
}

type RegistrationResponse struct {
	RegistrationID string `json:"registration_id"`
	AuctionID      string `json:"auction_id"`
	UserID         string `json:"user_id"`
	FeePaid        string `json:"fee_paid"`
	PaymentStatus  string `json:"payment_status"`
	IsWinner       bool   `json:"is_winner"`
	DepositApplied bool   `json:"deposit_applied"`
}
