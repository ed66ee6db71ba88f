package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrNoBids               = errors.New("no bids found for auction")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrOrderNotFound        = errors.New("order not found")
)

// business logic errors
var (
	ErrInvalidBid       = errors.New("invalid bid")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrAuctionNotActive = errors.New("auction not active")
	ErrAuctionEnded     = errors.New("auction has ended")
	ErrNotRegistered    = errors.New("user not registered for auction")
	ErrNotEligible      = errors.New("auction not eligible for transition")
)

// webhook errors
var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrUntrustedSource  = errors.New("webhook source not trusted")
)
