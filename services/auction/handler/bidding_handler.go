package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BiddingServiceInterface interface {
	PlaceBid(auctionID, userID string, amount decimal.Decimal) (model.Bid, error)
	GetBidsForAuction(auctionID string) ([]model.Bid, error)
	GetWinningBid(auctionID string) (model.Bid, error)
}

type RegistrationServiceInterface interface {
	GetRegistrationsForUser(userID string) ([]model.Registration, error)
}

type BiddingHandler struct {
	service       BiddingServiceInterface
	registrations RegistrationServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface, registrations RegistrationServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service, registrations: registrations}
}

func bidToResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		UserID:    bid.UserID,
		Amount:    bid.Amount.String(),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// RecordBidHandler handles POST /bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.AuctionID, req.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RecordBidHandler: failed to record bid", map[string]any{
			"handler":    "RecordBidHandler",
			"auction_id": req.AuctionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bidToResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"user_id":    req.UserID,
		"amount":     bid.Amount.String(),
	})
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *BiddingHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetBidsForAuction(auctionID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByAuctionHandler: error retrieving bids", map[string]any{
			"auction_id": auctionID, "error": err.Error(),
		})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, bidToResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetWinningBidHandler handles GET /auctions/:auction_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bid, err := h.service.GetWinningBid(auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"auction_id": auctionID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{
			"auction_id": auctionID, "error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidToResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"user_id":    bid.UserID,
		"amount":     bid.Amount.String(),
	})
}

// GetRegistrationsByUserHandler handles GET /users/:user_id/registrations
func (h *BiddingHandler) GetRegistrationsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	regs, err := h.registrations.GetRegistrationsForUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetRegistrationsByUserHandler: error retrieving registrations", map[string]any{
			"user_id": userID, "error": err.Error(),
		})
		return
	}

	resp := make([]helpers.RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		resp = append(resp, helpers.RegistrationResponse{
			RegistrationID: reg.RegistrationID,
			AuctionID:      reg.AuctionID,
			UserID:         reg.UserID,
			FeePaid:        reg.FeePaid.String(),
			PaymentStatus:  string(reg.PaymentStatus),
			IsWinner:       reg.IsWinner,
			DepositApplied: reg.DepositApplied,
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "registrations retrieved successfully")
	helpers.LogSuccess("GetRegistrationsByUserHandler", "registrations retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}
