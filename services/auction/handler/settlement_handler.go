package handler

import (
	"errors"
	"fmt"
	"net/http"

	"auction-engine/internal/auctionerrors"
	closeout "auction-engine/internal/closeoutService"
	payment "auction-engine/internal/paymentService"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type CloseoutServiceInterface interface {
	CloseAuction(auctionID string) closeout.CloseResult
	SweepExpired() []closeout.CloseResult
}

type PaymentServiceInterface interface {
	InitiateRegistrationCheckout(auctionID, userID string) (payment.CheckoutPayload, error)
	InitiateWinnerCheckout(auctionID, userID string) (payment.CheckoutPayload, error)
	HandleWebhook(params map[string]string, remoteAddr string) error
}

type SettlementHandler struct {
	closeouts CloseoutServiceInterface
	payments  PaymentServiceInterface
}

func NewSettlementHandler(closeouts CloseoutServiceInterface, payments PaymentServiceInterface) *SettlementHandler {
	return &SettlementHandler{closeouts: closeouts, payments: payments}
}

// CloseAuctionsHandler handles POST /auctions/close with either a single
// auction id or process_all for a sweep over all expired auctions.
func (h *SettlementHandler) CloseAuctionsHandler(c *gin.Context) {
	var req helpers.CloseAuctionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CloseAuctionsHandler", err)
		return
	}

	var results []closeout.CloseResult
	switch {
	case req.ProcessAll:
		results = h.closeouts.SweepExpired()
	case req.AuctionID != "":
		results = []closeout.CloseResult{h.closeouts.CloseAuction(req.AuctionID)}
	default:
		err := errors.New("either auction_id or process_all is required")
		utils.JSONError(c, http.StatusBadRequest, err, "invalid close request")
		return
	}

	utils.JSONResponse(c, http.StatusOK, results, "close-out processed")
	helpers.LogSuccess("CloseAuctionsHandler", "close-out processed", map[string]any{
		"count": len(results), "process_all": req.ProcessAll,
	})
}

// InitiateRegistrationHandler handles POST /auctions/:auction_id/register
func (h *SettlementHandler) InitiateRegistrationHandler(c *gin.Context) {
	h.initiateCheckout(c, "InitiateRegistrationHandler", h.payments.InitiateRegistrationCheckout)
}

// InitiateWinnerPaymentHandler handles POST /auctions/:auction_id/winner-payment
func (h *SettlementHandler) InitiateWinnerPaymentHandler(c *gin.Context) {
	h.initiateCheckout(c, "InitiateWinnerPaymentHandler", h.payments.InitiateWinnerCheckout)
}

func (h *SettlementHandler) initiateCheckout(c *gin.Context, handlerName string,
	initiate func(auctionID, userID string) (payment.CheckoutPayload, error)) {

	auctionID := c.Param("auction_id")
	var req helpers.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	payload, err := initiate(auctionID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": checkout initiation failed", map[string]any{
			"auction_id": auctionID, "user_id": req.UserID, "error": err.Error(),
		})
		return
	}

	resp := helpers.CheckoutResponse{URL: payload.URL, Fields: payload.Fields}
	utils.JSONResponse(c, http.StatusOK, resp, "checkout initiated")
	helpers.LogSuccess(handlerName, "checkout initiated", map[string]any{
		"auction_id": auctionID, "user_id": req.UserID,
	})
}

// PaymentNotifyHandler handles POST /payments/notify, the gateway's
// form-encoded webhook. Responses follow the gateway contract: 200 "OK" once
// verification and routing complete (including intentional no-ops), 400 on a
// verification failure, 500 on a store failure so the gateway redelivers.
func (h *SettlementHandler) PaymentNotifyHandler(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	params := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	err := h.payments.HandleWebhook(params, c.ClientIP())
	switch {
	case err == nil:
		c.String(http.StatusOK, "OK")
	case errors.Is(err, auctionerrors.ErrInvalidSignature),
		errors.Is(err, auctionerrors.ErrUntrustedSource):
		c.String(http.StatusBadRequest, "verification failed")
	default:
		utils.Error("PaymentNotifyHandler: webhook processing failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "internal error")
	}
}
