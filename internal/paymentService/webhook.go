package payment

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/utils"
)

// HandleWebhook reconciles one gateway callback. The hard gates run in order:
// signature verification, then source validation, then routing by purpose tag.
// A request failing a gate returns the matching sentinel and mutates nothing.
// Unknown or already-applied references are successful no-ops; only store
// failures return non-sentinel errors (surfaced as 5xx so the gateway's
// at-least-once redelivery recovers the operation).
func (s *PaymentService) HandleWebhook(params map[string]string, remoteAddr string) error {
	if !VerifySignature(params, s.cfg.Passphrase) {
		utils.Warn("webhook rejected: bad signature", map[string]any{
			"remote_addr": remoteAddr, "reference": params[FieldReference],
		})
		return auctionerrors.ErrInvalidSignature
	}

	if err := s.validateSource(remoteAddr); err != nil {
		utils.Warn("webhook rejected: untrusted source", map[string]any{"remote_addr": remoteAddr})
		return err
	}

	status := params[FieldPaymentStatus]
	reference := params[FieldReference]
	purpose := params[FieldPurpose]

	utils.Info("webhook received", map[string]any{
		"payment_status": status, "reference": reference, "purpose": purpose,
		"gateway_txn_id": params[FieldGatewayTxnID],
	})

	switch {
	case purpose == PurposeRegistration:
		return s.reconcileRegistration(reference, status, params[FieldAmountGross])
	case purpose == PurposeWinnerPayment:
		return s.reconcileWinnerPayment(reference, status)
	case strings.HasPrefix(purpose, OrderTagPrefix):
		return s.reconcileOrder(strings.TrimPrefix(purpose, OrderTagPrefix), status)
	default:
		// intentionally ignored events still get a 200 so the gateway
		// does not retry them forever
		utils.Info("webhook ignored: unknown purpose", map[string]any{"purpose": purpose})
		return nil
	}
}

// validateSource checks the caller address against the trusted networks.
// Bypassed in sandbox mode or when no networks are configured.
func (s *PaymentService) validateSource(remoteAddr string) error {
	if s.cfg.Sandbox || len(s.cfg.TrustedCIDRs) == 0 {
		return nil
	}

	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return auctionerrors.ErrUntrustedSource
	}
	for _, cidr := range s.cfg.TrustedCIDRs {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			continue
		}
		if network.Contains(ip) {
			return nil
		}
	}
	return auctionerrors.ErrUntrustedSource
}

// reconcileRegistration applies the entry-fee outcome: COMPLETE confirms the
// pending registration, CANCELLED/FAILED deletes it only while still pending.
func (s *PaymentService) reconcileRegistration(registrationID, status, amountGross string) error {
	switch status {
	case StatusComplete:
		applied, err := s.repo.ConfirmRegistration(registrationID)
		if errors.Is(err, auctionerrors.ErrRegistrationNotFound) {
			utils.Info("registration webhook for unknown reference, ignored", map[string]any{
				"registration_id": registrationID,
			})
			return nil
		}
		if err != nil {
			return fmt.Errorf("confirm registration %s: %w", registrationID, err)
		}
		if !applied {
			// duplicate delivery
			return nil
		}

		reg, err := s.repo.GetRegistrationByID(registrationID)
		if err == nil {
			if amountGross != "" && amountGross != reg.FeePaid.StringFixed(2) {
				utils.Warn("registration paid amount differs from fee", map[string]any{
					"registration_id": registrationID, "expected": reg.FeePaid.StringFixed(2),
					"received": amountGross,
				})
			}
			if s.notifier != nil {
				s.notifier.NotifyRegistrationConfirmed(reg.AuctionID, reg.UserID)
			}
		}
		return nil

	case StatusCancelled, StatusFailed:
		deleted, err := s.repo.DeletePendingRegistration(registrationID)
		if err != nil {
			return fmt.Errorf("cancel registration %s: %w", registrationID, err)
		}
		if !deleted {
			// already paid or already gone; a paid row is never deleted
			utils.Info("registration cancel had nothing to do", map[string]any{
				"registration_id": registrationID,
			})
		}
		return nil

	default:
		utils.Info("registration webhook with unhandled status, ignored", map[string]any{
			"registration_id": registrationID, "payment_status": status,
		})
		return nil
	}
}

// reconcileWinnerPayment settles a won auction: sold -> completed, deposit
// marked applied, exactly one order created. Every step is a guarded
// transition so a redelivery after a partial failure resumes cleanly.
func (s *PaymentService) reconcileWinnerPayment(auctionID, status string) error {
	if status != StatusComplete {
		utils.Info("winner payment webhook without COMPLETE status, ignored", map[string]any{
			"auction_id": auctionID, "payment_status": status,
		})
		return nil
	}

	auction, err := s.repo.GetAuction(auctionID)
	if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
		utils.Info("winner payment webhook for unknown auction, ignored", map[string]any{
			"auction_id": auctionID,
		})
		return nil
	}
	if err != nil {
		return fmt.Errorf("load auction %s: %w", auctionID, err)
	}
	if auction.Status != models.AuctionSold && auction.Status != models.AuctionCompleted {
		utils.Info("winner payment webhook for auction not awaiting settlement, ignored", map[string]any{
			"auction_id": auctionID, "status": string(auction.Status),
		})
		return nil
	}

	if _, err := s.repo.CompleteAuctionSale(auctionID); err != nil {
		return fmt.Errorf("complete auction %s: %w", auctionID, err)
	}

	if err := s.repo.MarkDepositApplied(auctionID, auction.WinnerID); err != nil {
		if !errors.Is(err, auctionerrors.ErrRegistrationNotFound) {
			return fmt.Errorf("mark deposit applied for auction %s: %w", auctionID, err)
		}
		utils.Warn("winner registration missing while applying deposit", map[string]any{
			"auction_id": auctionID, "winner_id": auction.WinnerID,
		})
	}

	order := models.Order{
		OrderID:   utils.GenerateID(),
		AuctionID: auctionID,
		UserID:    auction.WinnerID,
		ProductID: auction.ProductID,
		Amount:    auction.WinningBid,
		Status:    models.OrderProcessing,
		CreatedAt: s.now(),
	}
	stored, created, err := s.repo.CreateOrderIfAbsent(order)
	if err != nil {
		return fmt.Errorf("create order for auction %s: %w", auctionID, err)
	}
	if created {
		utils.Info("settlement order created", map[string]any{
			"order_id": stored.OrderID, "auction_id": auctionID, "user_id": auction.WinnerID,
		})
		if s.notifier != nil {
			s.notifier.NotifyOrderCreated(stored, auction.VendorID)
		}
	}
	return nil
}

// reconcileOrder applies a generic order payment outcome with guarded
// transitions: COMPLETE moves pending -> processing, CANCELLED/FAILED moves
// pending -> cancelled. Anything else is a no-op.
func (s *PaymentService) reconcileOrder(orderID, status string) error {
	var to models.OrderStatus
	switch status {
	case StatusComplete:
		to = models.OrderProcessing
	case StatusCancelled, StatusFailed:
		to = models.OrderCancelled
	default:
		return nil
	}

	applied, err := s.repo.SetOrderStatus(orderID, models.OrderPending, to)
	if errors.Is(err, auctionerrors.ErrOrderNotFound) {
		utils.Info("order webhook for unknown order, ignored", map[string]any{"order_id": orderID})
		return nil
	}
	if err != nil {
		return fmt.Errorf("set order %s status: %w", orderID, err)
	}
	if !applied {
		utils.Info("order webhook had nothing to do", map[string]any{
			"order_id": orderID, "payment_status": status,
		})
	}
	return nil
}
