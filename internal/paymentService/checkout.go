package payment

import (
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/notify"
	"auction-engine/internal/repository"
)

// Payment purpose tags embedded in checkout payloads and echoed back by the
// gateway webhook. They route the callback to the right reconciliation arm.
const (
	PurposeRegistration  = "auction_registration"
	PurposeWinnerPayment = "auction_winner_payment"
	OrderTagPrefix       = "ORDER-"
)

// GatewayConfig holds the payment gateway credentials and endpoints.
type GatewayConfig struct {
	MerchantID  string
	MerchantKey string
	Passphrase  string
	ProcessURL  string
	ReturnURL   string
	CancelURL   string
	NotifyURL   string
	Sandbox     bool
	// TrustedCIDRs restricts webhook callers by network origin. Empty means
	// no restriction; sandbox mode bypasses the check entirely.
	TrustedCIDRs []string
}

// CheckoutPayload is the signed redirect form a client posts to the gateway.
type CheckoutPayload struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
}

// RegistrationLedger is the slice of the registration service the payment
// flow needs.
type RegistrationLedger interface {
	InitiateRegistration(auctionID, userID string) (models.Registration, error)
}

// PaymentService builds gateway checkout payloads and reconciles the
// asynchronous payment outcomes the gateway reports back.
type PaymentService struct {
	repo     repository.AuctionDB
	regs     RegistrationLedger
	notifier notify.Notifier
	cfg      GatewayConfig
	now      func() time.Time
}

// NewPaymentService creates a new PaymentService instance. notifier may be nil.
func NewPaymentService(repo repository.AuctionDB, regs RegistrationLedger, notifier notify.Notifier, cfg GatewayConfig) *PaymentService {
	return &PaymentService{
		repo:     repo,
		regs:     regs,
		notifier: notifier,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *PaymentService) baseFields() map[string]string {
	return map[string]string{
		"merchant_id":  s.cfg.MerchantID,
		"merchant_key": s.cfg.MerchantKey,
		"return_url":   s.cfg.ReturnURL,
		"cancel_url":   s.cfg.CancelURL,
		"notify_url":   s.cfg.NotifyURL,
	}
}

// InitiateRegistrationCheckout creates (or reuses) a pending registration and
// returns the signed redirect payload for the entry-fee payment. The
// registration id rides in the reference field so the webhook can route back.
func (s *PaymentService) InitiateRegistrationCheckout(auctionID, userID string) (CheckoutPayload, error) {
	reg, err := s.regs.InitiateRegistration(auctionID, userID)
	if err != nil {
		return CheckoutPayload{}, err
	}

	fields := s.baseFields()
	fields[FieldPaymentID] = reg.RegistrationID
	fields["amount"] = reg.FeePaid.StringFixed(2)
	fields["item_name"] = fmt.Sprintf("Auction %s registration fee", auctionID)
	fields[FieldReference] = reg.RegistrationID
	fields[FieldPurpose] = PurposeRegistration
	fields[FieldSignature] = Sign(fields, s.cfg.Passphrase)

	return CheckoutPayload{URL: s.cfg.ProcessURL, Fields: fields}, nil
}

// InitiateWinnerCheckout returns the signed redirect payload for the winner's
// deposit-adjusted balance payment on a sold auction.
func (s *PaymentService) InitiateWinnerCheckout(auctionID, userID string) (CheckoutPayload, error) {
	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return CheckoutPayload{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != models.AuctionSold || auction.WinnerID != userID {
		return CheckoutPayload{}, fmt.Errorf("service: %w - auction %s is %s, winner %q",
			auctionerrors.ErrNotEligible, auctionID, auction.Status, auction.WinnerID)
	}

	reg, err := s.repo.GetRegistration(auctionID, userID)
	if err != nil {
		return CheckoutPayload{}, fmt.Errorf("service: failed to load winner registration: %w", err)
	}
	amountDue := auction.WinningBid.Sub(reg.FeePaid)

	fields := s.baseFields()
	fields[FieldPaymentID] = auctionID
	fields["amount"] = amountDue.StringFixed(2)
	fields["item_name"] = fmt.Sprintf("Auction %s winning balance", auctionID)
	fields[FieldReference] = auctionID
	fields[FieldPurpose] = PurposeWinnerPayment
	fields[FieldSignature] = Sign(fields, s.cfg.Passphrase)

	return CheckoutPayload{URL: s.cfg.ProcessURL, Fields: fields}, nil
}
