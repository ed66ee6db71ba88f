package closeout

import (
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/livestream"
	"auction-engine/internal/models"
	"auction-engine/internal/notify"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

// CloseResult reports the outcome of finalizing one auction.
type CloseResult struct {
	AuctionID  string           `json:"auction_id"`
	Status     string           `json:"status"` // sold | unsold | error, or the pre-existing terminal status
	WinnerID   string           `json:"winner_id,omitempty"`
	WinningBid *decimal.Decimal `json:"winning_bid,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// EventPublisher receives auction status-change events for fan-out.
type EventPublisher interface {
	Publish(ev livestream.Event)
}

// CloseoutService finalizes ended auctions: it selects the winner from the
// bid ledger, transitions auction state and fires winner/vendor notifications.
type CloseoutService struct {
	repo     repository.AuctionDB
	notifier notify.Notifier
	events   EventPublisher

	paymentLinkBase string
	now             func() time.Time
}

// NewCloseoutService creates a new CloseoutService instance. notifier and
// events may be nil; paymentLinkBase prefixes the winner's payment link.
func NewCloseoutService(repo repository.AuctionDB, notifier notify.Notifier, events EventPublisher, paymentLinkBase string) *CloseoutService {
	return &CloseoutService{
		repo:            repo,
		notifier:        notifier,
		events:          events,
		paymentLinkBase: paymentLinkBase,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// CloseAuction finalizes a single auction. Idempotent: an auction already in
// a terminal state is reported as-is with no further mutation.
func (s *CloseoutService) CloseAuction(auctionID string) CloseResult {
	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return CloseResult{AuctionID: auctionID, Status: "error", Error: err.Error()}
	}

	if auction.Status != models.AuctionApproved && auction.Status != models.AuctionActive {
		// already finalized by an earlier run
		res := CloseResult{AuctionID: auctionID, Status: string(auction.Status)}
		if auction.WinnerID != "" {
			res.WinnerID = auction.WinnerID
			win := auction.WinningBid
			res.WinningBid = &win
		}
		return res
	}
	if s.now().Before(auction.EndDate) {
		return CloseResult{AuctionID: auctionID, Status: "error",
			Error: fmt.Sprintf("auction has not ended (ends %s)", auction.EndDate.Format(time.RFC3339))}
	}

	winning, err := s.repo.GetWinningBid(auctionID)
	if errors.Is(err, auctionerrors.ErrNoBids) {
		return s.closeUnsold(auction)
	}
	if err != nil {
		return CloseResult{AuctionID: auctionID, Status: "error", Error: err.Error()}
	}
	return s.closeSold(auction, winning)
}

func (s *CloseoutService) closeUnsold(auction models.Auction) CloseResult {
	applied, err := s.repo.MarkAuctionUnsold(auction.AuctionID)
	if err != nil {
		return CloseResult{AuctionID: auction.AuctionID, Status: "error", Error: err.Error()}
	}
	if !applied {
		// a concurrent run won the transition
		return s.CloseAuction(auction.AuctionID)
	}

	utils.Info("auction closed unsold", map[string]any{"auction_id": auction.AuctionID})
	return CloseResult{AuctionID: auction.AuctionID, Status: "unsold"}
}

func (s *CloseoutService) closeSold(auction models.Auction, winning models.Bid) CloseResult {
	applied, err := s.repo.MarkAuctionSold(auction.AuctionID, winning.UserID, winning.Amount)
	if err != nil {
		return CloseResult{AuctionID: auction.AuctionID, Status: "error", Error: err.Error()}
	}
	if !applied {
		return s.CloseAuction(auction.AuctionID)
	}

	if err := s.repo.MarkRegistrationWinner(auction.AuctionID, winning.UserID); err != nil {
		return CloseResult{AuctionID: auction.AuctionID, Status: "error",
			Error: fmt.Sprintf("auction sold but winner registration not marked: %v", err)}
	}

	amountDue := winning.Amount
	reg, err := s.repo.GetRegistration(auction.AuctionID, winning.UserID)
	if err == nil {
		amountDue = winning.Amount.Sub(reg.FeePaid)
	} else {
		utils.Warn("winner registration lookup failed, no deposit credited", map[string]any{
			"auction_id": auction.AuctionID, "user_id": winning.UserID, "error": err.Error(),
		})
	}

	// notifications fire after the authoritative transition commits
	if s.notifier != nil {
		link := fmt.Sprintf("%s/auctions/%s/winner-payment", s.paymentLinkBase, auction.AuctionID)
		s.notifier.NotifyAuctionWon(auction.AuctionID, winning.UserID, winning.Amount, amountDue, link)
		s.notifier.NotifyVendorSold(auction.AuctionID, auction.VendorID, winning.Amount)
	}
	if s.events != nil {
		s.events.Publish(livestream.Event{
			Kind:      livestream.EventAuctionWon,
			AuctionID: auction.AuctionID,
			UserID:    winning.UserID,
			Amount:    winning.Amount,
			At:        s.now(),
		})
	}

	utils.Info("auction closed sold", map[string]any{
		"auction_id": auction.AuctionID, "winner_id": winning.UserID,
		"winning_bid": winning.Amount.String(), "amount_due": amountDue.String(),
	})

	win := winning.Amount
	return CloseResult{
		AuctionID:  auction.AuctionID,
		Status:     "sold",
		WinnerID:   winning.UserID,
		WinningBid: &win,
	}
}

// SweepExpired finalizes every auction whose end date has passed. One
// auction's failure is recorded in its result and never aborts the rest.
func (s *CloseoutService) SweepExpired() []CloseResult {
	ended, err := s.repo.ListEndedAuctions(s.now())
	if err != nil {
		utils.Error("sweep: failed to list ended auctions", map[string]any{"error": err.Error()})
		return []CloseResult{{Status: "error", Error: err.Error()}}
	}

	results := make([]CloseResult, 0, len(ended))
	for _, auction := range ended {
		results = append(results, s.CloseAuction(auction.AuctionID))
	}
	return results
}

// ActivateAuction opens an approved auction for bidding and announces it to
// every watcher. Idempotent: returns false if the auction was not approved.
func (s *CloseoutService) ActivateAuction(auctionID string) (bool, error) {
	applied, err := s.repo.MarkAuctionActive(auctionID)
	if err != nil {
		return false, fmt.Errorf("service: failed to activate auction %s: %w", auctionID, err)
	}
	if applied && s.events != nil {
		s.events.Publish(livestream.Event{
			Kind:      livestream.EventAuctionStarted,
			AuctionID: auctionID,
			At:        s.now(),
		})
	}
	return applied, nil
}

// ActivateDue opens every approved auction whose start date has passed.
func (s *CloseoutService) ActivateDue() []string {
	startable, err := s.repo.ListStartableAuctions(s.now())
	if err != nil {
		utils.Error("activation sweep failed", map[string]any{"error": err.Error()})
		return nil
	}

	var activated []string
	for _, auction := range startable {
		applied, err := s.ActivateAuction(auction.AuctionID)
		if err != nil {
			utils.Error("failed to activate auction", map[string]any{
				"auction_id": auction.AuctionID, "error": err.Error(),
			})
			continue
		}
		if applied {
			activated = append(activated, auction.AuctionID)
		}
	}
	return activated
}
