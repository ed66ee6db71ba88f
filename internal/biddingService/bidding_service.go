package bidding

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/livestream"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

// EventPublisher receives accepted-bid events for fan-out. Publication must
// not block bid acceptance.
type EventPublisher interface {
	Publish(ev livestream.Event)
}

// BiddingService is the bid ledger: it validates, serializes and records bids.
type BiddingService struct {
	repo   repository.AuctionDB
	events EventPublisher

	// one mutex per auction so the check-then-append is atomic per auction
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	now func() time.Time
}

// NewBiddingService creates a new BiddingService instance. events may be nil.
func NewBiddingService(repo repository.AuctionDB, events EventPublisher) *BiddingService {
	return &BiddingService{
		repo:   repo,
		events: events,
		locks:  make(map[string]*sync.Mutex),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetEventPublisher attaches the fan-out target. Called once during wiring,
// before the service starts accepting bids.
func (s *BiddingService) SetEventPublisher(events EventPublisher) {
	s.events = events
}

func (s *BiddingService) auctionLock(auctionID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.locks[auctionID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[auctionID] = mu
	}
	return mu
}

// PlaceBid validates and records a user's bid on an auction. Gates, in order:
// the auction is active, its end date has not passed, the caller holds a paid
// registration, and the amount strictly exceeds the current highest bid.
// Rejected bids are reported synchronously and never retried.
func (s *BiddingService) PlaceBid(auctionID, userID string, amount decimal.Decimal) (models.Bid, error) {
	if auctionID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or userID", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	mu := s.auctionLock(auctionID)
	mu.Lock()
	defer mu.Unlock()

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != models.AuctionActive {
		return models.Bid{}, fmt.Errorf("service: %w - auction %s is %s",
			auctionerrors.ErrAuctionNotActive, auctionID, auction.Status)
	}
	now := s.now()
	if !now.Before(auction.EndDate) {
		// late bids are rejected here, never filtered out by the sweep
		return models.Bid{}, fmt.Errorf("service: %w - auction %s closed at %s",
			auctionerrors.ErrAuctionEnded, auctionID, auction.EndDate.Format(time.RFC3339))
	}

	reg, err := s.repo.GetRegistration(auctionID, userID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrRegistrationNotFound) {
			return models.Bid{}, fmt.Errorf("service: %w - user %s has no paid registration for auction %s",
				auctionerrors.ErrNotRegistered, userID, auctionID)
		}
		return models.Bid{}, fmt.Errorf("service: failed to check registration: %w", err)
	}
	if reg.PaymentStatus != models.PaymentPaid {
		return models.Bid{}, fmt.Errorf("service: %w - registration for user %s still %s",
			auctionerrors.ErrNotRegistered, userID, reg.PaymentStatus)
	}

	if amount.LessThanOrEqual(auction.CurrentBid) {
		return models.Bid{}, fmt.Errorf("service: %w - current highest bid is %s",
			auctionerrors.ErrBidTooLow, auction.CurrentBid.String())
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: now,
	}

	if err := s.repo.AppendBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w",
			auctionID, userID, err)
	}

	if s.events != nil {
		s.events.Publish(livestream.Event{
			Kind:      livestream.EventBidPlaced,
			AuctionID: auctionID,
			UserID:    userID,
			Amount:    amount,
			At:        bid.CreatedAt,
		})
	}

	return bid, nil
}

// GetBidsForAuction returns all bids for a specific auction
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a specific auction
func (s *BiddingService) GetWinningBid(auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	winningBid, err := s.repo.GetWinningBid(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}
	return winningBid, nil
}

// HighestBidByUser returns a user's own highest accepted bid on an auction,
// or zero if they have not bid. Used to seed the live stream's bid cache.
func (s *BiddingService) HighestBidByUser(auctionID, userID string) (decimal.Decimal, error) {
	bids, err := s.repo.GetBidsByAuction(auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	highest := decimal.Zero
	for _, b := range bids {
		if b.UserID == userID && b.Amount.GreaterThan(highest) {
			highest = b.Amount
		}
	}
	return highest, nil
}
