package repository

import (
	"fmt"
	"sync"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"

	"github.com/shopspring/decimal"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// It backs unit/integration tests and local runs without a database file.
type MemoryRepo struct {
	mu            sync.RWMutex
	auctions      map[string]model.Auction        // key: auctionID
	bids          map[string][]model.Bid          // key: auctionID -> bids in acceptance order
	registrations map[string]model.Registration   // key: registrationID
	regByPair     map[string]string               // key: auctionID|userID -> registrationID
	orders        map[string]model.Order          // key: orderID
	orderByAuc    map[string]string               // key: auctionID -> orderID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:      make(map[string]model.Auction),
		bids:          make(map[string][]model.Bid),
		registrations: make(map[string]model.Registration),
		regByPair:     make(map[string]string),
		orders:        make(map[string]model.Order),
		orderByAuc:    make(map[string]string),
	}
}

func pairKey(auctionID, userID string) string {
	return auctionID + "|" + userID
}

// GetAuction returns an auction by id
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// PutAuction inserts or replaces an auction row
func (r *MemoryRepo) PutAuction(a model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[a.AuctionID] = a
	return nil
}

// ListEndedAuctions returns auctions still awaiting close-out whose end date
// has passed. Auctions already in a terminal state are never returned, which
// is what makes the sweep idempotent.
func (r *MemoryRepo) ListEndedAuctions(now time.Time) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Auction
	for _, a := range r.auctions {
		if (a.Status == model.AuctionApproved || a.Status == model.AuctionActive) && a.EndDate.Before(now) {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListStartableAuctions returns approved auctions whose start date has passed.
func (r *MemoryRepo) ListStartableAuctions(now time.Time) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Auction
	for _, a := range r.auctions {
		if a.Status == model.AuctionApproved && !a.StartDate.After(now) {
			out = append(out, a)
		}
	}
	return out, nil
}

// MarkAuctionActive transitions approved -> active. Returns false if the
// auction was not in approved state (already active or closed).
func (r *MemoryRepo) MarkAuctionActive(auctionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return false, fmt.Errorf("mark auction %s active: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != model.AuctionApproved {
		return false, nil
	}
	a.Status = model.AuctionActive
	r.auctions[auctionID] = a
	return true, nil
}

// MarkAuctionSold transitions {approved,active} -> sold and records the winner.
func (r *MemoryRepo) MarkAuctionSold(auctionID, winnerID string, winningBid decimal.Decimal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return false, fmt.Errorf("mark auction %s sold: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != model.AuctionApproved && a.Status != model.AuctionActive {
		return false, nil
	}
	a.Status = model.AuctionSold
	a.WinnerID = winnerID
	a.WinningBid = winningBid
	r.auctions[auctionID] = a
	return true, nil
}

// MarkAuctionUnsold transitions {approved,active} -> unsold.
func (r *MemoryRepo) MarkAuctionUnsold(auctionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return false, fmt.Errorf("mark auction %s unsold: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != model.AuctionApproved && a.Status != model.AuctionActive {
		return false, nil
	}
	a.Status = model.AuctionUnsold
	r.auctions[auctionID] = a
	return true, nil
}

// CompleteAuctionSale transitions sold -> completed. False means the auction
// was not in sold state, which a webhook redelivery treats as a no-op.
func (r *MemoryRepo) CompleteAuctionSale(auctionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return false, fmt.Errorf("complete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != model.AuctionSold {
		return false, nil
	}
	a.Status = model.AuctionCompleted
	r.auctions[auctionID] = a
	return true, nil
}

// AppendBid records a bid and bumps the auction's denormalized current bid.
// The check-then-append runs under the repo write lock, so two concurrent
// equal-or-lower bids can never both be accepted.
func (r *MemoryRepo) AppendBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[bid.AuctionID]
	if !ok {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != model.AuctionActive {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotActive)
	}
	if bid.Amount.LessThanOrEqual(a.CurrentBid) {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrBidTooLow)
	}

	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	a.CurrentBid = bid.Amount
	a.BidCount++
	r.auctions[bid.AuctionID] = a
	return nil
}

// GetBidsByAuction returns all bids for an auction in acceptance order
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetWinningBid returns the highest bid for an auction, earliest timestamp
// winning ties.
func (r *MemoryRepo) GetWinningBid(auctionID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(winning.Amount) ||
			(b.Amount.Equal(winning.Amount) && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// UpsertRegistration inserts a registration or returns the existing row for
// the same (auction, user) pair. A pending row keeps the new registration id
// so a fresh checkout reference always points at the live row.
func (r *MemoryRepo) UpsertRegistration(reg model.Registration) (model.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(reg.AuctionID, reg.UserID)
	if existingID, ok := r.regByPair[key]; ok {
		existing := r.registrations[existingID]
		if existing.PaymentStatus == model.PaymentPaid {
			return existing, nil
		}
		// refresh the pending row under the new id
		delete(r.registrations, existingID)
		reg.CreatedAt = existing.CreatedAt
	}
	r.registrations[reg.RegistrationID] = reg
	r.regByPair[key] = reg.RegistrationID
	return reg, nil
}

// GetRegistration returns the registration for an (auction, user) pair
func (r *MemoryRepo) GetRegistration(auctionID, userID string) (model.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.regByPair[pairKey(auctionID, userID)]
	if !ok {
		return model.Registration{}, fmt.Errorf("get registration for auction %s user %s: %w",
			auctionID, userID, auctionerrors.ErrRegistrationNotFound)
	}
	return r.registrations[id], nil
}

// GetRegistrationByID returns a registration by its id
func (r *MemoryRepo) GetRegistrationByID(registrationID string) (model.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.registrations[registrationID]
	if !ok {
		return model.Registration{}, fmt.Errorf("get registration %s: %w",
			registrationID, auctionerrors.ErrRegistrationNotFound)
	}
	return reg, nil
}

// GetRegistrationsByUser returns all registrations held by a user
func (r *MemoryRepo) GetRegistrationsByUser(userID string) ([]model.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Registration
	for _, reg := range r.registrations {
		if reg.UserID == userID {
			out = append(out, reg)
		}
	}
	return out, nil
}

// GetRegistrationsByAuction returns all registrations for an auction
func (r *MemoryRepo) GetRegistrationsByAuction(auctionID string) ([]model.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Registration
	for _, reg := range r.registrations {
		if reg.AuctionID == auctionID {
			out = append(out, reg)
		}
	}
	return out, nil
}

// ConfirmRegistration flips pending -> paid. Returns false if the row is
// already paid (duplicate webhook) without touching it.
func (r *MemoryRepo) ConfirmRegistration(registrationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.registrations[registrationID]
	if !ok {
		return false, fmt.Errorf("confirm registration %s: %w",
			registrationID, auctionerrors.ErrRegistrationNotFound)
	}
	if reg.PaymentStatus == model.PaymentPaid {
		return false, nil
	}
	reg.PaymentStatus = model.PaymentPaid
	r.registrations[registrationID] = reg
	return true, nil
}

// DeletePendingRegistration removes a registration only while it is still
// pending. A paid registration is never deleted, even by a cancel webhook.
func (r *MemoryRepo) DeletePendingRegistration(registrationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.registrations[registrationID]
	if !ok {
		return false, nil
	}
	if reg.PaymentStatus != model.PaymentPending {
		return false, nil
	}
	delete(r.registrations, registrationID)
	delete(r.regByPair, pairKey(reg.AuctionID, reg.UserID))
	return true, nil
}

// MarkRegistrationWinner flags the (auction, user) registration as the winner
func (r *MemoryRepo) MarkRegistrationWinner(auctionID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.regByPair[pairKey(auctionID, userID)]
	if !ok {
		return fmt.Errorf("mark winner registration for auction %s user %s: %w",
			auctionID, userID, auctionerrors.ErrRegistrationNotFound)
	}
	reg := r.registrations[id]
	reg.IsWinner = true
	r.registrations[id] = reg
	return nil
}

// MarkDepositApplied records that the entry fee was credited against the
// winning amount.
func (r *MemoryRepo) MarkDepositApplied(auctionID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.regByPair[pairKey(auctionID, userID)]
	if !ok {
		return fmt.Errorf("mark deposit applied for auction %s user %s: %w",
			auctionID, userID, auctionerrors.ErrRegistrationNotFound)
	}
	reg := r.registrations[id]
	reg.DepositApplied = true
	r.registrations[id] = reg
	return nil
}

// CreateOrderIfAbsent inserts the order unless one already references the
// same auction; in that case the existing order is returned with created=false.
func (r *MemoryRepo) CreateOrderIfAbsent(order model.Order) (model.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existingID, ok := r.orderByAuc[order.AuctionID]; ok {
		return r.orders[existingID], false, nil
	}
	r.orders[order.OrderID] = order
	r.orderByAuc[order.AuctionID] = order.OrderID
	return order, true, nil
}

// GetOrder returns an order by id
func (r *MemoryRepo) GetOrder(orderID string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return model.Order{}, fmt.Errorf("get order %s: %w", orderID, auctionerrors.ErrOrderNotFound)
	}
	return o, nil
}

// GetOrderByAuction returns the order created for an auction, if any
func (r *MemoryRepo) GetOrderByAuction(auctionID string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.orderByAuc[auctionID]
	if !ok {
		return model.Order{}, fmt.Errorf("get order for auction %s: %w", auctionID, auctionerrors.ErrOrderNotFound)
	}
	return r.orders[id], nil
}

// SetOrderStatus applies a guarded status transition. Returns false if the
// order was not in the expected from state.
func (r *MemoryRepo) SetOrderStatus(orderID string, from, to model.OrderStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return false, fmt.Errorf("set order %s status: %w", orderID, auctionerrors.ErrOrderNotFound)
	}
	if o.Status != from {
		return false, nil
	}
	o.Status = to
	r.orders[orderID] = o
	return true, nil
}
