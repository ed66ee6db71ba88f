package livestream

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventKind discriminates the notifications fanned out to watchers.
type EventKind string

const (
	EventBidPlaced      EventKind = "bid_placed"
	EventOutbid         EventKind = "outbid"
	EventAuctionStarted EventKind = "auction_started"
	EventAuctionWon     EventKind = "auction_won"
)

// Event is one fact about an auction, produced by the bid ledger or the
// close-out processor and fanned out to subscribers of that auction.
type Event struct {
	Kind      EventKind       `json:"event"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id,omitempty"` // bidder or winner
	Amount    decimal.Decimal `json:"amount"`
	At        time.Time       `json:"at"`
}

// Sink receives every hub event, in per-auction order. Used to mirror the
// stream onto an external bus; delivery is best-effort.
type Sink interface {
	Deliver(ev Event)
}
