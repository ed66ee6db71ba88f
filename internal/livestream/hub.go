package livestream

import (
	"sync"

	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

// OwnBidSource reads a user's highest accepted bid on an auction from the
// ledger. Used once per subscription to seed the bid cache.
type OwnBidSource interface {
	HighestBidByUser(auctionID, userID string) (decimal.Decimal, error)
}

// Subscriber is one watching client attached to a single auction's stream.
type Subscriber struct {
	AuctionID string
	UserID    string
	ch        chan Event
}

// Events returns the subscriber's outbound event channel. The channel is
// closed on Unsubscribe.
func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// Hub fans auction events out to per-auction subscriber sets.
// Publish never blocks the producer; dispatch runs on a single goroutine so
// events for one auction reach every subscriber in acceptance order.
// Delivery is at-most-once: a slow subscriber's overflow is dropped.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscriber]struct{} // key: auctionID
	cache  BidCache
	ledger OwnBidSource
	sinks  []Sink

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup
}

const (
	hubQueueSize        = 1024
	subscriberQueueSize = 16
)

// NewHub creates a hub using the given cache, ledger seed source and
// optional external sinks.
func NewHub(cache BidCache, ledger OwnBidSource, sinks ...Sink) *Hub {
	return &Hub{
		subs:   make(map[string]map[*Subscriber]struct{}),
		cache:  cache,
		ledger: ledger,
		sinks:  sinks,
		events: make(chan Event, hubQueueSize),
		done:   make(chan struct{}),
	}
}

// Start launches the dispatch loop.
func (h *Hub) Start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			select {
			case ev := <-h.events:
				h.dispatch(ev)
			case <-h.done:
				return
			}
		}
	}()
}

// Stop terminates the dispatch loop. Queued events are discarded.
func (h *Hub) Stop() {
	close(h.done)
	h.wg.Wait()
}

// Publish enqueues an event for fan-out without blocking the caller.
func (h *Hub) Publish(ev Event) {
	select {
	case h.events <- ev:
	default:
		utils.Warn("live stream queue full, event dropped", map[string]any{
			"event": string(ev.Kind), "auction_id": ev.AuctionID,
		})
	}
}

// Subscribe attaches a watcher to an auction's stream and seeds the watcher's
// own-highest-bid cache entry from the ledger.
func (h *Hub) Subscribe(auctionID, userID string) *Subscriber {
	sub := &Subscriber{
		AuctionID: auctionID,
		UserID:    userID,
		ch:        make(chan Event, subscriberQueueSize),
	}

	if h.ledger != nil {
		if own, err := h.ledger.HighestBidByUser(auctionID, userID); err == nil && own.IsPositive() {
			h.cache.SetOwnHighest(auctionID, userID, own)
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[auctionID] == nil {
		h.subs[auctionID] = make(map[*Subscriber]struct{})
	}
	h.subs[auctionID][sub] = struct{}{}
	return sub
}

// Unsubscribe detaches the watcher and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	set, ok := h.subs[sub.AuctionID]
	if ok {
		if _, present := set[sub]; present {
			delete(set, sub)
			close(sub.ch)
		}
		if len(set) == 0 {
			delete(h.subs, sub.AuctionID)
		}
	}
	h.mu.Unlock()

	h.cache.Forget(sub.AuctionID, sub.UserID)
}

func (h *Hub) dispatch(ev Event) {
	for _, sink := range h.sinks {
		sink.Deliver(ev)
	}

	// held across the sends: Unsubscribe must not close a channel mid-dispatch
	h.mu.RLock()
	defer h.mu.RUnlock()
	subs := make([]*Subscriber, 0, len(h.subs[ev.AuctionID]))
	for sub := range h.subs[ev.AuctionID] {
		subs = append(subs, sub)
	}

	switch ev.Kind {
	case EventBidPlaced:
		// the bidder's own cache entry moves first so a later bid by anyone
		// else compares against their latest amount
		h.cache.SetOwnHighest(ev.AuctionID, ev.UserID, ev.Amount)
		for _, sub := range subs {
			if sub.UserID == ev.UserID {
				continue // the bidder's client already knows
			}
			out := ev
			if own, ok := h.cache.OwnHighest(ev.AuctionID, sub.UserID); ok &&
				own.IsPositive() && own.LessThan(ev.Amount) {
				out.Kind = EventOutbid
			}
			h.send(sub, out)
		}
	case EventAuctionWon:
		for _, sub := range subs {
			if sub.UserID == ev.UserID {
				h.send(sub, ev)
			}
		}
	default:
		for _, sub := range subs {
			h.send(sub, ev)
		}
	}
}

func (h *Hub) send(sub *Subscriber, ev Event) {
	select {
	case sub.ch <- ev:
	default:
		utils.Warn("slow live stream subscriber, event dropped", map[string]any{
			"event": string(ev.Kind), "auction_id": ev.AuctionID, "user_id": sub.UserID,
		})
	}
}
