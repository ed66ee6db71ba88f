package closeout

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-engine/internal/livestream"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures notifications synchronously for assertions
type recordingNotifier struct {
	mu        sync.Mutex
	won       []string // "auctionID/userID/winning/due"
	sold      []string // "auctionID/vendorID"
	confirmed []string
	orders    []string
}

func (n *recordingNotifier) NotifyAuctionWon(auctionID, userID string, winningBid, amountDue decimal.Decimal, paymentURL string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.won = append(n.won, fmt.Sprintf("%s/%s/%s/%s", auctionID, userID, winningBid, amountDue))
}

func (n *recordingNotifier) NotifyVendorSold(auctionID, vendorID string, winningBid decimal.Decimal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sold = append(n.sold, fmt.Sprintf("%s/%s", auctionID, vendorID))
}

func (n *recordingNotifier) NotifyRegistrationConfirmed(auctionID, userID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmed = append(n.confirmed, fmt.Sprintf("%s/%s", auctionID, userID))
}

func (n *recordingNotifier) NotifyOrderCreated(order model.Order, vendorID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, fmt.Sprintf("%s/%s", order.OrderID, vendorID))
}

type capturePublisher struct {
	events []livestream.Event
}

func (c *capturePublisher) Publish(ev livestream.Event) {
	c.events = append(c.events, ev)
}

func endedAuction(auctionID string) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:       auctionID,
		ProductID:       auctionID + "-product",
		VendorID:        "vendor1",
		Status:          model.AuctionActive,
		RegistrationFee: decimal.NewFromInt(50),
		StartDate:       now.Add(-2 * time.Hour),
		EndDate:         now.Add(-time.Minute),
	}
}

func seedBid(t *testing.T, repo *repository.MemoryRepo, auctionID, userID string, amount int64, at time.Time) {
	t.Helper()
	require.NoError(t, repo.AppendBid(model.Bid{
		BidID:     fmt.Sprintf("bid-%s-%d", userID, amount),
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    decimal.NewFromInt(amount),
		CreatedAt: at,
	}))
}

func seedPaidRegistration(t *testing.T, repo *repository.MemoryRepo, auctionID, userID string, fee int64) {
	t.Helper()
	_, err := repo.UpsertRegistration(model.Registration{
		RegistrationID: "reg-" + userID,
		AuctionID:      auctionID,
		UserID:         userID,
		FeePaid:        decimal.NewFromInt(fee),
		PaymentStatus:  model.PaymentPaid,
		CreatedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestCloseAuction_Sold(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	auction := endedAuction("auction1")

	// store the auction as active first so bids can land, then let it expire
	live := auction
	live.EndDate = time.Now().UTC().Add(time.Hour)
	require.NoError(t, repo.PutAuction(live))

	seedPaidRegistration(t, repo, "auction1", "userA", 50)
	seedPaidRegistration(t, repo, "auction1", "userB", 50)
	now := time.Now().UTC()
	seedBid(t, repo, "auction1", "userA", 500, now)
	seedBid(t, repo, "auction1", "userB", 750, now.Add(time.Second))

	require.NoError(t, repo.PutAuction(withBidState(t, repo, auction)))

	notifier := &recordingNotifier{}
	pub := &capturePublisher{}
	svc := NewCloseoutService(repo, notifier, pub, "http://localhost:8080")

	res := svc.CloseAuction("auction1")
	require.Equal(t, "sold", res.Status)
	require.Equal(t, "userB", res.WinnerID)
	require.NotNil(t, res.WinningBid)
	require.True(t, res.WinningBid.Equal(decimal.NewFromInt(750)))

	// auction state
	stored, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, model.AuctionSold, stored.Status)
	require.Equal(t, "userB", stored.WinnerID)

	// winner registration flagged
	reg, err := repo.GetRegistration("auction1", "userB")
	require.NoError(t, err)
	require.True(t, reg.IsWinner)

	// amount due credits the deposit: 750 - 50 = 700
	require.Equal(t, []string{"auction1/userB/750/700"}, notifier.won)
	require.Equal(t, []string{"auction1/vendor1"}, notifier.sold)

	require.Len(t, pub.events, 1)
	require.Equal(t, livestream.EventAuctionWon, pub.events[0].Kind)
	require.Equal(t, "userB", pub.events[0].UserID)

	// a rerun reports the terminal state without mutating or re-notifying
	res = svc.CloseAuction("auction1")
	require.Equal(t, "sold", res.Status)
	require.Equal(t, "userB", res.WinnerID)
	require.Len(t, notifier.won, 1)
	require.Len(t, pub.events, 1)
}

// withBidState re-reads the auction so the expired copy keeps the
// denormalized bid fields written by AppendBid.
func withBidState(t *testing.T, repo *repository.MemoryRepo, expired model.Auction) model.Auction {
	t.Helper()
	current, err := repo.GetAuction(expired.AuctionID)
	require.NoError(t, err)
	expired.CurrentBid = current.CurrentBid
	expired.BidCount = current.BidCount
	return expired
}

func TestCloseAuction_Unsold(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	require.NoError(t, repo.PutAuction(endedAuction("auction1")))

	notifier := &recordingNotifier{}
	svc := NewCloseoutService(repo, notifier, nil, "http://localhost:8080")

	res := svc.CloseAuction("auction1")
	require.Equal(t, "unsold", res.Status)
	require.Empty(t, res.WinnerID)
	require.Empty(t, notifier.won)

	stored, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, model.AuctionUnsold, stored.Status)

	// rerun is a no-op report
	res = svc.CloseAuction("auction1")
	require.Equal(t, "unsold", res.Status)
}

func TestCloseAuction_NotEnded(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	running := endedAuction("auction1")
	running.EndDate = time.Now().UTC().Add(time.Hour)
	require.NoError(t, repo.PutAuction(running))

	svc := NewCloseoutService(repo, nil, nil, "http://localhost:8080")
	res := svc.CloseAuction("auction1")
	require.Equal(t, "error", res.Status)
	require.Contains(t, res.Error, "has not ended")

	stored, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, model.AuctionActive, stored.Status)
}

func TestCloseAuction_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewCloseoutService(repository.NewMemoryRepo(), nil, nil, "http://localhost:8080")
	res := svc.CloseAuction("missing")
	require.Equal(t, "error", res.Status)
	require.NotEmpty(t, res.Error)
}

// One broken auction must not abort the rest of the sweep.
func TestSweepExpired_Isolation(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()

	// sold path
	soldLive := endedAuction("sold1")
	soldLive.EndDate = time.Now().UTC().Add(time.Hour)
	require.NoError(t, repo.PutAuction(soldLive))
	seedPaidRegistration(t, repo, "sold1", "userA", 50)
	seedBid(t, repo, "sold1", "userA", 500, time.Now().UTC())
	expired := endedAuction("sold1")
	require.NoError(t, repo.PutAuction(withBidState(t, repo, expired)))

	// bids but no registration row: MarkRegistrationWinner fails
	brokenLive := endedAuction("broken1")
	brokenLive.EndDate = time.Now().UTC().Add(time.Hour)
	require.NoError(t, repo.PutAuction(brokenLive))
	seedBid(t, repo, "broken1", "ghost", 100, time.Now().UTC())
	require.NoError(t, repo.PutAuction(withBidState(t, repo, endedAuction("broken1"))))

	// unsold path
	require.NoError(t, repo.PutAuction(endedAuction("unsold1")))

	// still running, must be untouched
	running := endedAuction("running1")
	running.EndDate = time.Now().UTC().Add(time.Hour)
	require.NoError(t, repo.PutAuction(running))

	svc := NewCloseoutService(repo, &recordingNotifier{}, nil, "http://localhost:8080")
	results := svc.SweepExpired()
	require.Len(t, results, 3)

	byID := make(map[string]CloseResult, len(results))
	for _, r := range results {
		byID[r.AuctionID] = r
	}
	require.Equal(t, "sold", byID["sold1"].Status)
	require.Equal(t, "error", byID["broken1"].Status)
	require.Equal(t, "unsold", byID["unsold1"].Status)

	stored, err := repo.GetAuction("running1")
	require.NoError(t, err)
	require.Equal(t, model.AuctionActive, stored.Status)

	// the second sweep has nothing left to do for the finalized ones
	results = svc.SweepExpired()
	byID = make(map[string]CloseResult, len(results))
	for _, r := range results {
		byID[r.AuctionID] = r
	}
	_, soldAgain := byID["sold1"]
	require.False(t, soldAgain)
	_, unsoldAgain := byID["unsold1"]
	require.False(t, unsoldAgain)
}

func TestActivateAuction(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	approved := endedAuction("auction1")
	approved.Status = model.AuctionApproved
	approved.EndDate = time.Now().UTC().Add(time.Hour)
	require.NoError(t, repo.PutAuction(approved))

	pub := &capturePublisher{}
	svc := NewCloseoutService(repo, nil, pub, "http://localhost:8080")

	applied, err := svc.ActivateAuction("auction1")
	require.NoError(t, err)
	require.True(t, applied)
	require.Len(t, pub.events, 1)
	require.Equal(t, livestream.EventAuctionStarted, pub.events[0].Kind)

	// second activation neither applies nor re-announces
	applied, err = svc.ActivateAuction("auction1")
	require.NoError(t, err)
	require.False(t, applied)
	require.Len(t, pub.events, 1)
}

func TestActivateDue(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	now := time.Now().UTC()

	due := endedAuction("due1")
	due.Status = model.AuctionApproved
	due.StartDate = now.Add(-time.Minute)
	due.EndDate = now.Add(time.Hour)
	require.NoError(t, repo.PutAuction(due))

	future := endedAuction("future1")
	future.Status = model.AuctionApproved
	future.StartDate = now.Add(time.Hour)
	future.EndDate = now.Add(2 * time.Hour)
	require.NoError(t, repo.PutAuction(future))

	svc := NewCloseoutService(repo, nil, nil, "http://localhost:8080")
	activated := svc.ActivateDue()
	require.Equal(t, []string{"due1"}, activated)

	stored, err := repo.GetAuction("due1")
	require.NoError(t, err)
	require.Equal(t, model.AuctionActive, stored.Status)
	stored, err = repo.GetAuction("future1")
	require.NoError(t, err)
	require.Equal(t, model.AuctionApproved, stored.Status)
}
