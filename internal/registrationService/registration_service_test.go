package registration

import (
	"errors"
	"testing"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func seedAuction(t *testing.T, repo *repository.MemoryRepo, auctionID string, status model.AuctionStatus, endsIn time.Duration) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, repo.PutAuction(model.Auction{
		AuctionID:       auctionID,
		ProductID:       auctionID + "-product",
		VendorID:        "vendor1",
		Status:          status,
		RegistrationFee: decimal.NewFromInt(50),
		StartDate:       now.Add(-time.Hour),
		EndDate:         now.Add(endsIn),
	}))
}

func TestInitiateRegistration(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedAuction(t, repo, "active1", model.AuctionActive, time.Hour)
	seedAuction(t, repo, "approved1", model.AuctionApproved, time.Hour)
	seedAuction(t, repo, "sold1", model.AuctionSold, -time.Hour)
	seedAuction(t, repo, "ended1", model.AuctionActive, -time.Minute)

	svc := NewRegistrationService(repo)

	tests := []struct {
		name      string
		auctionID string
		userID    string
		wantError error
	}{
		{name: "active_auction", auctionID: "active1", userID: "user1", wantError: nil},
		{name: "approved_auction", auctionID: "approved1", userID: "user1", wantError: nil},
		{name: "missing_auction_id", auctionID: "", userID: "user1", wantError: auctionerrors.ErrInvalidBid},
		{name: "missing_user_id", auctionID: "active1", userID: "", wantError: auctionerrors.ErrInvalidBid},
		{name: "unknown_auction", auctionID: "missing", userID: "user1", wantError: auctionerrors.ErrAuctionNotFound},
		{name: "terminal_auction", auctionID: "sold1", userID: "user1", wantError: auctionerrors.ErrAuctionNotActive},
		{name: "ended_auction", auctionID: "ended1", userID: "user1", wantError: auctionerrors.ErrAuctionEnded},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			reg, err := svc.InitiateRegistration(tc.auctionID, tc.userID)
			if tc.wantError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantError), "expected %v, got %v", tc.wantError, err)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, reg.RegistrationID)
			require.Equal(t, tc.auctionID, reg.AuctionID)
			require.Equal(t, model.PaymentPending, reg.PaymentStatus)
			require.True(t, reg.FeePaid.Equal(decimal.NewFromInt(50)))
		})
	}
}

// Re-registering reissues a pending row under a fresh reference but returns a
// paid row untouched.
func TestInitiateRegistration_Upsert(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedAuction(t, repo, "auction1", model.AuctionActive, time.Hour)
	svc := NewRegistrationService(repo)

	first, err := svc.InitiateRegistration("auction1", "user1")
	require.NoError(t, err)

	second, err := svc.InitiateRegistration("auction1", "user1")
	require.NoError(t, err)
	require.NotEqual(t, first.RegistrationID, second.RegistrationID)
	_, err = repo.GetRegistrationByID(first.RegistrationID)
	require.True(t, errors.Is(err, auctionerrors.ErrRegistrationNotFound))

	applied, err := svc.ConfirmRegistration(second.RegistrationID)
	require.NoError(t, err)
	require.True(t, applied)

	third, err := svc.InitiateRegistration("auction1", "user1")
	require.NoError(t, err)
	require.Equal(t, second.RegistrationID, third.RegistrationID)
	require.Equal(t, model.PaymentPaid, third.PaymentStatus)

	regs, err := svc.GetRegistrationsForUser("user1")
	require.NoError(t, err)
	require.Len(t, regs, 1)
}

func TestConfirmRegistration(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedAuction(t, repo, "auction1", model.AuctionActive, time.Hour)
	svc := NewRegistrationService(repo)

	reg, err := svc.InitiateRegistration("auction1", "user1")
	require.NoError(t, err)

	applied, err := svc.ConfirmRegistration(reg.RegistrationID)
	require.NoError(t, err)
	require.True(t, applied)

	// duplicate confirmation reports applied=false without error
	applied, err = svc.ConfirmRegistration(reg.RegistrationID)
	require.NoError(t, err)
	require.False(t, applied)

	_, err = svc.ConfirmRegistration("")
	require.True(t, errors.Is(err, auctionerrors.ErrRegistrationNotFound))
	_, err = svc.ConfirmRegistration("missing")
	require.True(t, errors.Is(err, auctionerrors.ErrRegistrationNotFound))
}

func TestCancelRegistration(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedAuction(t, repo, "auction1", model.AuctionActive, time.Hour)
	seedAuction(t, repo, "auction2", model.AuctionActive, time.Hour)
	svc := NewRegistrationService(repo)

	pending, err := svc.InitiateRegistration("auction1", "user1")
	require.NoError(t, err)
	deleted, err := svc.CancelRegistration(pending.RegistrationID)
	require.NoError(t, err)
	require.True(t, deleted)

	// paid registrations survive a cancel
	paid, err := svc.InitiateRegistration("auction2", "user1")
	require.NoError(t, err)
	_, err = svc.ConfirmRegistration(paid.RegistrationID)
	require.NoError(t, err)
	deleted, err = svc.CancelRegistration(paid.RegistrationID)
	require.NoError(t, err)
	require.False(t, deleted)

	got, err := svc.GetRegistration("auction2", "user1")
	require.NoError(t, err)
	require.Equal(t, model.PaymentPaid, got.PaymentStatus)

	// unknown and empty ids are quiet no-ops
	deleted, err = svc.CancelRegistration("missing")
	require.NoError(t, err)
	require.False(t, deleted)
	deleted, err = svc.CancelRegistration("")
	require.NoError(t, err)
	require.False(t, deleted)
}
