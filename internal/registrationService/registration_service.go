package registration

import (
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// RegistrationService is the registration and deposit ledger: it tracks which
// users have paid the entry fee for an auction and whether that fee has been
// consumed as a deposit.
type RegistrationService struct {
	repo repository.AuctionDB
	now  func() time.Time
}

// NewRegistrationService creates a new RegistrationService instance
func NewRegistrationService(repo repository.AuctionDB) *RegistrationService {
	return &RegistrationService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// InitiateRegistration creates (or reuses) a pending registration and returns
// the row whose id a payment flow tags onto its callback. For a user who is
// already registered this upserts instead of duplicating: a paid row is
// returned untouched, a pending row is reissued under a fresh reference.
func (s *RegistrationService) InitiateRegistration(auctionID, userID string) (models.Registration, error) {
	if auctionID == "" || userID == "" {
		return models.Registration{}, fmt.Errorf("service: %w - missing auctionID or userID",
			auctionerrors.ErrInvalidBid)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Registration{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != models.AuctionApproved && auction.Status != models.AuctionActive {
		return models.Registration{}, fmt.Errorf("service: %w - auction %s is %s",
			auctionerrors.ErrAuctionNotActive, auctionID, auction.Status)
	}
	if !s.now().Before(auction.EndDate) {
		return models.Registration{}, fmt.Errorf("service: %w - auction %s closed",
			auctionerrors.ErrAuctionEnded, auctionID)
	}

	reg := models.Registration{
		RegistrationID: utils.GenerateID(),
		AuctionID:      auctionID,
		UserID:         userID,
		FeePaid:        auction.RegistrationFee,
		PaymentStatus:  models.PaymentPending,
		CreatedAt:      s.now(),
	}

	stored, err := s.repo.UpsertRegistration(reg)
	if err != nil {
		return models.Registration{}, fmt.Errorf("service: failed to upsert registration for auction %s user %s: %w",
			auctionID, userID, err)
	}
	return stored, nil
}

// ConfirmRegistration flips a registration to paid. Idempotent: confirming an
// already-paid registration reports applied=false without error.
func (s *RegistrationService) ConfirmRegistration(registrationID string) (bool, error) {
	if registrationID == "" {
		return false, fmt.Errorf("service: %w - empty registration ID", auctionerrors.ErrRegistrationNotFound)
	}

	applied, err := s.repo.ConfirmRegistration(registrationID)
	if err != nil {
		return false, fmt.Errorf("service: failed to confirm registration %s: %w", registrationID, err)
	}
	return applied, nil
}

// CancelRegistration deletes a registration only while it is still pending.
// A paid registration is never deleted: a cancel webhook racing a delayed
// success webhook must not destroy the confirmed deposit.
func (s *RegistrationService) CancelRegistration(registrationID string) (bool, error) {
	if registrationID == "" {
		return false, nil
	}

	deleted, err := s.repo.DeletePendingRegistration(registrationID)
	if err != nil {
		return false, fmt.Errorf("service: failed to cancel registration %s: %w", registrationID, err)
	}
	return deleted, nil
}

// GetRegistration returns the registration for an (auction, user) pair
func (s *RegistrationService) GetRegistration(auctionID, userID string) (models.Registration, error) {
	reg, err := s.repo.GetRegistration(auctionID, userID)
	if err != nil {
		return models.Registration{}, fmt.Errorf("service: failed to get registration: %w", err)
	}
	return reg, nil
}

// GetRegistrationsForUser returns all of a user's registrations
func (s *RegistrationService) GetRegistrationsForUser(userID string) ([]models.Registration, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrRegistrationNotFound)
	}

	regs, err := s.repo.GetRegistrationsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get registrations for user %s: %w", userID, err)
	}
	return regs, nil
}
