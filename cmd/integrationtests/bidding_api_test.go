package integrationtests

import (
	"net/http"
	"testing"
	"time"

	model "auction-engine/internal/models"
	payment "auction-engine/internal/paymentService"

	"github.com/stretchr/testify/require"
)

// expireAuction rewinds the auction's end date so close-out becomes eligible.
func expireAuction(t *testing.T, env *TestEnv, auctionID string) {
	t.Helper()
	auction, err := env.Repo.GetAuction(auctionID)
	require.NoError(t, err)
	auction.EndDate = time.Now().UTC().Add(-time.Minute)
	require.NoError(t, env.Repo.PutAuction(auction))
}

// RecordBidHandler Tests
func TestRecordBidHandler(t *testing.T) {
	t.Run("Valid_Bid", func(t *testing.T) {
		env := SetupTestEnv(t, NewAuction("auction1"))
		RegisterAndPay(t, env, "auction1", "user1")

		resp := PlaceBid(t, env, "auction1", "user1", 100, http.StatusCreated)
		data := resp["data"].(map[string]any)
		require.Equal(t, "auction1", data["auction_id"])
		require.Equal(t, "user1", data["user_id"])
		require.Equal(t, "100", data["amount"])
		require.NotEmpty(t, data["bid_id"])

		_, err := time.Parse(time.RFC3339, data["created_at"].(string))
		require.NoError(t, err)
	})

	t.Run("Invalid_JSON", func(t *testing.T) {
		env := SetupTestEnv(t, NewAuction("auction1"))
		_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/bids",
			"{auction_id: 'missing quotes', amount: 100}")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unregistered_User", func(t *testing.T) {
		env := SetupTestEnv(t, NewAuction("auction1"))
		PlaceBid(t, env, "auction1", "stranger", 100, http.StatusForbidden)
	})

	t.Run("Pending_Registration", func(t *testing.T) {
		env := SetupTestEnv(t, NewAuction("auction1"))
		// checkout initiated but the entry fee never paid
		_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost,
			"/auctions/auction1/register", map[string]string{"user_id": "user1"})
		require.Equal(t, http.StatusOK, w.Code)

		PlaceBid(t, env, "auction1", "user1", 100, http.StatusForbidden)
	})

	t.Run("Bid_Too_Low", func(t *testing.T) {
		env := SetupTestEnv(t, NewAuction("auction1"))
		RegisterAndPay(t, env, "auction1", "user1")
		RegisterAndPay(t, env, "auction1", "user2")

		PlaceBid(t, env, "auction1", "user1", 100, http.StatusCreated)
		PlaceBid(t, env, "auction1", "user2", 100, http.StatusConflict)
		PlaceBid(t, env, "auction1", "user2", 90, http.StatusConflict)
	})

	t.Run("Auction_Ended", func(t *testing.T) {
		env := SetupTestEnv(t, NewAuction("auction1"))
		RegisterAndPay(t, env, "auction1", "user1")
		expireAuction(t, env, "auction1")

		PlaceBid(t, env, "auction1", "user1", 100, http.StatusConflict)
	})

	t.Run("Auction_Not_Found", func(t *testing.T) {
		env := SetupTestEnv(t)
		PlaceBid(t, env, "nonexistent", "user1", 100, http.StatusNotFound)
	})
}

// GetBidsByAuctionHandler Tests
func TestGetBidsByAuctionHandler(t *testing.T) {
	env := SetupTestEnv(t, NewAuction("auction1"), NewAuction("auction2"))
	RegisterAndPay(t, env, "auction1", "user1")
	RegisterAndPay(t, env, "auction1", "user2")
	PlaceBid(t, env, "auction1", "user1", 100, http.StatusCreated)
	PlaceBid(t, env, "auction1", "user2", 150, http.StatusCreated)

	tests := []struct {
		name      string
		auctionID string
		wantCount int
	}{
		{name: "With_Bids", auctionID: "auction1", wantCount: 2},
		{name: "No_Bids", auctionID: "auction2", wantCount: 0},
		{name: "Auction_Not_Found", auctionID: "nonexistent", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet,
				"/auctions/"+tt.auctionID+"/bids", nil)
			require.Equal(t, http.StatusOK, w.Code)

			bids := resp["data"].([]any)
			require.Len(t, bids, tt.wantCount)
		})
	}
}

// GetWinningBidHandler Tests
func TestGetWinningBidHandler(t *testing.T) {
	env := SetupTestEnv(t, NewAuction("auction1"), NewAuction("auction2"))
	RegisterAndPay(t, env, "auction1", "user1")
	RegisterAndPay(t, env, "auction1", "user2")
	RegisterAndPay(t, env, "auction1", "user3")
	PlaceBid(t, env, "auction1", "user1", 100, http.StatusCreated)
	PlaceBid(t, env, "auction1", "user3", 120, http.StatusCreated)
	PlaceBid(t, env, "auction1", "user2", 150, http.StatusCreated)

	t.Run("With_Bids", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/auction1/winning", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "auction1", data["auction_id"])
		require.Equal(t, "user2", data["user_id"])
		require.Equal(t, "150", data["amount"])
	})

	t.Run("No_Bids", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/auction2/winning", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Auction_Not_Found", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/nonexistent/winning", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// GetRegistrationsByUserHandler Tests
func TestGetRegistrationsByUserHandler(t *testing.T) {
	env := SetupTestEnv(t, NewAuction("auction1"), NewAuction("auction2"))
	RegisterAndPay(t, env, "auction1", "user1")
	RegisterAndPay(t, env, "auction2", "user1")

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/users/user1/registrations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	regs := resp["data"].([]any)
	require.Len(t, regs, 2)
	for _, r := range regs {
		reg := r.(map[string]any)
		require.Equal(t, "user1", reg["user_id"])
		require.Equal(t, "paid", reg["payment_status"])
	}

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/users/nobody/registrations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 0)
}

// The full lifecycle: registration deposits, bidding, close-out, winner
// balance payment, order creation.
func TestAuctionSettlementFlow(t *testing.T) {
	env := SetupTestEnv(t, NewAuction("auction1"))

	for _, userID := range []string{"userA", "userB", "userC"} {
		RegisterAndPay(t, env, "auction1", userID)
	}

	PlaceBid(t, env, "auction1", "userA", 500, http.StatusCreated)
	PlaceBid(t, env, "auction1", "userB", 750, http.StatusCreated)
	// an equal amount never ties: rejected at placement
	PlaceBid(t, env, "auction1", "userC", 750, http.StatusConflict)

	// close-out refuses while the auction is still running
	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/close",
		map[string]any{"auction_id": "auction1"})
	require.Equal(t, http.StatusOK, w.Code)
	results := resp["data"].([]any)
	require.Equal(t, "error", results[0].(map[string]any)["status"])

	expireAuction(t, env, "auction1")

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/close",
		map[string]any{"auction_id": "auction1"})
	require.Equal(t, http.StatusOK, w.Code)
	result := resp["data"].([]any)[0].(map[string]any)
	require.Equal(t, "sold", result["status"])
	require.Equal(t, "userB", result["winner_id"])

	// a repeated close reports the terminal state unchanged
	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/close",
		map[string]any{"auction_id": "auction1"})
	require.Equal(t, http.StatusOK, w.Code)
	result = resp["data"].([]any)[0].(map[string]any)
	require.Equal(t, "sold", result["status"])

	// only the winner may start the balance checkout
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost,
		"/auctions/auction1/winner-payment", map[string]string{"user_id": "userA"})
	require.Equal(t, http.StatusConflict, w.Code)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost,
		"/auctions/auction1/winner-payment", map[string]string{"user_id": "userB"})
	require.Equal(t, http.StatusOK, w.Code)
	fields := resp["data"].(map[string]any)["fields"].(map[string]any)
	// 750 winning bid less the 50 deposit
	require.Equal(t, "700.00", fields["amount"])
	require.Equal(t, payment.PurposeWinnerPayment, fields[payment.FieldPurpose])

	// the gateway confirms the balance payment, twice
	for i := 0; i < 2; i++ {
		ww := PostWebhook(t, env.Router, map[string]string{
			payment.FieldPaymentStatus: payment.StatusComplete,
			payment.FieldPaymentID:     "auction1",
			payment.FieldGatewayTxnID:  "txn-final",
			payment.FieldAmountGross:   "700.00",
			payment.FieldReference:     "auction1",
			payment.FieldPurpose:       payment.PurposeWinnerPayment,
		})
		require.Equal(t, http.StatusOK, ww.Code)
	}

	auction, err := env.Repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, model.AuctionCompleted, auction.Status)

	// exactly one order despite the duplicate webhook
	order, err := env.Repo.GetOrderByAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, "userB", order.UserID)
	require.Equal(t, model.OrderProcessing, order.Status)

	reg, err := env.Repo.GetRegistration("auction1", "userB")
	require.NoError(t, err)
	require.True(t, reg.IsWinner)
	require.True(t, reg.DepositApplied)
}

func TestCloseAuctions_Sweep(t *testing.T) {
	env := SetupTestEnv(t, NewAuction("ended1"), NewAuction("running1"))
	expireAuction(t, env, "ended1")

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/close",
		map[string]any{"process_all": true})
	require.Equal(t, http.StatusOK, w.Code)

	results := resp["data"].([]any)
	require.Len(t, results, 1)
	require.Equal(t, "ended1", results[0].(map[string]any)["auction_id"])
	require.Equal(t, "unsold", results[0].(map[string]any)["status"])

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/close", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// Webhook verification Tests
func TestPaymentNotify_Verification(t *testing.T) {
	env := SetupTestEnv(t, NewAuction("auction1"))

	// initiate but do not pay
	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost,
		"/auctions/auction1/register", map[string]string{"user_id": "user1"})
	require.Equal(t, http.StatusOK, w.Code)
	fields := resp["data"].(map[string]any)["fields"].(map[string]any)
	registrationID := fields[payment.FieldReference].(string)

	// a tampered callback is rejected and changes nothing
	params := map[string]string{
		payment.FieldPaymentStatus: payment.StatusComplete,
		payment.FieldPaymentID:     registrationID,
		payment.FieldAmountGross:   "50.00",
		payment.FieldReference:     registrationID,
		payment.FieldPurpose:       payment.PurposeRegistration,
	}
	params[payment.FieldSignature] = payment.Sign(params, testPassphrase)
	params[payment.FieldAmountGross] = "0.01"

	ww := PostWebhook(t, env.Router, params)
	require.Equal(t, http.StatusBadRequest, ww.Code)
	require.Equal(t, "verification failed", ww.Body.String())

	reg, err := env.Repo.GetRegistrationByID(registrationID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentPending, reg.PaymentStatus)

	// an unsigned callback is rejected outright
	ww = PostWebhook(t, env.Router, map[string]string{
		payment.FieldPaymentStatus: payment.StatusComplete,
		payment.FieldReference:     registrationID,
		payment.FieldPurpose:       payment.PurposeRegistration,
		payment.FieldSignature:     "0123456789abcdef0123456789abcdef",
	})
	require.Equal(t, http.StatusBadRequest, ww.Code)
}

// A cancel webhook drops a pending registration but never a paid one.
func TestPaymentNotify_CancelRegistration(t *testing.T) {
	env := SetupTestEnv(t, NewAuction("auction1"))
	registrationID := RegisterAndPay(t, env, "auction1", "user1")

	ww := PostWebhook(t, env.Router, map[string]string{
		payment.FieldPaymentStatus: payment.StatusCancelled,
		payment.FieldPaymentID:     registrationID,
		payment.FieldReference:     registrationID,
		payment.FieldPurpose:       payment.PurposeRegistration,
	})
	require.Equal(t, http.StatusOK, ww.Code)

	reg, err := env.Repo.GetRegistrationByID(registrationID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentPaid, reg.PaymentStatus)
}
