package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	bidding "auction-engine/internal/biddingService"
	closeout "auction-engine/internal/closeoutService"
	"auction-engine/internal/livestream"
	model "auction-engine/internal/models"
	payment "auction-engine/internal/paymentService"
	registration "auction-engine/internal/registrationService"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testPassphrase = "integration-passphrase"

// TestEnv bundles the router with the components tests drive directly.
type TestEnv struct {
	Router *gin.Engine
	Repo   *repository.MemoryRepo
	Hub    *livestream.Hub
}

// SetupTestEnv wires the full service stack against an in-memory repository.
func SetupTestEnv(t *testing.T, auctions ...model.Auction) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, auction := range auctions {
		require.NoError(t, repo.PutAuction(auction))
	}

	biddingService := bidding.NewBiddingService(repo, nil)
	hub := livestream.NewHub(livestream.NewMemoryBidCache(), biddingService)
	hub.Start()
	t.Cleanup(hub.Stop)
	biddingService.SetEventPublisher(hub)

	registrationService := registration.NewRegistrationService(repo)
	closeoutService := closeout.NewCloseoutService(repo, nil, hub, "http://localhost:8080")
	paymentService := payment.NewPaymentService(repo, registrationService, nil, payment.GatewayConfig{
		MerchantID:  "10000100",
		MerchantKey: "46f0cd694581a",
		Passphrase:  testPassphrase,
		ProcessURL:  "https://sandbox.payfast.co.za/eng/process",
		NotifyURL:   "http://localhost:8080/payments/notify",
		Sandbox:     true,
	})

	router := server.SetupRouter(biddingService, registrationService, closeoutService, paymentService, hub)
	return &TestEnv{Router: router, Repo: repo, Hub: hub}
}

// NewAuction builds an active auction ending an hour from now.
func NewAuction(auctionID string) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:       auctionID,
		ProductID:       auctionID + "-product",
		VendorID:        "vendor1",
		Title:           "Auction " + auctionID,
		Status:          model.AuctionActive,
		RegistrationFee: decimal.NewFromInt(50),
		StartDate:       now.Add(-time.Hour),
		EndDate:         now.Add(time.Hour),
	}
}

// ExecuteRequestAndParse executes a JSON request and parses the envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// PostWebhook posts a form-encoded gateway callback to /payments/notify.
// The signature is computed over the params unless one is already present.
func PostWebhook(t *testing.T, router *gin.Engine, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	if _, ok := params[payment.FieldSignature]; !ok {
		params[payment.FieldSignature] = payment.Sign(params, testPassphrase)
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments/notify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

// RegisterAndPay runs the registration checkout plus COMPLETE webhook for a
// user, returning the paid registration id.
func RegisterAndPay(t *testing.T, env *TestEnv, auctionID, userID string) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost,
		"/auctions/"+auctionID+"/register", map[string]string{"user_id": userID})
	require.Equal(t, http.StatusOK, w.Code, "checkout initiation failed: %s", w.Body.String())

	fields := resp["data"].(map[string]any)["fields"].(map[string]any)
	registrationID := fields[payment.FieldReference].(string)
	amount := fields["amount"].(string)

	ww := PostWebhook(t, env.Router, map[string]string{
		payment.FieldPaymentStatus: payment.StatusComplete,
		payment.FieldPaymentID:     registrationID,
		payment.FieldGatewayTxnID:  "txn-" + registrationID,
		payment.FieldAmountGross:   amount,
		payment.FieldReference:     registrationID,
		payment.FieldPurpose:       payment.PurposeRegistration,
	})
	require.Equal(t, http.StatusOK, ww.Code)
	require.Equal(t, "OK", ww.Body.String())

	return registrationID
}

// PlaceBid posts a bid and asserts the expected status code.
func PlaceBid(t *testing.T, env *TestEnv, auctionID, userID string, amount int64, wantStatus int) map[string]any {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/bids", map[string]any{
		"auction_id": auctionID,
		"user_id":    userID,
		"amount":     amount,
	})
	require.Equal(t, wantStatus, w.Code, "unexpected status for bid %d by %s: %s", amount, userID, w.Body.String())
	return resp
}
