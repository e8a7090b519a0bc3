// File: handlers/wallet_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edspire/models"
	"edspire/services/wallet"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testWebhookSecret = "whsec_test_secret"

// fakeWalletService records credit calls; CreditTokens can be forced to fail.
type fakeWalletService struct {
	credits   map[string]float64
	creditErr error
}

func newFakeWalletService() *fakeWalletService {
	return &fakeWalletService{credits: make(map[string]float64)}
}

func (f *fakeWalletService) SyncBalance(_ context.Context, _, _ string) (*models.WalletSyncResult, error) {
	return nil, wallet.ErrNoWalletOnFile
}

func (f *fakeWalletService) CreateTopUp(_ context.Context, _ string, _ float64) (*models.TopUpSession, error) {
	return nil, errors.New("not under test")
}

func (f *fakeWalletService) CreditTokens(_ context.Context, userID string, tokens float64) error {
	if f.creditErr != nil {
		return f.creditErr
	}
	f.credits[userID] += tokens
	return nil
}

// fakeEventMarker is an in-memory EventMarker.
type fakeEventMarker struct {
	seen map[string]bool
}

func newFakeEventMarker() *fakeEventMarker {
	return &fakeEventMarker{seen: make(map[string]bool)}
}

func (f *fakeEventMarker) SetNX(_ context.Context, key string, _ interface{}, _ time.Duration) *redis.BoolCmd {
	if f.seen[key] {
		return redis.NewBoolResult(false, nil)
	}
	f.seen[key] = true
	return redis.NewBoolResult(true, nil)
}

func (f *fakeEventMarker) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if f.seen[key] {
			delete(f.seen, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func webhookRouter(svc wallet.WalletService, events EventMarker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewWalletHandler(svc, events, testWebhookSecret)
	r.POST("/api/wallet/stripe/webhook", h.StripeWebhookHandler)
	return r
}

func checkoutCompletedEvent(t *testing.T, eventID, userID, tokens string) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{
		"id":          eventID,
		"object":      "event",
		"api_version": stripe.APIVersion,
		"created":     time.Now().Unix(),
		"type":        "checkout.session.completed",
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"id":     "cs_test_123",
				"object": "checkout.session",
				"metadata": map[string]interface{}{
					"userId": userID,
					"tokens": tokens,
				},
			},
		},
	})
	require.NoError(t, err)
	return payload
}

func deliver(r *gin.Engine, payload []byte, secret string) *httptest.ResponseRecorder {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
		Scheme:    "v1",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/wallet/stripe/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signed.Header)
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookCreditsCompletedCheckout(t *testing.T) {
	svc := newFakeWalletService()
	r := webhookRouter(svc, newFakeEventMarker())

	w := deliver(r, checkoutCompletedEvent(t, "evt_1", "u1", "25"), testWebhookSecret)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25.0, svc.credits["u1"])
}

func TestWebhookCreditsOncePerEventID(t *testing.T) {
	svc := newFakeWalletService()
	r := webhookRouter(svc, newFakeEventMarker())
	payload := checkoutCompletedEvent(t, "evt_replay", "u1", "10")

	first := deliver(r, payload, testWebhookSecret)
	require.Equal(t, http.StatusOK, first.Code)

	// Stripe redelivers the same event id; the credit must not repeat.
	second := deliver(r, payload, testWebhookSecret)
	require.Equal(t, http.StatusOK, second.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, "duplicate", body["status"])
	assert.Equal(t, 10.0, svc.credits["u1"], "replay must credit exactly once")
}

func TestWebhookReleasesMarkerOnCreditFailure(t *testing.T) {
	svc := newFakeWalletService()
	svc.creditErr = errors.New("db down")
	events := newFakeEventMarker()
	r := webhookRouter(svc, events)
	payload := checkoutCompletedEvent(t, "evt_fail", "u1", "10")

	w := deliver(r, payload, testWebhookSecret)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, events.seen, "failed credit must release the marker for the retry")

	// The retry succeeds once the store recovers.
	svc.creditErr = nil
	retry := deliver(r, payload, testWebhookSecret)
	require.Equal(t, http.StatusOK, retry.Code)
	assert.Equal(t, 10.0, svc.credits["u1"])
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	svc := newFakeWalletService()
	events := newFakeEventMarker()
	r := webhookRouter(svc, events)

	w := deliver(r, checkoutCompletedEvent(t, "evt_forged", "u1", "10"), "whsec_wrong")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.credits, "forged delivery must not credit")
	assert.Empty(t, events.seen)
}

func TestWebhookIgnoresMissingMetadata(t *testing.T) {
	svc := newFakeWalletService()
	r := webhookRouter(svc, newFakeEventMarker())

	w := deliver(r, checkoutCompletedEvent(t, "evt_bare", "", "10"), testWebhookSecret)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ignored", body["status"])
	assert.Empty(t, svc.credits)
}
