package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"edspire/services/wallet"
	"edspire/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const (
	// Stripe retries webhooks for up to 3 days; remember seen events longer.
	stripeEventTTL       = 96 * time.Hour
	stripeEventKeyPrefix = "stripe:evt:"
	webhookBodyLimit     = 1 << 20
	webhookTolerance     = 5 * time.Minute
)

// EventMarker remembers which Stripe event ids have been processed.
// Satisfied by *redis.Client.
type EventMarker interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// WalletHandler exposes the balance sync and token purchase endpoints.
type WalletHandler struct {
	Service       wallet.WalletService
	Events        EventMarker
	WebhookSecret string
}

func NewWalletHandler(svc wallet.WalletService, events EventMarker, webhookSecret string) *WalletHandler {
	return &WalletHandler{Service: svc, Events: events, WebhookSecret: webhookSecret}
}

type syncRequest struct {
	Address string `json:"address" binding:"required"`
}

// SyncHandler refreshes the authenticated user's cached token balance.
// POST /api/wallet/sync
func (h *WalletHandler) SyncHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req syncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	result, err := h.Service.SyncBalance(c.Request.Context(), userID, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrMissingAddress):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Wallet address is required"})
		case errors.Is(err, wallet.ErrWalletMismatch), errors.Is(err, wallet.ErrNoWalletOnFile):
			c.JSON(http.StatusForbidden, gin.H{"error": "Wallet address does not match this account"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch balance"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

type topUpRequest struct {
	Tokens float64 `json:"tokens" binding:"required,gt=0"`
}

// TopUpHandler opens a Stripe checkout for a token pack.
// POST /api/wallet/topup
func (h *WalletHandler) TopUpHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req topUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tokens must be a positive number"})
		return
	}

	session, err := h.Service.CreateTopUp(c.Request.Context(), userID, req.Tokens)
	if err != nil {
		utils.GetLogger().Error("failed to create checkout session", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start checkout"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// StripeWebhookHandler credits completed token purchases. Signature
// verification is the auth; the route carries no JWT middleware.
// POST /api/wallet/stripe/webhook
func (h *WalletHandler) StripeWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if strings.TrimSpace(h.WebhookSecret) == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Stripe webhook not configured"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, webhookBodyLimit))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	evt, err := webhook.ConstructEventWithTolerance(body, c.GetHeader("Stripe-Signature"), h.WebhookSecret, webhookTolerance)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	// Idempotency: Stripe replays events, credit each one once.
	fresh, err := h.Events.SetNX(c.Request.Context(), stripeEventKeyPrefix+evt.ID, 1, stripeEventTTL).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record event"})
		return
	}
	if !fresh {
		logger.Info("duplicate stripe event ignored", zap.String("eventId", evt.ID))
		c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
		return
	}

	if evt.Type == "checkout.session.completed" {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(evt.Data.Raw, &session); err != nil {
			logger.Error("invalid checkout session payload", zap.String("eventId", evt.ID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event payload"})
			return
		}

		userID := strings.TrimSpace(session.Metadata["userId"])
		tokens, parseErr := strconv.ParseFloat(session.Metadata["tokens"], 64)
		if userID == "" || parseErr != nil || tokens <= 0 {
			logger.Warn("checkout session missing metadata",
				zap.String("eventId", evt.ID),
				zap.String("sessionId", session.ID))
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}

		if err := h.Service.CreditTokens(c.Request.Context(), userID, tokens); err != nil {
			// Drop the idempotency marker so the Stripe retry can succeed.
			if delErr := h.Events.Del(c.Request.Context(), stripeEventKeyPrefix+evt.ID).Err(); delErr != nil {
				logger.Error("failed to release stripe event marker", zap.String("eventId", evt.ID), zap.Error(delErr))
			}
			logger.Error("failed to credit tokens", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to credit purchase"})
			return
		}

		logger.Info("token purchase credited",
			zap.String("userId", userID),
			zap.Float64("tokens", tokens),
			zap.String("eventId", evt.ID))
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
