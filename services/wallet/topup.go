// File: services/wallet/topup.go
package wallet

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"edspire/config"
	"edspire/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

const (
	topUpSuccessURL = "https://edspire.app/wallet?topup=success"
	topUpCancelURL  = "https://edspire.app/wallet?topup=cancelled"
)

// CreateTopUp opens a Stripe checkout session for a token pack. The user id
// and token amount travel in the session metadata so the webhook can credit
// the right account once payment completes.
func (s *DefaultWalletService) CreateTopUp(ctx context.Context, userID string, tokens float64) (*models.TopUpSession, error) {
	if tokens <= 0 {
		return nil, fmt.Errorf("token amount must be positive")
	}
	if _, err := s.Repo.GetByID(userID); err != nil {
		return nil, err
	}

	amountCents := int64(math.Ceil(tokens * float64(config.AppConfig.TokenPriceCents)))

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("EdSpire token pack (%.0f EDS)", tokens)),
					},
					UnitAmount: stripe.Int64(amountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(topUpSuccessURL),
		CancelURL:  stripe.String(topUpCancelURL),
	}
	params.AddMetadata("userId", userID)
	params.AddMetadata("tokens", strconv.FormatFloat(tokens, 'f', -1, 64))

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &models.TopUpSession{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
		Tokens:      tokens,
		AmountCents: amountCents,
	}, nil
}
