package models

import "time"

// WalletSyncResult is returned after a successful on-chain balance sync.
type WalletSyncResult struct {
	Address  string    `json:"address"`
	Balance  float64   `json:"balance"`
	SyncedAt time.Time `json:"syncedAt"`
}

// TopUpSession describes a pending Stripe checkout for a token pack.
type TopUpSession struct {
	SessionID   string  `json:"sessionId"`
	CheckoutURL string  `json:"checkoutUrl"`
	Tokens      float64 `json:"tokens"`
	AmountCents int64   `json:"amountCents"`
}
