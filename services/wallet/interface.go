// File: services/wallet/interface.go
package wallet

import (
	"context"
	"errors"

	userRepo "edspire/database/repository/user"
	"edspire/models"
)

var (
	// ErrWalletMismatch is a permission failure: the claimed address is not
	// the one on file for the authenticated account. The on-file address is
	// never included in the error.
	ErrWalletMismatch = errors.New("wallet address does not match the address on file")
	// ErrNoWalletOnFile means the account has not linked a wallet yet.
	ErrNoWalletOnFile = errors.New("no wallet address on file")
	// ErrMissingAddress rejects an empty claimed address before any lookup.
	ErrMissingAddress = errors.New("wallet address is required")
)

// BalanceFetcher resolves the on-chain token balance for an address.
type BalanceFetcher interface {
	GetBalance(ctx context.Context, address string) (float64, error)
}

// WalletService verifies wallet ownership and keeps the cached token balance
// in sync with the chain.
type WalletService interface {
	// SyncBalance accepts the claimed address only if it matches the
	// authenticated user's own address (case-insensitively), then fetches
	// and persists the balance on that user's record.
	SyncBalance(ctx context.Context, userID, claimedAddress string) (*models.WalletSyncResult, error)
	// CreateTopUp opens a Stripe checkout for a token pack.
	CreateTopUp(ctx context.Context, userID string, tokens float64) (*models.TopUpSession, error)
	// CreditTokens applies a completed purchase to the user's balance.
	CreditTokens(ctx context.Context, userID string, tokens float64) error
}

// DefaultWalletService is the production implementation.
type DefaultWalletService struct {
	Repo  userRepo.UserRepository
	Chain BalanceFetcher
}
