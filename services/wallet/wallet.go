// File: services/wallet/wallet.go
package wallet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edspire/models"
	"edspire/utils"

	"go.uber.org/zap"
)

// SyncBalance runs the ownership check before touching the chain: the claimed
// address must equal the address on file for the signed-in account, compared
// case-insensitively. The persisted record is always selected by user id, so
// a sync can never write into another account keyed by address.
func (s *DefaultWalletService) SyncBalance(ctx context.Context, userID, claimedAddress string) (*models.WalletSyncResult, error) {
	logger := utils.GetLogger()

	claimedAddress = strings.TrimSpace(claimedAddress)
	if claimedAddress == "" {
		return nil, ErrMissingAddress
	}

	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.WalletAddress == "" {
		return nil, ErrNoWalletOnFile
	}

	if !strings.EqualFold(user.WalletAddress, claimedAddress) {
		// Security audit trail; the response stays opaque.
		logger.Warn("wallet ownership check failed",
			zap.String("userId", userID),
			zap.String("claimedAddress", claimedAddress))
		return nil, ErrWalletMismatch
	}

	balance, err := s.Chain.GetBalance(ctx, user.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch on-chain balance: %w", err)
	}

	syncedAt := time.Now()
	if err := s.Repo.UpdateWalletBalance(userID, balance, syncedAt); err != nil {
		return nil, err
	}

	return &models.WalletSyncResult{
		Address:  user.WalletAddress,
		Balance:  balance,
		SyncedAt: syncedAt,
	}, nil
}

// CreditTokens applies a completed token purchase.
func (s *DefaultWalletService) CreditTokens(ctx context.Context, userID string, tokens float64) error {
	if tokens <= 0 {
		return fmt.Errorf("token amount must be positive")
	}
	return s.Repo.IncrementTokenBalance(userID, tokens)
}
