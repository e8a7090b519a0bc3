// File: services/user/crud.go
package user

import (
	"strings"

	"edspire/models"
)

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// LinkWallet stores the wallet address on file, once. Changing a linked
// address goes through support, not this endpoint.
func (s *DefaultUserService) LinkWallet(userID, address string) error {
	address = strings.TrimSpace(address)

	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if user.WalletAddress != "" && !strings.EqualFold(user.WalletAddress, address) {
		return ErrWalletAlreadyLinked
	}

	user.WalletAddress = address
	return s.Repo.Update(user)
}

// SetFCMToken stores the device push token for reminders.
func (s *DefaultUserService) SetFCMToken(userID, token string) error {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	user.FCMToken = token
	return s.Repo.Update(user)
}
