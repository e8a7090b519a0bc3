package user

import (
	"errors"

	userRepo "edspire/database/repository/user"
	"edspire/models"

	"github.com/go-redis/redis/v8"
)

var (
	// ErrInvalidCredentials covers both unknown email and bad password so
	// sign-in failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken rejects duplicate registration.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrWalletAlreadyLinked guards against silently swapping the on-file address.
	ErrWalletAlreadyLinked = errors.New("a wallet is already linked to this account")
)

// UserService defines business logic for account operations.
type UserService interface {
	// RegisterUser validates registration details and creates the account.
	RegisterUser(user models.User, password string) (*models.AuthResponse, error)
	// AuthenticateUser verifies credentials and returns ID and token.
	AuthenticateUser(email, password string) (*models.AuthResponse, error)
	// GetUserByID retrieves a user by its unique ID.
	GetUserByID(userID string) (*models.User, error)
	// LinkWallet stores the wallet address on file. One-shot: relinking a
	// different address is rejected.
	LinkWallet(userID, address string) error
	// SetFCMToken stores the device push token.
	SetFCMToken(userID, token string) error
	// RevokeUserAuthToken revokes the user's authentication token (for logout).
	RevokeUserAuthToken(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}
